package repositories

import (
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-booking/models"
)

type GormNotificationRepository struct {
	db *gorm.DB
}

var _ NotificationRepository = (*GormNotificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *GormNotificationRepository) ListByPatient(patientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}
