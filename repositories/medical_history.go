package repositories

import (
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-booking/models"
)

type GormMedicalHistoryRepository struct {
	db *gorm.DB
}

var _ MedicalHistoryRepository = (*GormMedicalHistoryRepository)(nil)

func NewMedicalHistoryRepository(db *gorm.DB) *GormMedicalHistoryRepository {
	return &GormMedicalHistoryRepository{db: db}
}

func (r *GormMedicalHistoryRepository) Create(record *models.MedicalHistory) error {
	return r.db.Create(record).Error
}

func (r *GormMedicalHistoryRepository) ListByPatient(patientID uint) ([]models.MedicalHistory, error) {
	var records []models.MedicalHistory
	err := r.db.
		Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&records).Error
	return records, err
}
