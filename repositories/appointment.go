package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-booking/models"
)

type GormAppointmentRepository struct {
	db *gorm.DB
}

var _ AppointmentRepository = (*GormAppointmentRepository)(nil)

func NewAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *GormAppointmentRepository) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.
		Preload("Doctor.User").
		Preload("Patient.User").
		First(&appointment, id).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *GormAppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Find(&appointments).Error
	return appointments, err
}

func (r *GormAppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("date asc, time asc").
		Find(&appointments).Error
	return appointments, err
}

func (r *GormAppointmentRepository) ListByDate(date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Preload("Doctor.User").
		Preload("Patient.User").
		Where("date = ?", date).
		Order("time asc").
		Find(&appointments).Error
	return appointments, err
}

func (r *GormAppointmentRepository) CountByStatus(doctorID uint) (map[models.AppointmentStatus]int64, error) {
	type row struct {
		Status models.AppointmentStatus
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.Appointment{}).
		Select("status, count(*) as total").
		Where("doctor_id = ?", doctorID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
