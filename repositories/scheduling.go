package repositories

import (
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-booking/models"
)

type GormLeaveRepository struct {
	db *gorm.DB
}

var _ LeaveRepository = (*GormLeaveRepository)(nil)

func NewLeaveRepository(db *gorm.DB) *GormLeaveRepository {
	return &GormLeaveRepository{db: db}
}

// ApplyLeave inserts the leave and flips every Booked appointment for the
// doctor on that date to Cancelled, all inside one transaction. A crash
// mid-cascade therefore cannot leave a half-cancelled day behind.
// Notifications and SMS are the caller's problem and stay outside the
// transaction boundary.
func (r *GormLeaveRepository) ApplyLeave(leave *models.DoctorLeave) ([]models.Appointment, error) {
	var cancelled []models.Appointment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(leave).Error; err != nil {
			return err
		}

		var booked []models.Appointment
		if err := tx.
			Preload("Patient.User").
			Preload("Doctor.User").
			Where("doctor_id = ? AND date = ? AND status = ?",
				leave.DoctorID, leave.Date, models.StatusBooked).
			Find(&booked).Error; err != nil {
			return err
		}

		for i := range booked {
			booked[i].Status = models.StatusCancelled
			if err := tx.Save(&booked[i]).Error; err != nil {
				return err
			}
		}

		cancelled = booked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (r *GormLeaveRepository) ListByDoctor(doctorID uint) ([]models.DoctorLeave, error) {
	var leaves []models.DoctorLeave
	err := r.db.
		Where("doctor_id = ?", doctorID).
		Order("date desc").
		Find(&leaves).Error
	return leaves, err
}

type GormScheduleRepository struct {
	db *gorm.DB
}

var _ ScheduleRepository = (*GormScheduleRepository)(nil)

func NewScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

func (r *GormScheduleRepository) Create(schedule *models.DoctorSchedule) error {
	return r.db.Create(schedule).Error
}

func (r *GormScheduleRepository) ListByDoctor(doctorID uint) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	err := r.db.
		Where("doctor_id = ?", doctorID).
		Order("date asc, start_time asc").
		Find(&schedules).Error
	return schedules, err
}
