package repositories

import (
	"time"

	"github.com/clinicdesk/clinic-booking/models"
)

// AppointmentRepository owns appointment rows. Rows are never deleted.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id uint) (*models.Appointment, error)
	Update(appointment *models.Appointment) error
	ListByPatient(patientID uint) ([]models.Appointment, error)
	ListByDoctor(doctorID uint) ([]models.Appointment, error)
	ListByDate(date time.Time) ([]models.Appointment, error)
	CountByStatus(doctorID uint) (map[models.AppointmentStatus]int64, error)
}

// LeaveRepository persists doctor blackout dates. ApplyLeave must insert the
// leave and cancel every Booked appointment for (doctor, date) in a single
// transaction, returning the cancelled rows with Patient and Doctor loaded.
type LeaveRepository interface {
	ApplyLeave(leave *models.DoctorLeave) ([]models.Appointment, error)
	ListByDoctor(doctorID uint) ([]models.DoctorLeave, error)
}

type ScheduleRepository interface {
	Create(schedule *models.DoctorSchedule) error
	ListByDoctor(doctorID uint) ([]models.DoctorSchedule, error)
}

// NotificationRepository lists newest-first.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByPatient(patientID uint) ([]models.Notification, error)
}

// MedicalHistoryRepository lists newest-first. There is deliberately no
// update or delete method; the ledger is append-only.
type MedicalHistoryRepository interface {
	Create(record *models.MedicalHistory) error
	ListByPatient(patientID uint) ([]models.MedicalHistory, error)
}

type DoctorRepository interface {
	GetByID(id uint) (*models.Doctor, error)
	GetByUserID(userID uint) (*models.Doctor, error)
	Search(specialization string) ([]models.Doctor, error)
}

type PatientRepository interface {
	GetByID(id uint) (*models.Patient, error)
	GetByUserID(userID uint) (*models.Patient, error)
}
