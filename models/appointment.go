package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "Booked"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusCompleted AppointmentStatus = "Completed"
)

// Statuses lists every value an appointment may ever hold, in report order.
var Statuses = []AppointmentStatus{StatusBooked, StatusConfirmed, StatusCompleted, StatusCancelled}

// AppointmentAction is a lifecycle action requested by the assigned doctor.
type AppointmentAction string

const (
	ActionConfirm  AppointmentAction = "confirm"
	ActionReject   AppointmentAction = "reject"
	ActionComplete AppointmentAction = "complete"
)

var (
	// ErrInvalidAction is returned for an action keyword outside
	// confirm/reject/complete. The appointment is left untouched.
	ErrInvalidAction = errors.New("invalid appointment action")
	// ErrInvalidTransition is returned for a known action applied from a
	// state the lifecycle does not allow it in.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Appointment is never physically deleted; cancellation is a status change so
// the booking history survives.
type Appointment struct {
	gorm.Model
	Reference string            `json:"reference" gorm:"uniqueIndex"`
	DoctorID  uint              `json:"doctor_id"`
	Doctor    Doctor            `json:"doctor" gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	PatientID uint              `json:"patient_id"`
	Patient   Patient           `json:"patient" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Date      time.Time         `json:"date" gorm:"type:date"`
	Time      string            `json:"time"` // "HH:MM" in 24h
	Status    AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusBooked
	}
	if a.Reference == "" {
		a.Reference = uuid.NewString()
	}
	return nil
}

// ApplyAction moves the appointment through the lifecycle state machine.
// It only mutates the struct; persisting the change is the caller's job.
func (a *Appointment) ApplyAction(action AppointmentAction) error {
	switch action {
	case ActionConfirm:
		if a.Status != StatusBooked {
			return ErrInvalidTransition
		}
		a.Status = StatusConfirmed
	case ActionReject:
		if a.Status != StatusBooked && a.Status != StatusConfirmed {
			return ErrInvalidTransition
		}
		a.Status = StatusCancelled
	case ActionComplete:
		if a.Status != StatusConfirmed {
			return ErrInvalidTransition
		}
		a.Status = StatusCompleted
	default:
		return ErrInvalidAction
	}
	return nil
}

// Upcoming reports whether the appointment belongs to the "upcoming" half of
// a patient's list: not before today and still live. Everything else is past,
// so the two halves are exhaustive and disjoint.
func (a *Appointment) Upcoming(today time.Time) bool {
	if a.Status == StatusCancelled || a.Status == StatusCompleted {
		return false
	}
	return !a.Date.Before(today)
}
