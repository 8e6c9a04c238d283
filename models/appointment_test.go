package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyAction(t *testing.T) {
	tests := []struct {
		name       string
		from       AppointmentStatus
		action     AppointmentAction
		want       AppointmentStatus
		wantErr    error
	}{
		{"confirm from booked", StatusBooked, ActionConfirm, StatusConfirmed, nil},
		{"reject from booked", StatusBooked, ActionReject, StatusCancelled, nil},
		{"reject from confirmed", StatusConfirmed, ActionReject, StatusCancelled, nil},
		{"complete from confirmed", StatusConfirmed, ActionComplete, StatusCompleted, nil},
		{"confirm from confirmed", StatusConfirmed, ActionConfirm, StatusConfirmed, ErrInvalidTransition},
		{"complete from booked", StatusBooked, ActionComplete, StatusBooked, ErrInvalidTransition},
		{"confirm from cancelled", StatusCancelled, ActionConfirm, StatusCancelled, ErrInvalidTransition},
		{"reject from completed", StatusCompleted, ActionReject, StatusCompleted, ErrInvalidTransition},
		{"unknown action", StatusBooked, AppointmentAction("destroy"), StatusBooked, ErrInvalidAction},
		{"empty action", StatusConfirmed, AppointmentAction(""), StatusConfirmed, ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := Appointment{Status: tt.from}
			err := appointment.ApplyAction(tt.action)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			// A failed action must leave the status untouched.
			assert.Equal(t, tt.want, appointment.Status)
		})
	}
}

func TestBeforeCreateDefaults(t *testing.T) {
	appointment := Appointment{}
	err := appointment.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, StatusBooked, appointment.Status)
	assert.NotEmpty(t, appointment.Reference)
}

func TestBeforeCreateKeepsExplicitValues(t *testing.T) {
	appointment := Appointment{Status: StatusConfirmed, Reference: "ref-1"}
	err := appointment.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, appointment.Status)
	assert.Equal(t, "ref-1", appointment.Reference)
}

func TestUpcoming(t *testing.T) {
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   time.Time
		status AppointmentStatus
		want   bool
	}{
		{"today booked", today, StatusBooked, true},
		{"future confirmed", today.AddDate(0, 0, 2), StatusConfirmed, true},
		{"yesterday booked", today.AddDate(0, 0, -1), StatusBooked, false},
		{"future cancelled", today.AddDate(0, 1, 0), StatusCancelled, false},
		{"today completed", today, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := Appointment{Date: tt.date, Status: tt.status}
			assert.Equal(t, tt.want, appointment.Upcoming(today))
		})
	}
}
