package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMarshalOmitsPassword(t *testing.T) {
	user := User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$stored-bcrypt-hash",
		Role:     RolePatient,
	}

	data, err := json.Marshal(user)

	assert.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "bcrypt-hash")
}

// Appointment replies carry the preloaded doctor and patient accounts, so the
// hash must stay out of the nested users too.
func TestAppointmentMarshalOmitsPasswords(t *testing.T) {
	appointment := Appointment{
		Doctor:  Doctor{User: User{Username: "strange", Password: "doctor-hash"}},
		Patient: Patient{User: User{Username: "alice", Password: "patient-hash"}},
		Status:  StatusBooked,
	}

	data, err := json.Marshal(appointment)

	assert.NoError(t, err)
	assert.NotContains(t, string(data), "doctor-hash")
	assert.NotContains(t, string(data), "patient-hash")
}
