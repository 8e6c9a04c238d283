package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-booking/models"
)

func TestAddHistoryRecord(t *testing.T) {
	records := &MockMedicalHistoryRepository{}
	patients := &MockPatientRepository{
		GetByIDFunc: func(id uint) (*models.Patient, error) {
			return &models.Patient{Model: gorm.Model{ID: id}}, nil
		},
	}
	svc := NewMedicalHistoryService(records, patients)

	record, err := svc.Add(7, 3, "seasonal allergy", "cetirizine 10mg")

	assert.NoError(t, err)
	assert.Len(t, records.Created, 1)
	assert.Equal(t, uint(3), record.PatientID)
	assert.Equal(t, uint(7), record.DoctorID)
	assert.Equal(t, "seasonal allergy", record.Notes)
	assert.Equal(t, "cetirizine 10mg", record.Prescription)
}

func TestAddHistoryUnknownPatient(t *testing.T) {
	records := &MockMedicalHistoryRepository{}
	patients := &MockPatientRepository{
		GetByIDFunc: func(id uint) (*models.Patient, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewMedicalHistoryService(records, patients)

	_, err := svc.Add(7, 99, "notes", "")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, records.Created)
}

func TestForPatient(t *testing.T) {
	stored := []models.MedicalHistory{
		{PatientID: 3, DoctorID: 7, Notes: "follow-up"},
		{PatientID: 3, DoctorID: 8, Notes: "initial visit"},
	}
	records := &MockMedicalHistoryRepository{
		ListByPatientFunc: func(patientID uint) ([]models.MedicalHistory, error) {
			return stored, nil
		},
	}
	patients := &MockPatientRepository{
		GetByIDFunc: func(id uint) (*models.Patient, error) {
			return &models.Patient{Model: gorm.Model{ID: id}}, nil
		},
	}
	svc := NewMedicalHistoryService(records, patients)

	history, err := svc.ForPatient(3)

	assert.NoError(t, err)
	assert.Equal(t, stored, history)
}

func TestForPatientUnknownPatient(t *testing.T) {
	patients := &MockPatientRepository{
		GetByIDFunc: func(id uint) (*models.Patient, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewMedicalHistoryService(&MockMedicalHistoryRepository{}, patients)

	_, err := svc.ForPatient(99)

	assert.ErrorIs(t, err, ErrNotFound)
}
