package services

import (
	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/repositories"
)

// MedicalHistoryService appends to and reads the patient ledger. There is no
// edit path: a record written once is written forever.
type MedicalHistoryService struct {
	records  repositories.MedicalHistoryRepository
	patients repositories.PatientRepository
}

func NewMedicalHistoryService(
	records repositories.MedicalHistoryRepository,
	patients repositories.PatientRepository,
) *MedicalHistoryService {
	return &MedicalHistoryService{records: records, patients: patients}
}

// Add appends a ledger entry for the patient on behalf of the doctor. The
// target patient must exist.
func (s *MedicalHistoryService) Add(doctorID, patientID uint, notes, prescription string) (*models.MedicalHistory, error) {
	if _, err := s.patients.GetByID(patientID); err != nil {
		return nil, notFound(err)
	}

	record := &models.MedicalHistory{
		PatientID:    patientID,
		DoctorID:     doctorID,
		Notes:        notes,
		Prescription: prescription,
	}
	if err := s.records.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// ForPatient returns the patient's full history, newest first.
func (s *MedicalHistoryService) ForPatient(patientID uint) ([]models.MedicalHistory, error) {
	if _, err := s.patients.GetByID(patientID); err != nil {
		return nil, notFound(err)
	}
	return s.records.ListByPatient(patientID)
}
