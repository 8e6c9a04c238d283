package models

import (
	"gorm.io/gorm"
)

// MedicalHistory is an append-only ledger entry. Records are never edited
// after creation; there is no update path anywhere in the codebase.
type MedicalHistory struct {
	gorm.Model
	PatientID    uint    `json:"patient_id"`
	Patient      Patient `json:"patient" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	DoctorID     uint    `json:"doctor_id"`
	Doctor       Doctor  `json:"doctor" gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	Notes        string  `json:"notes"`
	Prescription string  `json:"prescription"`
}
