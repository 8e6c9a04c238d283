package models

import (
	"gorm.io/gorm"
)

// Notification is an in-app message for a patient. The recipient is the
// patient profile, not the raw account.
type Notification struct {
	gorm.Model
	PatientID uint    `json:"patient_id"`
	Patient   Patient `json:"patient" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"is_read" gorm:"default:false"`
}
