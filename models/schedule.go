package models

import (
	"time"

	"gorm.io/gorm"
)

// DoctorSchedule is a declared availability window. Overlapping windows are
// accepted as-is; there is no uniqueness beyond the row itself.
type DoctorSchedule struct {
	gorm.Model
	DoctorID  uint      `json:"doctor_id"`
	Doctor    Doctor    `json:"doctor" gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	Date      time.Time `json:"date" gorm:"type:date"`
	StartTime string    `json:"start_time"` // "HH:MM" in 24h
	EndTime   string    `json:"end_time"`   // "HH:MM" in 24h
}

// DoctorLeave blacks out a date. Recording one cancels every Booked
// appointment the doctor has on that date.
type DoctorLeave struct {
	gorm.Model
	DoctorID uint      `json:"doctor_id"`
	Doctor   Doctor    `json:"doctor" gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	Date     time.Time `json:"date" gorm:"type:date"`
	Reason   string    `json:"reason"`
}
