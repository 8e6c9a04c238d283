package models

import (
	"gorm.io/gorm"
)

// Doctor is the profile attached 1:1 to a doctor account.
type Doctor struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"uniqueIndex"`
	User           User   `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Location       string `json:"location" gorm:"default:Unknown"`
	ProfilePicture string `json:"profile_picture"`
}
