package models

import (
	"gorm.io/gorm"
)

// Patient is the profile attached 1:1 to a patient account.
type Patient struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex"`
	User   User   `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
}
