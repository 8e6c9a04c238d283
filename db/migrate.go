package db

import (
	"log"

	"github.com/clinicdesk/clinic-booking/models"
)

// Migrate applies the schema. Init must have been called first.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.DoctorSchedule{},
		&models.DoctorLeave{},
		&models.Appointment{},
		&models.Notification{},
		&models.MedicalHistory{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}
