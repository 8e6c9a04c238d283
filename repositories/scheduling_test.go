package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clinicdesk/clinic-booking/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.DoctorLeave{},
	))
	return db
}

func seedDoctor(t *testing.T, db *gorm.DB, username string) *models.Doctor {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Role: models.RoleDoctor}
	require.NoError(t, db.Create(&user).Error)
	doctor := models.Doctor{UserID: user.ID, Specialization: "dermatology", Phone: "5550100"}
	require.NoError(t, db.Create(&doctor).Error)
	return &doctor
}

func seedPatient(t *testing.T, db *gorm.DB, username string) *models.Patient {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Role: models.RolePatient}
	require.NoError(t, db.Create(&user).Error)
	patient := models.Patient{UserID: user.ID, Phone: "5550001"}
	require.NoError(t, db.Create(&patient).Error)
	return &patient
}

func seedAppointment(t *testing.T, db *gorm.DB, doctor *models.Doctor, patient *models.Patient, date time.Time, clock string, status models.AppointmentStatus) *models.Appointment {
	t.Helper()
	appointment := models.Appointment{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      date,
		Time:      clock,
		Status:    status,
	}
	require.NoError(t, db.Create(&appointment).Error)
	return &appointment
}

func assertStatus(t *testing.T, db *gorm.DB, id uint, want models.AppointmentStatus) {
	t.Helper()
	var appointment models.Appointment
	require.NoError(t, db.First(&appointment, id).Error)
	assert.Equal(t, want, appointment.Status)
}

func TestApplyLeaveCancelsOnlyMatchingRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)

	drStrange := seedDoctor(t, db, "strange")
	drWho := seedDoctor(t, db, "who")
	alice := seedPatient(t, db, "alice")

	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	target := seedAppointment(t, db, drStrange, alice, day, "09:00", models.StatusBooked)
	confirmedSameDay := seedAppointment(t, db, drStrange, alice, day, "10:00", models.StatusConfirmed)
	bookedNextDay := seedAppointment(t, db, drStrange, alice, nextDay, "09:00", models.StatusBooked)
	otherDoctor := seedAppointment(t, db, drWho, alice, day, "09:00", models.StatusBooked)

	cancelled, err := repo.ApplyLeave(&models.DoctorLeave{
		DoctorID: drStrange.ID,
		Date:     day,
		Reason:   "conference",
	})

	assert.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, target.ID, cancelled[0].ID)
	assert.Equal(t, models.StatusCancelled, cancelled[0].Status)
	// The caller builds notifications from the returned rows, so the patient
	// account must come back loaded.
	assert.Equal(t, "alice", cancelled[0].Patient.User.Username)

	assertStatus(t, db, target.ID, models.StatusCancelled)
	assertStatus(t, db, confirmedSameDay.ID, models.StatusConfirmed)
	assertStatus(t, db, bookedNextDay.ID, models.StatusBooked)
	assertStatus(t, db, otherDoctor.ID, models.StatusBooked)

	var leaves int64
	require.NoError(t, db.Model(&models.DoctorLeave{}).Count(&leaves).Error)
	assert.Equal(t, int64(1), leaves)
}

func TestApplyLeaveNoBookedAppointments(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)

	dr := seedDoctor(t, db, "strange")
	alice := seedPatient(t, db, "alice")
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	completed := seedAppointment(t, db, dr, alice, day, "09:00", models.StatusCompleted)

	cancelled, err := repo.ApplyLeave(&models.DoctorLeave{DoctorID: dr.ID, Date: day})

	assert.NoError(t, err)
	assert.Empty(t, cancelled)
	assertStatus(t, db, completed.ID, models.StatusCompleted)
}

func TestApplyLeaveRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)

	dr := seedDoctor(t, db, "strange")
	seedPatient(t, db, "alice")
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	// Force the cascade query to fail after the leave insert succeeds.
	require.NoError(t, db.Migrator().DropTable(&models.Appointment{}))

	_, err := repo.ApplyLeave(&models.DoctorLeave{DoctorID: dr.ID, Date: day})

	assert.Error(t, err)
	var leaves int64
	require.NoError(t, db.Model(&models.DoctorLeave{}).Count(&leaves).Error)
	assert.Equal(t, int64(0), leaves)
}
