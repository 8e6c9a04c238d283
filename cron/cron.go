package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/clinicdesk/clinic-booking/db"
	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run hourly and remind patients about tomorrow's confirmed appointments
	_, err := c.AddFunc("0 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	tomorrow := utils.Today().AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := db.DB.Preload("Patient.User").Preload("Doctor.User").
		Where("status = ? AND date = ?", models.StatusConfirmed, tomorrow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Patient.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Appointment with Dr.%s tomorrow", appointment.Doctor.User.Username)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> Dr.%s (%s)</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Clinic Team</p>
	`, appointment.Patient.User.Username,
		appointment.Doctor.User.Username, appointment.Doctor.Specialization,
		appointment.Date.Format(utils.DateLayout),
		appointment.Time,
		appointment.Doctor.Location)

	return utils.SendEmail(appointment.Patient.User.Email, subject, body)
}
