package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/repositories"
)

const dateLayout = "2006-01-02"

// LifecycleService owns every appointment status transition. All mutation of
// appointment rows goes through here; controllers never touch the store
// directly.
type LifecycleService struct {
	appointments  repositories.AppointmentRepository
	doctors       repositories.DoctorRepository
	patients      repositories.PatientRepository
	leaves        repositories.LeaveRepository
	notifications repositories.NotificationRepository
	sms           SMSSender
}

func NewLifecycleService(
	appointments repositories.AppointmentRepository,
	doctors repositories.DoctorRepository,
	patients repositories.PatientRepository,
	leaves repositories.LeaveRepository,
	notifications repositories.NotificationRepository,
	sms SMSSender,
) *LifecycleService {
	return &LifecycleService{
		appointments:  appointments,
		doctors:       doctors,
		patients:      patients,
		leaves:        leaves,
		notifications: notifications,
		sms:           sms,
	}
}

// Book creates an appointment with status Booked. It checks the doctor
// exists but deliberately does not check the date is in the future or that
// the doctor has an availability window on it.
func (s *LifecycleService) Book(patientID, doctorID uint, date time.Time, clock string) (*models.Appointment, error) {
	if date.IsZero() {
		return nil, &ValidationError{Field: "date", Message: "date is required"}
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return nil, &ValidationError{Field: "time", Message: "time must be HH:MM in 24h format"}
	}

	if _, err := s.doctors.GetByID(doctorID); err != nil {
		return nil, notFound(err)
	}

	appointment := &models.Appointment{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		Time:      clock,
		Status:    models.StatusBooked,
	}
	if err := s.appointments.Create(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Cancel is the patient-initiated cancellation. The patient must own the
// appointment and it must still be live. An SMS is attempted afterwards;
// failure to deliver never undoes the cancellation.
func (s *LifecycleService) Cancel(patientID, appointmentID uint) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(appointmentID)
	if err != nil {
		return nil, notFound(err)
	}
	if appointment.PatientID != patientID {
		return nil, ErrForbidden
	}

	if err := appointment.ApplyAction(models.ActionReject); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(appointment); err != nil {
		return nil, err
	}

	s.sendSMS(appointment.Patient.Phone, cancelMessage(appointment))
	return appointment, nil
}

// Act applies confirm/reject/complete on behalf of the assigned doctor. Any
// other doctor gets ErrForbidden and the appointment is untouched. A reject
// additionally notifies the patient in-app and attempts an SMS.
func (s *LifecycleService) Act(doctorID, appointmentID uint, action models.AppointmentAction) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(appointmentID)
	if err != nil {
		return nil, notFound(err)
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrForbidden
	}

	if err := appointment.ApplyAction(action); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(appointment); err != nil {
		return nil, err
	}

	if action == models.ActionReject {
		notification := &models.Notification{
			PatientID: appointment.PatientID,
			Message:   cancelMessage(appointment),
		}
		if err := s.notifications.Create(notification); err != nil {
			log.Printf("Failed to create cancellation notification for appointment %d: %v", appointment.ID, err)
		}
		s.sendSMS(appointment.Patient.Phone, cancelMessage(appointment))
	}
	return appointment, nil
}

// Reschedule replaces date/time and resets the status to Booked, whatever
// the prior status was.
func (s *LifecycleService) Reschedule(patientID, appointmentID uint, date time.Time, clock string) (*models.Appointment, error) {
	if date.IsZero() {
		return nil, &ValidationError{Field: "date", Message: "date is required"}
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return nil, &ValidationError{Field: "time", Message: "time must be HH:MM in 24h format"}
	}

	appointment, err := s.appointments.GetByID(appointmentID)
	if err != nil {
		return nil, notFound(err)
	}
	if appointment.PatientID != patientID {
		return nil, ErrForbidden
	}

	appointment.Date = date
	appointment.Time = clock
	appointment.Status = models.StatusBooked
	if err := s.appointments.Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ApplyLeave records a blackout date for the doctor and cancels every Booked
// appointment on it. The leave insert and the cancellations commit together;
// each affected patient then gets one in-app notification and a best-effort
// SMS outside the transaction.
func (s *LifecycleService) ApplyLeave(doctorID uint, date time.Time, reason string) (*models.DoctorLeave, []models.Appointment, error) {
	if date.IsZero() {
		return nil, nil, &ValidationError{Field: "date", Message: "date is required"}
	}

	doctor, err := s.doctors.GetByID(doctorID)
	if err != nil {
		return nil, nil, notFound(err)
	}

	leave := &models.DoctorLeave{
		DoctorID: doctorID,
		Date:     date,
		Reason:   reason,
	}
	cancelled, err := s.leaves.ApplyLeave(leave)
	if err != nil {
		return nil, nil, err
	}

	for i := range cancelled {
		appointment := &cancelled[i]
		notification := &models.Notification{
			PatientID: appointment.PatientID,
			Message: fmt.Sprintf("Your appointment with Dr.%s on %s has been cancelled due to leave.",
				doctor.User.Username, appointment.Date.Format(dateLayout)),
		}
		if err := s.notifications.Create(notification); err != nil {
			log.Printf("Failed to create leave notification for patient %d: %v", appointment.PatientID, err)
		}
		s.sendSMS(appointment.Patient.Phone, cancelMessage(appointment))
	}
	return leave, cancelled, nil
}

// MyAppointments splits a patient's appointments into upcoming (not before
// today and still live, soonest first) and past (everything else, most
// recent first). Every appointment lands in exactly one half.
func (s *LifecycleService) MyAppointments(patientID uint, today time.Time) (upcoming, past []models.Appointment, err error) {
	appointments, err := s.appointments.ListByPatient(patientID)
	if err != nil {
		return nil, nil, err
	}

	upcoming = make([]models.Appointment, 0, len(appointments))
	past = make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Upcoming(today) {
			upcoming = append(upcoming, appointment)
		} else {
			past = append(past, appointment)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].Date.Equal(upcoming[j].Date) {
			return upcoming[i].Date.Before(upcoming[j].Date)
		}
		return upcoming[i].Time < upcoming[j].Time
	})
	sort.SliceStable(past, func(i, j int) bool {
		if !past[i].Date.Equal(past[j].Date) {
			return past[i].Date.After(past[j].Date)
		}
		return past[i].Time > past[j].Time
	})
	return upcoming, past, nil
}

// Report counts a doctor's appointments per status. The summary always
// carries all four statuses, zero-filled for the ones the doctor has never
// seen.
func (s *LifecycleService) Report(doctorID uint) (map[models.AppointmentStatus]int64, error) {
	counts, err := s.appointments.CountByStatus(doctorID)
	if err != nil {
		return nil, err
	}

	summary := make(map[models.AppointmentStatus]int64, len(models.Statuses))
	for _, status := range models.Statuses {
		summary[status] = counts[status]
	}
	return summary, nil
}

// Dashboard lists every appointment assigned to the doctor.
func (s *LifecycleService) Dashboard(doctorID uint) ([]models.Appointment, error) {
	return s.appointments.ListByDoctor(doctorID)
}

// DailyRoster is the staff view: every appointment on a single date.
func (s *LifecycleService) DailyRoster(date time.Time) ([]models.Appointment, error) {
	return s.appointments.ListByDate(date)
}

func (s *LifecycleService) sendSMS(phone, message string) {
	if phone == "" {
		return
	}
	if err := s.sms.Send(phone, message); err != nil {
		log.Printf("Failed to send SMS to %s: %v", phone, err)
	}
}

func cancelMessage(appointment *models.Appointment) string {
	return fmt.Sprintf("Dear %s, your appointment with Dr.%s on %s at %s has been cancelled.",
		appointment.Patient.User.Username,
		appointment.Doctor.User.Username,
		appointment.Date.Format(dateLayout),
		appointment.Time)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
