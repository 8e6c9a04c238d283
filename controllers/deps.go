package controllers

import (
	"github.com/clinicdesk/clinic-booking/db"
	"github.com/clinicdesk/clinic-booking/repositories"
	"github.com/clinicdesk/clinic-booking/services"
	"github.com/clinicdesk/clinic-booking/utils"
)

// Lifecycle wires the appointment engine over the live DB connection.
func Lifecycle() *services.LifecycleService {
	d := db.GetDB()
	return services.NewLifecycleService(
		repositories.NewAppointmentRepository(d),
		repositories.NewDoctorRepository(d),
		repositories.NewPatientRepository(d),
		repositories.NewLeaveRepository(d),
		repositories.NewNotificationRepository(d),
		utils.NewSMSClient(),
	)
}

func HistoryService() *services.MedicalHistoryService {
	d := db.GetDB()
	return services.NewMedicalHistoryService(
		repositories.NewMedicalHistoryRepository(d),
		repositories.NewPatientRepository(d),
	)
}

func Doctors() repositories.DoctorRepository {
	return repositories.NewDoctorRepository(db.GetDB())
}

func Patients() repositories.PatientRepository {
	return repositories.NewPatientRepository(db.GetDB())
}

func Notifications() repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db.GetDB())
}

func Schedules() repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db.GetDB())
}

func Leaves() repositories.LeaveRepository {
	return repositories.NewLeaveRepository(db.GetDB())
}
