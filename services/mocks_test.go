package services

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/clinicdesk/clinic-booking/models"
	"github.com/clinicdesk/clinic-booking/repositories"
)

// --- MockAppointmentRepository ---
// Compile-time check to ensure the mock implements the contract
var _ repositories.AppointmentRepository = (*MockAppointmentRepository)(nil)

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc        func(appointment *models.Appointment) error
	GetByIDFunc       func(id uint) (*models.Appointment, error)
	UpdateFunc        func(appointment *models.Appointment) error
	ListByPatientFunc func(patientID uint) ([]models.Appointment, error)
	ListByDoctorFunc  func(doctorID uint) ([]models.Appointment, error)
	ListByDateFunc    func(date time.Time) ([]models.Appointment, error)
	CountByStatusFunc func(doctorID uint) (map[models.AppointmentStatus]int64, error)

	CreateCallCount int32
	UpdateCallCount int32
}

func (m *MockAppointmentRepository) Create(appointment *models.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) GetByID(id uint) (*models.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) Update(appointment *models.Appointment) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(patientID)
	}
	return nil, errors.New("ListByPatientFunc not implemented in mock")
}

func (m *MockAppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(doctorID)
	}
	return nil, errors.New("ListByDoctorFunc not implemented in mock")
}

func (m *MockAppointmentRepository) ListByDate(date time.Time) ([]models.Appointment, error) {
	if m.ListByDateFunc != nil {
		return m.ListByDateFunc(date)
	}
	return nil, errors.New("ListByDateFunc not implemented in mock")
}

func (m *MockAppointmentRepository) CountByStatus(doctorID uint) (map[models.AppointmentStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(doctorID)
	}
	return nil, errors.New("CountByStatusFunc not implemented in mock")
}

// --- MockLeaveRepository ---
var _ repositories.LeaveRepository = (*MockLeaveRepository)(nil)

type MockLeaveRepository struct {
	ApplyLeaveFunc   func(leave *models.DoctorLeave) ([]models.Appointment, error)
	ListByDoctorFunc func(doctorID uint) ([]models.DoctorLeave, error)
}

func (m *MockLeaveRepository) ApplyLeave(leave *models.DoctorLeave) ([]models.Appointment, error) {
	if m.ApplyLeaveFunc != nil {
		return m.ApplyLeaveFunc(leave)
	}
	return nil, errors.New("ApplyLeaveFunc not implemented in mock")
}

func (m *MockLeaveRepository) ListByDoctor(doctorID uint) ([]models.DoctorLeave, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(doctorID)
	}
	return nil, errors.New("ListByDoctorFunc not implemented in mock")
}

// --- MockNotificationRepository ---
var _ repositories.NotificationRepository = (*MockNotificationRepository)(nil)

type MockNotificationRepository struct {
	CreateFunc        func(notification *models.Notification) error
	ListByPatientFunc func(patientID uint) ([]models.Notification, error)

	Created []models.Notification
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	m.Created = append(m.Created, *notification)
	if m.CreateFunc != nil {
		return m.CreateFunc(notification)
	}
	return nil
}

func (m *MockNotificationRepository) ListByPatient(patientID uint) ([]models.Notification, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(patientID)
	}
	return nil, errors.New("ListByPatientFunc not implemented in mock")
}

// --- MockMedicalHistoryRepository ---
var _ repositories.MedicalHistoryRepository = (*MockMedicalHistoryRepository)(nil)

type MockMedicalHistoryRepository struct {
	CreateFunc        func(record *models.MedicalHistory) error
	ListByPatientFunc func(patientID uint) ([]models.MedicalHistory, error)

	Created []models.MedicalHistory
}

func (m *MockMedicalHistoryRepository) Create(record *models.MedicalHistory) error {
	m.Created = append(m.Created, *record)
	if m.CreateFunc != nil {
		return m.CreateFunc(record)
	}
	return nil
}

func (m *MockMedicalHistoryRepository) ListByPatient(patientID uint) ([]models.MedicalHistory, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(patientID)
	}
	return nil, errors.New("ListByPatientFunc not implemented in mock")
}

// --- MockDoctorRepository ---
var _ repositories.DoctorRepository = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	GetByIDFunc     func(id uint) (*models.Doctor, error)
	GetByUserIDFunc func(userID uint) (*models.Doctor, error)
	SearchFunc      func(specialization string) ([]models.Doctor, error)
}

func (m *MockDoctorRepository) GetByID(id uint) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockDoctorRepository) GetByUserID(userID uint) (*models.Doctor, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(userID)
	}
	return nil, errors.New("GetByUserIDFunc not implemented in mock")
}

func (m *MockDoctorRepository) Search(specialization string) ([]models.Doctor, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(specialization)
	}
	return nil, errors.New("SearchFunc not implemented in mock")
}

// --- MockPatientRepository ---
var _ repositories.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	GetByIDFunc     func(id uint) (*models.Patient, error)
	GetByUserIDFunc func(userID uint) (*models.Patient, error)
}

func (m *MockPatientRepository) GetByID(id uint) (*models.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) GetByUserID(userID uint) (*models.Patient, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(userID)
	}
	return nil, errors.New("GetByUserIDFunc not implemented in mock")
}

// --- MockSMSSender ---
var _ SMSSender = (*MockSMSSender)(nil)

type sentSMS struct {
	Phone   string
	Message string
}

type MockSMSSender struct {
	SendFunc func(phone, message string) error

	Sent []sentSMS
}

func (m *MockSMSSender) Send(phone, message string) error {
	m.Sent = append(m.Sent, sentSMS{Phone: phone, Message: message})
	if m.SendFunc != nil {
		return m.SendFunc(phone, message)
	}
	return nil
}
