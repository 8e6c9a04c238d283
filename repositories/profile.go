package repositories

import (
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-booking/models"
)

type GormDoctorRepository struct {
	db *gorm.DB
}

var _ DoctorRepository = (*GormDoctorRepository)(nil)

func NewDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) GetByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.Preload("User").First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *GormDoctorRepository) GetByUserID(userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *GormDoctorRepository) Search(specialization string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	query := r.db.Preload("User")
	if specialization != "" {
		query = query.Where("specialization ILIKE ?", "%"+specialization+"%")
	}
	err := query.Find(&doctors).Error
	return doctors, err
}

type GormPatientRepository struct {
	db *gorm.DB
}

var _ PatientRepository = (*GormPatientRepository)(nil)

func NewPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

func (r *GormPatientRepository) GetByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Preload("User").First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *GormPatientRepository) GetByUserID(userID uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}
