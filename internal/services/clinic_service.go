package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/terraincognita07/clinicmatch/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUnknownSpecialty    = errors.New("unknown specialty")
	ErrSeedDirectoryFailed = errors.New("seed clinic directory failed")
	ErrListOfficesFailed   = errors.New("list offices failed")
	ErrListDoctorsFailed   = errors.New("list doctors failed")
	ErrOfficeNotFound      = errors.New("office not found")
	ErrLoadOfficeFailed    = errors.New("load office failed")
)

type OfficeRepository interface {
	Count() (int64, error)
	ListWithDoctors() ([]models.Office, error)
	FindByIDWithDoctors(officeID uint) (models.Office, error)
	SeedDirectory(doctors []models.Doctor, offices []models.Office) error
}

type DoctorRepository interface {
	ListAll() ([]models.Doctor, error)
}

type ClinicService struct {
	offices OfficeRepository
	doctors DoctorRepository
}

// SpecialtyOffice is an office narrowed to the doctors practising one specialty.
type SpecialtyOffice struct {
	Office    models.Office
	Specialty string
	Doctors   []models.Doctor
}

func NewClinicService(offices OfficeRepository, doctors DoctorRepository) *ClinicService {
	return &ClinicService{offices: offices, doctors: doctors}
}

// EnsureDirectory seeds the default offices and doctors into an empty
// directory. A directory holding any office is left alone.
func (service *ClinicService) EnsureDirectory() error {
	count, err := service.offices.Count()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSeedDirectoryFailed, err)
	}
	if count > 0 {
		return nil
	}

	doctors, offices := DefaultDirectoryRecords()
	if err := service.offices.SeedDirectory(doctors, offices); err != nil {
		return fmt.Errorf("%w: %v", ErrSeedDirectoryFailed, err)
	}
	log.Printf("seeded clinic directory: %d offices, %d doctors", len(offices), len(doctors))
	return nil
}

func (service *ClinicService) ListOffices() ([]models.Office, error) {
	offices, err := service.offices.ListWithDoctors()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListOfficesFailed, err)
	}
	return offices, nil
}

func (service *ClinicService) OfficeByID(officeID uint) (models.Office, error) {
	office, err := service.offices.FindByIDWithDoctors(officeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Office{}, ErrOfficeNotFound
	}
	if err != nil {
		return models.Office{}, fmt.Errorf("%w: %v", ErrLoadOfficeFailed, err)
	}
	return office, nil
}

// OfficesWithSpecialty keeps offices employing at least one doctor who
// practises specialty, in office id order.
func (service *ClinicService) OfficesWithSpecialty(specialty string) ([]SpecialtyOffice, error) {
	canonical, ok := CanonicalSpecialty(specialty)
	if !ok {
		return nil, ErrUnknownSpecialty
	}

	offices, err := service.ListOffices()
	if err != nil {
		return nil, err
	}

	result := make([]SpecialtyOffice, 0, len(offices))
	for _, office := range offices {
		doctors := SpecialtyDoctorsInOffice(office, canonical)
		if len(doctors) == 0 {
			continue
		}
		result = append(result, SpecialtyOffice{
			Office:    office,
			Specialty: canonical,
			Doctors:   doctors,
		})
	}
	return result, nil
}

func (service *ClinicService) DoctorsWithSpecialty(specialty string) ([]models.Doctor, error) {
	canonical, ok := CanonicalSpecialty(specialty)
	if !ok {
		return nil, ErrUnknownSpecialty
	}

	doctors, err := service.doctors.ListAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListDoctorsFailed, err)
	}

	result := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.Practises(canonical) {
			result = append(result, doctor)
		}
	}
	return result, nil
}

func SpecialtyDoctorsInOffice(office models.Office, specialty string) []models.Doctor {
	doctors := make([]models.Doctor, 0, len(office.Doctors))
	for _, doctor := range office.Doctors {
		if doctor != nil && doctor.Practises(specialty) {
			doctors = append(doctors, *doctor)
		}
	}
	return doctors
}

func DefaultDirectoryRecords() ([]models.Doctor, []models.Office) {
	seedDoctors := models.DefaultSeedDoctors()
	doctors := make([]models.Doctor, 0, len(seedDoctors))
	byID := make(map[uint]*models.Doctor, len(seedDoctors))
	for _, seed := range seedDoctors {
		doctor := models.Doctor{
			ID:          seed.ID,
			Name:        seed.Name,
			Email:       seed.Email,
			Specialties: models.JoinSpecialties(seed.Specialties),
		}
		doctors = append(doctors, doctor)
		byID[seed.ID] = &doctor
	}

	seedOffices := models.DefaultSeedOffices()
	offices := make([]models.Office, 0, len(seedOffices))
	for _, seed := range seedOffices {
		office := models.Office{ID: seed.ID, Name: seed.Name, Manager: seed.Manager}
		for _, doctorID := range seed.DoctorIDs {
			if doctor, ok := byID[doctorID]; ok {
				office.Doctors = append(office.Doctors, doctor)
			}
		}
		offices = append(offices, office)
	}
	return doctors, offices
}
