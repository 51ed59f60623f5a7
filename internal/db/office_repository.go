package db

import (
	"github.com/terraincognita07/clinicmatch/internal/models"
	"gorm.io/gorm"
)

type OfficeRepository struct {
	database *gorm.DB
}

func NewOfficeRepository(database *gorm.DB) *OfficeRepository {
	return &OfficeRepository{database: database}
}

func (repo *OfficeRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Office{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *OfficeRepository) ListWithDoctors() ([]models.Office, error) {
	offices := make([]models.Office, 0)
	if err := repo.database.
		Preload("Doctors", func(tx *gorm.DB) *gorm.DB { return tx.Order("doctors.id ASC") }).
		Order("id ASC").
		Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

func (repo *OfficeRepository) FindByIDWithDoctors(officeID uint) (models.Office, error) {
	office := models.Office{}
	if err := repo.database.
		Preload("Doctors", func(tx *gorm.DB) *gorm.DB { return tx.Order("doctors.id ASC") }).
		Where("id = ?", officeID).
		First(&office).Error; err != nil {
		return models.Office{}, err
	}
	return office, nil
}

// SeedDirectory writes doctors first so the office_doctors rows created
// alongside each office always reference an existing doctor.
func (repo *OfficeRepository) SeedDirectory(doctors []models.Doctor, offices []models.Office) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if len(doctors) > 0 {
			if err := tx.Create(&doctors).Error; err != nil {
				return err
			}
		}
		for index := range offices {
			if err := tx.Create(&offices[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
