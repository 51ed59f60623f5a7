package db

import (
	"github.com/terraincognita07/clinicmatch/internal/models"
	"gorm.io/gorm"
)

type DoctorRepository struct {
	database *gorm.DB
}

func NewDoctorRepository(database *gorm.DB) *DoctorRepository {
	return &DoctorRepository{database: database}
}

func (repo *DoctorRepository) ListAll() ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	if err := repo.database.Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}
