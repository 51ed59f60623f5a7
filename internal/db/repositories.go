package db

import "gorm.io/gorm"

type Repositories struct {
	Offices *OfficeRepository
	Doctors *DoctorRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Offices: NewOfficeRepository(database),
		Doctors: NewDoctorRepository(database),
	}
}
