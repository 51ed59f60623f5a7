package models

import "strings"

type Office struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Manager string    `gorm:"not null" json:"manager"`
	Doctors []*Doctor `gorm:"many2many:office_doctors;" json:"doctors"`
}

// Doctor.Specialties is stored as a comma separated list; use
// SpecialtyList and Practises instead of reading it directly.
type Doctor struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	Specialties string `gorm:"not null" json:"specialties"`
}

func JoinSpecialties(specialties []string) string {
	cleaned := make([]string, 0, len(specialties))
	for _, specialty := range specialties {
		if trimmed := strings.TrimSpace(specialty); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}

func (doctor Doctor) SpecialtyList() []string {
	if strings.TrimSpace(doctor.Specialties) == "" {
		return []string{}
	}
	parts := strings.Split(doctor.Specialties, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (doctor Doctor) Practises(specialty string) bool {
	target := strings.TrimSpace(specialty)
	for _, candidate := range doctor.SpecialtyList() {
		if strings.EqualFold(candidate, target) {
			return true
		}
	}
	return false
}

type SeedDoctor struct {
	ID          uint
	Name        string
	Email       string
	Specialties []string
}

type SeedOffice struct {
	ID        uint
	Name      string
	Manager   string
	DoctorIDs []uint
}

func DefaultSeedDoctors() []SeedDoctor {
	return []SeedDoctor{
		{ID: 1, Name: "Dr. Bill Nye", Email: "Bill@gmail.com", Specialties: []string{"Cardiology", "Dermatology", "Endocrinology"}},
		{ID: 2, Name: "Dr. Janet Whitlock", Email: "Janet@gmail.com", Specialties: []string{"Family Medicine", "Gastroenterology", "Neurology"}},
		{ID: 3, Name: "Dr. Phil McGraw", Email: "Phil@gmail.com", Specialties: []string{"Ophthalmology", "Pediatrics", "Podiatry"}},
		{ID: 4, Name: "Dr. Gustavo Fring", Email: "Gus@gmail.com", Specialties: []string{"Dermatology", "Neurology"}},
		{ID: 5, Name: "Dr. Eduardo Gonzalez", Email: "Eduardo@gmail.com", Specialties: []string{"Cardiology", "Endocrinology", "Family Medicine", "Gastroenterology", "Pediatrics", "Podiatry", "Sleep Medicine"}},
		{ID: 6, Name: "Dr. Aisha Amari", Email: "Aisha@gmail.com", Specialties: []string{"Dermatology", "Neurology", "Ophthalmology", "Sleep Medicine"}},
		{ID: 7, Name: "Dr. Deborah Barlowe", Email: "Deborah@gmail.com", Specialties: []string{"Dermatology"}},
		{ID: 8, Name: "Dr. Jones Bones", Email: "Jones@gmail.com", Specialties: []string{"Dermatology", "Pediatrics", "Sleep Medicine"}},
	}
}

func DefaultSeedOffices() []SeedOffice {
	return []SeedOffice{
		{ID: 1, Name: "Northdale", Manager: "Wilson", DoctorIDs: []uint{1, 2}},
		{ID: 2, Name: "Eastview", Manager: "Melody", DoctorIDs: []uint{3, 4, 5, 8}},
		{ID: 3, Name: "Southtown", Manager: "Clair", DoctorIDs: []uint{6, 7}},
		{ID: 4, Name: "Westshire", Manager: "Brandy", DoctorIDs: []uint{1}},
	}
}
