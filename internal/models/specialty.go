package models

// SpecialtyOption is one entry of the specialty dropdown. Index 0 is the
// placeholder option and never appears in the catalogue.
type SpecialtyOption struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

const SpecialtyPlaceholderIndex = 0

func DefaultSpecialties() []SpecialtyOption {
	return []SpecialtyOption{
		{Index: 1, Name: "Cardiology"},
		{Index: 2, Name: "Dermatology"},
		{Index: 3, Name: "Endocrinology"},
		{Index: 4, Name: "Family Medicine"},
		{Index: 5, Name: "Gastroenterology"},
		{Index: 6, Name: "Neurology"},
		{Index: 7, Name: "Ophthalmology"},
		{Index: 8, Name: "Pediatrics"},
		{Index: 9, Name: "Podiatry"},
		{Index: 10, Name: "Sleep Medicine"},
	}
}
