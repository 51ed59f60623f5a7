package api

type recommendationRequest struct {
	SpecialtyIndex int      `json:"specialty_index"`
	Symptoms       []string `json:"symptoms"`
}

type recommendationView struct {
	CheckboxID string `json:"checkbox_id"`
	OutputID   string `json:"output_id"`
	HintID     string `json:"hint_id"`
	Sentence   string `json:"sentence"`
	Specialty  string `json:"specialty"`
}

type recommendationResponse struct {
	Specialty              string               `json:"specialty"`
	ResultsShown           bool                 `json:"results_shown"`
	Recommendations        []recommendationView `json:"recommendations"`
	RecommendedSpecialties []string             `json:"recommended_specialties"`
}

type symptomRuleView struct {
	CheckboxID string `json:"checkbox_id"`
	OutputID   string `json:"output_id"`
	HintID     string `json:"hint_id"`
	Phrase     string `json:"phrase"`
	Specialty  string `json:"specialty"`
	Sentence   string `json:"sentence"`
}

type officeView struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Manager string       `json:"manager"`
	Doctors []doctorView `json:"doctors"`
}

type doctorView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Specialties []string `json:"specialties"`
}
