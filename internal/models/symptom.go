package models

// SymptomRule binds one symptom checkbox to the sentence region and hint
// region it writes when checked. No two rules share an output or hint element.
type SymptomRule struct {
	CheckboxID string `json:"checkbox_id"`
	OutputID   string `json:"output_id"`
	HintID     string `json:"hint_id"`
	Phrase     string `json:"phrase"`
	Specialty  string `json:"specialty"`
}

func DefaultSymptomRules() []SymptomRule {
	return []SymptomRule{
		{CheckboxID: "inlineCheckbox1", OutputID: "symptom", HintID: "br0", Phrase: "shortness of breath", Specialty: "Cardiology"},
		{CheckboxID: "inlineCheckbox2", OutputID: "symptom1", HintID: "br1", Phrase: "chest pain/tightness", Specialty: "Cardiology"},
		{CheckboxID: "inlineCheckbox3", OutputID: "symptom2", HintID: "br2", Phrase: "acne", Specialty: "Dermatology"},
		{CheckboxID: "inlineCheckbox5", OutputID: "symptom3", HintID: "br3", Phrase: "dry/itchy skin", Specialty: "Dermatology"},
		{CheckboxID: "inlineCheckbox6", OutputID: "symptom4", HintID: "br4", Phrase: "thyroid/hormone concerns", Specialty: "Endocrinology"},
		{CheckboxID: "inlineCheckbox7", OutputID: "symptom5", HintID: "br5", Phrase: "mild fever", Specialty: "Family Medicine"},
		{CheckboxID: "inlineCheckbox8", OutputID: "symptom6", HintID: "br6", Phrase: "digestive concerns", Specialty: "Gastroenterology"},
		{CheckboxID: "inlineCheckbox9", OutputID: "symptom7", HintID: "br7", Phrase: "headaches", Specialty: "Neurology"},
		{CheckboxID: "inlineCheckbox10", OutputID: "symptom8", HintID: "br8", Phrase: "stomach pain", Specialty: "Gastroenterology"},
		{CheckboxID: "inlineCheckbox11", OutputID: "symptom9", HintID: "br9", Phrase: "dizziness", Specialty: "Neurology"},
		{CheckboxID: "inlineCheckbox12", OutputID: "symptom10", HintID: "br10", Phrase: "blurry vision", Specialty: "Ophthalmology"},
		{CheckboxID: "inlineCheckbox13", OutputID: "symptom11", HintID: "br11", Phrase: "child health concerns", Specialty: "Pediatrics"},
		{CheckboxID: "inlineCheckbox14", OutputID: "symptom12", HintID: "br12", Phrase: "feet/ankle injury", Specialty: "Podiatry"},
		{CheckboxID: "inlineCheckbox15", OutputID: "symptom13", HintID: "br13", Phrase: "insomnia", Specialty: "Sleep Medicine"},
	}
}

func (rule SymptomRule) Sentence() string {
	return "Based on your " + rule.Phrase + ", we recommend " + rule.Specialty + "."
}
