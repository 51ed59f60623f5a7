package services

import (
	"strings"

	"github.com/terraincognita07/clinicmatch/internal/models"
)

const (
	HintClassHidden    = "d-none"
	HintClassRevealed  = ""
	ResultsClassHidden = "d-none"
	ResultsClassShown  = "vh-100 gradient-custom"
)

var (
	specialtyByIndex = buildSpecialtyIndex(models.DefaultSpecialties())
	knownSpecialties = buildSpecialtySet(models.DefaultSpecialties())
)

// SymptomSlot is the rendered state of one symptom rule: its checkbox, its
// sentence region and its hint region.
type SymptomSlot struct {
	Rule      models.SymptomRule
	Checked   bool
	Sentence  string
	HintClass string
}

func (slot SymptomSlot) Revealed() bool {
	return slot.HintClass != HintClassHidden
}

// CheckerPage is the transient form state of one request. It is never shared
// between requests.
type CheckerPage struct {
	SelectedIndex int
	Specialty     string
	Slots         []SymptomSlot
	ResultsClass  string
}

func NewCheckerPage() *CheckerPage {
	rules := models.DefaultSymptomRules()
	slots := make([]SymptomSlot, 0, len(rules))
	for _, rule := range rules {
		slots = append(slots, SymptomSlot{Rule: rule, HintClass: HintClassHidden})
	}
	return &CheckerPage{
		SelectedIndex: models.SpecialtyPlaceholderIndex,
		Slots:         slots,
		ResultsClass:  ResultsClassHidden,
	}
}

// CheckerState is what a rendered form posts back: the host-owned page state
// a browser would have kept between user actions.
type CheckerState struct {
	SelectedIndex int
	Specialty     string
	Checked       map[string]bool
	Revealed      map[string]bool
	ResultsShown  bool
}

// RestoreCheckerPage rebuilds a page from posted state. Revealed is keyed by
// output element id; a revealed slot always holds its rule's sentence since
// that is the only value ever written there.
func RestoreCheckerPage(state CheckerState) *CheckerPage {
	page := NewCheckerPage()
	page.SelectedIndex = state.SelectedIndex
	page.Specialty = state.Specialty
	for index := range page.Slots {
		slot := &page.Slots[index]
		slot.Checked = state.Checked[slot.Rule.CheckboxID]
		if state.Revealed[slot.Rule.OutputID] {
			slot.Sentence = slot.Rule.Sentence()
			slot.HintClass = HintClassRevealed
		}
	}
	if state.ResultsShown {
		page.ResultsClass = ResultsClassShown
	}
	return page
}

// SpecialtyForIndex resolves a dropdown index. The placeholder and unknown
// indices report false.
func SpecialtyForIndex(index int) (string, bool) {
	name, ok := specialtyByIndex[index]
	return name, ok
}

// CanonicalSpecialty returns the catalogue spelling of name.
func CanonicalSpecialty(name string) (string, bool) {
	canonical, ok := knownSpecialties[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// ApplySpecialtySelection writes the resolved specialty into the specialty
// field. Unresolvable indices leave the field untouched.
func (page *CheckerPage) ApplySpecialtySelection(index int) bool {
	page.SelectedIndex = index
	name, ok := SpecialtyForIndex(index)
	if !ok {
		return false
	}
	page.Specialty = name
	return true
}

// EvaluateSymptoms visits every rule once. Checked rules write their sentence
// and reveal their hint; unchecked rules keep whatever they held. The results
// container is shown even when nothing was checked.
func (page *CheckerPage) EvaluateSymptoms(checked map[string]bool) int {
	revealed := 0
	for index := range page.Slots {
		slot := &page.Slots[index]
		slot.Checked = checked[slot.Rule.CheckboxID]
		if !slot.Checked {
			continue
		}
		slot.Sentence = slot.Rule.Sentence()
		slot.HintClass = HintClassRevealed
		revealed++
	}
	page.ResultsClass = ResultsClassShown
	return revealed
}

func (page *CheckerPage) ResultsShown() bool {
	return page.ResultsClass == ResultsClassShown
}

func (page *CheckerPage) RevealedSlots() []SymptomSlot {
	result := make([]SymptomSlot, 0, len(page.Slots))
	for _, slot := range page.Slots {
		if slot.Revealed() {
			result = append(result, slot)
		}
	}
	return result
}

// RecommendedSpecialties lists the distinct specialties of revealed slots in
// catalogue order.
func (page *CheckerPage) RecommendedSpecialties() []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, slot := range page.RevealedSlots() {
		if _, ok := seen[slot.Rule.Specialty]; ok {
			continue
		}
		seen[slot.Rule.Specialty] = struct{}{}
		result = append(result, slot.Rule.Specialty)
	}
	return result
}

func buildSpecialtyIndex(options []models.SpecialtyOption) map[int]string {
	index := make(map[int]string, len(options))
	for _, option := range options {
		index[option.Index] = option.Name
	}
	return index
}

func buildSpecialtySet(options []models.SpecialtyOption) map[string]string {
	set := make(map[string]string, len(options))
	for _, option := range options {
		set[strings.ToLower(option.Name)] = option.Name
	}
	return set
}
