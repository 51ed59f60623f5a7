package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/clinicmatch/internal/models"
	"github.com/terraincognita07/clinicmatch/internal/services"
)

const (
	selectorFieldName     = "selectForm00"
	specialtyFieldName    = "specialtyInput"
	revealedFieldPrefix   = "shown_"
	resultsShownFieldName = "results_shown"
)

// parseCheckerState reads the posted form back into page state. A dropdown
// value that is not an integer is treated as the placeholder.
func parseCheckerState(c *fiber.Ctx) services.CheckerState {
	state := services.CheckerState{
		SelectedIndex: parseSelectorIndex(c.FormValue(selectorFieldName)),
		Specialty:     strings.TrimSpace(c.FormValue(specialtyFieldName)),
		Checked:       map[string]bool{},
		Revealed:      map[string]bool{},
		ResultsShown:  c.FormValue(resultsShownFieldName) != "",
	}
	for _, rule := range models.DefaultSymptomRules() {
		if c.FormValue(rule.CheckboxID) != "" {
			state.Checked[rule.CheckboxID] = true
		}
		if c.FormValue(revealedFieldPrefix+rule.OutputID) != "" {
			state.Revealed[rule.OutputID] = true
		}
	}
	return state
}

func parseSelectorIndex(raw string) int {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return models.SpecialtyPlaceholderIndex
	}
	return index
}

func buildCheckerViewData(messages map[string]string, page *services.CheckerPage, errorMessage string) fiber.Map {
	return fiber.Map{
		"Title":                  localizedPageTitle(messages, "meta.title.checker", "Clinic Match | Find a specialty"),
		"Page":                   page,
		"Specialties":            models.DefaultSpecialties(),
		"RecommendedSpecialties": page.RecommendedSpecialties(),
		"ErrorMessage":           errorMessage,
		"SelectorField":          selectorFieldName,
		"SpecialtyField":         specialtyFieldName,
		"RevealedPrefix":         revealedFieldPrefix,
		"ResultsShownField":      resultsShownFieldName,
	}
}

func recommendationResponseFromPage(page *services.CheckerPage) recommendationResponse {
	revealed := page.RevealedSlots()
	views := make([]recommendationView, 0, len(revealed))
	for _, slot := range revealed {
		views = append(views, recommendationView{
			CheckboxID: slot.Rule.CheckboxID,
			OutputID:   slot.Rule.OutputID,
			HintID:     slot.Rule.HintID,
			Sentence:   slot.Sentence,
			Specialty:  slot.Rule.Specialty,
		})
	}
	return recommendationResponse{
		Specialty:              page.Specialty,
		ResultsShown:           page.ResultsShown(),
		Recommendations:        views,
		RecommendedSpecialties: page.RecommendedSpecialties(),
	}
}
