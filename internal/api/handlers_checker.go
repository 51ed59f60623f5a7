package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/clinicmatch/internal/services"
)

func (handler *Handler) ShowChecker(c *fiber.Ctx) error {
	messages := currentMessages(c)
	flash := handler.popFlashCookie(c)

	errorMessage := ""
	if flash.ErrorKey != "" {
		errorMessage = translateMessage(messages, flash.ErrorKey)
	}
	return handler.render(c, "checker", buildCheckerViewData(messages, services.NewCheckerPage(), errorMessage))
}

// SelectSpecialty copies the dropdown choice into the specialty field. HTMX
// callers get only the field back.
func (handler *Handler) SelectSpecialty(c *fiber.Ctx) error {
	page := services.RestoreCheckerPage(parseCheckerState(c))
	page.ApplySpecialtySelection(page.SelectedIndex)

	messages := currentMessages(c)
	data := buildCheckerViewData(messages, page, "")
	if isHTMX(c) {
		return handler.renderPartial(c, "specialty_field_partial", data)
	}
	return handler.render(c, "checker", data)
}

func (handler *Handler) EvaluateSymptoms(c *fiber.Ctx) error {
	state := parseCheckerState(c)
	page := services.RestoreCheckerPage(state)
	page.EvaluateSymptoms(state.Checked)

	return handler.render(c, "checker", buildCheckerViewData(currentMessages(c), page, ""))
}

// ResetChecker throws the whole form away by reloading the page.
func (handler *Handler) ResetChecker(c *fiber.Ctx) error {
	if isHTMX(c) {
		c.Set("HX-Refresh", "true")
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
