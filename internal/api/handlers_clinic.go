package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/clinicmatch/internal/services"
)

// SubmitSpecialty hands the typed specialty over to the clinic picker. A
// blank or unrecognised specialty sends the user back with an error.
func (handler *Handler) SubmitSpecialty(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.FormValue(specialtyFieldName))
	specialty, ok := services.CanonicalSpecialty(raw)
	if raw == "" || !ok {
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusBadRequest, translateMessage(currentMessages(c), "error.select_specialty"))
		}
		return handler.redirectWithError(c, "/", "error.select_specialty")
	}

	if err := handler.setSelectionCookie(c, specialty); err != nil {
		log.Printf("seal specialty selection: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to store selection")
	}
	return redirectOrHTMX(c, "/select-clinic")
}

func (handler *Handler) ShowSelectClinic(c *fiber.Ctx) error {
	specialty, ok := handler.selectedSpecialty(c)
	if !ok {
		handler.clearSelectionCookie(c)
		return handler.redirectWithError(c, "/", "error.selection_expired")
	}

	messages := currentMessages(c)
	offices, err := handler.clinicService.OfficesWithSpecialty(specialty)
	errorMessage := ""
	if err != nil {
		log.Printf("list offices for %s: %v", specialty, err)
		offices = nil
		errorMessage = translateMessage(messages, "error.clinics_unavailable")
	}

	return handler.render(c, "select_clinic", fiber.Map{
		"Title":        localizedPageTitle(messages, "meta.title.select_clinic", "Clinic Match | Choose a clinic"),
		"Specialty":    specialty,
		"Offices":      offices,
		"ErrorMessage": errorMessage,
	})
}
