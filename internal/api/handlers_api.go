package api

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/clinicmatch/internal/models"
	"github.com/terraincognita07/clinicmatch/internal/services"
)

func (handler *Handler) GetSpecialties(c *fiber.Ctx) error {
	return c.JSON(models.DefaultSpecialties())
}

func (handler *Handler) GetSymptomRules(c *fiber.Ctx) error {
	rules := models.DefaultSymptomRules()
	result := make([]symptomRuleView, 0, len(rules))
	for _, rule := range rules {
		result = append(result, symptomRuleView{
			CheckboxID: rule.CheckboxID,
			OutputID:   rule.OutputID,
			HintID:     rule.HintID,
			Phrase:     rule.Phrase,
			Specialty:  rule.Specialty,
			Sentence:   rule.Sentence(),
		})
	}
	return c.JSON(result)
}

// PostRecommendations runs the selector and evaluator against a fresh page.
// Unknown checkbox ids are ignored.
func (handler *Handler) PostRecommendations(c *fiber.Ctx) error {
	request := recommendationRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	checked := make(map[string]bool, len(request.Symptoms))
	for _, id := range request.Symptoms {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			checked[trimmed] = true
		}
	}

	page := services.NewCheckerPage()
	page.ApplySpecialtySelection(request.SpecialtyIndex)
	page.EvaluateSymptoms(checked)
	return c.JSON(recommendationResponseFromPage(page))
}

func (handler *Handler) GetOffices(c *fiber.Ctx) error {
	specialty := strings.TrimSpace(c.Query("specialty"))
	if specialty == "" {
		offices, err := handler.clinicService.ListOffices()
		if err != nil {
			log.Printf("list offices: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "failed to load offices")
		}
		result := make([]officeView, 0, len(offices))
		for _, office := range offices {
			result = append(result, newOfficeView(office, dereferenceDoctors(office.Doctors)))
		}
		return c.JSON(result)
	}

	offices, err := handler.clinicService.OfficesWithSpecialty(specialty)
	if errors.Is(err, services.ErrUnknownSpecialty) {
		return apiError(c, fiber.StatusBadRequest, "unknown specialty")
	}
	if err != nil {
		log.Printf("list offices for %s: %v", specialty, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load offices")
	}

	result := make([]officeView, 0, len(offices))
	for _, entry := range offices {
		result = append(result, newOfficeView(entry.Office, entry.Doctors))
	}
	return c.JSON(result)
}

func (handler *Handler) GetOffice(c *fiber.Ctx) error {
	officeID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || officeID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid office id")
	}

	office, err := handler.clinicService.OfficeByID(uint(officeID))
	if errors.Is(err, services.ErrOfficeNotFound) {
		return apiError(c, fiber.StatusNotFound, "office not found")
	}
	if err != nil {
		log.Printf("load office %d: %v", officeID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load office")
	}
	return c.JSON(newOfficeView(office, dereferenceDoctors(office.Doctors)))
}

// GetDoctors lists doctors practising the requested specialty, which is
// required.
func (handler *Handler) GetDoctors(c *fiber.Ctx) error {
	doctors, err := handler.clinicService.DoctorsWithSpecialty(c.Query("specialty"))
	if errors.Is(err, services.ErrUnknownSpecialty) {
		return apiError(c, fiber.StatusBadRequest, "unknown specialty")
	}
	if err != nil {
		log.Printf("list doctors: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load doctors")
	}

	result := make([]doctorView, 0, len(doctors))
	for _, doctor := range doctors {
		result = append(result, newDoctorView(doctor))
	}
	return c.JSON(result)
}

func newOfficeView(office models.Office, doctors []models.Doctor) officeView {
	view := officeView{
		ID:      office.ID,
		Name:    office.Name,
		Manager: office.Manager,
		Doctors: make([]doctorView, 0, len(doctors)),
	}
	for _, doctor := range doctors {
		view.Doctors = append(view.Doctors, newDoctorView(doctor))
	}
	return view
}

func newDoctorView(doctor models.Doctor) doctorView {
	return doctorView{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Email:       doctor.Email,
		Specialties: doctor.SpecialtyList(),
	}
}

func dereferenceDoctors(doctors []*models.Doctor) []models.Doctor {
	result := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor != nil {
			result = append(result, *doctor)
		}
	}
	return result
}
