package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowChecker)
	app.Get("/index", handler.ShowChecker)
	app.Post("/specialty", handler.SelectSpecialty)
	app.Post("/symptoms", handler.EvaluateSymptoms)
	app.Post("/reset", handler.ResetChecker)
	app.Post("/post-index", handler.SubmitSpecialty)
	app.Get("/select-clinic", handler.ShowSelectClinic)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/specialties", handler.GetSpecialties)
	api.Get("/symptoms", handler.GetSymptomRules)
	api.Post("/recommendations", handler.PostRecommendations)
	api.Get("/offices", handler.GetOffices)
	api.Get("/offices/:id", handler.GetOffice)
	api.Get("/doctors", handler.GetDoctors)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
