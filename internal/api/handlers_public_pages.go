package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)
	return redirectOrHTMX(c, sanitizeRedirectPath(c.Query("next"), "/"))
}
