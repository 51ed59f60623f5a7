package api

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/terraincognita07/clinicmatch/internal/db"
	"github.com/terraincognita07/clinicmatch/internal/i18n"
	"github.com/terraincognita07/clinicmatch/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	cookieSecure  bool
	i18n          *i18n.Manager
	templates     map[string]*template.Template
	partials      map[string]*template.Template
	selections    *selectionCookieCodec
	repositories  *db.Repositories
	clinicService *services.ClinicService
}

func NewHandler(database *gorm.DB, secret string, templateDir string, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	selections, err := newSelectionCookieCodec([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("init selection cookie codec: %w", err)
	}

	funcMap := newTemplateFuncMap()
	templates, err := parsePageTemplates(templateDir, funcMap, pageTemplates)
	if err != nil {
		return nil, err
	}
	partials, err := parsePartialTemplates(templateDir, funcMap, partialTemplateFiles)
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		templates:    templates,
		partials:     partials,
		selections:   selections,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.clinicService = services.NewClinicService(handler.repositories.Offices, handler.repositories.Doctors)
	return handler
}

// ClinicService exposes the directory service so startup can seed it.
func (handler *Handler) ClinicService() *services.ClinicService {
	return handler.clinicService
}
