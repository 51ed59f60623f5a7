package api

import (
	"html/template"

	"github.com/terraincognita07/clinicmatch/internal/models"
)

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t":            translateMessage,
		"symptomLabel": templateSymptomLabel,
		"languageHref": templateLanguageHref,
	}
}

func templateSymptomLabel(messages map[string]string, rule models.SymptomRule) string {
	key := "symptom." + rule.CheckboxID
	if label := translateMessage(messages, key); label != key {
		return label
	}
	return rule.Phrase
}

func templateLanguageHref(language string, currentPath string) string {
	return "/lang/" + language + "?next=" + template.URLQueryEscaper(sanitizeRedirectPath(currentPath, "/"))
}
