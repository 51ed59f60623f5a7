package api

var pageTemplates = []string{
	"checker",
	"select_clinic",
	"not_found",
}

var partialTemplateFiles = []string{"specialty_field_partial.html"}
