package email

import (
	"embed"
	"html/template"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateQuoteReceived corresponds to templates/quote_received.html
	TemplateQuoteReceived Template = "quote_received"

	// TemplateContactReceived corresponds to templates/contact_received.html
	TemplateContactReceived Template = "contact_received"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates holds every embedded template, parsed once at startup.
// A malformed template is a build artifact problem, so panicking via
// template.Must is the right failure mode.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
