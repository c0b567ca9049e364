package constants

// CV template selectors. Closed set; unknown selectors fall back to modern.
const (
	TemplateModern       = "modern"
	TemplateClassic      = "classic"
	TemplateCreative     = "creative"
	TemplateMinimal      = "minimal"
	TemplateProfessional = "professional"
)

const DefaultTemplate = TemplateModern

var CVTemplates = []string{
	TemplateModern,
	TemplateClassic,
	TemplateCreative,
	TemplateMinimal,
	TemplateProfessional,
}

// IsValidTemplate reports whether name is one of the known CV templates.
func IsValidTemplate(name string) bool {
	for _, t := range CVTemplates {
		if t == name {
			return true
		}
	}
	return false
}

// ResolveTemplate maps a selector to the layout that renders it:
// professional shares the classic layout, creative shares modern, and
// anything unknown falls back to the default.
func ResolveTemplate(name string) string {
	switch name {
	case TemplateClassic, TemplateProfessional:
		return TemplateClassic
	case TemplateMinimal:
		return TemplateMinimal
	case TemplateModern, TemplateCreative:
		return TemplateModern
	default:
		return DefaultTemplate
	}
}
