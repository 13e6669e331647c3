package enum

// Template selects the visual style used when rendering a document.
type Template string

const (
	TemplateModern     Template = "modern"
	TemplateClassic    Template = "classic"
	TemplateMinimalist Template = "minimalist"
)

// Valid reports whether the value is a known template.
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateMinimalist:
		return true
	}
	return false
}
