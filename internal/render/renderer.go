package render

import (
	"regexp"
	"strings"

	"github.com/BasinLeon/lead-script-generator/internal/config"
	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// placeholderPattern matches {{placeholder}} references in templates.
var placeholderPattern = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

// truncationSuffix is appended when a LinkedIn message is cut at the cap.
const truncationSuffix = "..."

// Renderer fills outreach templates with lead fields.
type Renderer struct {
	// templates is the (archetype -> TemplateSet) lookup table.
	templates map[model.Archetype]TemplateSet

	// profiles supplies the per-archetype pain point.
	profiles config.Profiles

	// senderName and valueProp are run-level substitutions shared by
	// every lead.
	senderName string
	valueProp  string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplates replaces the built-in template table.
func WithTemplates(templates map[model.Archetype]TemplateSet) Option {
	return func(r *Renderer) {
		r.templates = templates
	}
}

// WithProfiles replaces the built-in archetype profiles.
func WithProfiles(profiles config.Profiles) Option {
	return func(r *Renderer) {
		r.profiles = profiles
	}
}

// New creates a Renderer for the given sender identity.
func New(senderName, valueProp string, opts ...Option) *Renderer {
	r := &Renderer{
		templates:  DefaultTemplates(),
		profiles:   config.DefaultProfiles(),
		senderName: senderName,
		valueProp:  valueProp,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render produces the script triple for a classified lead.
// Returns a RenderError when a template references a placeholder with no
// corresponding field; callers treat this as a per-row failure.
func (r *Renderer) Render(lead model.Lead, cls model.Classification) (*model.ScriptOutput, error) {
	set, ok := r.templates[cls.Archetype]
	if !ok {
		// Unknown archetypes get the middle-ground copy.
		set = r.templates[model.ArchetypeMidMarket]
	}

	fields := r.fieldValues(lead, cls)

	subject, err := substitute(set.Subject(cls.Priority), fields)
	if err != nil {
		return nil, err
	}

	body, err := substitute(set.Body, fields)
	if err != nil {
		return nil, err
	}

	linkedin, err := substitute(set.LinkedIn, fields)
	if err != nil {
		return nil, err
	}

	return &model.ScriptOutput{
		Subject:         subject,
		Body:            body,
		LinkedInMessage: capLinkedIn(linkedin),
	}, nil
}

// fieldValues builds the placeholder substitution map for a lead.
// Every supported placeholder has an entry; optional fields may map to
// empty strings, which render as-is rather than erroring.
func (r *Renderer) fieldValues(lead model.Lead, cls model.Classification) map[string]string {
	return map[string]string{
		"first_name":  lead.FirstName,
		"last_name":   lead.LastName,
		"full_name":   lead.FullName(),
		"company":     lead.Company,
		"title":       lead.Title,
		"email":       lead.Email,
		"linkedin":    lead.LinkedIn,
		"sender_name": r.senderName,
		"value_prop":  r.valueProp,
		"pain_point":  r.profiles.Get(cls.Archetype).LeadPainPoint(),
	}
}

// substitute replaces every {{placeholder}} in the template with its field
// value. A placeholder absent from the field map fails the whole template
// with a RenderError.
func substitute(template string, fields map[string]string) (string, error) {
	// Validate all references before replacing anything, so a template
	// either renders completely or not at all.
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if _, ok := fields[match[1]]; !ok {
			return "", &RenderError{Placeholder: match[1]}
		}
	}

	result := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(m, "{{"), "}}")
		return fields[name]
	})

	return result, nil
}

// capLinkedIn enforces the 300-character LinkedIn limit with rune-safe
// truncation. Messages at or under the cap pass through unchanged.
func capLinkedIn(msg string) string {
	runes := []rune(msg)
	if len(runes) <= model.LinkedInMessageMaxLen {
		return msg
	}
	keep := model.LinkedInMessageMaxLen - len(truncationSuffix) - 2
	return string(runes[:keep]) + truncationSuffix
}
