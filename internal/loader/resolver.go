package loader

import "strings"

// Canonical column names of the lead schema.
const (
	ColumnFirstName = "first_name"
	ColumnLastName  = "last_name"
	ColumnCompany   = "company"
	ColumnTitle     = "title"
	ColumnEmail     = "email"
	ColumnLinkedIn  = "linkedin"
	ColumnEmployees = "employees"

	// ColumnName is the combined full-name pseudo-column. When the input
	// has no first_name column, the first whitespace token of this column
	// supplies the first name and the remainder supplies the last name.
	ColumnName = "name"
)

// requiredColumns are the canonical columns every import must resolve.
// first_name is special-cased: either first_name or name must resolve.
var requiredColumns = []string{ColumnCompany, ColumnTitle}

// DefaultAliases returns the built-in alias table mapping canonical column
// names to the header spellings that resolve to them. The canonical name
// itself always matches and does not need to be listed.
func DefaultAliases() map[string][]string {
	return map[string][]string{
		ColumnFirstName: {"firstname", "first name", "first"},
		ColumnLastName:  {"lastname", "last name", "surname", "last"},
		ColumnCompany:   {"company_name", "organization", "organisation", "account", "employer"},
		ColumnTitle:     {"job_title", "position", "role", "job title"},
		ColumnEmail:     {"email_address", "e-mail", "mail"},
		ColumnLinkedIn:  {"linkedin_url", "profile_url", "linkedin profile"},
		ColumnEmployees: {"company_size", "size", "headcount", "employee_count"},
		ColumnName:      {"full_name", "full name", "contact"},
	}
}

// ColumnMap maps canonical column names to their index in the input header.
// Canonical columns with no matching header are absent from the map.
type ColumnMap map[string]int

// Has reports whether the canonical column resolved to an input column.
func (m ColumnMap) Has(canonical string) bool {
	_, ok := m[canonical]
	return ok
}

// Resolver maps arbitrary input headers onto the canonical lead schema.
type Resolver struct {
	// aliasToCanonical maps a normalized header spelling to its canonical
	// column name. Built once at construction.
	aliasToCanonical map[string]string
}

// NewResolver creates a Resolver from the default alias table plus any
// extra aliases (typically from the config file). Extra aliases for a
// canonical column extend the defaults rather than replacing them.
func NewResolver(extraAliases map[string][]string) *Resolver {
	index := make(map[string]string)

	add := func(canonical string, aliases []string) {
		index[normalizeHeader(canonical)] = canonical
		for _, alias := range aliases {
			index[normalizeHeader(alias)] = canonical
		}
	}

	for canonical, aliases := range DefaultAliases() {
		add(canonical, aliases)
	}
	for canonical, aliases := range extraAliases {
		add(canonical, aliases)
	}

	return &Resolver{aliasToCanonical: index}
}

// Resolve maps the input header onto the canonical schema.
// The first header matching a canonical column wins; later duplicates are
// ignored. Returns a MissingColumnError naming the first required canonical
// column that no header matched.
func (r *Resolver) Resolve(header []string) (ColumnMap, error) {
	columns := make(ColumnMap)

	for i, cell := range header {
		canonical, ok := r.aliasToCanonical[normalizeHeader(cell)]
		if !ok {
			continue
		}
		if _, seen := columns[canonical]; seen {
			continue
		}
		columns[canonical] = i
	}

	// first_name is satisfiable by a combined name column.
	if !columns.Has(ColumnFirstName) && !columns.Has(ColumnName) {
		return nil, &MissingColumnError{Column: ColumnFirstName}
	}
	for _, required := range requiredColumns {
		if !columns.Has(required) {
			return nil, &MissingColumnError{Column: required}
		}
	}

	return columns, nil
}

// normalizeHeader canonicalizes a header cell for alias matching:
// lowercase, trimmed, with spaces and hyphens collapsed to underscores.
// A stray UTF-8 BOM is stripped in case the input bypassed the decoding
// reader.
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
