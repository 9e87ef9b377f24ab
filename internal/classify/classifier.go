package classify

import (
	"strings"

	"github.com/BasinLeon/lead-script-generator/internal/config"
	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// Classifier assigns priority tiers and company archetypes to leads.
type Classifier struct {
	// rules holds the keyword lists and size thresholds. Read-only.
	rules config.Ruleset
}

// New creates a Classifier with the given rule set.
func New(rules config.Ruleset) *Classifier {
	return &Classifier{rules: rules}
}

// Classify derives the (priority, archetype) pair for a lead.
func (c *Classifier) Classify(lead model.Lead) model.Classification {
	return model.Classification{
		Priority:  c.priority(lead),
		Archetype: c.archetype(lead),
	}
}

// priority maps the lead's title to a tier. Tiers are checked hottest
// first and the first match wins; leads whose title matches nothing
// (including empty titles) fall through to P3.
func (c *Classifier) priority(lead model.Lead) model.Priority {
	title := strings.ToLower(lead.Title)

	if containsAny(title, c.rules.Priority.P1Keywords) {
		return model.PriorityHot
	}
	if containsAny(title, c.rules.Priority.P2Keywords) {
		return model.PriorityWarm
	}
	return model.PriorityNurture
}

// archetype maps the lead's company to an archetype.
//
// Agency keywords override size thresholds: a 2000-person consultancy
// still gets agency copy, because its buying behavior is service-business
// buying behavior. Otherwise a known employee count decides by threshold,
// and an unknown count falls back to enterprise keywords on the company
// name, then to Mid-Market.
func (c *Classifier) archetype(lead model.Lead) model.Archetype {
	company := strings.ToLower(lead.Company)

	if containsAny(company, c.rules.Archetype.AgencyKeywords) {
		return model.ArchetypeAgency
	}

	if lead.HasEmployees() {
		switch {
		case lead.Employees < c.rules.Archetype.StartupMaxEmployees:
			return model.ArchetypeStartup
		case lead.Employees > c.rules.Archetype.EnterpriseMinEmployees:
			return model.ArchetypeEnterprise
		default:
			return model.ArchetypeMidMarket
		}
	}

	if containsAny(company, c.rules.Archetype.EnterpriseKeywords) {
		return model.ArchetypeEnterprise
	}

	return model.ArchetypeMidMarket
}

// containsAny reports whether s contains any of the keywords.
// s must already be lowercased; keywords are lowercased per comparison
// so user-supplied lists work regardless of their casing.
func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
