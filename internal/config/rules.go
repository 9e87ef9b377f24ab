package config

// Default archetype size thresholds.
// Companies below the startup maximum are startups; companies above the
// enterprise minimum are enterprises; everything between is mid-market.
const (
	// DefaultStartupMaxEmployees is the exclusive upper bound for the
	// startup archetype: employees < 50 classifies as startup.
	DefaultStartupMaxEmployees = 50

	// DefaultEnterpriseMinEmployees is the exclusive lower bound for the
	// enterprise archetype: employees > 500 classifies as enterprise.
	DefaultEnterpriseMinEmployees = 500
)

// PriorityRules holds the title keyword lists that map leads to priority
// tiers. Matching is case-insensitive substring matching, checked in tier
// order: P1 keywords first, then P2, with P3 as the unconditional fallback.
type PriorityRules struct {
	// P1Keywords mark decision makers (C-level, VPs, founders).
	P1Keywords []string `yaml:"p1Keywords,omitempty"`

	// P2Keywords mark senior managers and team leads.
	P2Keywords []string `yaml:"p2Keywords,omitempty"`
}

// ArchetypeRules holds the thresholds and company-name keyword lists that
// map leads to company archetypes.
type ArchetypeRules struct {
	// StartupMaxEmployees is the exclusive upper bound for startups.
	StartupMaxEmployees int `yaml:"startupMaxEmployees,omitempty"`

	// EnterpriseMinEmployees is the exclusive lower bound for enterprises.
	EnterpriseMinEmployees int `yaml:"enterpriseMinEmployees,omitempty"`

	// AgencyKeywords classify a company as an agency/consultancy regardless
	// of its size. Checked against the company name.
	AgencyKeywords []string `yaml:"agencyKeywords,omitempty"`

	// EnterpriseKeywords classify a company as enterprise when its size is
	// unknown. Checked against the company name.
	EnterpriseKeywords []string `yaml:"enterpriseKeywords,omitempty"`
}

// Ruleset bundles all classification rules. It is treated as immutable:
// the classifier reads it but never modifies it, and DefaultRuleset returns
// a fresh copy on every call.
type Ruleset struct {
	Priority  PriorityRules  `yaml:"priority,omitempty"`
	Archetype ArchetypeRules `yaml:"archetype,omitempty"`
}

// DefaultRuleset returns the built-in classification rules.
// The keyword lists mirror the original product heuristics; they are
// deliberately short and reviewable rather than exhaustive.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Priority: PriorityRules{
			P1Keywords: []string{
				"ceo", "cro", "cmo", "coo", "cfo", "cto", "chief",
				"vp", "vice president", "head of",
				"founder", "owner", "president",
			},
			P2Keywords: []string{
				"director", "senior", "manager", "lead", "principal",
			},
		},
		Archetype: ArchetypeRules{
			StartupMaxEmployees:    DefaultStartupMaxEmployees,
			EnterpriseMinEmployees: DefaultEnterpriseMinEmployees,
			AgencyKeywords: []string{
				"consulting", "agency", "partners", "group", "studio",
			},
			EnterpriseKeywords: []string{
				"inc", "corp", "global", "international",
			},
		},
	}
}

// Validate checks the rule set for internal consistency.
func (r Ruleset) Validate() error {
	if r.Archetype.StartupMaxEmployees <= 0 ||
		r.Archetype.StartupMaxEmployees >= r.Archetype.EnterpriseMinEmployees {
		return ErrInvalidThresholds
	}
	return nil
}
