package model

import (
	"fmt"
	"strings"
)

// Priority represents the outreach priority tier of a lead.
// Tiers reflect the prospect's decision-making authority as inferred
// from their job title.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Priority int

const (
	// PriorityHot (P1) indicates a decision maker: C-level executives,
	// vice presidents, founders, and functional heads. These leads get
	// the most direct outreach copy.
	PriorityHot Priority = iota

	// PriorityWarm (P2) indicates the right persona without immediate
	// authority: directors, senior managers, and team leads.
	PriorityWarm

	// PriorityNurture (P3) is the fallback tier for everyone else.
	// These leads need education or timing alignment before a direct pitch.
	PriorityNurture
)

// String returns the full human-readable tier label.
func (p Priority) String() string {
	switch p {
	case PriorityHot:
		return "P1 - Hot"
	case PriorityWarm:
		return "P2 - Warm"
	case PriorityNurture:
		return "P3 - Nurture"
	default:
		return "UNKNOWN"
	}
}

// Short returns the compact tier code ("P1", "P2", "P3").
func (p Priority) Short() string {
	switch p {
	case PriorityHot:
		return "P1"
	case PriorityWarm:
		return "P2"
	case PriorityNurture:
		return "P3"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler so priorities serialize
// as their full label in JSON output.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePriority converts a tier code or label into a Priority.
// It accepts the compact form ("P1"), the full label ("P1 - Hot"), and the
// tier name ("hot"), all case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p1", "p1 - hot", "hot":
		return PriorityHot, nil
	case "p2", "p2 - warm", "warm":
		return PriorityWarm, nil
	case "p3", "p3 - nurture", "nurture":
		return PriorityNurture, nil
	default:
		return PriorityNurture, fmt.Errorf("unknown priority %q (expected P1, P2, or P3)", s)
	}
}

// Priorities returns all tiers in descending order of urgency.
// Useful for iterating report sections in a stable order.
func Priorities() []Priority {
	return []Priority{PriorityHot, PriorityWarm, PriorityNurture}
}

// Archetype represents the company profile classification of a lead.
// The archetype drives the tone and pain points of the generated copy.
type Archetype int

const (
	// ArchetypeStartup covers companies with fewer than 50 employees.
	// Copy for this archetype is energetic and bold.
	ArchetypeStartup Archetype = iota

	// ArchetypeMidMarket covers companies with 50-500 employees, and is
	// the default when the company size is unknown and no keyword matches.
	ArchetypeMidMarket

	// ArchetypeEnterprise covers companies with more than 500 employees,
	// or companies whose name carries enterprise keywords.
	ArchetypeEnterprise

	// ArchetypeAgency covers service businesses (agencies, consultancies).
	// Detected by company-name keywords and overrides size thresholds.
	ArchetypeAgency
)

// String returns the human-readable archetype label.
func (a Archetype) String() string {
	switch a {
	case ArchetypeStartup:
		return "High-Growth Startup"
	case ArchetypeMidMarket:
		return "Mid-Market"
	case ArchetypeEnterprise:
		return "Enterprise"
	case ArchetypeAgency:
		return "Agency/Consultancy"
	default:
		return "UNKNOWN"
	}
}

// Key returns the stable lowercase identifier used in configuration files.
func (a Archetype) Key() string {
	switch a {
	case ArchetypeStartup:
		return "startup"
	case ArchetypeMidMarket:
		return "midmarket"
	case ArchetypeEnterprise:
		return "enterprise"
	case ArchetypeAgency:
		return "agency"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so archetypes serialize
// as their full label in JSON output.
func (a Archetype) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseArchetype converts a configuration key or label into an Archetype.
func ParseArchetype(s string) (Archetype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "startup", "high-growth startup":
		return ArchetypeStartup, nil
	case "midmarket", "mid-market", "mid market":
		return ArchetypeMidMarket, nil
	case "enterprise":
		return ArchetypeEnterprise, nil
	case "agency", "agency/consultancy", "consultancy":
		return ArchetypeAgency, nil
	default:
		return ArchetypeMidMarket, fmt.Errorf("unknown archetype %q", s)
	}
}

// Archetypes returns all archetypes in a stable order.
func Archetypes() []Archetype {
	return []Archetype{ArchetypeStartup, ArchetypeMidMarket, ArchetypeEnterprise, ArchetypeAgency}
}

// Classification is the derived (priority, archetype) pair for a lead.
// It is a pure function of the lead and the active rule set: computed per
// run, never cached, never stored independently.
type Classification struct {
	// Priority is the outreach priority tier.
	Priority Priority `json:"priority"`

	// Archetype is the company profile classification.
	Archetype Archetype `json:"archetype"`
}
