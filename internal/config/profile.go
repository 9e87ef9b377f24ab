package config

import "github.com/BasinLeon/lead-script-generator/internal/model"

// Profile describes how to talk to companies of one archetype: the pain
// points the copy leads with, the values the copy appeals to, and the
// overall tone.
type Profile struct {
	// PainPoints are challenges typical for the archetype.
	// The renderer substitutes the first entry into templates.
	PainPoints []string `yaml:"painPoints,omitempty"`

	// Values are what companies of this archetype care about.
	// Currently informational (shown in reports), not substituted.
	Values []string `yaml:"values,omitempty"`

	// Tone is a short description of the intended voice.
	Tone string `yaml:"tone,omitempty"`
}

// LeadPainPoint returns the pain point to substitute into templates,
// or an empty string when the profile has none.
func (p Profile) LeadPainPoint() string {
	if len(p.PainPoints) == 0 {
		return ""
	}
	return p.PainPoints[0]
}

// Profiles maps each archetype to its messaging profile.
type Profiles map[model.Archetype]Profile

// DefaultProfiles returns the built-in archetype profiles.
// The copy matches the original product positioning for each archetype.
func DefaultProfiles() Profiles {
	return Profiles{
		model.ArchetypeStartup: {
			PainPoints: []string{"scaling quickly", "resource constraints", "proving product-market fit"},
			Values:     []string{"speed", "innovation", "disruption"},
			Tone:       "energetic and bold",
		},
		model.ArchetypeEnterprise: {
			PainPoints: []string{"legacy systems", "cross-team alignment", "compliance requirements"},
			Values:     []string{"stability", "proven solutions", "risk mitigation"},
			Tone:       "professional and strategic",
		},
		model.ArchetypeMidMarket: {
			PainPoints: []string{"growing pains", "process optimization", "competitive pressure"},
			Values:     []string{"efficiency", "growth", "partnership"},
			Tone:       "balanced and consultative",
		},
		model.ArchetypeAgency: {
			PainPoints: []string{"client delivery", "billable utilization", "differentiation"},
			Values:     []string{"expertise", "client success", "innovation"},
			Tone:       "collaborative and expert",
		},
	}
}

// Get returns the profile for the given archetype, falling back to the
// mid-market profile when the archetype has no entry. Mid-market is the
// safe middle ground in tone, which is why it doubles as the fallback.
func (p Profiles) Get(a model.Archetype) Profile {
	if profile, ok := p[a]; ok {
		return profile
	}
	return p[model.ArchetypeMidMarket]
}
