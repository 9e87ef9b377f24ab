package render

import "github.com/BasinLeon/lead-script-generator/internal/model"

// TemplateSet holds the outreach templates for one archetype.
//
// Subjects carries one variant per priority tier: P1 leads get the most
// direct line, P3 leads get the softest. Body and LinkedIn copy is shared
// across tiers within an archetype; the archetype is what changes the
// pitch, the tier only changes how hard the subject opens.
type TemplateSet struct {
	// Subjects are the subject-line variants, indexed by priority tier
	// (0 = P1, 1 = P2, 2 = P3).
	Subjects [3]string

	// Body is the email body template.
	Body string

	// LinkedIn is the connection note template. Built-in templates are
	// written to stay under the 300-character cap after substitution.
	LinkedIn string
}

// Subject returns the subject template variant for the given tier.
func (t TemplateSet) Subject(p model.Priority) string {
	idx := int(p)
	if idx < 0 || idx >= len(t.Subjects) {
		idx = len(t.Subjects) - 1
	}
	return t.Subjects[idx]
}

// DefaultTemplates returns the built-in template table.
// The copy matches the original product scripts for each archetype.
func DefaultTemplates() map[model.Archetype]TemplateSet {
	return map[model.Archetype]TemplateSet{
		model.ArchetypeStartup: {
			Subjects: [3]string{
				"{{first_name}} - scaling {{company}}'s revenue engine?",
				"Quick win for {{company}}'s growth",
				"{{first_name}}, {{company}} + {{value_prop}}?",
			},
			Body: `Hi {{first_name}},

Saw {{company}} is making moves — congrats on the momentum.

I've been helping fast-growing teams like yours solve {{pain_point}} through {{value_prop}}. The results: faster pipeline, cleaner data, and sales teams that actually trust their CRM.

Would a 15-minute call this week make sense? Happy to share a quick framework that's worked for similar companies.

Best,
{{sender_name}}`,
			LinkedIn: "Hi {{first_name}} — impressed by {{company}}'s growth. I work on {{value_prop}} for scaling teams. Would love to connect and share ideas.",
		},

		model.ArchetypeEnterprise: {
			Subjects: [3]string{
				"Strategic alignment: {{company}} revenue operations",
				"{{first_name}} - optimizing {{company}}'s GTM execution",
				"Enterprise {{value_prop}} for {{company}}",
			},
			Body: `Hi {{first_name}},

I've been following {{company}}'s trajectory and wanted to reach out with a relevant observation.

Many enterprise revenue leaders I work with are navigating {{pain_point}} while trying to drive predictable growth. I specialize in {{value_prop}} — helping teams like yours turn operational complexity into competitive advantage.

Would you be open to a brief conversation to explore alignment?

Best regards,
{{sender_name}}`,
			LinkedIn: "Hi {{first_name}} — I help enterprise revenue teams with {{value_prop}}. Your work at {{company}} caught my attention. Let's connect.",
		},

		model.ArchetypeMidMarket: {
			Subjects: [3]string{
				"{{first_name}} - {{company}}'s next growth lever",
				"Helping {{company}} scale smarter",
				"{{first_name}}, quick question about {{company}}",
			},
			Body: `Hi {{first_name}},

Quick note — I work with mid-market companies like {{company}} on {{value_prop}}.

The common challenge I see: {{pain_point}}. The solution doesn't have to be complex.

If this resonates, I'd love to share a framework that's helped similar teams. 15 minutes — no pitch, just value.

Best,
{{sender_name}}`,
			LinkedIn: "Hi {{first_name}} — {{company}} looks like a great fit for some ideas I have on {{value_prop}}. Would love to connect.",
		},

		model.ArchetypeAgency: {
			Subjects: [3]string{
				"Partnership opportunity: {{company}}",
				"{{first_name}} - elevating {{company}}'s client outcomes",
				"For {{company}}: {{value_prop}}",
			},
			Body: `Hi {{first_name}},

I came across {{company}} and was impressed by your work.

I partner with agencies and consultancies on {{value_prop}} — specifically helping with {{pain_point}}. It's often the difference between good delivery and exceptional client outcomes.

Would you be open to a quick conversation about how we might collaborate?

Best,
{{sender_name}}`,
			LinkedIn: "Hi {{first_name}} — I partner with agencies on {{value_prop}}. {{company}}'s approach resonates. Let's connect?",
		},
	}
}
