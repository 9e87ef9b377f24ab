package classify

import (
	"testing"

	"github.com/BasinLeon/lead-script-generator/internal/config"
	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// newTestClassifier returns a classifier with the default rule set.
func newTestClassifier() *Classifier {
	return New(config.DefaultRuleset())
}

// TestClassifierPriority tests title-to-tier mapping.
func TestClassifierPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  model.Priority
	}{
		{"CEO is P1", "CEO", model.PriorityHot},
		{"lowercase ceo is P1", "ceo & co-founder", model.PriorityHot},
		{"CEO embedded in a longer title is P1", "Founder & CEO", model.PriorityHot},
		{"VP of Sales is P1", "VP of Sales", model.PriorityHot},
		{"vice president spelled out is P1", "Vice President, Marketing", model.PriorityHot},
		{"head of is P1", "Head of Revenue Operations", model.PriorityHot},
		{"chief-anything is P1", "Chief Revenue Officer", model.PriorityHot},
		{"director is P2", "Director of Demand Gen", model.PriorityWarm},
		{"manager is P2", "Account Manager", model.PriorityWarm},
		{"team lead is P2", "Sales Team Lead", model.PriorityWarm},
		{"senior IC is P2", "Senior Analyst", model.PriorityWarm},
		{"plain IC is P3", "Account Executive", model.PriorityNurture},
		{"empty title is P3", "", model.PriorityNurture},
		{"unmatched title is P3", "Consultant", model.PriorityNurture},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lead := model.Lead{Title: tt.title, Employees: model.EmployeesUnknown}
			if got := c.Classify(lead).Priority; got != tt.want {
				t.Errorf("title %q: priority = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

// TestClassifierPriorityOrder verifies that P1 keywords win over P2 keywords
// when a title matches both tiers.
func TestClassifierPriorityOrder(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	// "VP" (P1) and "manager" (P2) both match; the hotter tier wins.
	lead := model.Lead{Title: "VP and General Manager", Employees: model.EmployeesUnknown}
	if got := c.Classify(lead).Priority; got != model.PriorityHot {
		t.Errorf("priority = %v, want PriorityHot", got)
	}
}

// TestClassifierArchetype tests company-to-archetype mapping.
func TestClassifierArchetype(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		company   string
		employees int
		want      model.Archetype
	}{
		{"under 50 employees is startup", "Zylo", 30, model.ArchetypeStartup},
		{"49 employees is startup", "Zylo", 49, model.ArchetypeStartup},
		{"exactly 50 employees is mid-market", "Zylo", 50, model.ArchetypeMidMarket},
		{"250 employees is mid-market", "Initech", 250, model.ArchetypeMidMarket},
		{"exactly 500 employees is mid-market", "Initech", 500, model.ArchetypeMidMarket},
		{"over 500 employees is enterprise", "Initech", 501, model.ArchetypeEnterprise},
		{"unknown size defaults to mid-market", "Zylo", model.EmployeesUnknown, model.ArchetypeMidMarket},
		{"unknown size with enterprise keyword", "Initech Global", model.EmployeesUnknown, model.ArchetypeEnterprise},
		{"unknown size with corp keyword", "Umbrella Corp", model.EmployeesUnknown, model.ArchetypeEnterprise},
		{"agency keyword overrides small size", "Brightside Agency", 10, model.ArchetypeAgency},
		{"agency keyword overrides large size", "Northwind Consulting", 2000, model.ArchetypeAgency},
		{"partners keyword is agency", "Hale & Partners", model.EmployeesUnknown, model.ArchetypeAgency},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lead := model.Lead{Company: tt.company, Employees: tt.employees}
			if got := c.Classify(lead).Archetype; got != tt.want {
				t.Errorf("company %q (%d employees): archetype = %v, want %v",
					tt.company, tt.employees, got, tt.want)
			}
		})
	}
}

// TestClassifyScenario covers the canonical end-to-end scenario:
// a VP at a 30-person company is a hot startup lead.
func TestClassifyScenario(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	lead := model.Lead{
		FirstName: "Ana",
		Company:   "Zylo",
		Title:     "VP of Sales",
		Employees: 30,
	}

	got := c.Classify(lead)
	if got.Priority != model.PriorityHot {
		t.Errorf("priority = %v, want PriorityHot", got.Priority)
	}
	if got.Archetype != model.ArchetypeStartup {
		t.Errorf("archetype = %v, want ArchetypeStartup", got.Archetype)
	}
}

// TestClassifyCustomRules verifies that custom rule sets are honored.
func TestClassifyCustomRules(t *testing.T) {
	t.Parallel()

	rules := config.DefaultRuleset()
	rules.Priority.P1Keywords = []string{"wizard"}
	rules.Archetype.StartupMaxEmployees = 10

	c := New(rules)

	t.Run("custom P1 keyword matches", func(t *testing.T) {
		t.Parallel()
		lead := model.Lead{Title: "Revenue Wizard", Employees: model.EmployeesUnknown}
		if got := c.Classify(lead).Priority; got != model.PriorityHot {
			t.Errorf("priority = %v, want PriorityHot", got)
		}
	})

	t.Run("default P1 keyword no longer matches", func(t *testing.T) {
		t.Parallel()
		lead := model.Lead{Title: "CEO", Employees: model.EmployeesUnknown}
		if got := c.Classify(lead).Priority; got == model.PriorityHot {
			t.Error("expected CEO not to match after keyword override")
		}
	})

	t.Run("custom startup threshold applies", func(t *testing.T) {
		t.Parallel()
		lead := model.Lead{Company: "Zylo", Employees: 30}
		if got := c.Classify(lead).Archetype; got != model.ArchetypeMidMarket {
			t.Errorf("archetype = %v, want ArchetypeMidMarket under threshold 10", got)
		}
	})
}

// TestClassifyIsPure verifies classification has no side effects on the lead.
func TestClassifyIsPure(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	lead := model.Lead{FirstName: "Ana", Company: "Zylo", Title: "CEO", Employees: 30}
	before := lead

	first := c.Classify(lead)
	second := c.Classify(lead)

	if first != second {
		t.Error("expected identical classifications for repeated calls")
	}
	if lead != before {
		t.Error("expected Classify not to modify the lead")
	}
}
