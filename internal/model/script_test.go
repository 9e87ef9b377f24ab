package model

import (
	"errors"
	"strings"
	"testing"
)

// TestScriptOutputLinkedInMessageLen verifies the length is counted in runes.
func TestScriptOutputLinkedInMessageLen(t *testing.T) {
	t.Parallel()

	t.Run("ascii message", func(t *testing.T) {
		t.Parallel()
		s := ScriptOutput{LinkedInMessage: "Hi Ana"}
		if got := s.LinkedInMessageLen(); got != 6 {
			t.Errorf("LinkedInMessageLen() = %d, want 6", got)
		}
	})

	t.Run("multibyte characters count once", func(t *testing.T) {
		t.Parallel()
		s := ScriptOutput{LinkedInMessage: "Hi José"}
		if got := s.LinkedInMessageLen(); got != 7 {
			t.Errorf("LinkedInMessageLen() = %d, want 7", got)
		}
	})
}

// TestLeadReportSetError tests error recording and clearing.
func TestLeadReportSetError(t *testing.T) {
	t.Parallel()

	t.Run("records error and message", func(t *testing.T) {
		t.Parallel()
		var r LeadReport
		r.SetError(errors.New("boom"))

		if !r.Failed() {
			t.Error("expected Failed() to be true")
		}
		if r.ErrorMessage != "boom" {
			t.Errorf("ErrorMessage = %q, want %q", r.ErrorMessage, "boom")
		}
	})

	t.Run("nil error clears both fields", func(t *testing.T) {
		t.Parallel()
		var r LeadReport
		r.SetError(errors.New("boom"))
		r.SetError(nil)

		if r.Failed() {
			t.Error("expected Failed() to be false after clearing")
		}
		if r.ErrorMessage != "" {
			t.Errorf("expected empty ErrorMessage, got %q", r.ErrorMessage)
		}
	})
}

// TestRunReportCounts tests the per-priority aggregation helpers.
func TestRunReportCounts(t *testing.T) {
	t.Parallel()

	report := NewRunReport("leads.csv")
	report.Leads = []LeadReport{
		{Lead: Lead{FirstName: "Ana"}, Classification: Classification{Priority: PriorityHot, Archetype: ArchetypeStartup}},
		{Lead: Lead{FirstName: "Bob"}, Classification: Classification{Priority: PriorityWarm, Archetype: ArchetypeMidMarket}},
		{Lead: Lead{FirstName: "Eve"}, Classification: Classification{Priority: PriorityHot, Archetype: ArchetypeEnterprise}},
	}

	t.Run("counts by priority", func(t *testing.T) {
		t.Parallel()
		if got := report.CountByPriority(PriorityHot); got != 2 {
			t.Errorf("CountByPriority(Hot) = %d, want 2", got)
		}
		if got := report.CountByPriority(PriorityNurture); got != 0 {
			t.Errorf("CountByPriority(Nurture) = %d, want 0", got)
		}
	})

	t.Run("filters by priority", func(t *testing.T) {
		t.Parallel()
		filtered := report.FilterByPriority(PriorityHot)
		if filtered.TotalLeads() != 2 {
			t.Fatalf("expected 2 leads after filter, got %d", filtered.TotalLeads())
		}
		for _, lr := range filtered.Leads {
			if lr.Classification.Priority != PriorityHot {
				t.Errorf("unexpected priority %v in filtered report", lr.Classification.Priority)
			}
		}
		// The original report is untouched.
		if report.TotalLeads() != 3 {
			t.Errorf("expected original report to keep 3 leads, got %d", report.TotalLeads())
		}
	})

	t.Run("preserves input order in LeadsByPriority", func(t *testing.T) {
		t.Parallel()
		hot := report.LeadsByPriority(PriorityHot)
		names := make([]string, 0, len(hot))
		for _, lr := range hot {
			names = append(names, lr.Lead.FirstName)
		}
		if strings.Join(names, ",") != "Ana,Eve" {
			t.Errorf("expected order Ana,Eve, got %v", names)
		}
	})

	t.Run("counts failures", func(t *testing.T) {
		t.Parallel()
		r := NewRunReport("x.csv")
		r.Leads = make([]LeadReport, 2)
		r.Leads[0].SetError(errors.New("render failed"))
		if got := r.FailedCount(); got != 1 {
			t.Errorf("FailedCount() = %d, want 1", got)
		}
	})
}
