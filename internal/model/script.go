package model

import (
	"time"
	"unicode/utf8"
)

// LinkedInMessageMaxLen is the hard upper bound on LinkedIn connection
// messages, in characters (runes). LinkedIn rejects longer connection notes,
// so the renderer must never produce a message above this limit.
const LinkedInMessageMaxLen = 300

// ScriptOutput holds the generated outreach copy for a single lead.
// Instances are ephemeral: they exist only for the duration of a
// rendering/export pass and are never persisted.
type ScriptOutput struct {
	// Subject is the generated email subject line.
	Subject string `json:"subject"`

	// Body is the generated email body, including the sign-off.
	Body string `json:"body"`

	// LinkedInMessage is the generated connection note,
	// at most LinkedInMessageMaxLen characters.
	LinkedInMessage string `json:"linkedin_message"`
}

// LinkedInMessageLen returns the LinkedIn message length in runes.
// Byte length would over-count non-ASCII names, so the cap is enforced
// on runes.
func (s ScriptOutput) LinkedInMessageLen() int {
	return utf8.RuneCountInString(s.LinkedInMessage)
}

// LeadReport is the per-lead processing result: the lead itself, its derived
// classification, the generated scripts, and any per-row error.
//
// Design decision: Errors are recorded on the report rather than aborting the
// batch because all failures here are recoverable at row granularity. A row
// with a render error simply ships without scripts.
type LeadReport struct {
	// Lead is the parsed input record.
	Lead Lead `json:"lead"`

	// Classification is the derived (priority, archetype) pair.
	Classification Classification `json:"classification"`

	// Script is the generated outreach copy, or nil when rendering failed.
	Script *ScriptOutput `json:"script,omitempty"`

	// Raw is the original record as read from the source file.
	// Used by the CSV writer to echo input columns before the appended
	// script columns. Not serialized to JSON.
	Raw []string `json:"-"`

	// Error holds the processing error for this lead, if any.
	// Not serialized directly; ErrorMessage carries the text.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// SetError records a processing error on the report.
// A nil error clears both fields.
func (r *LeadReport) SetError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
		return
	}
	r.ErrorMessage = ""
}

// Failed reports whether processing this lead produced an error.
func (r *LeadReport) Failed() bool {
	return r.Error != nil || r.ErrorMessage != ""
}

// SkippedRow records an input row that was dropped before processing,
// typically because a required field was empty.
type SkippedRow struct {
	// Row is the 1-based row number in the source file.
	Row int `json:"row"`

	// Reason describes why the row was skipped.
	Reason string `json:"reason"`
}

// RunReport is the result of processing an entire lead file.
type RunReport struct {
	// Source is the input file path (or "-" for stdin).
	Source string `json:"source"`

	// GeneratedAt is the wall-clock time the run started.
	GeneratedAt time.Time `json:"generated_at"`

	// SourceHeader is the original header row of the input file.
	// The CSV writer echoes it before the appended script columns.
	SourceHeader []string `json:"-"`

	// Leads holds one report per processed lead, in input order.
	Leads []LeadReport `json:"leads"`

	// Skipped lists rows dropped before processing.
	Skipped []SkippedRow `json:"skipped,omitempty"`
}

// NewRunReport creates an empty run report for the given source.
func NewRunReport(source string) *RunReport {
	return &RunReport{
		Source:      source,
		GeneratedAt: time.Now(),
	}
}

// CountByPriority returns the number of leads classified into the given tier.
func (r *RunReport) CountByPriority(p Priority) int {
	count := 0
	for i := range r.Leads {
		if r.Leads[i].Classification.Priority == p {
			count++
		}
	}
	return count
}

// LeadsByPriority returns the lead reports classified into the given tier,
// preserving input order.
func (r *RunReport) LeadsByPriority(p Priority) []LeadReport {
	var out []LeadReport
	for i := range r.Leads {
		if r.Leads[i].Classification.Priority == p {
			out = append(out, r.Leads[i])
		}
	}
	return out
}

// FilterByPriority returns a shallow copy of the report containing only
// leads in the given tier. Skipped rows are carried over unchanged.
func (r *RunReport) FilterByPriority(p Priority) *RunReport {
	filtered := *r
	filtered.Leads = r.LeadsByPriority(p)
	return &filtered
}

// FailedCount returns the number of leads whose processing produced an error.
func (r *RunReport) FailedCount() int {
	count := 0
	for i := range r.Leads {
		if r.Leads[i].Failed() {
			count++
		}
	}
	return count
}

// TotalLeads returns the number of processed leads.
func (r *RunReport) TotalLeads() int {
	return len(r.Leads)
}
