package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// TextWriter outputs human-readable text reports for terminal display:
// a run summary followed by the full script for each lead, grouped by
// priority tier so the hottest leads come first.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// showSkipped controls whether skipped input rows are listed.
	showSkipped bool

	// verbose includes the full email body for every lead. Without it
	// only the subject and LinkedIn message are shown.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithShowSkipped configures the writer to list skipped input rows.
func WithShowSkipped(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showSkipped = show
	}
}

// WithVerbose enables verbose output including full email bodies.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter:  newBaseWriter(output),
		showSkipped: true,
		verbose:     false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run report in human-readable format.
func (w *TextWriter) Write(run *model.RunReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, run)
	w.writeSummary(&sb, run)
	w.writeLeads(&sb, run)
	w.writeSkipped(&sb, run)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the run header with source information.
func (w *TextWriter) writeHeader(sb *strings.Builder, run *model.RunReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      LEAD OUTREACH SCRIPTS\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Source:       %s\n", run.Source))
	sb.WriteString(fmt.Sprintf("Generated:    %s\n", run.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Leads:        %d\n", run.TotalLeads()))

	if failed := run.FailedCount(); failed > 0 {
		sb.WriteString(fmt.Sprintf("Failed:       %d\n", failed))
	}
	if len(run.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("Skipped rows: %d\n", len(run.Skipped)))
	}

	sb.WriteString("\n")
}

// writeSummary writes the priority tier breakdown.
func (w *TextWriter) writeSummary(sb *strings.Builder, run *model.RunReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PRIORITY SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, p := range model.Priorities() {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", p.String()+":", run.CountByPriority(p)))
	}
	sb.WriteString("\n")
}

// writeLeads writes per-lead scripts grouped by priority, hottest first.
func (w *TextWriter) writeLeads(sb *strings.Builder, run *model.RunReport) {
	for _, p := range model.Priorities() {
		leads := run.LeadsByPriority(p)
		if len(leads) == 0 {
			continue
		}

		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		sb.WriteString(strings.ToUpper(p.String()))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n\n")

		for i := range leads {
			w.writeLead(sb, &leads[i])
		}
	}
}

// writeLead writes one lead's identity, classification, and scripts.
func (w *TextWriter) writeLead(sb *strings.Builder, lead *model.LeadReport) {
	name := lead.Lead.FullName()
	if name == "" {
		name = "(unnamed)"
	}

	sb.WriteString(fmt.Sprintf("* %s — %s, %s\n", name, lead.Lead.Title, lead.Lead.Company))
	sb.WriteString(fmt.Sprintf("  Archetype: %s", lead.Classification.Archetype))
	if lead.Lead.HasEmployees() {
		sb.WriteString(fmt.Sprintf(" (%d employees)", lead.Lead.Employees))
	}
	sb.WriteString("\n")

	if lead.Failed() {
		sb.WriteString(fmt.Sprintf("  ERROR: %s\n\n", lead.ErrorMessage))
		return
	}
	if lead.Script == nil {
		sb.WriteString("  (no script generated)\n\n")
		return
	}

	sb.WriteString(fmt.Sprintf("  Subject:  %s\n", lead.Script.Subject))
	sb.WriteString(fmt.Sprintf("  LinkedIn: %s\n", lead.Script.LinkedInMessage))

	if w.verbose {
		sb.WriteString("  Body:\n")
		for _, line := range strings.Split(lead.Script.Body, "\n") {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
}

// writeSkipped lists input rows dropped before processing.
func (w *TextWriter) writeSkipped(sb *strings.Builder, run *model.RunReport) {
	if len(run.Skipped) == 0 || !w.showSkipped {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SKIPPED ROWS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, skipped := range run.Skipped {
		sb.WriteString(fmt.Sprintf("  row %d: %s\n", skipped.Row, skipped.Reason))
	}
	sb.WriteString("\n")
}
