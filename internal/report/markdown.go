package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// MarkdownWriter outputs run reports in Markdown format.
// This format is designed for documentation and sharing with a sales team.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(run *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, run)
	w.writeSummary(md, run)
	w.writeLeads(md, run)
	w.writeSkipped(md, run)

	return len(md.String()), md.Build()
}

// writeHeader writes the run header with source information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, run *model.RunReport) {
	md.H1("Lead Outreach Scripts")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + run.Source + "`"},
			{"Generated", run.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Leads", strconv.Itoa(run.TotalLeads())},
			{"Failed", strconv.Itoa(run.FailedCount())},
			{"Skipped Rows", strconv.Itoa(len(run.Skipped))},
		},
	})
	md.PlainText("")
}

// writeSummary writes the priority tier breakdown.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, run *model.RunReport) {
	md.H2("Priority Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.Priorities())+1)
	for _, p := range model.Priorities() {
		rows = append(rows, []string{p.String(), strconv.Itoa(run.CountByPriority(p))})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(run.TotalLeads()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Tier", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if run.TotalLeads() > 0 {
		w.writePieChart(md, run)
	}

	w.writeAlert(md, run)
}

// writePieChart writes a mermaid pie chart of the priority distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, run *model.RunReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Priority Distribution"),
		piechart.WithShowData(true),
	)

	for _, p := range model.Priorities() {
		if count := run.CountByPriority(p); count > 0 {
			chart.LabelAndIntValue(p.String(), uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes a run-health alert based on failures and skips.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, run *model.RunReport) {
	switch {
	case run.FailedCount() > 0:
		md.Warningf(
			"%d lead(s) failed to render and shipped without scripts. Check the per-lead errors below.",
			run.FailedCount(),
		)
	case len(run.Skipped) > 0:
		md.Note(fmt.Sprintf(
			"%d input row(s) were skipped because required fields were missing.",
			len(run.Skipped),
		))
	case run.CountByPriority(model.PriorityHot) > 0:
		md.Tip(fmt.Sprintf(
			"%d hot lead(s) ready for outreach. Start at the top.",
			run.CountByPriority(model.PriorityHot),
		))
	}
	md.PlainText("")
}

// writeLeads writes per-lead sections grouped by priority, hottest first.
func (w *MarkdownWriter) writeLeads(md *markdown.Markdown, run *model.RunReport) {
	md.H2("Leads")
	md.PlainText("")

	if run.TotalLeads() == 0 {
		md.PlainText("No leads processed.")
		md.PlainText("")
		return
	}

	for _, p := range model.Priorities() {
		leads := run.LeadsByPriority(p)
		if len(leads) == 0 {
			continue
		}

		md.H3(p.String())
		md.PlainText("")

		for i := range leads {
			w.writeLead(md, &leads[i])
		}
	}
}

// writeLead writes one lead's identity, classification, and scripts.
func (w *MarkdownWriter) writeLead(md *markdown.Markdown, lead *model.LeadReport) {
	name := lead.Lead.FullName()
	if name == "" {
		name = "(unnamed)"
	}
	md.H4(fmt.Sprintf("%s — %s, %s", name, lead.Lead.Title, lead.Lead.Company))
	md.PlainText("")

	employees := "unknown"
	if lead.Lead.HasEmployees() {
		employees = strconv.Itoa(lead.Lead.Employees)
	}
	md.Table(markdown.TableSet{
		Header: []string{"Archetype", "Employees", "Email", "LinkedIn"},
		Rows: [][]string{{
			lead.Classification.Archetype.String(),
			employees,
			orDash(lead.Lead.Email),
			orDash(lead.Lead.LinkedIn),
		}},
	})
	md.PlainText("")

	if lead.Failed() {
		md.Cautionf("Script generation failed: %s", lead.ErrorMessage)
		md.PlainText("")
		return
	}
	if lead.Script == nil {
		md.PlainText("No script generated.")
		md.PlainText("")
		return
	}

	md.PlainText("**Subject:** " + lead.Script.Subject)
	md.PlainText("")
	md.Details("Email body", "\n"+lead.Script.Body+"\n")
	md.PlainText("")
	md.PlainText("**LinkedIn:** " + lead.Script.LinkedInMessage)
	md.PlainText("")
}

// writeSkipped lists input rows dropped before processing.
func (w *MarkdownWriter) writeSkipped(md *markdown.Markdown, run *model.RunReport) {
	if len(run.Skipped) == 0 {
		return
	}

	md.H2("Skipped Rows")
	md.PlainText("")

	rows := make([][]string, len(run.Skipped))
	for i, skipped := range run.Skipped {
		rows[i] = []string{strconv.Itoa(skipped.Row), skipped.Reason}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Row", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

// orDash substitutes "-" for empty optional fields in tables.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
