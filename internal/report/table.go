package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// TableWriter outputs a compact terminal table: one row per lead with the
// classification and the generated subject line. It is the quick-scan view
// for checking a run before exporting the full scripts.
//
// Design decision: We use go-pretty for the table rendering because it
// handles column sizing and unicode widths, which matter for names and
// company fields that a hand-rolled tab writer would misalign.
type TableWriter struct {
	baseWriter
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer) *TableWriter {
	return &TableWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run report as a terminal table.
// Byte counts are not tracked by the table renderer, so the returned
// int is 0.
func (w *TableWriter) Write(run *model.RunReport) (int, error) {
	t := table.NewWriter()
	t.SetOutputMirror(w.output)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Row", "Name", "Company", "Title", "Priority", "Archetype", "Subject"})

	for _, p := range model.Priorities() {
		for _, lead := range run.LeadsByPriority(p) {
			subject := ""
			if lead.Script != nil {
				subject = lead.Script.Subject
			}
			if lead.Failed() {
				subject = "ERROR: " + lead.ErrorMessage
			}

			t.AppendRow(table.Row{
				lead.Lead.Row,
				lead.Lead.FullName(),
				lead.Lead.Company,
				lead.Lead.Title,
				lead.Classification.Priority.Short(),
				lead.Classification.Archetype.String(),
				subject,
			})
		}
	}

	t.Render()

	_, _ = fmt.Fprintf(w.output, "(%d leads, %d failed, %d skipped)\n",
		run.TotalLeads(), run.FailedCount(), len(run.Skipped))

	return 0, nil
}
