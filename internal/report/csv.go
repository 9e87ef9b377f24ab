package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// scriptColumns are appended after the echoed input columns.
var scriptColumns = []string{
	"Priority",
	"Company DNA",
	"Email Subject",
	"Email Body",
	"LinkedIn Message",
}

// CSVWriter exports the run as CSV: the original input columns echoed
// as-is, with the classification and generated scripts appended as new
// columns. The output round-trips into spreadsheets and CRMs.
//
// Design decision: We echo the raw input record rather than re-serializing
// the parsed lead so that columns we do not understand (custom CRM fields,
// notes) survive the export untouched.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run report as CSV.
// Byte counts are not tracked by encoding/csv, so the returned int is 0.
func (w *CSVWriter) Write(run *model.RunReport) (int, error) {
	cw := csv.NewWriter(w.output)

	header := run.SourceHeader
	if len(header) == 0 {
		header = fallbackHeader
	}

	if err := cw.Write(append(append([]string{}, header...), scriptColumns...)); err != nil {
		return 0, err
	}

	for i := range run.Leads {
		if err := cw.Write(w.record(header, &run.Leads[i])); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	return 0, cw.Error()
}

// fallbackHeader is used when the run carries no source header, e.g. when
// the report was assembled programmatically.
var fallbackHeader = []string{
	"first_name",
	"last_name",
	"company",
	"title",
	"email",
	"linkedin",
	"employees",
}

// record builds one output row: the echoed input columns padded to the
// header width, then the script columns.
func (w *CSVWriter) record(header []string, lead *model.LeadReport) []string {
	row := make([]string, 0, len(header)+len(scriptColumns))

	raw := lead.Raw
	if len(raw) == 0 {
		raw = w.leadFields(&lead.Lead)
	}
	for i := range header {
		if i < len(raw) {
			row = append(row, raw[i])
		} else {
			row = append(row, "")
		}
	}

	row = append(row, lead.Classification.Priority.String())
	row = append(row, lead.Classification.Archetype.String())

	if lead.Script != nil {
		row = append(row, lead.Script.Subject, lead.Script.Body, lead.Script.LinkedInMessage)
	} else {
		row = append(row, "", "", "")
	}

	return row
}

// leadFields serializes a parsed lead in fallbackHeader order.
func (w *CSVWriter) leadFields(lead *model.Lead) []string {
	employees := ""
	if lead.HasEmployees() {
		employees = strconv.Itoa(lead.Employees)
	}
	return []string{
		lead.FirstName,
		lead.LastName,
		lead.Company,
		lead.Title,
		lead.Email,
		lead.LinkedIn,
		employees,
	}
}
