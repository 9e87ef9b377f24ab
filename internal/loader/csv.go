package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// Loader reads a lead CSV file into a model.RunReport.
// Classification and rendering are left to later pipeline steps; the loader
// only parses rows into leads and applies the row-level skip policy.
type Loader struct {
	// resolver maps input headers onto the canonical schema.
	resolver *Resolver

	// strict aborts the load when a row is missing a required field
	// instead of skipping the row.
	strict bool

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithExtraAliases extends the built-in header alias table.
func WithExtraAliases(aliases map[string][]string) Option {
	return func(l *Loader) {
		l.resolver = NewResolver(aliases)
	}
}

// WithStrict makes rows with empty required fields fail the load
// instead of being skipped.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// WithLogger sets a custom logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		resolver: NewResolver(nil),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadFile opens and loads the lead CSV at the given path.
func (l *Loader) LoadFile(path string) (*model.RunReport, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load reads lead records from r. The source string is recorded in the
// report for display purposes only.
//
// Spreadsheet exports frequently carry a byte order mark, so the input
// passes through a BOM-aware decoder before CSV parsing. UTF-16 exports
// are transcoded to UTF-8 transparently.
func (l *Loader) Load(r io.Reader, source string) (*model.RunReport, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, decoder))

	// CRM exports occasionally pad or truncate rows; short rows are
	// handled per-field rather than failing the whole file.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns, err := l.resolver.Resolve(header)
	if err != nil {
		return nil, err
	}

	report := model.NewRunReport(source)
	report.SourceHeader = header

	row := 1 // header is row 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}
		row++

		lead := l.buildLead(columns, record, row)

		if missing := lead.MissingFields(); len(missing) > 0 {
			if l.strict {
				return nil, &RowError{Row: row, Fields: missing}
			}
			l.logger.Warn("skipping row with missing required fields",
				"row", row,
				"fields", strings.Join(missing, ", "),
			)
			report.Skipped = append(report.Skipped, model.SkippedRow{
				Row:    row,
				Reason: fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")),
			})
			continue
		}

		report.Leads = append(report.Leads, model.LeadReport{
			Lead: lead,
			Raw:  record,
		})
	}

	if len(report.Leads) == 0 && len(report.Skipped) == 0 {
		return nil, ErrNoDataRows
	}

	l.logger.Info("loaded leads",
		"source", source,
		"leads", len(report.Leads),
		"skipped", len(report.Skipped),
	)

	return report, nil
}

// buildLead constructs a Lead from a raw record using the resolved columns.
func (l *Loader) buildLead(columns ColumnMap, record []string, row int) model.Lead {
	lead := model.Lead{
		Row:       row,
		FirstName: field(columns, record, ColumnFirstName),
		LastName:  field(columns, record, ColumnLastName),
		Company:   field(columns, record, ColumnCompany),
		Title:     field(columns, record, ColumnTitle),
		Email:     field(columns, record, ColumnEmail),
		LinkedIn:  field(columns, record, ColumnLinkedIn),
		Employees: model.EmployeesUnknown,
	}

	// A combined name column supplies first (and, when absent, last) name.
	if lead.FirstName == "" {
		first, last := splitName(field(columns, record, ColumnName))
		lead.FirstName = first
		if lead.LastName == "" {
			lead.LastName = last
		}
	}

	if raw := field(columns, record, ColumnEmployees); raw != "" {
		count, err := parseEmployees(raw)
		if err != nil {
			// Malformed counts are treated as unknown, not as errors;
			// the classifier falls back to keyword heuristics.
			l.logger.Debug("unparseable employee count, treating as unknown",
				"row", row,
				"value", raw,
			)
		} else {
			lead.Employees = count
		}
	}

	return lead
}

// field returns the trimmed value of a canonical column in the record,
// or "" when the column is unresolved or the record is too short.
func field(columns ColumnMap, record []string, canonical string) string {
	idx, ok := columns[canonical]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// splitName splits a combined full name on the first whitespace run.
func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// parseEmployees parses an employee count as exported by CRMs:
// plain integers, thousands separators, and a trailing "+" are accepted
// ("1,000+" parses as 1000).
func parseEmployees(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "+")

	count, err := strconv.Atoi(s)
	if err != nil {
		return model.EmployeesUnknown, err
	}
	if count < 0 {
		return model.EmployeesUnknown, fmt.Errorf("negative employee count: %d", count)
	}
	return count, nil
}
