package loader

import (
	"errors"
	"testing"
)

// TestResolverResolve tests header-to-schema mapping.
func TestResolverResolve(t *testing.T) {
	t.Parallel()

	t.Run("canonical headers resolve directly", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil)
		columns, err := r.Resolve([]string{"first_name", "company", "title", "email"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if columns[ColumnFirstName] != 0 {
			t.Errorf("expected first_name at index 0, got %d", columns[ColumnFirstName])
		}
		if columns[ColumnTitle] != 2 {
			t.Errorf("expected title at index 2, got %d", columns[ColumnTitle])
		}
	})

	t.Run("aliases resolve to canonical names", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil)
		columns, err := r.Resolve([]string{"FirstName", "Company Name", "Job Title", "E-Mail", "Company Size"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for canonical, wantIdx := range map[string]int{
			ColumnFirstName: 0,
			ColumnCompany:   1,
			ColumnTitle:     2,
			ColumnEmail:     3,
			ColumnEmployees: 4,
		} {
			if got, ok := columns[canonical]; !ok || got != wantIdx {
				t.Errorf("column %s: got index %d (ok=%v), want %d", canonical, got, ok, wantIdx)
			}
		}
	})

	t.Run("name column satisfies first_name requirement", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil)
		columns, err := r.Resolve([]string{"Name", "Company", "Title"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !columns.Has(ColumnName) {
			t.Error("expected name column to resolve")
		}
	})

	t.Run("missing title column returns MissingColumnError", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil)
		_, err := r.Resolve([]string{"first_name", "company", "email"})

		if !errors.Is(err, ErrMissingColumn) {
			t.Fatalf("expected ErrMissingColumn, got %v", err)
		}

		var mce *MissingColumnError
		if !errors.As(err, &mce) {
			t.Fatal("expected MissingColumnError")
		}
		if mce.Column != ColumnTitle {
			t.Errorf("expected missing column %q, got %q", ColumnTitle, mce.Column)
		}
	})

	t.Run("missing first_name and name returns MissingColumnError", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil)
		_, err := r.Resolve([]string{"company", "title"})

		var mce *MissingColumnError
		if !errors.As(err, &mce) {
			t.Fatalf("expected MissingColumnError, got %v", err)
		}
		if mce.Column != ColumnFirstName {
			t.Errorf("expected missing column %q, got %q", ColumnFirstName, mce.Column)
		}
	})

	t.Run("first matching header wins over duplicates", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil)
		columns, err := r.Resolve([]string{"title", "job_title", "first_name", "company"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if columns[ColumnTitle] != 0 {
			t.Errorf("expected title at index 0, got %d", columns[ColumnTitle])
		}
	})

	t.Run("extra aliases extend the table", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(map[string][]string{ColumnFirstName: {"vorname"}})
		columns, err := r.Resolve([]string{"Vorname", "company", "title"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if columns[ColumnFirstName] != 0 {
			t.Errorf("expected first_name at index 0, got %d", columns[ColumnFirstName])
		}
	})

	t.Run("BOM prefix on first header is ignored", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil)
		columns, err := r.Resolve([]string{"\ufefffirst_name", "company", "title"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !columns.Has(ColumnFirstName) {
			t.Error("expected BOM-prefixed header to resolve")
		}
	})
}
