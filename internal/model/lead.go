package model

import "strings"

// EmployeesUnknown marks a lead whose employee count could not be determined.
// The loader assigns this value when the employees column is absent, empty,
// or not parseable as a number. The classifier falls back to keyword
// heuristics in that case.
const EmployeesUnknown = -1

// Lead represents a single prospect record after column alias resolution.
//
// FirstName, Company, and Title are required: the loader rejects rows where
// any of them is empty. The remaining fields are optional and default to
// their zero value (or EmployeesUnknown for Employees).
type Lead struct {
	// Row is the 1-based row number in the source file, counting the header
	// as row 1. It exists purely for diagnostics; leads have no identity
	// beyond their position in the input.
	Row int `json:"row"`

	// FirstName is the prospect's given name, used for personalization.
	FirstName string `json:"first_name"`

	// LastName is the prospect's family name. Optional; it may be derived
	// from a combined "name" column during alias resolution.
	LastName string `json:"last_name,omitempty"`

	// Company is the prospect's employer name.
	Company string `json:"company"`

	// Title is the prospect's job title, the input to priority scoring.
	Title string `json:"title"`

	// Email is the prospect's email address. Optional.
	Email string `json:"email,omitempty"`

	// LinkedIn is the prospect's LinkedIn profile URL. Optional.
	LinkedIn string `json:"linkedin,omitempty"`

	// Employees is the head count of the prospect's company, or
	// EmployeesUnknown when the source did not provide a usable number.
	Employees int `json:"employees"`
}

// FullName returns the lead's display name, joining first and last name
// with a space. Returns only the first name when the last name is empty.
func (l Lead) FullName() string {
	if l.LastName == "" {
		return l.FirstName
	}
	return l.FirstName + " " + l.LastName
}

// HasEmployees reports whether the lead carries a usable employee count.
func (l Lead) HasEmployees() bool {
	return l.Employees != EmployeesUnknown && l.Employees >= 0
}

// MissingFields returns the names of required fields that are empty.
// An empty slice means the lead is processable.
func (l Lead) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(l.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(l.Company) == "" {
		missing = append(missing, "company")
	}
	if strings.TrimSpace(l.Title) == "" {
		missing = append(missing, "title")
	}
	return missing
}
