// Package loader reads lead CSV files and resolves their headers onto the
// canonical lead schema.
//
// CRM exports name their columns inconsistently ("First Name", "firstname",
// "name", ...), so the loader normalizes headers and maps them through a
// static alias table checked once at load time. A required canonical column
// with no matching header fails the whole import with a MissingColumnError;
// a required field that is merely empty in one row only skips that row.
//
// Design decision: The alias table is a fixed mapping resolved up front
// rather than duck-typed per-row lookups. This surfaces schema problems
// immediately, before any lead is processed, and makes the supported
// aliases documentable and testable.
package loader
