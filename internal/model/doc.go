// Package model defines the core data structures used throughout leadscript.
//
// This package contains the following main types:
//   - Lead: A single prospect record parsed from the input file
//   - Priority: The outreach priority tier (P1/P2/P3) of a lead
//   - Archetype: The company profile classification driving message tone
//   - ScriptOutput: The generated outreach copy for a single lead
//   - RunReport: The result of processing an entire lead file
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (loader, classify, render, report) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
// Classifications are derived values: they are recomputed on every run and
// never persisted.
package model
