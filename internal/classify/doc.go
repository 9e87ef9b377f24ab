// Package classify derives a lead's priority tier and company archetype
// from rule-based heuristics.
//
// Classification is a pure function of the lead and the configured rule
// set: no side effects, no error paths. Missing data propagates as
// defaults (P3 for unmatched titles, Mid-Market for unknown company size),
// never as errors.
//
// Design decision: The classifier takes its Ruleset at construction and
// never mutates it, so a single Classifier is safe to reuse across an
// entire run and results are reproducible for a given configuration.
package classify
