// Package pipeline orchestrates per-lead processing as an ordered list of
// steps. Each lead flows through classification and rendering in sequence;
// a step failure marks that lead as failed and the batch moves on, so one
// bad row never sinks the run.
package pipeline
