package pipeline

import (
	"context"
	"log/slog"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps run in sequence for each lead, with each step receiving the
// accumulated per-lead report from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state (rules, templates)
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., enrichment steps)
type Step interface {
	// Do executes the pipeline step for one lead.
	// It receives the context for cancellation, and the lead report to
	// modify. A returned error fails that lead only: the pipeline records
	// it and skips the lead's remaining steps.
	Do(ctx context.Context, lead *model.LeadReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of steps across every lead in a run.
// It maintains a list of steps and executes them in order per lead.
type Pipeline struct {
	// steps contains the ordered list of steps to execute per lead.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// failFast aborts the whole run on the first per-lead failure.
	// The default keeps going: a bad row is recorded and the batch
	// continues, which is what bulk outreach generation wants.
	failFast bool
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, the default logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithFailFast configures the pipeline to stop the whole run when any lead
// fails a step. Without it, failures are recorded per lead and remaining
// leads still process.
func WithFailFast(failFast bool) Option {
	return func(p *Pipeline) {
		p.failFast = failFast
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs every pipeline step for every lead in the run report.
//
// Design decision: We check context.Done() between leads rather than
// between steps, because per-lead work is cheap and cancellation is about
// abandoning the batch, not a single row.
//
// Returns the first per-lead error when failFast is set, a context error
// when cancelled mid-run, and nil otherwise (per-lead errors are recorded
// on the leads themselves).
func (p *Pipeline) Execute(ctx context.Context, run *model.RunReport) error {
	for i := range run.Leads {
		select {
		case <-ctx.Done():
			p.logger.Warn("run cancelled",
				"processed", i,
				"total", len(run.Leads),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		lead := &run.Leads[i]
		if err := p.processLead(ctx, lead); err != nil {
			if p.failFast {
				return err
			}
		}
	}

	return nil
}

// processLead runs all steps for a single lead, stopping at the first
// failing step. The error is recorded on the lead before returning.
func (p *Pipeline) processLead(ctx context.Context, lead *model.LeadReport) error {
	for _, step := range p.steps {
		p.logger.Debug("executing step",
			"step", step.Name(),
			"row", lead.Lead.Row,
			"company", lead.Lead.Company,
		)

		if err := step.Do(ctx, lead); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"row", lead.Lead.Row,
				"company", lead.Lead.Company,
				"error", err,
			)
			lead.SetError(err)
			return err
		}
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
