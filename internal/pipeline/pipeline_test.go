package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, lead *model.LeadReport) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, lead *model.LeadReport) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, lead)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// newTestRun builds a run report with n placeholder leads.
func newTestRun(n int) *model.RunReport {
	run := model.NewRunReport("leads.csv")
	for i := 0; i < n; i++ {
		run.Leads = append(run.Leads, model.LeadReport{
			Lead: model.Lead{Row: i + 2, FirstName: "Ana", Company: "Zylo"},
		})
	}
	return run
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
	})

	t.Run("applies WithFailFast option", func(t *testing.T) {
		t.Parallel()

		p := New(WithFailFast(true))

		if !p.failFast {
			t.Error("expected failFast to be true")
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("adds multiple steps with AddSteps", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(
			&mockStep{name: "step-1"},
			&mockStep{name: "step-2"},
			&mockStep{name: "step-3"},
		)

		if p.StepCount() != 3 {
			t.Errorf("expected 3 steps, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "first"})
		p.AddStep(&mockStep{name: "second"})
		p.AddStep(&mockStep{name: "third"})

		names := p.StepNames()

		expected := []string{"first", "second", "third"}
		for i, name := range names {
			if name != expected[i] {
				t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
			}
		}
	})
}

// TestPipelineExecute tests pipeline execution across a run.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps for every lead in order", func(t *testing.T) {
		t.Parallel()

		executionOrder := make([]string, 0)

		p := New()
		p.AddStep(&mockStep{
			name: "step-1",
			doFunc: func(_ context.Context, _ *model.LeadReport) error {
				executionOrder = append(executionOrder, "step-1")
				return nil
			},
		})
		p.AddStep(&mockStep{
			name: "step-2",
			doFunc: func(_ context.Context, _ *model.LeadReport) error {
				executionOrder = append(executionOrder, "step-2")
				return nil
			},
		})

		run := newTestRun(2)
		if err := p.Execute(context.Background(), run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"step-1", "step-2", "step-1", "step-2"}
		if len(executionOrder) != len(want) {
			t.Fatalf("expected %d executions, got %d", len(want), len(executionOrder))
		}
		for i, name := range want {
			if executionOrder[i] != name {
				t.Errorf("execution %d: got %q, expected %q", i, executionOrder[i], name)
			}
		}
	})

	t.Run("records error on failed lead and continues batch", func(t *testing.T) {
		t.Parallel()

		stepErr := errors.New("step failed")

		p := New()
		p.AddStep(&mockStep{
			name: "failing-step",
			doFunc: func(_ context.Context, lead *model.LeadReport) error {
				if lead.Lead.Row == 2 {
					return stepErr
				}
				return nil
			},
		})

		run := newTestRun(3)
		if err := p.Execute(context.Background(), run); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}

		if !run.Leads[0].Failed() {
			t.Error("expected first lead to be marked failed")
		}
		if run.Leads[0].ErrorMessage != stepErr.Error() {
			t.Errorf("error message = %q, want %q", run.Leads[0].ErrorMessage, stepErr.Error())
		}
		if run.Leads[1].Failed() || run.Leads[2].Failed() {
			t.Error("expected remaining leads to process cleanly")
		}
		if run.FailedCount() != 1 {
			t.Errorf("FailedCount() = %d, want 1", run.FailedCount())
		}
	})

	t.Run("skips remaining steps for a failed lead", func(t *testing.T) {
		t.Parallel()

		second := &mockStep{name: "should-not-run"}

		p := New()
		p.AddStep(&mockStep{
			name: "failing-step",
			doFunc: func(_ context.Context, _ *model.LeadReport) error {
				return errors.New("step failed")
			},
		})
		p.AddStep(second)

		run := newTestRun(1)
		_ = p.Execute(context.Background(), run)

		if second.callCount != 0 {
			t.Errorf("expected downstream step not to run, ran %d times", second.callCount)
		}
	})

	t.Run("fail fast aborts on first lead error", func(t *testing.T) {
		t.Parallel()

		stepErr := errors.New("step failed")
		step := &mockStep{
			doFunc: func(_ context.Context, lead *model.LeadReport) error {
				if lead.Lead.Row == 2 {
					return stepErr
				}
				return nil
			},
		}

		p := New(WithFailFast(true))
		p.AddStep(step)

		run := newTestRun(3)
		err := p.Execute(context.Background(), run)

		if !errors.Is(err, stepErr) {
			t.Errorf("expected error %v, got %v", stepErr, err)
		}
		if step.callCount != 1 {
			t.Errorf("expected 1 call before abort, got %d", step.callCount)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "should-not-run"}
		p := New()
		p.AddStep(step)

		run := newTestRun(1)
		err := p.Execute(ctx, run)

		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.callCount != 0 {
			t.Error("step should not have been called")
		}
	})

	t.Run("empty run is a no-op", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "step"})

		run := newTestRun(0)
		if err := p.Execute(context.Background(), run); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestPipelineStepNames tests the StepNames method.
func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice for empty pipeline", func(t *testing.T) {
		t.Parallel()

		p := New()
		if names := p.StepNames(); len(names) != 0 {
			t.Errorf("expected empty slice, got %v", names)
		}
	})

	t.Run("returns names in order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(
			&mockStep{name: "alpha"},
			&mockStep{name: "beta"},
			&mockStep{name: "gamma"},
		)

		names := p.StepNames()

		if len(names) != 3 {
			t.Fatalf("expected 3 names, got %d", len(names))
		}
		if names[0] != "alpha" || names[1] != "beta" || names[2] != "gamma" {
			t.Errorf("unexpected names: %v", names)
		}
	})
}
