package pipeline

import (
	"context"

	"github.com/BasinLeon/lead-script-generator/internal/classify"
	"github.com/BasinLeon/lead-script-generator/internal/model"
	"github.com/BasinLeon/lead-script-generator/internal/render"
)

// ClassifyStep assigns the priority tier and company archetype to a lead.
// It runs before rendering because the classification selects which
// template family the renderer uses.
type ClassifyStep struct {
	// classifier applies the keyword and threshold rules.
	classifier *classify.Classifier
}

// NewClassifyStep creates a classification step backed by the given
// classifier.
func NewClassifyStep(classifier *classify.Classifier) *ClassifyStep {
	return &ClassifyStep{classifier: classifier}
}

// Name returns the step name.
func (s *ClassifyStep) Name() string {
	return "classify"
}

// Do executes the classification step. Classification is total: every lead
// gets a tier and an archetype, so this step never fails.
func (s *ClassifyStep) Do(_ context.Context, lead *model.LeadReport) error {
	lead.Classification = s.classifier.Classify(lead.Lead)
	return nil
}

// RenderStep produces the outreach scripts for a classified lead.
type RenderStep struct {
	// renderer fills the templates selected by the classification.
	renderer *render.Renderer
}

// NewRenderStep creates a rendering step backed by the given renderer.
func NewRenderStep(renderer *render.Renderer) *RenderStep {
	return &RenderStep{renderer: renderer}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do executes the rendering step. A template referencing an unknown
// placeholder fails this lead; the pipeline records the error and the
// batch continues.
func (s *RenderStep) Do(_ context.Context, lead *model.LeadReport) error {
	script, err := s.renderer.Render(lead.Lead, lead.Classification)
	if err != nil {
		return err
	}
	lead.Script = script
	return nil
}
