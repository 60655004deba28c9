package usecase

import (
	"context"
	"fmt"
)

// Pipeline runs named steps in order and stops at the first failure.
// Steps that already completed are not undone.
type Pipeline struct {
	steps []Step
}

type Step struct {
	Name string
	Fn   func(context.Context) error
}

type StepError struct {
	Step  string
	Index int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step '%s' failed: %v (%d step(s) already completed)", e.Step, e.Err, e.Index)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) AddStep(name string, fn func(context.Context) error) {
	p.steps = append(p.steps, Step{name, fn})
}

func (p *Pipeline) Execute(ctx context.Context) error {
	for i, step := range p.steps {
		if err := step.Fn(ctx); err != nil {
			return &StepError{Step: step.Name, Index: i, Err: err}
		}
	}
	return nil
}
