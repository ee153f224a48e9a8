package runner

import (
	"context"
	"fmt"

	"github.com/forestlab/silva/internal/model"
	"github.com/forestlab/silva/internal/report"
)

// Controller is the surface the orchestrator drives. Every phase call
// reports failure through its returned error; the orchestrator never
// inspects controller internals.
type Controller interface {
	SetProjectFile(path string) error
	Create() error
	Run(ctx context.Context, steps int) error
	Close() error
}

// Factory constructs a fresh controller. One controller per run
// invocation; instances are never reused.
type Factory func() Controller

// Orchestrator owns the phase sequence for simulation runs.
type Orchestrator struct {
	projectPath string
	factory     Factory
	registry    *Registry
	reporter    *report.Reporter
}

// New returns an orchestrator bound to a project file location. A nil
// factory defaults to the real model controller; a nil registry gets a
// private one; a nil reporter discards diagnostics.
func New(projectPath string, factory Factory, registry *Registry, reporter *report.Reporter) *Orchestrator {
	if factory == nil {
		factory = func() Controller { return model.NewController() }
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Orchestrator{
		projectPath: projectPath,
		factory:     factory,
		registry:    registry,
		reporter:    reporter,
	}
}

// Execute drives one run of yearsToRun simulated years and returns its
// outcome. The outcome is reported before Execute returns, and no
// failure of any kind escapes: validation problems, flagged phase
// errors, engine faults and panics all land in the returned Outcome.
func (o *Orchestrator) Execute(ctx context.Context, yearsToRun int) Outcome {
	var out Outcome
	if yearsToRun < 0 {
		out = ValidationRejected(fmt.Sprintf("%d is an invalid number of years to run", yearsToRun))
	} else {
		out = o.runPhases(ctx, yearsToRun)
	}
	o.report(out, yearsToRun)
	return out
}

// runPhases executes configure -> create -> run with a fail-fast stop
// at the first error. The deferred recover is the single exception
// boundary: anything the controller throws becomes an Aborted outcome.
func (o *Orchestrator) runPhases(ctx context.Context, yearsToRun int) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Aborted(fmt.Sprint(r))
		}
	}()

	ctrl := o.factory()
	release, err := o.registry.Register(ctrl)
	if err != nil {
		ctrl.Close()
		return Aborted(err.Error())
	}
	defer func() {
		ctrl.Close()
		release()
	}()

	if err := ctrl.SetProjectFile(o.projectPath); err != nil {
		return o.failure(PhaseConfigure, err)
	}

	o.reporter.Phase("creating model...")
	if err := ctrl.Create(); err != nil {
		return o.failure(PhaseCreate, err)
	}

	o.reporter.Banner(fmt.Sprintf("running model for %d years", yearsToRun))
	// The controller treats the step count as exclusive over its
	// zero-based year counter, so one extra step makes the final
	// recorded year equal yearsToRun.
	if err := ctrl.Run(ctx, yearsToRun+1); err != nil {
		return o.failure(PhaseRun, err)
	}

	return Completed()
}

// failure maps a phase error to its outcome kind: engine faults abort
// the run, everything else is a flagged phase failure.
func (o *Orchestrator) failure(phase Phase, err error) Outcome {
	if model.IsFault(err) {
		return Aborted(err.Error())
	}
	return PhaseFailed(phase, err.Error())
}

func (o *Orchestrator) report(out Outcome, yearsToRun int) {
	switch out.Status {
	case StatusCompleted:
		o.reporter.Completed("model run finished.")
	case StatusValidationRejected:
		o.reporter.ErrorBlock("invalid run request", out.Message)
	case StatusPhaseFailed:
		o.reporter.ErrorBlock(fmt.Sprintf("error in phase %q", out.Phase), out.Message)
	case StatusAborted:
		o.reporter.ErrorBlock("model run aborted", out.Message)
	}
}
