// Package model exposes the simulation engine behind a small controller
// surface: bind a project file, create the runnable model, advance it a
// number of annual steps, collect the results.
//
// Create and Run report ordinary failures as returned errors. Engine
// corruption surfaces as a [Fault] in the same error chain, so callers
// have a single failure-handling path with a kind check.
package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/forestlab/silva/internal/forest"
	"github.com/forestlab/silva/internal/project"
)

// RunResult aggregates the output of one model run.
type RunResult struct {
	Years        int // number of recorded years
	Stand        []forest.StandRow
	Trees        []forest.TreeRow
	CarbonSeries []float64 // carbon stock [kg] per recorded year
	Metrics      map[string]float64
}

// Controller owns one simulation model instance for one run. Not safe
// for concurrent use; a fresh controller is expected per run.
type Controller struct {
	projectPath string
	cfg         *project.Config
	land        *forest.Landscape
	metrics     []forest.Metric
	result      *RunResult
	closed      bool
}

// NewController returns an idle controller with the default metric set.
func NewController() *Controller {
	return &Controller{metrics: forest.DefaultMetrics()}
}

// SetProjectFile binds the project configuration location. The file is
// not read or validated here; that happens in Create.
func (c *Controller) SetProjectFile(path string) error {
	if c.closed {
		return ErrClosed
	}
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrNoProject)
	}
	c.projectPath = path
	return nil
}

// SetProjectConfig binds an in-memory project (presets, tests) instead
// of a file on disk.
func (c *Controller) SetProjectConfig(cfg *project.Config) error {
	if c.closed {
		return ErrClosed
	}
	if cfg == nil {
		return ErrNoProject
	}
	c.cfg = cfg
	c.projectPath = cfg.Name
	return nil
}

// Create builds the runnable model from the bound project.
func (c *Controller) Create() error {
	if c.closed {
		return ErrClosed
	}
	if c.land != nil {
		return ErrAlreadyCreated
	}
	if c.cfg == nil {
		if c.projectPath == "" {
			return ErrNoProject
		}
		cfg, err := project.Load(c.projectPath)
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
		c.cfg = cfg
	}

	land, err := forest.New(c.cfg.ForestParams())
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	c.land = land

	for _, m := range c.metrics {
		m.Reset()
	}
	c.result = &RunResult{Metrics: make(map[string]float64)}
	return nil
}

// Run advances the model `steps` years. The step count is exclusive
// over the zero-based year counter: each step records the current year
// and then advances, so Run(n) records years 0..n-1.
func (c *Controller) Run(ctx context.Context, steps int) error {
	if c.closed {
		return ErrClosed
	}
	if c.land == nil {
		return ErrNotCreated
	}
	if steps < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("run interrupted at year %d: %w", c.land.Year(), ctx.Err())
		default:
		}

		c.record()

		if err := c.land.AdvanceYear(); err != nil {
			if errors.Is(err, forest.ErrInvalidBiomass) {
				return &Fault{Err: err}
			}
			return fmt.Errorf("run: %w", err)
		}
	}

	for _, m := range c.metrics {
		c.result.Metrics[m.Name()] = m.Value()
	}
	return nil
}

func (c *Controller) record() {
	c.result.Stand = append(c.result.Stand, c.land.StandSnapshot()...)
	c.result.Trees = append(c.result.Trees, c.land.TreeSnapshot()...)
	c.result.CarbonSeries = append(c.result.CarbonSeries, c.land.Carbon())
	c.result.Years++
	for _, m := range c.metrics {
		m.Observe(c.land)
	}
}

// Year returns the model's current year counter.
func (c *Controller) Year() int {
	if c.land == nil {
		return 0
	}
	return c.land.Year()
}

// Result returns the collected run output, or nil before Create.
func (c *Controller) Result() *RunResult {
	return c.result
}

// Project returns the bound project configuration, or nil before Create.
func (c *Controller) Project() *project.Config {
	return c.cfg
}

// Close releases the model instance. Idempotent.
func (c *Controller) Close() error {
	c.land = nil
	c.closed = true
	return nil
}
