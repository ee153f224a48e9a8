package forest

import "errors"

// Domain errors for landscape construction and stepping.
var (
	// ErrNoSpecies indicates a parameter set without any species.
	ErrNoSpecies = errors.New("forest: no species defined")

	// ErrGridSize indicates a non-positive stand grid size.
	ErrGridSize = errors.New("forest: grid size must be positive")

	// ErrInvalidBiomass indicates a tree reached a NaN/Inf/negative
	// biomass pool, i.e. the engine state is corrupt.
	ErrInvalidBiomass = errors.New("forest: invalid biomass state")
)

// StepError wraps an engine error with the year it occurred in.
type StepError struct {
	Year    int
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
