package model

import "errors"

// Flagged errors: ordinary failures the controller reports from
// Create/Run. The orchestrator treats them as phase failures.
var (
	// ErrNoProject indicates Create was called before a project file
	// was bound.
	ErrNoProject = errors.New("model: no project file bound")

	// ErrNotCreated indicates Run was called before Create.
	ErrNotCreated = errors.New("model: model not created")

	// ErrAlreadyCreated indicates a second Create on the same controller.
	ErrAlreadyCreated = errors.New("model: model already created")

	// ErrClosed indicates use of a controller after Close.
	ErrClosed = errors.New("model: controller closed")

	// ErrNegativeSteps indicates a negative step count passed to Run.
	ErrNegativeSteps = errors.New("model: negative step count")
)

// Fault marks an exceptional engine failure (corrupt state, violated
// invariant) as opposed to a flagged error. Both travel the same error
// chain; the caller distinguishes them with [IsFault].
type Fault struct {
	Err error
}

func (f *Fault) Error() string {
	return "model fault: " + f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// IsFault reports whether err carries a Fault anywhere in its chain.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}
