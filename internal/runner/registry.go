package runner

import (
	"errors"
	"sync"
)

// ErrSlotOccupied indicates a Register while another controller is
// still bound.
var ErrSlotOccupied = errors.New("runner: a controller is already registered")

// Registry is a single-slot binding for the active controller. It
// replaces an implicit process-wide settings handle with an explicit
// register/release pair scoped to one run, so repeated runs can never
// alias each other's controller.
type Registry struct {
	mu     sync.Mutex
	active Controller
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds c as the active controller and returns the release
// function. Registering while the slot is occupied is an error, not an
// overwrite.
func (r *Registry) Register(c Controller) (func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		return nil, ErrSlotOccupied
	}
	r.active = c
	released := false
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if !released {
			r.active = nil
			released = true
		}
	}, nil
}

// Active returns the currently bound controller, or nil.
func (r *Registry) Active() Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}
