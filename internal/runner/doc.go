// Package runner drives a single simulation run through a fixed phase
// sequence: validate, configure, create, run. The first failure is
// terminal for the invocation; there are no retry edges.
//
// Each invocation constructs a fresh controller through a [Factory],
// binds it into a single-slot [Registry] for the duration of the run,
// and releases it on every exit path. Failures never escape Execute:
// flagged controller errors become PhaseFailed outcomes, engine faults
// and panics become Aborted outcomes.
package runner
