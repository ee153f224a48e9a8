package runner

import "fmt"

// Status classifies the terminal state of one run invocation.
type Status int

const (
	StatusCompleted Status = iota
	StatusValidationRejected
	StatusPhaseFailed
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusValidationRejected:
		return "validation rejected"
	case StatusPhaseFailed:
		return "phase failed"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Phase names one step of the run pipeline.
type Phase string

const (
	PhaseConfigure Phase = "configure"
	PhaseCreate    Phase = "create"
	PhaseRun       Phase = "run"
)

// Process exit codes per outcome status. General CLI usage errors keep
// the conventional exit 1.
const (
	ExitCompleted          = 0
	ExitValidationRejected = 2
	ExitPhaseFailed        = 3
	ExitAborted            = 4
)

// Outcome is the terminal classification of one run invocation. It is
// created fresh per invocation and never reused.
type Outcome struct {
	Status  Status
	Phase   Phase // set only for StatusPhaseFailed
	Message string
}

func Completed() Outcome {
	return Outcome{Status: StatusCompleted}
}

func ValidationRejected(reason string) Outcome {
	return Outcome{Status: StatusValidationRejected, Message: reason}
}

func PhaseFailed(phase Phase, message string) Outcome {
	return Outcome{Status: StatusPhaseFailed, Phase: phase, Message: message}
}

func Aborted(message string) Outcome {
	return Outcome{Status: StatusAborted, Message: message}
}

// ExitCode maps the outcome to its process exit status.
func (o Outcome) ExitCode() int {
	switch o.Status {
	case StatusCompleted:
		return ExitCompleted
	case StatusValidationRejected:
		return ExitValidationRejected
	case StatusPhaseFailed:
		return ExitPhaseFailed
	default:
		return ExitAborted
	}
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusCompleted:
		return "completed"
	case StatusPhaseFailed:
		return fmt.Sprintf("%s failed: %s", o.Phase, o.Message)
	default:
		return fmt.Sprintf("%s: %s", o.Status, o.Message)
	}
}
