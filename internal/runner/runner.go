package runner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/tms/pkg/core/logging"
	"github.com/msto63/tms/pkg/trm"
)

// ErrStepLimit is returned when a bounded run exceeds its step budget. The
// engine itself never imposes a limit; the bound lives here, in the caller.
var ErrStepLimit = errors.New("step limit exceeded")

// Runner drives a machine from input to halt and collects the outcome.
type Runner struct {
	machine *trm.Machine
	logger  *logging.Logger

	// MaxSteps aborts the run with ErrStepLimit when positive.
	MaxSteps int
	// Trace records an identifier snapshot after every step.
	Trace bool
}

// Result describes one completed run.
type Result struct {
	RunID    string
	Accepted bool
	Steps    int
	Duration time.Duration
	Final    trm.MachineIdentifier
	// Trace holds the per-step snapshots when tracing was enabled. The final
	// configuration is the last entry.
	Trace []trm.MachineIdentifier
}

// New creates a runner around a machine.
func New(machine *trm.Machine, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.New("runner")
	}
	return &Runner{machine: machine, logger: logger}
}

// Run resets the machine, feeds it the input and steps until it halts, the
// step budget is exhausted, or a running error occurs.
func (r *Runner) Run(input string) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	r.logger.Debug("starting run", "run_id", result.RunID, "input", input)

	r.machine.Reset()
	r.machine.Input(input)

	start := time.Now()
	for {
		halted, err := r.machine.RunOnce()
		if err != nil {
			r.logger.Error("run failed", "run_id", result.RunID, "step", result.Steps, "error", err)
			return nil, fmt.Errorf("step %d: %w", result.Steps, err)
		}
		if halted {
			break
		}
		result.Steps++
		if r.Trace {
			result.Trace = append(result.Trace, r.machine.Identifier())
		}
		if r.MaxSteps > 0 && result.Steps >= r.MaxSteps {
			r.logger.Warn("step limit exceeded", "run_id", result.RunID, "max_steps", r.MaxSteps)
			return nil, fmt.Errorf("after %d steps: %w", result.Steps, ErrStepLimit)
		}
	}

	result.Duration = time.Since(start)
	result.Accepted = r.machine.IsFinal()
	result.Final = r.machine.Identifier()

	r.logger.Debug("run finished",
		"run_id", result.RunID,
		"accepted", result.Accepted,
		"steps", result.Steps,
		"state", result.Final.CurrentState)
	return result, nil
}

// Format renders an identifier as a human-readable block.
func Format(id trm.MachineIdentifier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s\n", id.CurrentState)
	for i, tape := range id.Tape {
		fmt.Fprintf(&b, "Tape %d: %s\n", i, tape.Tape)
		fmt.Fprintf(&b, "Head %d: %d\n", i, tape.Head)
		fmt.Fprintf(&b, "Range (%d..%d)\n", tape.Start, tape.End)
	}
	return b.String()
}
