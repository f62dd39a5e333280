package sdemark

import (
	"math"
	"time"

	"k8s.io/klog/v2"
)

// Result captures one dispatched operation for the run log.
type Result struct {
	Name      string        `json:"name"`
	Feature   string        `json:"feature"`
	Available bool          `json:"available"`
	Forced    bool          `json:"forced,omitempty"`
	Kernel    string        `json:"kernel"` // "amd64" or "reference"
	Value     float32       `json:"value"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// Runner executes a selection of operations, each exactly once and each
// fully bracketed by its own marker pair before the next begins.
// Overlapping instrumented regions would corrupt the external trace's
// FLOP attribution, so the run is strictly sequential.
type Runner struct {
	// Force dispatches operations whose ISA extension the host does not
	// report. Under SDE emulation the instructions execute regardless of
	// host support; on bare hardware a forced unsupported operation dies
	// with SIGILL, which is the intended configuration-mismatch outcome.
	Force bool
}

// Validate checks the selection before anything is dispatched. All
// configuration errors surface here; Dispatch itself has no fallback
// path.
func (r *Runner) Validate(ops []Operation) error {
	for _, op := range ops {
		if op.Kernel == nil {
			return NewConfigError(op.Name, "operation has no kernel")
		}
		if !op.Available && !r.Force {
			return NewUnsupportedError(op.Name, op.Feature)
		}
	}
	return nil
}

// Run validates ops, dispatches each once in the given order, and
// returns the left-to-right accumulated scalar sum along with the
// per-operation results. The sum is the run's only output besides the
// trace itself; it exists so the optimizer cannot discard any
// operation's result.
func (r *Runner) Run(ops []Operation, set *Operands) (float32, []Result, error) {
	if err := r.Validate(ops); err != nil {
		return 0, nil, err
	}

	var sum float32
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		kernel := "reference"
		if op.HasKernel {
			kernel = "amd64"
		}
		if !op.Available {
			klog.Warningf("forcing %s: host CPU does not report %s", op.Name, op.Feature)
		}
		klog.V(1).Infof("dispatching %s (%s, %s kernel)", op.Name, op.Feature, kernel)

		start := time.Now()
		val := Dispatch(op, set)
		elapsed := time.Since(start)

		sum += val
		results = append(results, Result{
			Name:      op.Name,
			Feature:   op.Feature,
			Available: op.Available,
			Forced:    !op.Available,
			Kernel:    kernel,
			Value:     val,
			Duration:  elapsed,
			Timestamp: start,
		})
		klog.V(1).Infof("%s returned %g in %v", op.Name, val, elapsed)
	}
	return sum, results, nil
}

// ExitCode converts the accumulated sum into the process exit value:
// the truncated integer value of the sum. The value carries no meaning
// to callers beyond defeating dead-code elimination.
func ExitCode(sum float32) int {
	if math.IsNaN(float64(sum)) || math.IsInf(float64(sum), 0) {
		return 0
	}
	return int(sum)
}
