package sdemark

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// RunLog is the JSON record of one probe run, written next to the SDE
// output so a mix analysis can be matched with the operations that
// produced it.
type RunLog struct {
	Timestamp time.Time `json:"timestamp"`
	GoVersion string    `json:"go_version"`
	GOARCH    string    `json:"goarch"`
	CPUInfo   string    `json:"cpu_info"`
	Forced    bool      `json:"forced,omitempty"`
	Results   []Result  `json:"results"`
	Sum       float32   `json:"sum"`
	ExitCode  int       `json:"exit_code"`
}

// NewRunLog assembles the log for a completed run.
func NewRunLog(results []Result, sum float32, forced bool) *RunLog {
	return &RunLog{
		Timestamp: time.Now(),
		GoVersion: runtime.Version(),
		GOARCH:    runtime.GOARCH,
		CPUInfo:   CPUInfo(),
		Forced:    forced,
		Results:   results,
		Sum:       sum,
		ExitCode:  ExitCode(sum),
	}
}

// WriteFile writes the log as indented JSON to path.
func (l *RunLog) WriteFile(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal run log")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write run log %s", path)
	}
	return nil
}
