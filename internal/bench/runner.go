package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/HatiCode/jsondate/pkg/logging"
)

type Result struct {
	Name       string
	Iterations int
	Elapsed    time.Duration
}

// Runner times registry entries one after another on the calling goroutine.
type Runner struct {
	config *Config
	logger logging.Logger
	now    func() time.Time
}

func NewRunner(config *Config, logger logging.Logger) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		config: config,
		logger: logger.With("component", "bench_runner"),
		now:    time.Now,
	}, nil
}

// Run calls every selected entry Iterations times and writes one report line
// per entry as soon as it finishes. The first failing call aborts the run;
// lines already written stay written.
func (r *Runner) Run(reg *Registry, w io.Writer) ([]Result, error) {
	entries := reg.Select(r.config.Prefix)
	n := r.config.Iterations

	r.logger.Info("starting benchmark run",
		"iterations", n,
		"strategies", len(entries),
		"prefix", r.config.Prefix)
	if len(entries) == 0 {
		r.logger.Warn("no strategies selected", "prefix", r.config.Prefix, "registered", reg.Len())
	}

	if _, err := fmt.Fprintf(w, "Testing each function with %d iterations\n", n); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		r.logger.Debug("timing strategy", "strategy", e.Name)

		elapsed, err := r.time(e, n)
		if err != nil {
			r.logger.Error("strategy failed", "strategy", e.Name, "error", err)
			return results, err
		}

		res := Result{Name: e.Name, Iterations: n, Elapsed: elapsed}
		results = append(results, res)
		if _, err := fmt.Fprintln(w, res.String()); err != nil {
			return results, fmt.Errorf("failed to write report line for %s: %w", e.Name, err)
		}
	}

	r.logger.Info("benchmark run complete", "strategies", len(results))
	return results, nil
}

func (r *Runner) time(e Entry, n int) (time.Duration, error) {
	start := r.now()
	for i := 0; i < n; i++ {
		if err := e.Fn(); err != nil {
			return 0, fmt.Errorf("strategy %s failed on iteration %d: %w", e.Name, i+1, err)
		}
	}
	return r.now().Sub(start), nil
}

// String renders the report line, e.g. "0.042137s for encode_simple".
func (res Result) String() string {
	return fmt.Sprintf("%0.6fs for %s", res.Elapsed.Seconds(), res.Name)
}
