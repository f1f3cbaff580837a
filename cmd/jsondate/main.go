// Command jsondate times the JSON date/time strategies against the example
// document and prints one line per strategy to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/HatiCode/jsondate/internal/bench"
	"github.com/HatiCode/jsondate/internal/strategy"
	"github.com/HatiCode/jsondate/pkg/logging"
	"github.com/HatiCode/jsondate/pkg/models"
)

func main() {
	config := bench.DefaultConfig()
	logger := logging.NewLogger(config.Logging)

	if err := run(config, logger, models.DefaultFixtures(), os.Stdout); err != nil {
		logger.Error("benchmark aborted", "error", err)
		os.Exit(1)
	}
}

func run(config *bench.Config, logger logging.Logger, fixtures *models.Fixtures, out io.Writer) error {
	registry := bench.NewRegistry()
	if err := strategy.RegisterWith(registry, fixtures); err != nil {
		return err
	}

	runner, err := bench.NewRunner(config, logger)
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}

	_, err = runner.Run(registry, out)
	return err
}
