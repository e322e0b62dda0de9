// Package cli implements the command-line interface for hilbertpix.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/eunmann/hilbertpix/pkg/codec"
	"github.com/eunmann/hilbertpix/pkg/fileutil"
	"github.com/eunmann/hilbertpix/pkg/humanfmt"
	"github.com/eunmann/hilbertpix/pkg/logging"
	"github.com/eunmann/hilbertpix/pkg/membudget"
)

// memBudgetEnv overrides the default memory budget; the --mem-budget flag
// takes priority over it.
const memBudgetEnv = "HILBERTPIX_MEM_BUDGET"

const usage = "usage: hilbertpix <mode> [options] INPUT OUTPUT\nmodes: e|-e|--encode, d|-d|--decode"

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "e", "-e", "--encode":
		return runMode("encode", args[1:])
	case "d", "-d", "--decode":
		return runMode("decode", args[1:])
	default:
		return fmt.Errorf("unknown mode: %s\n%s", args[0], usage)
	}
}

func runMode(mode string, args []string) error {
	fs := flag.NewFlagSet(mode, flag.ContinueOnError)
	debug := fs.Bool("debug", false, "enable debug logging")
	pretty := fs.Bool("pretty", false, "human-friendly console log output")
	memBudget := fs.String("mem-budget", "", "max working-set size, e.g. 4GiB (default: 50% of system RAM)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	pos := fs.Args()
	if len(pos) != 2 {
		return fmt.Errorf("expected INPUT and OUTPUT paths, got %d positional arguments\n%s", len(pos), usage)
	}
	inPath, outPath := pos[0], pos[1]

	logging.Init(*debug, *pretty)
	log := logging.WithPhase(mode)

	budget, err := determineMemoryBudget(*memBudget)
	if err != nil {
		return err
	}
	log.Debug().
		Uint64("budget_bytes", budget.Total()).
		Str("budget_source", string(budget.Source())).
		Msg("memory budget resolved")

	input, err := fileutil.ReadAll(inPath)
	if err != nil {
		return err
	}

	start := time.Now()
	var output []byte
	switch mode {
	case "encode":
		plan := codec.PlanFor(len(input))
		log.Debug().
			Uint("order", plan.Order).
			Int("side", plan.Side).
			Int("grid_bytes", plan.GridBytes).
			Msg("grid planned")

		// Input, the grid, and the serialized copy of the grid all coexist.
		working := uint64(len(input)) + 2*uint64(plan.GridBytes)
		if err := budget.Check(working); err != nil {
			return err
		}
		output, err = codec.Encode(input)
	case "decode":
		// The parsed image borrows the input; only the payload is allocated.
		if err := budget.Check(2 * uint64(len(input))); err != nil {
			return err
		}
		output, err = codec.Decode(input)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", mode, inPath, err)
	}

	if err := fileutil.WriteAtomic(outPath, output); err != nil {
		return err
	}

	elapsed := time.Since(start)
	e := log.Info().
		Str("input", inPath).
		Str("output", outPath).
		Int("input_bytes", len(input)).
		Int("output_bytes", len(output)).
		Int64("duration_ms", elapsed.Milliseconds())
	if logging.IsPrettyMode() {
		e = e.
			Str("input_h", humanfmt.Bytes(int64(len(input)))).
			Str("output_h", humanfmt.Bytes(int64(len(output)))).
			Str("duration_h", humanfmt.Duration(elapsed)).
			Str("throughput_h", humanfmt.Throughput(int64(len(input)), elapsed))
	}
	e.Msg(mode + " completed")

	return nil
}

// determineMemoryBudget resolves the budget from the CLI flag, the
// environment, or detected system RAM, in that priority order.
func determineMemoryBudget(cliValue string) (*membudget.Budget, error) {
	if cliValue != "" {
		n, err := membudget.ParseHumanSize(cliValue)
		if err != nil {
			return nil, fmt.Errorf("--mem-budget: %w", err)
		}
		return membudget.New(n, membudget.SourceCLI), nil
	}

	if envValue := os.Getenv(memBudgetEnv); envValue != "" {
		n, err := membudget.ParseHumanSize(envValue)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", memBudgetEnv, err)
		}
		return membudget.New(n, membudget.SourceEnv), nil
	}

	return membudget.FromSystemRAM(), nil
}
