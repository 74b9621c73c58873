// Command gojson parses a JSON document and reports statistics about it,
// optionally printing the parsed tree back out in compact or pretty form.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	gojson "github.com/shan-anand/gojson"
)

// logger is the CLI's diagnostic-stream logger. The gojson library itself
// never logs; logging is a CLI-layer concern only.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func main() {
	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:           "gojson [flags] <path>",
		Short:         "Parse a JSON document and report statistics",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args[0])
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("gojson failed")
		os.Exit(1)
	}
}

func run(cfg *Config, path string) error {
	ctrl, err := cfg.control()
	if err != nil {
		return err
	}

	show, format, err := cfg.outputFormat()
	if err != nil {
		return err
	}

	val, stats, err := openAndParse(cfg, path, ctrl)
	if err != nil {
		return err
	}

	if show {
		out, encErr := val.Encode(format)
		if encErr != nil {
			return encErr
		}
		fmt.Println(out)
	}

	logger.Info().
		Str("path", path).
		Str("use", cfg.Use).
		Dur("duration", time.Duration(stats.DurationNS)).
		Msg(stats.String())

	return nil
}

// openAndParse dispatches on --use to parse through a memory-mapped file or
// a plain in-memory buffer.
func openAndParse(cfg *Config, path string, ctrl gojson.Control) (*gojson.Value, *gojson.Stats, error) {
	switch cfg.Use {
	case "mmap":
		in, err := gojson.OpenMmap(path)
		if err != nil {
			return nil, nil, err
		}
		defer in.Close()
		return gojson.ParseInput(in, ctrl)
	case "data", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return gojson.ParseBytes(data, ctrl)
	default:
		return nil, nil, fmt.Errorf("%w: unknown --use value %q", ErrInvalidOption, cfg.Use)
	}
}
