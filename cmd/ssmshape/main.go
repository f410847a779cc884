// ssmshape - inspect and validate AWS Systems Manager API bodies offline
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/wadahiro/ssmshapes/internal/clock"
	"github.com/wadahiro/ssmshapes/internal/log"
)

var version = "dev"

var logger = log.For(log.ComponentCLI)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := newApp(stdout, stderr, clock.RealClock{}).Run(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadDotEnv exports the variables of path unless they are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func newApp(stdout, stderr io.Writer, clk clock.Clock) *cli.App {
	st := &state{stdout: stdout, stderr: stderr, clock: clk}

	operationFlag := &cli.StringFlag{
		Name:    "operation",
		Aliases: []string{"o"},
		Usage:   "SSM operation name, e.g. SendCommand (default: from the profile)",
	}
	outputFlag := &cli.BoolFlag{
		Name:  "output",
		Usage: "Decode the response shape instead of the request shape",
	}
	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Rendering of shapes (text, json)",
	}

	return &cli.App{
		Name:      "ssmshape",
		Usage:     "Inspect and validate AWS Systems Manager API bodies",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"SSMSHAPE_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				EnvVars: []string{"SSMSHAPE_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: ~/.config/ssmshape/config.toml)",
				EnvVars: []string{"SSMSHAPE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Config profile name",
				EnvVars: []string{"SSMSHAPE_PROFILE"},
			},
		},
		Before: st.before,
		Commands: []*cli.Command{
			{
				Name:   "operations",
				Usage:  "List the operations whose shapes are known",
				Action: st.operationsAction,
			},
			{
				Name:      "enums",
				Usage:     "List enumerations, or the wire values of one",
				ArgsUsage: "[NAME]",
				Action:    st.enumsAction,
			},
			{
				Name:      "validate",
				Usage:     "Check a request body against the service constraints",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					operationFlag,
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Also reject enum values unknown to this build",
					},
					&cli.BoolFlag{
						Name:  "fill-tokens",
						Usage: "Generate missing idempotency tokens before checking",
					},
					&cli.StringSliceFlag{
						Name:  "ignore-field",
						Usage: "Suppress problems on a member path or glob, e.g. SendCommandInput.Targets or *.Comment (repeatable)",
					},
					&cli.BoolFlag{
						Name:    "watch",
						Aliases: []string{"w"},
						Usage:   "Re-validate whenever FILE changes",
					},
					&cli.DurationFlag{
						Name:  "watch-debounce",
						Usage: "Quiet period before re-validating (default: 300ms)",
					},
				},
				Action: st.validateAction,
			},
			{
				Name:      "show",
				Usage:     "Decode a body and print it",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{operationFlag, outputFlag, formatFlag},
				Action:    st.showAction,
			},
			{
				Name:      "compare",
				Usage:     "Compare two bodies field by field",
				ArgsUsage: "A B",
				Flags: []cli.Flag{
					operationFlag,
					outputFlag,
					&cli.BoolFlag{
						Name:  "exit-code",
						Usage: "Fail when the shapes differ",
					},
				},
				Action: st.compareAction,
			},
		},
	}
}
