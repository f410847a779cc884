package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/wadahiro/ssmshapes/internal/clock"
	"github.com/wadahiro/ssmshapes/internal/config"
	"github.com/wadahiro/ssmshapes/internal/inspect"
	"github.com/wadahiro/ssmshapes/internal/log"
	"github.com/wadahiro/ssmshapes/internal/watch"
	"github.com/wadahiro/ssmshapes/ssm"
)

var (
	errInvalid   = errors.New("invalid shape")
	errDifferent = errors.New("shapes differ")
)

// state is shared by the commands of one invocation.
type state struct {
	stdout io.Writer
	stderr io.Writer
	clock  clock.Clock

	file    *config.AppConfig
	profile *config.Profile
}

// before loads the config file and selects the profile.
func (s *state) before(c *cli.Context) error {
	if err := s.applyLogging(c.Bool("verbose"), c.String("log-level"), c.String("log-format")); err != nil {
		return err
	}

	path := c.String("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	file, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	s.file = file

	if name := c.String("profile"); name != "" {
		profile, ok := file.GetProfile(name)
		if !ok {
			return fmt.Errorf("profile %q not found in %s", name, path)
		}
		s.profile = &profile
	}
	log.For(log.ComponentConfig).Debug("Loaded config", "path", path, "profile", c.String("profile"))
	return nil
}

// settings merges the config with the flags of the running command.
func (s *state) settings(c *cli.Context) (*config.MergedConfig, error) {
	merged := config.Merge(&s.file.Defaults, s.profile, &config.CLIFlags{
		Operation:       c.String("operation"),
		LogLevel:        c.String("log-level"),
		LogFormat:       c.String("log-format"),
		Strict:          c.Bool("strict"),
		StrictIsSet:     c.IsSet("strict"),
		FillTokens:      c.Bool("fill-tokens"),
		FillTokensIsSet: c.IsSet("fill-tokens"),
		IgnoreFields:    c.StringSlice("ignore-field"),
		Format:          c.String("format"),
		WatchDebounce:   c.Duration("watch-debounce"),
	})
	if err := s.applyLogging(c.Bool("verbose"), merged.LogLevel, merged.LogFormat); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *state) applyLogging(verbose bool, level, format string) error {
	f, err := log.ParseFormat(format)
	if err != nil {
		return err
	}
	log.Configure(s.stderr, f)

	if verbose {
		log.SetVerbose(true)
		return nil
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(l)
	return nil
}

func (s *state) operationsAction(c *cli.Context) error {
	if _, err := s.settings(c); err != nil {
		return err
	}
	for _, op := range ssm.Operations() {
		fmt.Fprintf(s.stdout, "%-30s %s\n", op.Name, op.Target())
	}
	return nil
}

func (s *state) enumsAction(c *cli.Context) error {
	if _, err := s.settings(c); err != nil {
		return err
	}
	if name := c.Args().First(); name != "" {
		values, ok := ssm.EnumValues(name)
		if !ok {
			return fmt.Errorf("unknown enum %q", name)
		}
		for _, v := range values {
			fmt.Fprintln(s.stdout, v)
		}
		return nil
	}
	for _, name := range ssm.EnumNames() {
		values, _ := ssm.EnumValues(name)
		fmt.Fprintf(s.stdout, "%s: %v\n", name, values)
	}
	return nil
}

func (s *state) validateAction(c *cli.Context) error {
	cfg, err := s.settings(c)
	if err != nil {
		return err
	}
	op, err := inspect.Resolve(cfg.Operation)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return fmt.Errorf("validate takes exactly one FILE argument")
	}
	path := c.Args().First()
	opts := inspect.Options{
		Strict:     cfg.Strict,
		FillTokens: cfg.FillTokens,
		Ignore:     cfg.Ignored,
	}

	if !c.Bool("watch") {
		return s.validateFile(path, op, opts, "")
	}

	report := func() {
		if err := s.validateFile(path, op, opts, s.stamp()); err != nil && !errors.Is(err, errInvalid) {
			logger.Error("Validation failed", "file", path, "error", err)
		}
	}
	report()

	w, err := watch.NewFile(path, s.clock, cfg.WatchDebounce, report)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.Run(ctx)
}

// stamp prefixes watch-mode reports with the local time of day.
func (s *state) stamp() string {
	return s.clock.Now().Format("15:04:05") + " "
}

// validateFile prints PASS or FAIL for one file. It returns an error wrapping
// errInvalid when the shape has problems.
func (s *state) validateFile(path string, op ssm.Operation, opts inspect.Options, prefix string) error {
	shape, err := inspect.Load(path, op, inspect.Input)
	if err != nil {
		return err
	}
	problems := inspect.Check(shape, opts)
	if len(problems) == 0 {
		fmt.Fprintf(s.stdout, "%sPASS %s %s\n", prefix, ssm.ShapeName(shape), shape)
		return nil
	}
	fmt.Fprintf(s.stdout, "%sFAIL %s: %d problem(s)\n", prefix, ssm.ShapeName(shape), len(problems))
	for _, p := range problems {
		fmt.Fprintf(s.stdout, "  - %s\n", p)
	}
	return fmt.Errorf("%w: %s has %d problem(s)", errInvalid, path, len(problems))
}

func direction(c *cli.Context) inspect.Direction {
	if c.Bool("output") {
		return inspect.Output
	}
	return inspect.Input
}

func (s *state) showAction(c *cli.Context) error {
	cfg, err := s.settings(c)
	if err != nil {
		return err
	}
	op, err := inspect.Resolve(cfg.Operation)
	if err != nil {
		return err
	}
	format, err := inspect.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return fmt.Errorf("show takes exactly one FILE argument")
	}

	shape, err := inspect.Load(c.Args().First(), op, direction(c))
	if err != nil {
		return err
	}
	out, err := inspect.Render(shape, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.stdout, out)
	return nil
}

func (s *state) compareAction(c *cli.Context) error {
	cfg, err := s.settings(c)
	if err != nil {
		return err
	}
	op, err := inspect.Resolve(cfg.Operation)
	if err != nil {
		return err
	}
	if c.NArg() != 2 {
		return fmt.Errorf("compare takes exactly two FILE arguments")
	}

	pathA, pathB := c.Args().Get(0), c.Args().Get(1)
	a, err := inspect.Load(pathA, op, direction(c))
	if err != nil {
		return err
	}
	b, err := inspect.Load(pathB, op, direction(c))
	if err != nil {
		return err
	}

	result := inspect.Compare(a, b)
	fmt.Fprintf(s.stdout, "equal: %t\n", result.Equal)
	fmt.Fprintf(s.stdout, "hash:  %016x  %s\n", result.HashA, pathA)
	fmt.Fprintf(s.stdout, "hash:  %016x  %s\n", result.HashB, pathB)

	if !result.Equal && c.Bool("exit-code") {
		return fmt.Errorf("%w: %s and %s", errDifferent, pathA, pathB)
	}
	return nil
}
