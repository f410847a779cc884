package config

import (
	"time"

	"github.com/wadahiro/ssmshapes/internal/fieldmatch"
)

// CLIFlags holds values given on the command line. The IsSet fields record
// whether a boolean flag was given explicitly.
type CLIFlags struct {
	Operation string

	LogLevel  string
	LogFormat string

	Strict          bool
	StrictIsSet     bool
	FillTokens      bool
	FillTokensIsSet bool
	IgnoreFields    []string

	Format        string
	WatchDebounce time.Duration
}

// MergedConfig is the effective configuration of one invocation.
type MergedConfig struct {
	Operation     string
	LogLevel      string
	LogFormat     string
	Strict        bool
	FillTokens    bool
	IgnoreFields  []string
	Format        string
	WatchDebounce time.Duration
}

// Built-in defaults used when nothing else sets a value.
var builtInDefaults = MergedConfig{
	LogLevel:      "info",
	LogFormat:     "text",
	Format:        "text",
	WatchDebounce: 300 * time.Millisecond,
}

// Merge combines the file defaults, the selected profile and the CLI flags.
// Scalars take the highest-priority value that is set; ignore-fields lists
// accumulate across all levels.
func Merge(defaults *Defaults, profile *Profile, cli *CLIFlags) *MergedConfig {
	result := builtInDefaults

	if defaults != nil {
		setString(&result.LogLevel, defaults.LogLevel)
		setString(&result.LogFormat, defaults.LogFormat)
		setString(&result.Format, defaults.Format)
		setBool(&result.Strict, defaults.Strict)
		setBool(&result.FillTokens, defaults.FillTokens)
		setDuration(&result.WatchDebounce, defaults.WatchDebounce.Duration)
		result.IgnoreFields = mergeStringSlices(result.IgnoreFields, defaults.IgnoreFields)
	}

	if profile != nil {
		setString(&result.Operation, profile.Operation)
		setString(&result.LogLevel, profile.LogLevel)
		setString(&result.LogFormat, profile.LogFormat)
		setString(&result.Format, profile.Format)
		setBool(&result.Strict, profile.Strict)
		setBool(&result.FillTokens, profile.FillTokens)
		setDuration(&result.WatchDebounce, profile.WatchDebounce.Duration)
		result.IgnoreFields = mergeStringSlices(result.IgnoreFields, profile.IgnoreFields)
	}

	if cli != nil {
		setString(&result.Operation, cli.Operation)
		setString(&result.LogLevel, cli.LogLevel)
		setString(&result.LogFormat, cli.LogFormat)
		setString(&result.Format, cli.Format)
		if cli.StrictIsSet {
			result.Strict = cli.Strict
		}
		if cli.FillTokensIsSet {
			result.FillTokens = cli.FillTokens
		}
		setDuration(&result.WatchDebounce, cli.WatchDebounce)
		result.IgnoreFields = mergeStringSlices(result.IgnoreFields, cli.IgnoreFields)
	}

	return &result
}

// Ignored reports whether validation errors for field should be suppressed.
// Entries are exact member paths, which also cover nested members, or globs.
func (m *MergedConfig) Ignored(field string) bool {
	return fieldmatch.NewSet(m.IgnoreFields).Match(field)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}

// mergeStringSlices appends additional to base, dropping duplicates.
func mergeStringSlices(base, additional []string) []string {
	if len(additional) == 0 {
		return base
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(base)+len(additional))
	for _, s := range base {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range additional {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}
