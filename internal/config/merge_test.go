package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestMerge_BuiltInDefaults(t *testing.T) {
	result := Merge(nil, nil, &CLIFlags{})

	assert.Equal(t, "info", result.LogLevel)
	assert.Equal(t, "text", result.LogFormat)
	assert.Equal(t, "text", result.Format)
	assert.Equal(t, 300*time.Millisecond, result.WatchDebounce)
	assert.False(t, result.Strict)
	assert.False(t, result.FillTokens)
	assert.Empty(t, result.Operation)
	assert.Empty(t, result.IgnoreFields)
}

func TestMerge_ProfileOverridesDefaults(t *testing.T) {
	defaults := &Defaults{
		LogLevel:      "warn",
		Format:        "text",
		WatchDebounce: Duration{time.Second},
	}
	profile := &Profile{
		Operation:     "PutParameter",
		LogLevel:      "debug",
		WatchDebounce: Duration{2 * time.Second},
	}

	result := Merge(defaults, profile, &CLIFlags{})

	assert.Equal(t, "debug", result.LogLevel)
	assert.Equal(t, "PutParameter", result.Operation)
	assert.Equal(t, 2*time.Second, result.WatchDebounce)
	assert.Equal(t, "text", result.Format)
}

func TestMerge_CLIOverridesProfile(t *testing.T) {
	profile := &Profile{
		Operation: "PutParameter",
		LogFormat: "json",
		Format:    "json",
	}
	cli := &CLIFlags{
		Operation:     "SendCommand",
		Format:        "text",
		WatchDebounce: 50 * time.Millisecond,
	}

	result := Merge(&Defaults{}, profile, cli)

	assert.Equal(t, "SendCommand", result.Operation)
	assert.Equal(t, "text", result.Format)
	assert.Equal(t, 50*time.Millisecond, result.WatchDebounce)
	assert.Equal(t, "json", result.LogFormat)
}

func TestMerge_BoolOverrides(t *testing.T) {
	tests := []struct {
		name           string
		defaultsStrict *bool
		profileStrict  *bool
		cliStrict      bool
		cliStrictIsSet bool
		expected       bool
	}{
		{
			name:           "CLI true overrides all",
			defaultsStrict: boolPtr(false),
			profileStrict:  boolPtr(false),
			cliStrict:      true,
			cliStrictIsSet: true,
			expected:       true,
		},
		{
			name:           "CLI false overrides all",
			defaultsStrict: boolPtr(true),
			profileStrict:  boolPtr(true),
			cliStrict:      false,
			cliStrictIsSet: true,
			expected:       false,
		},
		{
			name:           "profile overrides defaults when CLI not set",
			defaultsStrict: boolPtr(true),
			profileStrict:  boolPtr(false),
			expected:       false,
		},
		{
			name:           "defaults used when profile unset",
			defaultsStrict: boolPtr(true),
			expected:       true,
		},
		{
			name:     "built-in when nothing set",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := &Defaults{Strict: tt.defaultsStrict}
			profile := &Profile{Strict: tt.profileStrict}
			cli := &CLIFlags{Strict: tt.cliStrict, StrictIsSet: tt.cliStrictIsSet}

			assert.Equal(t, tt.expected, Merge(defaults, profile, cli).Strict)
		})
	}
}

func TestMerge_IgnoreFieldsAccumulate(t *testing.T) {
	defaults := &Defaults{IgnoreFields: []string{"SendCommandInput.Comment"}}
	profile := &Profile{IgnoreFields: []string{"SendCommandInput.Comment", "PutParameterInput.KeyId"}}
	cli := &CLIFlags{IgnoreFields: []string{"Tag.Key"}}

	result := Merge(defaults, profile, cli)

	assert.Equal(t, []string{
		"SendCommandInput.Comment",
		"PutParameterInput.KeyId",
		"Tag.Key",
	}, result.IgnoreFields)
	assert.True(t, result.Ignored("Tag.Key"))
	assert.False(t, result.Ignored("Tag.Value"))
}

func TestMergedConfig_IgnoredPatterns(t *testing.T) {
	result := Merge(&Defaults{IgnoreFields: []string{"*.DocumentVersion", "SendCommandInput.Targets"}}, nil, nil)

	assert.True(t, result.Ignored("SendCommandInput.DocumentVersion"))
	assert.True(t, result.Ignored("CreateAssociationInput.DocumentVersion"))
	assert.True(t, result.Ignored("SendCommandInput.Targets[0].Key"))
	assert.False(t, result.Ignored("SendCommandInput.TimeoutSeconds"))
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	defaults := &Defaults{IgnoreFields: []string{"A"}}
	profile := &Profile{IgnoreFields: []string{"B"}}

	result := Merge(defaults, profile, nil)
	result.IgnoreFields[0] = "changed"

	assert.Equal(t, []string{"A"}, defaults.IgnoreFields)
	assert.Equal(t, []string{"B"}, profile.IgnoreFields)
	assert.Empty(t, builtInDefaults.IgnoreFields)
}

func TestMergeStringSlices(t *testing.T) {
	assert.Nil(t, mergeStringSlices(nil, nil))
	assert.Equal(t, []string{"a"}, mergeStringSlices([]string{"a"}, nil))
	assert.Equal(t, []string{"a", "b"}, mergeStringSlices([]string{"a", "a"}, []string{"b", "a"}))
}
