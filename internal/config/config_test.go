package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidTOML(t *testing.T) {
	path := writeConfig(t, `
[defaults]
log-level = "warn"
strict = true
ignore-fields = ["SendCommandInput.Comment"]
watch-debounce = "500ms"

[profiles.ci]
operation = "SendCommand"
log-format = "json"
fill-tokens = true
format = "json"

[profiles.local]
strict = false
watch-debounce = "1s"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Defaults.LogLevel)
	require.NotNil(t, cfg.Defaults.Strict)
	assert.True(t, *cfg.Defaults.Strict)
	assert.Equal(t, []string{"SendCommandInput.Comment"}, cfg.Defaults.IgnoreFields)
	assert.Equal(t, 500*time.Millisecond, cfg.Defaults.WatchDebounce.Duration)

	assert.Len(t, cfg.Profiles, 2)

	ci := cfg.Profiles["ci"]
	assert.Equal(t, "SendCommand", ci.Operation)
	assert.Equal(t, "json", ci.LogFormat)
	assert.Equal(t, "json", ci.Format)
	require.NotNil(t, ci.FillTokens)
	assert.True(t, *ci.FillTokens)
	assert.Nil(t, ci.Strict)

	local := cfg.Profiles["local"]
	require.NotNil(t, local.Strict)
	assert.False(t, *local.Strict)
	assert.Equal(t, time.Second, local.WatchDebounce.Duration)
}

func TestLoadConfig_FileNotFound_ReturnsEmpty(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Profiles)
}

func TestLoadConfig_InvalidTOML_ReturnsError(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "invalid toml [[["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadConfig_UnknownKey_ReturnsError(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[defaults]\nlisten = \"127.0.0.1:1080\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults.listen")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	for _, v := range []string{"soon", "-1s"} {
		t.Run(v, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, "[defaults]\nwatch-debounce = \""+v+"\"\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid duration")
		})
	}
}

func TestLoadConfig_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".config", "ssmshape")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"),
		[]byte("[profiles.test]\noperation = \"PutParameter\"\n"), 0644))

	cfg, err := LoadConfig("~/.config/ssmshape/config.toml")
	require.NoError(t, err)
	assert.Contains(t, cfg.Profiles, "test")
}

func TestGetProfile(t *testing.T) {
	cfg := &AppConfig{
		Profiles: map[string]Profile{
			"ci": {Operation: "SendCommand"},
		},
	}

	profile, exists := cfg.GetProfile("ci")
	assert.True(t, exists)
	assert.Equal(t, "SendCommand", profile.Operation)

	_, exists = cfg.GetProfile("nonexistent")
	assert.False(t, exists)
}

func TestDefaultConfigPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "ssmshape", "config.toml"), DefaultConfigPath())
}

func TestDuration_MarshalText(t *testing.T) {
	b, err := Duration{1500 * time.Millisecond}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(b))
}
