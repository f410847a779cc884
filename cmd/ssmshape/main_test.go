package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadahiro/ssmshapes/internal/clock"
	"github.com/wadahiro/ssmshapes/internal/inspect"
	"github.com/wadahiro/ssmshapes/internal/testutil"
)

// runCLI runs ssmshape inside an empty working directory with an empty
// config file, so neither a developer's .env nor their config leak in.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	return runCLIWithConfig(t, configPath, args...)
}

func runCLIWithConfig(t *testing.T, configPath string, args ...string) (int, string, string) {
	t.Helper()
	testutil.Chdir(t, filepath.Dir(configPath))
	var out, errOut bytes.Buffer
	code := run(append([]string{"ssmshape", "--config", configPath}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestOperations(t *testing.T) {
	code, out, _ := runCLI(t, "operations")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "SendCommand")
	assert.Contains(t, out, "AmazonSSM.StartAutomationExecution")
	assert.Equal(t, 12, strings.Count(out, "\n"))
}

func TestEnums(t *testing.T) {
	code, out, _ := runCLI(t, "enums", "ParameterTier")
	require.Equal(t, 0, code)
	assert.Equal(t, "Standard\nAdvanced\nIntelligent-Tiering\n", out)

	code, out, _ = runCLI(t, "enums")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "AssociationFilterOperatorType: [EQUAL LESS_THAN GREATER_THAN]")

	code, _, errOut := runCLI(t, "enums", "Nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown enum "Nope"`)
}

func TestValidate_Pass(t *testing.T) {
	path := testutil.WriteFile(t, "send.json", testutil.SendCommandJSON)

	code, out, _ := runCLI(t, "validate", "--operation", "SendCommand", "--strict", path)

	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "PASS SendCommandInput {"), out)
	assert.Contains(t, out, "DocumentName: AWS-RunShellScript")
}

func TestValidate_Fail(t *testing.T) {
	path := testutil.WriteFile(t, "send.json", testutil.InvalidSendCommandJSON)

	code, out, errOut := runCLI(t, "validate", "-o", "SendCommand", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL SendCommandInput: 4 problem(s)")
	assert.Contains(t, out, "SendCommandInput.Targets[0].Key")
	assert.Contains(t, errOut, "invalid shape")
}

func TestValidate_IgnoreField(t *testing.T) {
	path := testutil.WriteFile(t, "send.json", testutil.InvalidSendCommandJSON)

	_, out, _ := runCLI(t, "validate", "-o", "SendCommand",
		"--ignore-field", "SendCommandInput.TimeoutSeconds",
		"--ignore-field", "SendCommandInput.DocumentVersion", path)

	assert.Contains(t, out, "FAIL SendCommandInput: 2 problem(s)")
	assert.NotContains(t, out, "TimeoutSeconds")
}

func TestValidate_IgnoreFieldGlob(t *testing.T) {
	path := testutil.WriteFile(t, "send.json", testutil.InvalidSendCommandJSON)

	_, out, _ := runCLI(t, "validate", "-o", "SendCommand",
		"--ignore-field", "SendCommandInput.Document*",
		"--ignore-field", "SendCommandInput.Targets", path)

	assert.Contains(t, out, "FAIL SendCommandInput: 1 problem(s)")
	assert.Contains(t, out, "TimeoutSeconds")
}

func TestValidate_FillTokens(t *testing.T) {
	path := testutil.WriteFile(t, "start.json", `{"DocumentName":"AWS-RestartEC2Instance"}`)

	code, out, _ := runCLI(t, "validate", "-o", "StartAutomationExecution", "--fill-tokens", path)

	require.Equal(t, 0, code)
	assert.Contains(t, out, "ClientToken: ")
}

func TestValidate_UnknownOperation(t *testing.T) {
	path := testutil.WriteFile(t, "send.json", testutil.SendCommandJSON)

	code, _, errOut := runCLI(t, "validate", "-o", "StartSession", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown operation")
}

func TestValidate_ProfileFromDotEnv(t *testing.T) {
	unsetEnv(t, "SSMSHAPE_PROFILE")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[defaults]
strict = true

[profiles.params]
operation = "PutParameter"
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SSMSHAPE_PROFILE=params\n"), 0o644))
	path := testutil.WriteFile(t, "put.json", `{"Name":"/a","Value":"v","Type":"Secret"}`)

	code, out, _ := runCLIWithConfig(t, configPath, "validate", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL PutParameterInput: 1 problem(s)")
	assert.Contains(t, out, "ParameterType")

	code, out, _ = runCLIWithConfig(t, configPath, "validate", "--strict=false", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "PASS PutParameterInput")
}

func TestMissingProfile(t *testing.T) {
	unsetEnv(t, "SSMSHAPE_PROFILE")

	code, _, errOut := runCLI(t, "--profile", "nope", "operations")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `profile "nope" not found`)
}

func TestShow(t *testing.T) {
	path := testutil.WriteFile(t, "put.json", testutil.PutParameterJSON)

	code, out, _ := runCLI(t, "show", "-o", "PutParameter", path)
	require.Equal(t, 0, code)
	assert.Equal(t,
		"{Name: /app/db/password,Value: s3cr3t,Type: SecureString,Tags: [{Key: team,Value: platform}],Tier: Standard}\n",
		out)

	code, out, _ = runCLI(t, "show", "-o", "PutParameter", "--format", "json", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "\"Tags\": [\n    {\n      \"Key\": \"team\",")
}

func TestShow_Output(t *testing.T) {
	path := testutil.WriteFile(t, "out.json", testutil.CommandOutputJSON)

	code, out, _ := runCLI(t, "show", "-o", "SendCommand", "--output", "--format", "json", path)

	require.Equal(t, 0, code)
	assert.Contains(t, out, `"RequestedDateTime": 1700000000`)
	assert.Contains(t, out, `"ExpiresAfter": 1700003600.5`)
}

func TestCompare(t *testing.T) {
	a := testutil.WriteFile(t, "a.json", testutil.SendCommandJSON)
	b := testutil.WriteFile(t, "b.json", testutil.SendCommandJSON)
	c := testutil.WriteFile(t, "c.json", `{"DocumentName":"AWS-RunPowerShellScript"}`)

	code, out, _ := runCLI(t, "compare", "-o", "SendCommand", a, b)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "equal: true")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Fields(lines[1])[1], strings.Fields(lines[2])[1])

	code, out, _ = runCLI(t, "compare", "-o", "SendCommand", a, c)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "equal: false")

	code, _, errOut := runCLI(t, "compare", "-o", "SendCommand", "--exit-code", a, c)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "shapes differ")
}

func TestJSONLogFormat(t *testing.T) {
	path := testutil.WriteFile(t, "send.json", testutil.SendCommandJSON)

	code, _, errOut := runCLI(t, "--verbose", "--log-format", "json", "show", "-o", "SendCommand", path)

	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `"component":"codec"`)
	assert.Contains(t, errOut, `"msg":"Decoded shape"`)
}

func TestValidateWatchReport(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC))
	var out bytes.Buffer
	st := &state{stdout: &out, stderr: &out, clock: clk}

	op, err := inspect.Resolve("PutParameter")
	require.NoError(t, err)
	path := testutil.WriteFile(t, "put.json", testutil.PutParameterJSON)

	require.NoError(t, st.validateFile(path, op, inspect.Options{}, st.stamp()))
	assert.True(t, strings.HasPrefix(out.String(), "09:30:00 PASS PutParameterInput"), out.String())
}
