package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestColorHandler(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := slog.New(NewColorHandler(buf, &HandlerOptions{Level: slog.LevelDebug})).
		With("component", "codec")

	logger.Debug("decoded shape", "shape", "SendCommandInput")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "file", "my input.json")

	output := buf.String()
	for _, want := range []string{
		"DEBUG", "INFO", "WARN", "ERROR",
		"[codec]",
		"decoded shape",
		"shape=SendCommandInput",
		`file="my input.json"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "\033[") {
		t.Error("colour codes should not be written to a buffer")
	}
}

func TestColorHandlerGroups(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewColorHandler(buf, nil)).WithGroup("input")

	logger.Info("validated", "shape", "PutParameterInput", slog.Group("errors", "count", 2))

	output := buf.String()
	if !strings.Contains(output, "input.shape=PutParameterInput") {
		t.Errorf("expected grouped key, got: %s", output)
	}
	if !strings.Contains(output, "input.errors.count=2") {
		t.Errorf("expected nested group key, got: %s", output)
	}
}

func TestForComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(slog.New(NewColorHandler(buf, &HandlerOptions{Level: slog.LevelInfo})))

	For(ComponentValidate).Info("test message")

	if !strings.Contains(buf.String(), "[validate]") {
		t.Errorf("expected [validate] in output, got: %s", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, FormatJSON, &HandlerOptions{Level: slog.LevelInfo}).
		With("component", string(ComponentWatch))

	logger.Info("file changed", "path", "input.json")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if rec["component"] != "watch" || rec["msg"] != "file changed" || rec["path"] != "input.json" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewColorHandler(buf, &HandlerOptions{Level: slog.LevelWarn}))

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "debug") {
		t.Error("DEBUG should be filtered out at WARN level")
	}
	if strings.Contains(output, "info") {
		t.Error("INFO should be filtered out at WARN level")
	}
	if !strings.Contains(output, "warn") {
		t.Error("WARN should be present")
	}
	if !strings.Contains(output, "error") {
		t.Error("ERROR should be present")
	}
}

func TestDynamicLevel(t *testing.T) {
	prev := GetLevel()
	t.Cleanup(func() { SetLevel(prev) })

	buf := &bytes.Buffer{}
	logger := New(buf, FormatText, nil)

	SetVerbose(false)
	logger.Debug("hidden")
	SetVerbose(true)
	logger.Debug("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug record logged before SetVerbose(true)")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug record missing after SetVerbose(true)")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"", "text", "TEXT"} {
		if f, err := ParseFormat(in); err != nil || f != FormatText {
			t.Errorf("ParseFormat(%q) = %q, %v", in, f, err)
		}
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %q, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(yaml) should fail")
	}
}

func TestConfigureRedirectsExistingLoggers(t *testing.T) {
	prev := Default()
	t.Cleanup(func() {
		SetDefault(prev)
		Configure(os.Stderr, FormatText)
	})
	SetDefault(slog.New(&swapHandler{}))

	logger := For(ComponentCodec)

	buf := &bytes.Buffer{}
	Configure(buf, FormatJSON)
	logger.Info("decoded", "bytes", 42)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if rec["component"] != "codec" || rec["bytes"] != float64(42) {
		t.Errorf("unexpected record: %v", rec)
	}
}
