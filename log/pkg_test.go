package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	// Save original logger and restore after test
	original := defaultLog
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	defaultLog = Make(&buf, WithLevel(LevelDebug), WithTimeLayout("none"))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARNING", "warning message"},
		{"Error", Error, "ERROR", "error message"},
		{"Critical", Critical, "CRITICAL", "critical message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf(
					"expected output to contain message %q, got: %s",
					tt.msg,
					output,
				)
			}
			if !strings.Contains(output, tt.level) {
				t.Errorf(
					"expected output to contain level %q, got: %s",
					tt.level,
					output,
				)
			}
			if !strings.Contains(output, "key=value") {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_Config_ReconfiguresDefaultLogger(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	Config(WithConsole(&buf), WithLevel(LevelDebug))

	Debug("package config test")

	if !strings.Contains(buf.String(), "package config test") {
		t.Error("expected message to be logged after Config")
	}
}

func TestPackage_ContextFunctions_UseDefaultLogger(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	tests := []struct {
		name    string
		logFunc func(string, ...slog.Attr)
	}{
		{"DebugContext", func(msg string, attrs ...slog.Attr) {
			DebugContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"InfoContext", func(msg string, attrs ...slog.Attr) {
			InfoContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"WarnContext", func(msg string, attrs ...slog.Attr) {
			WarnContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"ErrorContext", func(msg string, attrs ...slog.Attr) {
			ErrorContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"CriticalContext", func(msg string, attrs ...slog.Attr) {
			CriticalContext(DefaultContextProvider(), msg, attrs...)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Config(WithConsole(&buf), WithLevel(LevelDebug))

			tt.logFunc("package context test")

			if !strings.Contains(buf.String(), "package context test") {
				t.Error("expected message to be logged using package context function")
			}
		})
	}
}

func TestPackage_New_UsesDefaultRegistry(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New("pkg-default", WithConsole(&buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("hello")

	if !strings.Contains(buf.String(), " - pkg-default - INFO - hello") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
