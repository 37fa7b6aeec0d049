package log

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.config.level)
	}
	if logger.config.color {
		t.Error("expected color disabled by default")
	}
	if logger.config.file != "" {
		t.Errorf("expected no file sink by default, got %q", logger.config.file)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at error level")
	}
}

func TestLogger_Make_UnnamedLoggerOmitsNameField(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none"))

	logger.Info("bare")

	line := strings.TrimSpace(buf.String())
	if line != "INFO - bare" {
		t.Errorf("expected 'INFO - bare', got %q", line)
	}
}

func TestLogger_LogMethods_RespectLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"debug at debug", (Logger).Debug, LevelDebug, true},
		{"debug at info", (Logger).Debug, LevelInfo, false},
		{"info at info", (Logger).Info, LevelInfo, true},
		{"info at warning", (Logger).Info, LevelWarning, false},
		{"warn at warning", (Logger).Warn, LevelWarning, true},
		{"warn at error", (Logger).Warn, LevelError, false},
		{"error at error", (Logger).Error, LevelError, true},
		{"error at critical", (Logger).Error, LevelCritical, false},
		{"critical at critical", (Logger).Critical, LevelCritical, true},
		{"critical at debug", (Logger).Critical, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(tt.minLevel))
			tt.logFunc(logger, "test message")

			hasOutput := buf.Len() > 0
			if hasOutput != tt.logged {
				t.Errorf(
					"expected logged=%v, got output length=%d",
					tt.logged,
					buf.Len(),
				)
			}
		})
	}
}

func TestLogger_AllLevels_UppercaseNameInOutput(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...slog.Attr)
		level   string
	}{
		{"debug", Logger.Debug, "DEBUG"},
		{"info", Logger.Info, "INFO"},
		{"warning", Logger.Warn, "WARNING"},
		{"error", Logger.Error, "ERROR"},
		{"critical", Logger.Critical, "CRITICAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(LevelDebug))

			tt.logFunc(logger, "test message")

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf(
					"expected output to contain level %q, got: %s",
					tt.level,
					output,
				)
			}
		})
	}
}

func TestLogger_Attrs_AppendedAsKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none"))

	logger.Info("request handled",
		slog.String("method", "GET"),
		slog.Int("status", 200))

	output := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(output, "request handled method=GET status=200") {
		t.Errorf("unexpected attr rendering: %q", output)
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none"))

	loggerWith := logger.With(slog.String("component", "api"))
	loggerWith.Info("test message")

	if !strings.Contains(buf.String(), "component=api") {
		t.Errorf("expected component=api in output, got: %q", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelError))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info suppressed, got: %q", buf.String())
	}

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	wrapped.Info("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("expected wrapped logger to log info, got: %q", buf.String())
	}
}

func TestLogger_Color_WrapsLevelField(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithColor(true), WithTimeLayout("none"))

	logger.Error("tinted")

	output := buf.String()
	if !strings.Contains(output, colorRed+"ERROR"+colorReset) {
		t.Errorf("expected colorized level, got: %q", output)
	}
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var l Logger
	// Should not panic
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")
	l.Critical("test")

	l2 := l.With(slog.String("key", "value"))
	if l2.Logger != nil {
		t.Error("expected nil logger from zero value With")
	}

	if l.Level() != DefaultLevel {
		t.Errorf("expected DefaultLevel from zero value, got %v", l.Level())
	}
}

func TestLogger_ConcurrentCalls_ThreadSafe(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("concurrent message", slog.Int("id", id))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}

func TestLogger_ContextMethods_LogSuccessfully(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...slog.Attr)
	}{
		{"debug", func(l Logger, msg string, attrs ...slog.Attr) {
			l.DebugContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"info", func(l Logger, msg string, attrs ...slog.Attr) {
			l.InfoContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"warning", func(l Logger, msg string, attrs ...slog.Attr) {
			l.WarnContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"error", func(l Logger, msg string, attrs ...slog.Attr) {
			l.ErrorContext(DefaultContextProvider(), msg, attrs...)
		}},
		{"critical", func(l Logger, msg string, attrs ...slog.Attr) {
			l.CriticalContext(DefaultContextProvider(), msg, attrs...)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithLevel(LevelDebug))

			tt.logFunc(logger, "test message")

			if !strings.Contains(buf.String(), "test message") {
				t.Errorf("expected message to be logged, got: %q", buf.String())
			}
		})
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", slog.Int("iteration", i))
	}
}

func BenchmarkRegistry_Logger_Info(b *testing.B) {
	reg := NewRegistry()

	var buf bytes.Buffer

	logger, err := reg.New("bench", WithConsole(&buf))
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", slog.Int("iteration", i))
	}
}

func BenchmarkLogger_Info_Concurrent(b *testing.B) {
	var buf bytes.Buffer
	logger := Make(&buf)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent message", slog.Int("id", i))
			i++
		}
	})
}
