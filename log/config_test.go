package log

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel_ValidStrings_AnyCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"lower debug", "debug", LevelDebug},
		{"upper debug", "DEBUG", LevelDebug},
		{"lower info", "info", LevelInfo},
		{"upper info", "INFO", LevelInfo},
		{"mixed info", "Info", LevelInfo},
		{"warning", "warning", LevelWarning},
		{"warn alias", "WARN", LevelWarning},
		{"mixed warning", "Warning", LevelWarning},
		{"error", "ERROR", LevelError},
		{"critical", "critical", LevelCritical},
		{"mixed critical", "CrItIcAl", LevelCritical},
		{"surrounding whitespace", "  info  ", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, level)
			}
		})
	}
}

func TestParseLevel_InvalidStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown word", "VERBOSE"},
		{"empty", ""},
		{"numeric", "42"},
		{"trace undefined", "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("expected ErrInvalidLevel for %q, got %v", tt.input, err)
			}
			if level != DefaultLevel {
				t.Errorf("expected DefaultLevel fallback, got %v", level)
			}
		})
	}
}

func TestParseLevel_Typo_SuggestsClosestLevel(t *testing.T) {
	_, err := ParseLevel("warnig")
	if !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if !strings.Contains(err.Error(), `"warning"`) {
		t.Errorf("expected suggestion for warning, got: %v", err)
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarning, "warning"},
		{LevelError, "error"},
		{LevelCritical, "critical"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLevels_OrderedBySeverity(t *testing.T) {
	expected := []string{"debug", "info", "warning", "error", "critical"}

	var got []string
	for name := range Levels() {
		got = append(got, name)
	}

	if len(got) != len(expected) {
		t.Fatalf("expected %d levels, got %d", len(expected), len(got))
	}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("level %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected Level
	}{
		{"debug", LevelDebug, LevelDebug},
		{"info", LevelInfo, LevelInfo},
		{"warning", LevelWarning, LevelWarning},
		{"error", LevelError, LevelError},
		{"critical", LevelCritical, LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			opt := WithLevel(tt.level)
			result := opt(c)

			if result.level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, result.level)
			}
		})
	}
}

func TestConfig_WithFile_SetsPath(t *testing.T) {
	c := WithFile("/tmp/out.jsonl")(config{})
	if c.file != "/tmp/out.jsonl" {
		t.Errorf("expected file path to be set, got %q", c.file)
	}

	c = WithFile("")(c)
	if c.file != "" {
		t.Errorf("expected empty path to disable file output, got %q", c.file)
	}
}

func TestConfig_WithColor_SetsColor(t *testing.T) {
	tests := []struct {
		name   string
		enable bool
	}{
		{"enabled", true},
		{"disabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithColor(tt.enable)(config{})
			if c.color != tt.enable {
				t.Errorf("expected color %v, got %v", tt.enable, c.color)
			}
		})
	}
}

func TestConfig_formatTime_FormatsTimestamp(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name        string
		layout      string
		contains    []string
		notContains []string
	}{
		{
			name:        "default layout",
			layout:      DefaultTimeLayout,
			contains:    []string{"2023-10-15 14:30:45,123"},
			notContains: []string{"T"},
		},
		{
			name:        "rfc3339 named layout",
			layout:      "RFC3339",
			contains:    []string{"2023-10-15T14:30:45Z"},
			notContains: []string{".123"},
		},
		{
			name:     "rfc3339 nano named layout",
			layout:   "RFC3339Nano",
			contains: []string{"2023-10-15T14:30:45.123456789Z"},
		},
		{
			name:     "custom layout passed verbatim",
			layout:   "2006-01-02 15:04:05.000Z07:00",
			contains: []string{"2023-10-15 14:30:45.123Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithTimeLayout(tt.layout)(config{})
			result := c.formatTime(now)

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("expected %q to contain %q", result, s)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(result, s) {
					t.Errorf("expected %q not to contain %q", result, s)
				}
			}
		})
	}
}

func TestConfig_formatTime_EmptyLayoutDisablesTimestamps(t *testing.T) {
	c := WithTimeLayout("none")(config{})
	if got := c.formatTime(time.Now()); got != "" {
		t.Errorf("expected empty timestamp, got %q", got)
	}

	c = WithTimeLayout("   ")(config{})
	if got := c.formatTime(time.Now()); got != "" {
		t.Errorf("expected empty timestamp, got %q", got)
	}
}

func TestSchema_withDefaults_FillsZeroFields(t *testing.T) {
	tests := []struct {
		name     string
		schema   Schema
		expected Schema
	}{
		{
			name:     "zero value",
			schema:   Schema{},
			expected: DefaultSchema,
		},
		{
			name:   "partial override",
			schema: Schema{Time: "ts", Message: "message"},
			expected: Schema{
				Time:    "ts",
				Level:   slog.LevelKey,
				Logger:  "logger",
				Message: "message",
			},
		},
		{
			name: "full override",
			schema: Schema{
				Time:    "@timestamp",
				Level:   "severity",
				Logger:  "source",
				Message: "text",
			},
			expected: Schema{
				Time:    "@timestamp",
				Level:   "severity",
				Logger:  "source",
				Message: "text",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.withDefaults(); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}
