package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"WARNING", WarnLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{" Error ", ErrorLevel},
		{"verbose", InfoLevel}, // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDomainFields(t *testing.T) {
	id := uuid.MustParse("6f1c2d1e-8a8b-4d59-9a54-2b0f8d0c1a11")

	t.Run("NodeID", func(t *testing.T) {
		f := NodeID(id)
		if f.Key != "node_id" || f.Value != id.String() {
			t.Errorf("NodeID() = %+v", f)
		}
	})

	t.Run("Pan", func(t *testing.T) {
		f := Pan(1.5, -2)
		if f.Key != "pan" || f.Value != [2]float64{1.5, -2} {
			t.Errorf("Pan() = %+v", f)
		}
	})

	t.Run("Duration", func(t *testing.T) {
		f := Latency(250 * time.Millisecond)
		if f.Key != "latency" || f.Value != "250ms" {
			t.Errorf("Latency() = %+v", f)
		}
	})

	t.Run("Error_nil", func(t *testing.T) {
		f := Error(nil)
		if f.Key != "error" || f.Value != nil {
			t.Errorf("Error(nil) = %+v", f)
		}
	})

	t.Run("Error", func(t *testing.T) {
		f := Error(errors.New("snapshot unreadable"))
		if f.Value != "snapshot unreadable" {
			t.Errorf("Error() = %+v", f)
		}
	})
}

func TestJSONLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("rebuilt", Count(3), Zoom(1.2))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal log entry: %v", err)
	}

	if entry.Level != "INFO" {
		t.Errorf("Level = %v, want INFO", entry.Level)
	}
	if entry.Message != "rebuilt" {
		t.Errorf("Message = %v, want rebuilt", entry.Message)
	}
	if entry.Fields["count"] != float64(3) {
		t.Errorf("Fields[count] = %v, want 3", entry.Fields["count"])
	}
	if entry.Time == "" {
		t.Error("Time field is empty")
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(lines))
	}

	for i, want := range []string{"WARN", "ERROR"} {
		var entry LogEntry
		if err := json.Unmarshal([]byte(lines[i]), &entry); err != nil {
			t.Fatalf("Failed to unmarshal entry %d: %v", i, err)
		}
		if entry.Level != want {
			t.Errorf("entry %d level = %v, want %v", i, entry.Level, want)
		}
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(Component("viewport"))
	child.Info("pointer down", String("result", "hit"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if entry.Fields["component"] != "viewport" {
		t.Errorf("component field = %v, want viewport", entry.Fields["component"])
	}
	if entry.Fields["result"] != "hit" {
		t.Errorf("result field = %v, want hit", entry.Fields["result"])
	}
}

func TestJSONLogger_CallSiteFieldOverridesPreset(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel).With(Operation("update"))

	logger.Info("x", Operation("reset"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if entry.Fields["operation"] != "reset" {
		t.Errorf("operation = %v, want reset", entry.Fields["operation"])
	}
}

func TestJSONLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.SetLevel(ErrorLevel)
	if logger.GetLevel() != ErrorLevel {
		t.Errorf("After SetLevel, level = %v, want ErrorLevel", logger.GetLevel())
	}

	logger.Info("info")
	if buf.Len() != 0 {
		t.Error("Expected no output for Info at ErrorLevel")
	}

	logger.Error("error")
	if buf.Len() == 0 {
		t.Error("Expected output for Error at ErrorLevel")
	}
}

func TestJSONLogger_NoFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("message without fields")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if _, exists := entry["fields"]; exists {
		t.Error("Expected fields key to be omitted when empty")
	}
}

func TestOpen(t *testing.T) {
	t.Run("empty path discards", func(t *testing.T) {
		logger, closer, err := Open("", DebugLevel)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		logger.Info("dropped")
		if err := closer.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	t.Run("file path appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "topoview.log")
		logger, closer, err := Open(path, InfoLevel)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		logger.Info("first")
		logger.Info("second")
		closer.Close()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if got := strings.Count(string(data), "\n"); got != 2 {
			t.Errorf("log file has %d lines, want 2", got)
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		_, _, err := Open(filepath.Join(t.TempDir(), "missing", "x.log"), InfoLevel)
		if err == nil {
			t.Error("Open() expected error for missing directory")
		}
	})
}

func TestGlobalHelperFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetDefaultLogger(NewJSONLogger(&buf, DebugLevel))

	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	ErrorLog("error msg")
	With(Component("builder")).Info("with msg")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 log entries, got %d", len(lines))
	}

	var last LogEntry
	if err := json.Unmarshal([]byte(lines[4]), &last); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if last.Fields["component"] != "builder" {
		t.Errorf("component = %v, want builder", last.Fields["component"])
	}
}

func BenchmarkJSONLogger_InfoFiltered(b *testing.B) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, ErrorLevel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("pointer drag", Zoom(1), Pan(0, 0))
	}
}
