package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantInfo  bool
		wantDebug bool
		wantErr   bool
	}{
		{name: "empty defaults to info", level: "", wantInfo: true},
		{name: "info", level: "info", wantInfo: true},
		{name: "uppercase DEBUG", level: "DEBUG", wantInfo: true, wantDebug: true},
		{name: "warn hides info", level: "warn"},
		{name: "error hides info", level: "error"},
		{name: "unknown level", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			logger.Debug("debug line")
			logger.Info("info line")
			out := buf.String()
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info line present = %v, want %v\n%s", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v\n%s", got, tt.wantDebug, out)
			}
		})
	}
}

func TestNewWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Error("Error compressing", "code", 1)
	out := buf.String()
	if !strings.Contains(out, "Error compressing") || !strings.Contains(out, "code=1") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	runLogger, id := WithRun(logger)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a uuid run id, got %q: %v", id, err)
	}
	runLogger.Info("hello")
	if !strings.Contains(buf.String(), "run="+id) {
		t.Errorf("expected run id in output, got %q", buf.String())
	}
}
