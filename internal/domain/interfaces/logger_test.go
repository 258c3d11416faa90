package interfaces

import (
	"bytes"
	"testing"
)

func TestWriterLogger_FormatsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, LevelDebug)

	logger.Info("recipes loaded", F("count", 3), F("path", "Recipes.txt"))

	want := "INFO: recipes loaded count=3 path=Recipes.txt\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriterLogger_DropsBelowMinimum(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, LevelWarn)

	logger.Debug("noise")
	logger.Info("noise")
	logger.Warn("careful")
	logger.Error("broken")

	want := "WARN: careful\nERROR: broken\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"", LevelInfo, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNoOpLogger_Satisfies(_ *testing.T) {
	var logger Logger = &NoOpLogger{}
	logger.Error("ignored", F("k", "v"))
}
