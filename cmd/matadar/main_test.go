package main

import (
	"testing"

	"github.com/gramseva/matadar/internal/cli"
)

func TestJoinArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"single", []string{"badale"}, "badale"},
		{"multiple", []string{"mangesh", "badale"}, "mangesh badale"},
		{"empty", nil, ""},
		{"trims", []string{" badale "}, "badale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinArgs(tt.args); got != tt.expected {
				t.Errorf("joinArgs(%v) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	if f, err := parseOutputFormat("json"); err != nil || f != cli.OutputJSON {
		t.Errorf("json: %v, %v", f, err)
	}
	if f, err := parseOutputFormat("compact"); err != nil || f != cli.OutputCompact {
		t.Errorf("compact: %v, %v", f, err)
	}
	if f, err := parseOutputFormat("text"); err != nil || f != cli.OutputText {
		t.Errorf("text: %v, %v", f, err)
	}
	if _, err := parseOutputFormat("xml"); err == nil {
		t.Error("unknown format should error")
	}
}
