package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gramseva/matadar/internal/models"
)

func sampleResponse() *models.SearchResponse {
	return &models.SearchResponse{
		Results: []*models.SearchResult{
			{
				VoterID:   "UXM8227381",
				FullName:  "मंगेश रामदास बधाले",
				NameParts: models.NameParts{First: "मंगेश", Middle: "रामदास", Last: "बधाले"},
				Gender:    "M",
				Age:       34,
				Reference: "Village: वडगाव, Sr.No: 12",
			},
		},
		Total:     1,
		QueryTime: 7,
	}
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResponse(), OutputJSON); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	var decoded models.SearchResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Total != 1 || decoded.Results[0].VoterID != "UXM8227381" {
		t.Errorf("unexpected decoded response %+v", decoded)
	}
}

func TestWriteResultsCompact(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResponse(), OutputCompact); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "UXM8227381\t") || !strings.Contains(line, "मंगेश रामदास बधाले") {
		t.Errorf("unexpected compact line %q", line)
	}
}

func TestWriteResultsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResponse(), OutputText); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Found 1 voter(s)", "UXM8227381", "मंगेश रामदास बधाले"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteResultsTextEmptyAndDegraded(t *testing.T) {
	var buf bytes.Buffer
	resp := &models.SearchResponse{Degraded: true}
	if err := WriteResults(&buf, resp, OutputText); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No voters matched") {
		t.Errorf("empty response message missing:\n%s", out)
	}
	if !strings.Contains(out, "incomplete") {
		t.Errorf("degraded warning missing:\n%s", out)
	}
}
