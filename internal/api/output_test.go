package api

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputToJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"status": "success"}

	if err := OutputTo(&buf, OutputFormatJSON, data); err != nil {
		t.Fatalf("OutputTo: %v", err)
	}
	if !strings.Contains(buf.String(), `"status": "success"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestOutputToYAML(t *testing.T) {
	var buf bytes.Buffer
	data := struct {
		Status string `yaml:"status"`
		Count  int    `yaml:"count"`
	}{Status: "success", Count: 3}

	if err := OutputTo(&buf, OutputFormatYAML, data); err != nil {
		t.Fatalf("OutputTo: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "status: success") || !strings.Contains(out, "count: 3") {
		t.Errorf("output = %q", out)
	}
}

func TestOutputToUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputTo(&buf, OutputFormat("toml"), nil); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSetOutputFormat(t *testing.T) {
	t.Cleanup(func() { SetOutputFormat("yaml") })

	SetOutputFormat("json")
	if GetOutputFormat() != OutputFormatJSON {
		t.Errorf("format = %q", GetOutputFormat())
	}

	SetOutputFormat("bogus")
	if GetOutputFormat() != DefaultOutput {
		t.Errorf("format = %q, want default for unknown value", GetOutputFormat())
	}
}
