package main

import (
	"strings"
	"testing"
)

const streamRequest = `{"compound_name":"template","data":{"validation":[` +
	`{"series":1,"level":1,"x":1.9,"y1":36539,"y2":36785},` +
	`{"series":1,"level":2,"x":4.7,"y1":102066,"y2":98495},` +
	`{"series":2,"level":1,"x":1.9,"y1":60086,"y2":35295},` +
	`{"series":2,"level":2,"x":4.7,"y1":99897,"y2":93547}]},` +
	`"model_to_test":"Linear","tolerance_limit":80,"acceptance_limit":20}`

func TestWriteParams(t *testing.T) {
	var out strings.Builder
	if err := writeParams(&out); err != nil {
		t.Fatalf("writeParams failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, `"type":"PARAMS"`) {
		t.Errorf("Expected PARAMS envelope, got %s", got)
	}
	if !strings.Contains(got, `"tolerance_limit"`) {
		t.Errorf("Schema keys should be listed, got %s", got)
	}
}

func TestResolveOne(t *testing.T) {
	var out strings.Builder
	if err := resolveOne(&out, []byte(streamRequest)); err != nil {
		t.Fatalf("resolveOne failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, `"type":"PROFILE"`) {
		t.Errorf("Expected PROFILE envelope, got %s", got)
	}
	if !strings.Contains(got, `"compound_name":"template"`) {
		t.Errorf("Resolved config should echo the compound name, got %s", got)
	}
}

func TestRunStream(t *testing.T) {
	in := strings.NewReader(streamRequest + "\n" + exitSentinel + "\n")
	var out strings.Builder

	if err := runStream(in, &out); err != nil {
		t.Fatalf("runStream failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected a single response line, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], `"type":"PROFILE"`) {
		t.Errorf("Expected PROFILE envelope, got %s", lines[0])
	}
}

func TestRunStreamBadLineKeepsGoing(t *testing.T) {
	in := strings.NewReader("not json\n" + streamRequest + "\n\"" + exitSentinel + "\"\n")
	var out strings.Builder

	if err := runStream(in, &out); err != nil {
		t.Fatalf("runStream failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected error + profile lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], `"type":"ERROR"`) {
		t.Errorf("Bad input should yield an ERROR envelope, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `"type":"PROFILE"`) {
		t.Errorf("The stream should continue after an error, got %s", lines[1])
	}
}

func TestRunStreamEOFWithoutSentinel(t *testing.T) {
	in := strings.NewReader(streamRequest + "\n")
	var out strings.Builder

	if err := runStream(in, &out); err != nil {
		t.Fatalf("runStream failed: %v", err)
	}
	if !strings.Contains(out.String(), `"type":"PROFILE"`) {
		t.Errorf("Expected PROFILE envelope, got %s", out.String())
	}
}
