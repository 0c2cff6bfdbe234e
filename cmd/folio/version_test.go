package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"folio/internal/version"
)

func TestRenderVersionPretty(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	var buf bytes.Buffer
	renderVersionPretty(&buf)
	out := buf.String()
	if !strings.HasPrefix(out, "folio "+version.Version) {
		t.Errorf("pretty output = %q", out)
	}
	if !strings.Contains(out, versionTagline) {
		t.Errorf("pretty output must carry the tagline, got %q", out)
	}
	if strings.Contains(out, "commit") {
		t.Errorf("unset commit must be omitted, got %q", out)
	}
}

func TestRenderVersionPrettyWithMetadata(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	origCommit, origDate := version.GitCommit, version.BuildDate
	version.GitCommit = "abc123"
	version.BuildDate = "2026-08-31"
	defer func() { version.GitCommit, version.BuildDate = origCommit, origDate }()

	var buf bytes.Buffer
	renderVersionPretty(&buf)
	out := buf.String()
	if !strings.Contains(out, "commit abc123") || !strings.Contains(out, "built  2026-08-31") {
		t.Errorf("pretty output = %q", out)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "folio" || payload.Version != version.Version {
		t.Errorf("payload = %+v", payload)
	}
}
