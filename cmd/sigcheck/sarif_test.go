package main

import (
	"encoding/json"
	"testing"

	"sigcheck/internal/model"
	"sigcheck/internal/report"
)

func sampleFindings() []report.Finding {
	return []report.Finding{
		{
			Issue:        report.IssueChangedScope,
			Severity:     report.SeverityError,
			SeverityName: "error",
			Location:     model.Location{File: "old.txt", Line: 3},
			Where:        "old.txt:3",
			Element:      "method test.pkg.Foo.bar(int)",
			Message:      "Method test.pkg.Foo.bar(int) changed visibility from public to protected",
		},
		{
			Issue:        report.IssueAddedMethod,
			Severity:     report.SeverityInfo,
			SeverityName: "info",
			Element:      "method test.pkg.Foo.baz()",
			Message:      "Added method test.pkg.Foo.baz()",
		},
		{
			Issue:        report.IssueChangedScope,
			Severity:     report.SeverityError,
			SeverityName: "error",
			Location:     model.Location{File: "old.txt", Line: 9},
			Where:        "old.txt:9",
			Element:      "method test.pkg.Foo.qux()",
			Message:      "Method test.pkg.Foo.qux() changed visibility from public to protected",
		},
	}
}

func TestFormatFindingsAsSARIF(t *testing.T) {
	out, err := formatFindingsAsSARIF(sampleFindings())
	if err != nil {
		t.Fatalf("formatFindingsAsSARIF() error: %v", err)
	}

	var doc SARIFReport
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Version != "2.1.0" {
		t.Errorf("version = %q", doc.Version)
	}
	if len(doc.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(doc.Runs))
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "sigcheck" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}

	// two distinct issues, so exactly two rules
	if len(run.Tool.Driver.Rules) != 2 {
		t.Fatalf("rules = %d, want 2 (deduplicated per issue)", len(run.Tool.Driver.Rules))
	}
	if run.Tool.Driver.Rules[0].ID != "sigcheck/ChangedScope" {
		t.Errorf("first rule ID = %q", run.Tool.Driver.Rules[0].ID)
	}

	if len(run.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(run.Results))
	}
	first := run.Results[0]
	if first.Level != "error" {
		t.Errorf("first result level = %q", first.Level)
	}
	if first.RuleIndex != 0 {
		t.Errorf("first result rule index = %d", first.RuleIndex)
	}
	if len(first.Locations) != 1 ||
		first.Locations[0].PhysicalLocation.ArtifactLocation.URI != "old.txt" ||
		first.Locations[0].PhysicalLocation.Region.StartLine != 3 {
		t.Errorf("first result location = %+v", first.Locations)
	}

	// the finding without a location must not fabricate one
	if len(run.Results[1].Locations) != 0 {
		t.Errorf("locationless finding got %+v", run.Results[1].Locations)
	}
	if run.Results[1].Level != "note" {
		t.Errorf("info finding level = %q, want note", run.Results[1].Level)
	}

	// both ChangedScope results share one rule
	if run.Results[2].RuleIndex != run.Results[0].RuleIndex {
		t.Error("same-issue results point at different rules")
	}
}

func TestFormatFindingsAsSARIFEmpty(t *testing.T) {
	out, err := formatFindingsAsSARIF(nil)
	if err != nil {
		t.Fatalf("formatFindingsAsSARIF() error: %v", err)
	}
	var doc SARIFReport
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Runs) != 1 || len(doc.Runs[0].Results) != 0 {
		t.Errorf("empty run serialized as %+v", doc.Runs)
	}
}

func TestSeverityToSARIFLevel(t *testing.T) {
	tests := []struct {
		sev  report.Severity
		want string
	}{
		{report.SeverityError, "error"},
		{report.SeverityWarning, "warning"},
		{report.SeverityInfo, "note"},
		{report.SeverityHidden, "none"},
	}
	for _, tt := range tests {
		if got := severityToSARIFLevel(tt.sev); got != tt.want {
			t.Errorf("severityToSARIFLevel(%v) = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
