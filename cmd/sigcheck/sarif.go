package main

import (
	"encoding/json"
	"fmt"

	"sigcheck/internal/report"
	"sigcheck/internal/version"
)

// SARIF 2.1.0 schema types
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html

// SARIFReport is the top-level SARIF document.
type SARIFReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver describes the primary analysis component.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []SARIFRule `json:"rules,omitempty"`
}

// SARIFRule describes a rule that detected an issue.
type SARIFRule struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name,omitempty"`
	ShortDescription     *SARIFMessage           `json:"shortDescription,omitempty"`
	DefaultConfiguration *SARIFRuleConfiguration `json:"defaultConfiguration,omitempty"`
}

// SARIFRuleConfiguration describes the default configuration for a rule.
type SARIFRuleConfiguration struct {
	Level string `json:"level,omitempty"` // error, warning, note, none
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level,omitempty"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations,omitempty"`
}

// SARIFMessage contains text in various formats.
type SARIFMessage struct {
	Text string `json:"text,omitempty"`
}

// SARIFLocation describes where a result was found.
type SARIFLocation struct {
	PhysicalLocation *SARIFPhysicalLocation `json:"physicalLocation,omitempty"`
}

// SARIFPhysicalLocation identifies a file and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation *SARIFArtifactLocation `json:"artifactLocation,omitempty"`
	Region           *SARIFRegion           `json:"region,omitempty"`
}

// SARIFArtifactLocation identifies a file.
type SARIFArtifactLocation struct {
	URI string `json:"uri,omitempty"`
}

// SARIFRegion identifies a region within a file.
type SARIFRegion struct {
	StartLine int `json:"startLine,omitempty"`
}

// formatFindingsAsSARIF converts check findings to a SARIF document.
func formatFindingsAsSARIF(findings []report.Finding) (string, error) {
	ruleIndex := make(map[string]int)
	var rules []SARIFRule
	results := make([]SARIFResult, 0, len(findings))

	for _, f := range findings {
		ruleID := fmt.Sprintf("sigcheck/%s", f.Issue)
		idx, exists := ruleIndex[ruleID]
		if !exists {
			idx = len(rules)
			ruleIndex[ruleID] = idx
			rules = append(rules, SARIFRule{
				ID:   ruleID,
				Name: string(f.Issue),
				ShortDescription: &SARIFMessage{
					Text: fmt.Sprintf("API compatibility issue %s", f.Issue),
				},
				DefaultConfiguration: &SARIFRuleConfiguration{
					Level: severityToSARIFLevel(f.Severity),
				},
			})
		}

		result := SARIFResult{
			RuleID:    ruleID,
			RuleIndex: idx,
			Level:     severityToSARIFLevel(f.Severity),
			Message:   SARIFMessage{Text: f.Message},
		}
		if f.Location.File != "" {
			result.Locations = []SARIFLocation{{
				PhysicalLocation: &SARIFPhysicalLocation{
					ArtifactLocation: &SARIFArtifactLocation{URI: f.Location.File},
					Region:           &SARIFRegion{StartLine: f.Location.Line},
				},
			}}
		}
		results = append(results, result)
	}

	doc := SARIFReport{
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []SARIFRun{{
			Tool: SARIFTool{
				Driver: SARIFDriver{
					Name:    "sigcheck",
					Version: version.Version,
					Rules:   rules,
				},
			},
			Results: results,
		}},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// severityToSARIFLevel maps finding severities onto SARIF levels.
func severityToSARIFLevel(sev report.Severity) string {
	switch sev {
	case report.SeverityError:
		return "error"
	case report.SeverityWarning:
		return "warning"
	case report.SeverityInfo:
		return "note"
	}
	return "none"
}
