package main

import (
	"encoding/json"
	"fmt"
	"io"

	"sigcheck/internal/report"
)

// checkResponse is the JSON output shape of the check command.
type checkResponse struct {
	OldSnapshot string           `json:"oldSnapshot"`
	NewSnapshot string           `json:"newSnapshot"`
	Findings    []report.Finding `json:"findings"`
	Summary     checkSummary     `json:"summary"`
}

type checkSummary struct {
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Infos    int  `json:"infos"`
	Muted    int  `json:"muted"`
	Fatal    bool `json:"fatal"`
}

// writeFindings renders the reporter's findings in the requested format.
// Findings are output, not diagnostics; they never go through the logger.
func writeFindings(w io.Writer, rep *report.Reporter, format, oldPath, newPath string) error {
	switch format {
	case "human":
		for _, f := range rep.Findings() {
			fmt.Fprintln(w, f.String())
		}
		errs, warns, infos := rep.Counts()
		if errs+warns+infos > 0 {
			fmt.Fprintf(w, "%d error(s), %d warning(s), %d info(s)", errs, warns, infos)
			if muted := rep.MutedCount(); muted > 0 {
				fmt.Fprintf(w, ", %d muted by baseline", muted)
			}
			fmt.Fprintln(w)
		}
		return nil
	case "json":
		errs, warns, infos := rep.Counts()
		resp := checkResponse{
			OldSnapshot: oldPath,
			NewSnapshot: newPath,
			Findings:    rep.Findings(),
			Summary: checkSummary{
				Errors:   errs,
				Warnings: warns,
				Infos:    infos,
				Muted:    rep.MutedCount(),
				Fatal:    rep.FoundProblems(),
			},
		}
		if resp.Findings == nil {
			resp.Findings = []report.Finding{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "sarif":
		doc, err := formatFindingsAsSARIF(rep.Findings())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, doc)
		return err
	}
	return fmt.Errorf("unknown output format %q (want human, json or sarif)", format)
}
