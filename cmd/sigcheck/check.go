package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sigcheck/internal/baseline"
	"sigcheck/internal/compat"
	"sigcheck/internal/config"
	"sigcheck/internal/history"
	"sigcheck/internal/model"
	"sigcheck/internal/report"
	"sigcheck/internal/sigfile"
)

var (
	checkSurface        string
	checkBaseApis       []string
	checkFormat         string
	checkBaseline       string
	checkUpdateBaseline bool
	checkProfile        string
	checkRecord         bool
)

var checkCmd = &cobra.Command{
	Use:   "check <old-snapshot> <new-snapshot>",
	Short: "Check two API snapshots for incompatibilities",
	Long: `Compare a released API snapshot against the current one and report
every binary or source incompatibility.

The old snapshot is the contract; the new one is the candidate. Findings
at the error tier fail the run with exit code 1. Structural problems
(unreadable snapshots, bad config) exit with code 2.

Examples:
  sigcheck check api/released.txt api/current.txt
  sigcheck check --api-surface=system old.txt new.txt
  sigcheck check --base-api=api/public.txt old-system.txt new-system.txt
  sigcheck check --baseline=api/baseline.yaml old.txt new.txt
  sigcheck check --format=sarif old.txt new.txt > findings.sarif`,
	Args: cobra.ExactArgs(2),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkSurface, "api-surface", "", "API surface to check (public, system, removed)")
	checkCmd.Flags().StringSliceVar(&checkBaseApis, "base-api", nil, "Snapshots stacked under both inputs to fill classpath gaps")
	checkCmd.Flags().StringVar(&checkFormat, "format", "human", "Output format (human, json, sarif)")
	checkCmd.Flags().StringVar(&checkBaseline, "baseline", "", "Baseline file muting known findings")
	checkCmd.Flags().BoolVar(&checkUpdateBaseline, "update-baseline", false, "Rewrite the baseline file from this run's findings")
	checkCmd.Flags().StringVar(&checkProfile, "profile", "", "Severity profile (TOML)")
	checkCmd.Flags().BoolVar(&checkRecord, "record", false, "Record this run in the history database")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	surface := cfg.Check.Surface
	if checkSurface != "" {
		surface = checkSurface
	}
	switch surface {
	case "public", "system", "removed":
	default:
		fatal(fmt.Errorf("unknown api surface %q", surface))
	}

	parseOpts := sigfile.ParseOptions{Removed: surface == "removed"}
	oldBase := mustLoadStack(args[0], parseOpts)
	newBase := mustLoadStack(args[1], parseOpts)

	severities := mustResolveSeverities(cfg)

	baselinePath := cfg.Check.Baseline
	if checkBaseline != "" {
		baselinePath = checkBaseline
	}
	var base *baseline.Baseline
	if baselinePath != "" {
		var err error
		base, err = baseline.Load(baselinePath)
		if err != nil {
			fatal(err)
		}
	}

	opts := report.Options{Severities: severities}
	if base != nil && !checkUpdateBaseline {
		opts.Baseline = base
	}
	rep := report.NewReporter(opts)

	compat.CheckCompatibility(rep, oldBase, newBase, compat.Options{
		Surface: compat.Surface(surface),
	})

	if err := writeFindings(os.Stdout, rep, checkFormat, args[0], args[1]); err != nil {
		fatal(err)
	}

	if checkUpdateBaseline {
		if baselinePath == "" {
			fatal(fmt.Errorf("--update-baseline needs --baseline or a configured baseline path"))
		}
		fresh := baseline.New()
		fresh.AddFindings(rep.Findings())
		if err := fresh.Save(baselinePath); err != nil {
			fatal(err)
		}
		logger.Info("Baseline updated", map[string]interface{}{
			"path":    baselinePath,
			"entries": fresh.Len(),
		})
	}

	if checkRecord || cfg.History.Enabled {
		store, err := history.Open(cfg.History.Dir, logger)
		if err != nil {
			fatal(err)
		}
		defer store.Close()
		runID, err := store.RecordRun(args[0], args[1], surface, rep.FoundProblems(), rep.Findings())
		if err != nil {
			fatal(err)
		}
		logger.Info("Run recorded", map[string]interface{}{
			"runId": runID,
		})
	}

	errs, warns, infos := rep.Counts()
	logger.Debug("Check completed", map[string]interface{}{
		"errors":   errs,
		"warnings": warns,
		"infos":    infos,
		"muted":    rep.MutedCount(),
		"duration": time.Since(start).Milliseconds(),
	})

	if rep.FoundProblems() && !checkUpdateBaseline {
		os.Exit(1)
	}
}

// mustLoadStack loads the primary snapshot plus every --base-api snapshot
// into one overlay, primary first.
func mustLoadStack(path string, opts sigfile.ParseOptions) *model.MergedCodebase {
	primary, err := sigfile.Load(path, opts)
	if err != nil {
		fatal(err)
	}
	stack := []*model.Codebase{primary}
	for _, basePath := range checkBaseApis {
		cb, err := sigfile.Load(basePath, sigfile.ParseOptions{})
		if err != nil {
			fatal(err)
		}
		stack = append(stack, cb)
	}
	return model.NewMergedCodebase(stack...)
}

// mustResolveSeverities merges severity overrides: config first, then the
// profile on top.
func mustResolveSeverities(cfg *config.Config) map[report.Issue]report.Severity {
	severities, err := cfg.SeverityOverrides()
	if err != nil {
		fatal(err)
	}

	profilePath := cfg.Check.Profile
	if checkProfile != "" {
		profilePath = checkProfile
	}
	if profilePath == "" {
		return severities
	}
	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		fatal(err)
	}
	if severities == nil {
		severities = map[report.Issue]report.Severity{}
	}
	for issue, sev := range profile.Overrides() {
		severities[issue] = sev
	}
	return severities
}
