package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sigcheck/internal/history"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded check runs",
	Long: `Show check runs recorded with --record, newest first.

Examples:
  sigcheck history
  sigcheck history --limit=50 --format=json
  sigcheck history show <run-id>`,
	Run: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the findings of one recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyFormat, "format", "human", "Output format (human, json)")
	historyShowCmd.Flags().StringVar(&historyFormat, "format", "human", "Output format (human, json)")

	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory() *history.Store {
	cfg := mustLoadConfig()
	store, err := history.Open(cfg.History.Dir, newLogger(cfg))
	if err != nil {
		fatal(err)
	}
	return store
}

func runHistory(cmd *cobra.Command, args []string) {
	store := openHistory()
	defer store.Close()

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		fatal(err)
	}

	if historyFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if runs == nil {
			runs = []history.Run{}
		}
		if err := enc.Encode(runs); err != nil {
			fatal(err)
		}
		return
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return
	}
	for _, r := range runs {
		verdict := "ok"
		if r.Fatal {
			verdict = "FAIL"
		}
		fmt.Printf("%s  %s  %-4s  %s -> %s  (%s, %d findings, %d errors)\n",
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			verdict,
			r.OldSnapshot,
			r.NewSnapshot,
			r.Surface,
			r.Findings,
			r.Errors,
		)
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	store := openHistory()
	defer store.Close()

	findings, err := store.RunFindings(args[0])
	if err != nil {
		fatal(err)
	}

	if historyFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			fatal(err)
		}
		return
	}

	if len(findings) == 0 {
		fmt.Println("no findings recorded for this run")
		return
	}
	for _, f := range findings {
		where := f.Where
		if where == "" {
			where = "<unknown>"
		}
		fmt.Printf("%s: %s: %s [%s]\n", where, f.SeverityName, f.Message, f.Issue)
	}
}
