package main

import (
	"os"

	"github.com/spf13/cobra"

	"sigcheck/internal/merge"
	"sigcheck/internal/sigfile"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <snapshot>...",
	Short: "Merge partial API snapshots into one",
	Long: `Union several partial snapshots into a single canonical snapshot.

A class may appear in more than one input as long as every occurrence
describes the identical API; any divergence aborts the merge naming both
definitions. The merged snapshot is written in canonical sorted form, so
merging is insensitive to input order.

Examples:
  sigcheck merge -o api/full.txt api/part1.txt api/part2.txt
  sigcheck merge api/*.txt > api/full.txt`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output file (default stdout; .gz compresses)")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) {
	merged, err := merge.Files(args)
	if err != nil {
		fatal(err)
	}

	if mergeOutput == "" {
		if err := sigfile.Write(os.Stdout, merged); err != nil {
			fatal(err)
		}
		return
	}
	if err := sigfile.Save(mergeOutput, merged); err != nil {
		fatal(err)
	}
}
