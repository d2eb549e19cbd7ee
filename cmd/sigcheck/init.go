package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sigcheck/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .sigcheck/config.json",
	Run:   runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	path := filepath.Join(".sigcheck", "config.json")
	if _, err := os.Stat(path); err == nil && !initForce {
		fatal(fmt.Errorf("%s already exists (use --force to overwrite)", path))
	}
	if err := config.DefaultConfig().Save("."); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", path)
}
