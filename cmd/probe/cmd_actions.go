// Purpose: Wire cobra subcommands to internal probe.RunX implementations.
// Exports: none.
// Role: CLI composition layer for user-facing commands.
// Invariants: Flags and command names align with help.txt.
package main

import (
	"os"

	"github.com/sandover/unreachable/internal/probe"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)

	demoCmd.Flags().BoolVar(&demoOpts.Reach, "reach", false, "Force the marked arm with its message")
	demoCmd.Flags().BoolVar(&demoOpts.Bare, "bare", false, "Force the marked arm without a message")
	demoCmd.MarkFlagsMutuallyExclusive("reach", "bare")
}

// -- mode --
var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Print the build mode (verified or optimized)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return probe.RunMode(globalOpts, os.Stdout)
	},
}

// -- demo --
var demoOpts probe.DemoOptions

var demoCmd = &cobra.Command{
	Use:   "demo [N...]",
	Short: "Classify integers through exhaustive, marker-guarded arms",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (demoOpts.Reach || demoOpts.Bare) && len(args) > 0 {
			return usageError("usage: probe demo --reach|--bare (no numbers)")
		}
		return probe.RunDemo(args, demoOpts, globalOpts, os.Stdout)
	},
}

// -- explain --
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print the marker contract",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return probe.RunExplain(globalOpts, os.Stdout)
	},
}

// -- version --
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}
