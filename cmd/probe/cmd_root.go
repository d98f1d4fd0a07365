// Root command configuration for the probe CLI.
// Defines global flags, help output, and top-level command metadata.
package main

import (
	"fmt"
	"os"

	"github.com/sandover/unreachable/internal/probe"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Root command flags
	globalOpts probe.GlobalOptions
	colorFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report and exercise the unreachable marker of this build.",
	Long: `probe shows which build mode the unreachable marker was compiled in
and runs code whose marked arms stay dead, or forces one on request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, err := probe.ParseColorMode(colorFlag)
		if err != nil {
			return err
		}
		globalOpts.Color = mode
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Quiet, "quiet", "q", false, "Suppress hints")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.JSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", string(probe.ColorAuto), "Style output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&globalOpts.Style, "style", "", "Glamour style for explain (default: detect)")

	rootCmd.Version = version

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Print(probe.UsageText(isTTY))
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		exitErr(err, &globalOpts)
	}
}
