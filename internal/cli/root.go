// Package cli provides the command-line interface for colorvision.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lrm2017/color-weakness-detector/internal/version"
)

var (
	// Global verbosity flag shared by all commands.
	globalVerbose bool

	// logger is the process-wide logger, configured in the root
	// PersistentPreRun so flag parsing has already happened.
	logger hclog.Logger

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "colorvision",
		Short: "Color vision deficiency analysis for images",
		Long: `Colorvision analyzes the color composition of images to detect patterns
consistent with color vision deficiencies.

Every pixel is classified into a hue band, the bands are aggregated into
the red-green and blue-yellow perception channels, and a rule table maps
the channel imbalances to a diagnosis. Images can additionally be
annotated with outlines around the minority color regions.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Info
			if env := os.Getenv("COLORVISION_LOG_LEVEL"); env != "" {
				level = hclog.LevelFromString(env)
			}
			if globalVerbose {
				level = hclog.Debug
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "colorvision",
				Level:  level,
				Output: os.Stderr,
			})
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(answerCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
