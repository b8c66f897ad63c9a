package cli

import (
	"github.com/spf13/cobra"

	"github.com/lrm2017/color-weakness-detector/internal/batch"
)

var (
	// Batch command flags
	batchMode    string
	batchChannel string
	batchMinArea int
	batchOutput  string
	batchReport  string
	batchWorkers int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Analyze every image in a directory",
	Long: `Batch scans a directory for images and analyzes each one with a worker
pool. Individual failures are recorded per file and do not abort the
run. The summary of all results is printed as JSON, sorted by filename.

Examples:
  # Analyze all images in a directory
  colorvision batch ./plates

  # Write annotated copies alongside the analysis
  colorvision batch --output ./annotated ./plates

  # Use 8 workers and save the summary
  colorvision batch --workers 8 --report summary.json ./plates`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchMode, "mode", "m", "traditional", "hue table (traditional, multi_channel)")
	batchCmd.Flags().StringVarP(&batchChannel, "channel", "c", "comprehensive", "annotation channel (red_green, blue_yellow, comprehensive)")
	batchCmd.Flags().IntVar(&batchMinArea, "min-area", 0, "minimum blob area in pixels (0 = default)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write annotated copies to this directory")
	batchCmd.Flags().StringVarP(&batchReport, "report", "r", "", "write the JSON summary to this file (default: stdout)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", batch.DefaultWorkers, "number of concurrent analyses")
}

// runBatch executes the batch command.
func runBatch(cmd *cobra.Command, args []string) error {
	summary, err := batch.Run(cmd.Context(), batch.Options{
		InputDir:  args[0],
		OutputDir: batchOutput,
		Workers:   batchWorkers,
		Config:    buildConfig(batchMode, batchChannel, batchMinArea),
		Logger:    logger.Named("batch"),
	})
	if err != nil {
		return err
	}

	return writeJSON(summary, batchReport)
}
