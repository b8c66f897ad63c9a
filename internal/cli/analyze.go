package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lrm2017/color-weakness-detector/internal/imaging"
	"github.com/lrm2017/color-weakness-detector/internal/pipeline"
)

var (
	// Analyze command flags
	analyzeMode    string
	analyzeChannel string
	analyzeMinArea int
	analyzeOutput  string
	analyzeReport  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze one image for color vision deficiency patterns",
	Long: `Analyze classifies every pixel of an image into hue bands, aggregates
the red-green and blue-yellow channels, and prints the diagnosis report
as JSON.

Supported image formats: PNG, JPEG, GIF, BMP

Examples:
  # Analyze an image and print the report
  colorvision analyze plate.png

  # Use the finer multi-channel hue table
  colorvision analyze --mode multi_channel plate.png

  # Write the report to a file and an annotated copy next to it
  colorvision analyze --report report.json --output annotated.png plate.png

  # Mark the red-green minority instead of the warm/cool one
  colorvision analyze --channel red_green --output annotated.png plate.png`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeMode, "mode", "m", pipeline.ModeTraditional, "hue table (traditional, multi_channel)")
	analyzeCmd.Flags().StringVarP(&analyzeChannel, "channel", "c", pipeline.ChannelComprehensive, "annotation channel (red_green, blue_yellow, comprehensive)")
	analyzeCmd.Flags().IntVar(&analyzeMinArea, "min-area", 0, "minimum blob area in pixels (0 = default)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write an annotated copy to this path")
	analyzeCmd.Flags().StringVarP(&analyzeReport, "report", "r", "", "write the JSON report to this file (default: stdout)")
}

// analysisDocument is the JSON document the analyze command emits: the
// pipeline report with the source file's metadata alongside it.
type analysisDocument struct {
	Image *imaging.ImageInfo `json:"image"`
	*pipeline.Report
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(analyzeMode, analyzeChannel, analyzeMinArea)
	if err := cfg.Validate(); err != nil {
		return err
	}

	imagePath := args[0]
	cache := imaging.NewImageCache()
	info, err := imaging.LoadImageInfo(cache, imagePath)
	if err != nil {
		return err
	}
	img, err := cache.Load(imagePath)
	if err != nil {
		return err
	}
	logger.Debug("loaded image",
		"path", imagePath,
		"format", info.Format,
		"dimensions", fmt.Sprintf("%dx%d", info.Width, info.Height),
		"file_size", info.FileSizeBytes)

	report, err := pipeline.Analyze(img, cfg)
	if err != nil {
		return err
	}
	logger.Info("analysis complete",
		"diagnosis", report.Diagnosis.Type,
		"confidence", fmt.Sprintf("%.2f", report.Diagnosis.Confidence))

	if analyzeOutput != "" {
		a, err := pipeline.Annotate(img, cfg)
		if err != nil {
			return err
		}
		if err := imaging.Save(a.Image, analyzeOutput); err != nil {
			return fmt.Errorf("write annotated copy: %w", err)
		}
		logger.Info("wrote annotated copy", "path", analyzeOutput, "marked_blobs", len(a.Blobs))
	}

	return writeJSON(analysisDocument{Image: info, Report: report}, analyzeReport)
}

// buildConfig assembles the pipeline configuration from command flags.
func buildConfig(mode, channel string, minArea int) pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.Mode = mode
	cfg.Channel = channel
	if minArea > 0 {
		cfg.MinBlobArea = minArea
	}
	return cfg
}

// writeJSON marshals v indented and writes it to path, or to stdout when
// path is empty.
func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
