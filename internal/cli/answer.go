package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lrm2017/color-weakness-detector/internal/ocr"
)

var (
	// Answer command flags
	answerExpected string
	answerReport   string
)

// answerCmd represents the answer command
var answerCmd = &cobra.Command{
	Use:   "answer <image>",
	Short: "Read the digit answer printed on a test plate",
	Long: `Answer runs digit-restricted OCR over a plate image and prints the
recognized digits as JSON. Tesseract must be installed on the system.

With --expected, the command additionally reports whether the
recognition matches and exits non-zero on a mismatch, which makes it
usable from scripts that validate plate artwork.

Examples:
  # Read the digits from a plate scan
  colorvision answer plate07.png

  # Verify the plate encodes the expected answer
  colorvision answer --expected 74 plate07.png`,
	Args: cobra.ExactArgs(1),
	RunE: runAnswer,
}

func init() {
	answerCmd.Flags().StringVarP(&answerExpected, "expected", "e", "", "expected digits to verify against")
	answerCmd.Flags().StringVarP(&answerReport, "report", "r", "", "write the JSON result to this file (default: stdout)")
}

// runAnswer executes the answer command.
func runAnswer(cmd *cobra.Command, args []string) error {
	answer, err := ocr.ReadPlateAnswer(args[0])
	if err != nil {
		return err
	}
	logger.Info("plate read", "digits", answer.Digits, "confidence", fmt.Sprintf("%.2f", answer.Confidence))

	if err := writeJSON(answer, answerReport); err != nil {
		return err
	}

	if answerExpected != "" && !answer.Matches(answerExpected) {
		return fmt.Errorf("recognized %q does not match expected %q", answer.Digits, answerExpected)
	}
	return nil
}
