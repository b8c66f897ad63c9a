package ocr

import (
	"fmt"
	"image"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// digitWhitelist restricts recognition to the characters a plate answer
// can contain.
const digitWhitelist = "0123456789"

// Bounds is a rectangular bounding box in pixel coordinates of the
// original image.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// DigitRegion is one recognized digit with its location and recognition
// confidence.
type DigitRegion struct {
	Digit      string  `json:"digit"`
	Confidence float64 `json:"confidence"`
	Bounds     Bounds  `json:"bounds"`
}

// PlateAnswer is the digit reading extracted from a test plate
// photograph or scan.
type PlateAnswer struct {
	// Digits is the recognized answer with everything but digits
	// stripped, in left-to-right order.
	Digits string `json:"digits"`

	// RawText is Tesseract's unfiltered output, kept for debugging
	// misreads.
	RawText string `json:"raw_text"`

	// Confidence is the mean recognition confidence over the digit
	// regions, 0 to 1. Zero when no digits were found.
	Confidence float64 `json:"confidence"`

	// Regions are the individual digits, sorted left to right.
	Regions []DigitRegion `json:"regions"`
}

// Matches reports whether the recognized answer equals the expected one.
// Both sides are reduced to their digits first, so "7 4" matches "74".
func (a *PlateAnswer) Matches(expected string) bool {
	return a.Digits != "" && a.Digits == digitsOf(expected)
}

// ReadPlateAnswer runs digit-restricted OCR over an image file.
//
// The image is preprocessed before recognition: converted to grayscale,
// contrast-stretched, and upscaled. Plate digits are typically rendered
// as dot patterns, and Tesseract does markedly better on the smoothed,
// enlarged rendering than on the raw scan.
//
// Recognition is restricted to the digits 0-9. Tesseract and its English
// training data must be installed on the system.
func ReadPlateAnswer(imagePath string) (*PlateAnswer, error) {
	img, err := imaging.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open plate image: %w", err)
	}
	return ReadPlateAnswerImage(img)
}

// ReadPlateAnswerImage is ReadPlateAnswer for an image already in
// memory. A preprocessed copy is written to a temporary file because
// Tesseract consumes file paths.
func ReadPlateAnswerImage(img image.Image) (*PlateAnswer, error) {
	prepared := prepareForOCR(img)

	tmpFile, err := os.CreateTemp("", "plate-answer-*.png")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := imaging.Save(prepared, tmpPath); err != nil {
		return nil, fmt.Errorf("write temp image: %w", err)
	}

	return recognizeDigits(tmpPath)
}

// prepareForOCR renders the plate into the form Tesseract reads best:
// grayscale, contrast-stretched, doubled in size.
func prepareForOCR(img image.Image) image.Image {
	prepared := imaging.Grayscale(img)
	prepared = imaging.AdjustContrast(prepared, 20)
	return imaging.Resize(prepared, prepared.Bounds().Dx()*2, 0, imaging.Lanczos)
}

// recognizeDigits runs the whitelisted Tesseract pass and assembles the
// answer.
func recognizeDigits(imagePath string) (*PlateAnswer, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}
	if err := client.SetWhitelist(digitWhitelist); err != nil {
		return nil, fmt.Errorf("set digit whitelist: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	answer := &PlateAnswer{RawText: text}

	// Symbol-level boxes give one region per digit. If box extraction
	// fails the text result still stands on its own.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err == nil {
		for _, box := range boxes {
			d := digitsOf(box.Word)
			if d == "" {
				continue
			}
			answer.Regions = append(answer.Regions, DigitRegion{
				Digit:      d,
				Confidence: float64(box.Confidence) / 100.0,
				Bounds: Bounds{
					X1: box.Box.Min.X,
					Y1: box.Box.Min.Y,
					X2: box.Box.Max.X,
					Y2: box.Box.Max.Y,
				},
			})
		}
		sort.SliceStable(answer.Regions, func(i, j int) bool {
			return answer.Regions[i].Bounds.X1 < answer.Regions[j].Bounds.X1
		})
	}

	if len(answer.Regions) > 0 {
		var digits strings.Builder
		sum := 0.0
		for _, r := range answer.Regions {
			digits.WriteString(r.Digit)
			sum += r.Confidence
		}
		answer.Digits = digits.String()
		answer.Confidence = sum / float64(len(answer.Regions))
	} else {
		answer.Digits = digitsOf(text)
	}

	return answer, nil
}

// digitsOf strips everything but decimal digits from s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
