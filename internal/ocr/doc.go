// Package ocr reads the digit answers printed on color-vision test
// plates using Tesseract.
//
// The analysis pipeline itself never depends on this package; it exists
// for the workflow around it, where a reference answer for each plate is
// recovered from the plate artwork and compared against what a subject
// reports.
//
// # Prerequisites
//
// Tesseract and its English training data must be installed on the
// system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Recognition is restricted to the digits 0-9, which is what standard
// pseudoisochromatic plates encode.
package ocr
