// Package hueband classifies pixels into named perceptual hue bands.
//
// A hue band is a slice of the hue circle (red, orange, yellow,
// yellow-green, green, cyan, blue, purple). Classification is driven by an
// injected interval Table rather than compiled-in branches, so the
// "traditional" warm/cool mode and the finer "multi_channel" mode are two
// data instances of the same classifier.
//
// # Hue Convention
//
// All hue values use the OpenCV scale: hue on [0, 180), saturation and
// value on [0, 255]. RGB input is converted through go-colorful and
// rescaled accordingly.
//
// # Achromatic Pixels
//
// Pixels whose saturation or value falls below a table's minimums carry no
// reliable hue information. They classify as Achromatic and are excluded
// from every downstream ratio computation.
//
// # Table Validation
//
// Table.Validate enforces that the intervals exactly tile the hue circle:
// every hue is claimed by exactly one band, with the red wrap-around being
// the union of the first and last sub-intervals. A table that fails
// validation must never be used; silent misclassification is worse than a
// hard failure.
package hueband
