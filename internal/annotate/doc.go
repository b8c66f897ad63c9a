// Package annotate draws bounding marks around minority-group color
// regions for visual inspection.
//
// The majority group is determined purely by aggregate pixel count (warm
// vs cool, or one channel's sides); every blob of the minority group gets
// its own closed rectangle outline. Annotation is non-destructive: pixels
// outside the mark strokes are byte-identical to the input, and an image
// with no minority blobs comes back as an unmodified copy.
//
// The two mark colors are a fixed convention carried through from the
// plate-inspection workflow: blue outlines mean the warm group dominates
// (cool regions are the ones a red-green-deficient viewer may miss), red
// outlines mean the cool group dominates.
package annotate
