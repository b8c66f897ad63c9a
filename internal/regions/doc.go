// Package regions extracts connected color regions ("blobs") from per-band
// binary presence masks.
//
// # Pipeline
//
// For each band mask, extraction runs three fixed steps:
//
//  1. Morphological cleanup: opening then closing with a 5x5 structuring
//     element, suppressing isolated-pixel noise and filling small gaps.
//  2. Connected-component labeling with 8-connectivity, using an iterative
//     stack-based flood fill seeded in raster-scan order.
//  3. Minimum-area filtering: components below the caller-supplied area
//     threshold (default 100 pixels) are silently discarded. This is the
//     only noise-filtering knob exposed externally.
//
// # Determinism
//
// For a fixed mask and threshold the blob set is exactly reproducible.
// No map iteration participates in labeling, and the returned list is
// ordered top-to-bottom, left-to-right by bounding-box origin.
//
// # Ownership
//
// Blobs are plain values owned by the extraction call that produced them.
// They reference neither the source image nor each other and are never
// mutated after creation.
package regions
