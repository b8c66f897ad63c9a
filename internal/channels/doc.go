// Package channels aggregates a pixel classification into the two semantic
// color-vision channels.
//
// The red-green channel (red+orange vs yellow-green+green) carries the
// protan/deutan confusion axis; the blue-yellow channel (cyan+blue vs
// yellow+orange) carries the tritan axis. A band may participate in both
// channels: orange counts toward the red side of one and the yellow side
// of the other. The channels are independent statistical views, not a
// partition of pixels.
//
// Each channel report holds the channel's chromatic pixel total, the two
// side ratios (summing to 1 while the total is nonzero, 0.0 sentinels
// otherwise), per-band blob lists carried forward unmodified from the
// region extractor, and advisory blob-shape summaries.
package channels
