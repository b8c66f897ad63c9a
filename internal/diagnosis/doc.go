// Package diagnosis derives a color-vision finding from the two channel
// reports.
//
// The decision procedure is an ordered rule table over the channels' skew
// signals, evaluated in a fixed priority order: the insufficient-sample
// guard first, then red-green dominance, blue-yellow dominance, and the
// normal fallback. Each rule pairs a predicate with a result constructor,
// keeping every rule auditable and independently testable.
//
// Red-side dominance of the red-green channel maps to the protan family,
// green-side dominance to the deutan family, with the -anomaly/-opia split
// at a second, higher skew threshold. Either direction of blue-yellow
// dominance maps to the tritan family: that axis has a single confusion
// line.
//
// Confidence grows monotonically with the deciding skew's margin over the
// dominance threshold. Blob statistics are advisory only: they can raise
// confidence within bounds but never flip a category.
//
// This is a population-level heuristic over plate imagery, not a
// clinically validated instrument.
package diagnosis
