// Package batch runs the analysis pipeline over a directory of images
// with a fixed-size worker pool.
//
// Individual file failures are recorded per file and never abort the
// run. The summary is deterministic: results are sorted by filename and
// each image is analyzed independently, so worker scheduling cannot
// change the output.
package batch
