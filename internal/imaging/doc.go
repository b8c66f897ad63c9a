// Package imaging handles image I/O for the analysis pipeline.
//
// It provides a thread-safe decoded-image cache, single-shot file loading
// with typed decode errors, image metadata, and saving of annotated
// output. Supported formats are PNG, JPEG, GIF, and BMP.
//
// # Error Handling
//
// An unreadable or corrupt image file surfaces as a *DecodeError carrying
// the offending path; callers receive it unmodified and no partial
// analysis is produced.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Decoded images are shared
// read-only between concurrent analyses; nothing in the pipeline mutates
// a source image.
package imaging
