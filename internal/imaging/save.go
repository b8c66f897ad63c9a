package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Save writes an image to disk, choosing the encoder from the file
// extension (.png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff).
//
// Annotated output is written next to its source by the callers, so the
// extension normally matches the input format.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
