package channels

import (
	"image"

	"github.com/lrm2017/color-weakness-detector/internal/hueband"
	"github.com/lrm2017/color-weakness-detector/internal/regions"
)

// Classification is the full per-band pixel classification of one image.
//
// It owns one presence mask and one pixel count per chromatic band.
// A Classification is built in a single pass over the image and read-only
// afterwards; concurrent analyses each build their own.
type Classification struct {
	Width  int
	Height int

	counts [hueband.NumBands]int
	masks  [hueband.NumBands]*regions.Mask
}

// Classify runs the hue classifier over every pixel of img under the given
// table and collects per-band masks and counts. Achromatic pixels are
// counted in no band.
func Classify(img image.Image, table hueband.Table) *Classification {
	bounds := img.Bounds()
	c := &Classification{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	for i := range c.masks {
		c.masks[i] = regions.NewMask(c.Width, c.Height)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			band := table.ClassifyColor(img.At(x, y))
			if band == hueband.Achromatic {
				continue
			}
			c.counts[band]++
			c.masks[band].Set(x-bounds.Min.X, y-bounds.Min.Y)
		}
	}
	return c
}

// Count returns the chromatic pixel count of one band.
func (c *Classification) Count(b hueband.Band) int {
	if b < 0 || int(b) >= hueband.NumBands {
		return 0
	}
	return c.counts[b]
}

// Mask returns the presence mask of one band. The returned mask must be
// treated as read-only.
func (c *Classification) Mask(b hueband.Band) *regions.Mask {
	if b < 0 || int(b) >= hueband.NumBands {
		return nil
	}
	return c.masks[b]
}

// ChromaticTotal returns the total number of chromatic pixels across all
// bands.
func (c *Classification) ChromaticTotal() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// WarmTotal returns the pixel count of the warm super-group.
func (c *Classification) WarmTotal() int {
	total := 0
	for _, b := range hueband.WarmBands() {
		total += c.counts[b]
	}
	return total
}

// CoolTotal returns the pixel count of the cool super-group.
func (c *Classification) CoolTotal() int {
	total := 0
	for _, b := range hueband.CoolBands() {
		total += c.counts[b]
	}
	return total
}
