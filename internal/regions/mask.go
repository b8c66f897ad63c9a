package regions

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// cleanupRadius is the radius of the fixed structuring element used for
// morphological cleanup (radius 2 covers a 5x5 neighborhood).
const cleanupRadius = 2.0

// Mask is a binary presence bitmap for one hue band.
//
// Bits are stored row-major. A Mask is built once during pixel
// classification and treated as read-only by everything downstream except
// Clean, which returns a new Mask.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask creates an all-false mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		bits:   make([]bool, width*height),
	}
}

// Set marks the pixel at (x, y) as present. Out-of-range coordinates are
// ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.bits[y*m.Width+x] = true
}

// At reports whether the pixel at (x, y) is present. Out-of-range
// coordinates read as absent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.bits[y*m.Width+x]
}

// Count returns the number of present pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Clean applies morphological opening followed by closing with the fixed
// 5x5 structuring element and returns the result as a new mask.
//
// Opening (erode then dilate) suppresses isolated-pixel noise; closing
// (dilate then erode) fills small gaps inside surviving regions. The
// receiver is not modified.
func (m *Mask) Clean() *Mask {
	if m.Width == 0 || m.Height == 0 {
		return NewMask(m.Width, m.Height)
	}
	gray := m.toGray()
	opened := effect.Dilate(effect.Erode(gray, cleanupRadius), cleanupRadius)
	closed := effect.Erode(effect.Dilate(opened, cleanupRadius), cleanupRadius)
	return maskFromRGBA(closed, m.Width, m.Height)
}

// toGray renders the mask as an 8-bit grayscale image (present = 255).
func (m *Mask) toGray() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		row := y * m.Width
		for x := 0; x < m.Width; x++ {
			if m.bits[row+x] {
				gray.Pix[y*gray.Stride+x] = 255
			}
		}
	}
	return gray
}

// maskFromRGBA rebuilds a binary mask by thresholding the red channel of a
// morphology result at the midpoint.
func maskFromRGBA(img *image.RGBA, width, height int) *Mask {
	m := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if img.Pix[y*img.Stride+x*4] >= 128 {
				m.bits[y*m.Width+x] = true
			}
		}
	}
	return m
}
