package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lrm2017/color-weakness-detector/internal/channels"
	"github.com/lrm2017/color-weakness-detector/internal/hueband"
	"github.com/lrm2017/color-weakness-detector/internal/regions"
)

// Mark colors are fixed by majority direction and must not change: the
// color encodes which group is "hidden" for the viewer. A warm majority
// marks the minority cool blobs in blue; a cool majority marks the
// minority warm blobs in red.
var (
	coolMinorityMark = color.RGBA{R: 0, G: 0, B: 255, A: 255} // warm majority
	warmMinorityMark = color.RGBA{R: 255, G: 0, B: 0, A: 255} // cool majority
)

// markStroke is the outline thickness in pixels.
const markStroke = 2

// Group names reported in annotation metadata.
const (
	GroupWarm   = "warm"
	GroupCool   = "cool"
	GroupRed    = "red"
	GroupGreen  = "green"
	GroupBlue   = "blue"
	GroupYellow = "yellow"
)

// Annotation is an annotated copy of a source image together with what was
// marked on it.
type Annotation struct {
	// Image is the annotated copy. Pixels outside the mark strokes are
	// byte-identical to the input.
	Image *image.RGBA `json:"-"`

	// Majority names the dominant group; Minority the marked one.
	Majority string `json:"majority"`
	Minority string `json:"minority"`

	// MarkColor is the outline color as "#RRGGBB".
	MarkColor string `json:"mark_color"`

	// Blobs are the minority regions that were outlined, in extraction
	// order.
	Blobs []regions.Blob `json:"blobs"`
}

// MarkWarmCoolMinority draws closed bounding marks around every blob of
// the minority perceptual super-group.
//
// The majority is decided purely by aggregate pixel count: warm total vs
// cool total, warm winning ties. Each minority-band blob gets its own
// closed rectangle outline around its bounding box; nearby blobs are never
// merged. With zero minority blobs the returned image is an unmodified
// copy of the input.
func MarkWarmCoolMinority(img image.Image, c *channels.Classification, minArea int) *Annotation {
	warm := c.WarmTotal()
	cool := c.CoolTotal()

	var bands []hueband.Band
	a := &Annotation{}
	if warm >= cool {
		a.Majority, a.Minority = GroupWarm, GroupCool
		bands = hueband.CoolBands()
	} else {
		a.Majority, a.Minority = GroupCool, GroupWarm
		bands = hueband.WarmBands()
	}
	return markBands(img, c, bands, a, minArea)
}

// MarkRedGreenMinority marks the minority side of the red-green channel
// (red side: red+orange, green side: yellow-green+green), using the same
// fixed two-color convention: the warm (red) side marks in blue when it is
// the majority, in red when the cool (green) side is.
func MarkRedGreenMinority(img image.Image, c *channels.Classification, minArea int) *Annotation {
	red := c.Count(hueband.Red) + c.Count(hueband.Orange)
	green := c.Count(hueband.YellowGreen) + c.Count(hueband.Green)

	var bands []hueband.Band
	a := &Annotation{}
	if red >= green {
		a.Majority, a.Minority = GroupRed, GroupGreen
		bands = []hueband.Band{hueband.YellowGreen, hueband.Green}
	} else {
		a.Majority, a.Minority = GroupGreen, GroupRed
		bands = []hueband.Band{hueband.Red, hueband.Orange}
	}
	return markBands(img, c, bands, a, minArea)
}

// MarkBlueYellowMinority marks the minority side of the blue-yellow
// channel (blue side: cyan+blue, yellow side: yellow+orange). The yellow
// side counts as the warm direction for the mark-color convention.
func MarkBlueYellowMinority(img image.Image, c *channels.Classification, minArea int) *Annotation {
	blue := c.Count(hueband.Cyan) + c.Count(hueband.Blue)
	yellow := c.Count(hueband.Yellow) + c.Count(hueband.Orange)

	var bands []hueband.Band
	a := &Annotation{}
	if yellow >= blue {
		a.Majority, a.Minority = GroupYellow, GroupBlue
		bands = []hueband.Band{hueband.Cyan, hueband.Blue}
	} else {
		a.Majority, a.Minority = GroupBlue, GroupYellow
		bands = []hueband.Band{hueband.Yellow, hueband.Orange}
	}
	return markBands(img, c, bands, a, minArea)
}

// markBands extracts the minority bands' blobs and outlines each on a copy
// of the source image.
func markBands(img image.Image, c *channels.Classification, bands []hueband.Band, a *Annotation, minArea int) *Annotation {
	mark := markColorFor(a.Majority)
	a.MarkColor = hexColor(mark)

	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)
	a.Image = result

	a.Blobs = make([]regions.Blob, 0)
	for _, band := range bands {
		a.Blobs = append(a.Blobs, regions.Extract(c.Mask(band), band, minArea)...)
	}
	for _, blob := range a.Blobs {
		drawRectOutline(result, blob.BBox, mark)
	}
	return a
}

// markColorFor returns the fixed mark color for a majority group. Warm
// directions (warm, red, yellow majorities) mark in blue; cool directions
// mark in red.
func markColorFor(majority string) color.RGBA {
	switch majority {
	case GroupWarm, GroupRed, GroupYellow:
		return coolMinorityMark
	default:
		return warmMinorityMark
	}
}

// drawRectOutline draws a closed rectangle outline of markStroke thickness
// just around the bounding box, clamped to the image bounds. The interior
// is left untouched.
func drawRectOutline(img *image.RGBA, box regions.BBox, c color.RGBA) {
	x1 := box.X - markStroke
	y1 := box.Y - markStroke
	x2 := box.X + box.Width + markStroke
	y2 := box.Y + box.Height + markStroke

	for t := 0; t < markStroke; t++ {
		hline(img, x1, x2, y1+t, c)
		hline(img, x1, x2, y2-1-t, c)
		vline(img, x1+t, y1, y2, c)
		vline(img, x2-1-t, y1, y2, c)
	}
}

func hline(img *image.RGBA, x1, x2, y int, c color.RGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := max(x1, b.Min.X); x < min(x2, b.Max.X); x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y1, y2 int, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := max(y1, b.Min.Y); y < min(y2, b.Max.Y); y++ {
		img.SetRGBA(x, y, c)
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
