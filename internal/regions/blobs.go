package regions

import (
	"sort"

	"github.com/lrm2017/color-weakness-detector/internal/hueband"
)

// DefaultMinArea is the default minimum blob area in pixels. Regions
// smaller than this are treated as noise and silently discarded.
const DefaultMinArea = 100

// BBox is an axis-aligned bounding box with its top-left origin.
type BBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Centroid is the mean pixel position of a blob.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Blob is a connected, noise-filtered region of same-band pixels.
//
// Blobs are created by Extract and never mutated afterwards; they hold no
// reference to the source image or to each other.
type Blob struct {
	Band     hueband.Band `json:"band"`
	Area     int          `json:"area"`
	BBox     BBox         `json:"bbox"`
	Centroid Centroid     `json:"centroid"`
}

// Extract returns the noise-filtered blobs of one band's presence mask.
//
// The mask is first cleaned with morphological opening and closing, then
// grouped into 8-connected components. Components with pixel area below
// minArea are discarded (minArea <= 0 falls back to DefaultMinArea).
//
// The result is deterministic for a fixed input: components are seeded by
// raster scan and the final list is ordered top-to-bottom, left-to-right
// by bounding-box origin.
func Extract(mask *Mask, band hueband.Band, minArea int) []Blob {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}
	cleaned := mask.Clean()

	visited := make([]bool, cleaned.Width*cleaned.Height)
	blobs := make([]Blob, 0)

	for y := 0; y < cleaned.Height; y++ {
		for x := 0; x < cleaned.Width; x++ {
			if !cleaned.At(x, y) || visited[y*cleaned.Width+x] {
				continue
			}
			blob, ok := traceComponent(cleaned, visited, x, y, band, minArea)
			if ok {
				blobs = append(blobs, blob)
			}
		}
	}

	sort.Slice(blobs, func(i, j int) bool {
		if blobs[i].BBox.Y != blobs[j].BBox.Y {
			return blobs[i].BBox.Y < blobs[j].BBox.Y
		}
		return blobs[i].BBox.X < blobs[j].BBox.X
	})
	return blobs
}

// traceComponent flood-fills one 8-connected component starting at
// (startX, startY), accumulating area, bounds, and centroid sums.
//
// Uses an explicit stack rather than recursion so large regions cannot
// overflow the goroutine stack. Returns ok=false when the component's
// area is below minArea.
func traceComponent(mask *Mask, visited []bool, startX, startY int, band hueband.Band, minArea int) (Blob, bool) {
	type point struct{ x, y int }
	stack := []point{{startX, startY}}

	area := 0
	minX, minY := startX, startY
	maxX, maxY := startX, startY
	var sumX, sumY int64

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !mask.At(p.x, p.y) || visited[p.y*mask.Width+p.x] {
			continue
		}
		visited[p.y*mask.Width+p.x] = true

		area++
		sumX += int64(p.x)
		sumY += int64(p.y)
		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.x+dx, p.y+dy
				if mask.At(nx, ny) && !visited[ny*mask.Width+nx] {
					stack = append(stack, point{nx, ny})
				}
			}
		}
	}

	if area < minArea {
		return Blob{}, false
	}
	return Blob{
		Band: band,
		Area: area,
		BBox: BBox{
			X:      minX,
			Y:      minY,
			Width:  maxX - minX + 1,
			Height: maxY - minY + 1,
		},
		Centroid: Centroid{
			X: float64(sumX) / float64(area),
			Y: float64(sumY) / float64(area),
		},
	}, true
}
