package channels

import (
	"gonum.org/v1/gonum/stat"

	"github.com/lrm2017/color-weakness-detector/internal/hueband"
	"github.com/lrm2017/color-weakness-detector/internal/regions"
)

// Band membership of the two semantic channels. Orange contributes to
// both: the channels are independent statistical views of the same
// classification, not a partition of pixels.
var (
	redSideBands    = []hueband.Band{hueband.Red, hueband.Orange}
	greenSideBands  = []hueband.Band{hueband.YellowGreen, hueband.Green}
	blueSideBands   = []hueband.Band{hueband.Cyan, hueband.Blue}
	yellowSideBands = []hueband.Band{hueband.Yellow, hueband.Orange}
)

// SideStats summarizes the blob shapes of one channel side. The numbers
// are advisory: the diagnosis engine may use them to refine confidence but
// never to change a category.
type SideStats struct {
	Pixels       int     `json:"pixels"`
	BlobCount    int     `json:"blob_count"`
	MeanBlobArea float64 `json:"mean_blob_area"`
	AreaStdDev   float64 `json:"area_std_dev"`
}

// RedGreen is the aggregated report of the red-green semantic channel.
//
// Ratios are taken over the channel's own chromatic total, so
// RedRatio+GreenRatio == 1 whenever TotalPixels > 0. A zero total reports
// both ratios as the 0.0 sentinel rather than NaN.
type RedGreen struct {
	TotalPixels int            `json:"total_pixels"`
	RedRatio    float64        `json:"red_ratio"`
	GreenRatio  float64        `json:"green_ratio"`
	Red         SideStats      `json:"red_stats"`
	Green       SideStats      `json:"green_stats"`
	Blobs       []regions.Blob `json:"blobs"`
}

// Skew is the absolute imbalance between the channel's two sides, the
// primary diagnostic signal. Zero when the channel is empty.
func (r RedGreen) Skew() float64 {
	if r.TotalPixels == 0 {
		return 0
	}
	return abs(r.RedRatio - r.GreenRatio)
}

// RedDominant reports which side carries the majority.
func (r RedGreen) RedDominant() bool { return r.RedRatio >= r.GreenRatio }

// Minority returns the stats of the channel's minority side.
func (r RedGreen) Minority() SideStats {
	if r.RedDominant() {
		return r.Green
	}
	return r.Red
}

// BlueYellow is the aggregated report of the blue-yellow semantic channel.
// Same ratio conventions as RedGreen.
type BlueYellow struct {
	TotalPixels int            `json:"total_pixels"`
	BlueRatio   float64        `json:"blue_ratio"`
	YellowRatio float64        `json:"yellow_ratio"`
	Blue        SideStats      `json:"blue_stats"`
	Yellow      SideStats      `json:"yellow_stats"`
	Blobs       []regions.Blob `json:"blobs"`
}

// Skew is the absolute imbalance between the channel's two sides.
func (r BlueYellow) Skew() float64 {
	if r.TotalPixels == 0 {
		return 0
	}
	return abs(r.BlueRatio - r.YellowRatio)
}

// BlueDominant reports which side carries the majority.
func (r BlueYellow) BlueDominant() bool { return r.BlueRatio >= r.YellowRatio }

// Minority returns the stats of the channel's minority side.
func (r BlueYellow) Minority() SideStats {
	if r.BlueDominant() {
		return r.Yellow
	}
	return r.Blue
}

// AnalyzeRedGreen aggregates the red-green channel from a classification.
//
// Red side: red, orange. Green side: yellow-green, green. Blob lists and
// pixel counts are carried forward from the classification unmodified; no
// re-classification happens here.
func AnalyzeRedGreen(c *Classification, minArea int) RedGreen {
	redPixels, redBlobs := sideAggregate(c, redSideBands, minArea)
	greenPixels, greenBlobs := sideAggregate(c, greenSideBands, minArea)

	report := RedGreen{
		TotalPixels: redPixels + greenPixels,
		Red:         sideStats(redPixels, redBlobs),
		Green:       sideStats(greenPixels, greenBlobs),
		Blobs:       append(redBlobs, greenBlobs...),
	}
	if report.TotalPixels > 0 {
		report.RedRatio = float64(redPixels) / float64(report.TotalPixels)
		report.GreenRatio = float64(greenPixels) / float64(report.TotalPixels)
	}
	return report
}

// AnalyzeBlueYellow aggregates the blue-yellow channel from a
// classification.
//
// Blue side: cyan, blue. Yellow side: yellow, orange. Orange's
// participation here is the channel-specific sub-split distinct from its
// red-side role in the red-green channel.
func AnalyzeBlueYellow(c *Classification, minArea int) BlueYellow {
	bluePixels, blueBlobs := sideAggregate(c, blueSideBands, minArea)
	yellowPixels, yellowBlobs := sideAggregate(c, yellowSideBands, minArea)

	report := BlueYellow{
		TotalPixels: bluePixels + yellowPixels,
		Blue:        sideStats(bluePixels, blueBlobs),
		Yellow:      sideStats(yellowPixels, yellowBlobs),
		Blobs:       append(blueBlobs, yellowBlobs...),
	}
	if report.TotalPixels > 0 {
		report.BlueRatio = float64(bluePixels) / float64(report.TotalPixels)
		report.YellowRatio = float64(yellowPixels) / float64(report.TotalPixels)
	}
	return report
}

// sideAggregate sums pixel counts and extracts blobs for one side's bands
// in their fixed band order.
func sideAggregate(c *Classification, bands []hueband.Band, minArea int) (int, []regions.Blob) {
	pixels := 0
	blobs := make([]regions.Blob, 0)
	for _, b := range bands {
		pixels += c.Count(b)
		blobs = append(blobs, regions.Extract(c.Mask(b), b, minArea)...)
	}
	return pixels, blobs
}

// sideStats computes the blob-shape summary for one side. Standard
// deviation needs at least two samples; with fewer it reports 0 so the
// JSON output stays free of NaN.
func sideStats(pixels int, blobs []regions.Blob) SideStats {
	st := SideStats{
		Pixels:    pixels,
		BlobCount: len(blobs),
	}
	if len(blobs) == 0 {
		return st
	}
	areas := make([]float64, len(blobs))
	for i, b := range blobs {
		areas[i] = float64(b.Area)
	}
	st.MeanBlobArea = stat.Mean(areas, nil)
	if len(areas) > 1 {
		st.AreaStdDev = stat.StdDev(areas, nil)
	}
	return st
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
