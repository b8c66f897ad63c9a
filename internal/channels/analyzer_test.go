package channels

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lrm2017/color-weakness-detector/internal/hueband"
)

// testImage builds an RGBA image filled with the background color and a
// set of solid patches on top.
type patch struct {
	x, y, w, h int
	c          color.RGBA
}

func testImage(w, h int, bg color.RGBA, patches ...patch) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	for _, p := range patches {
		for y := p.y; y < p.y+p.h; y++ {
			for x := p.x; x < p.x+p.w; x++ {
				img.SetRGBA(x, y, p.c)
			}
		}
	}
	return img
}

var (
	gray   = color.RGBA{200, 200, 200, 255}
	red    = color.RGBA{255, 0, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	blue   = color.RGBA{0, 0, 255, 255}
	cyan   = color.RGBA{0, 255, 255, 255}
	yellow = color.RGBA{255, 255, 0, 255}
)

func TestClassifyCounts(t *testing.T) {
	img := testImage(100, 100, gray,
		patch{10, 10, 20, 20, red},
		patch{50, 50, 10, 10, blue},
	)
	c := Classify(img, hueband.Traditional())

	if got := c.Count(hueband.Red); got != 400 {
		t.Errorf("red count = %d, want 400", got)
	}
	if got := c.Count(hueband.Blue); got != 100 {
		t.Errorf("blue count = %d, want 100", got)
	}
	if got := c.ChromaticTotal(); got != 500 {
		t.Errorf("chromatic total = %d, want 500", got)
	}
	if got := c.WarmTotal(); got != 400 {
		t.Errorf("warm total = %d, want 400", got)
	}
	if got := c.CoolTotal(); got != 100 {
		t.Errorf("cool total = %d, want 100", got)
	}
}

func TestClassifyAllGray(t *testing.T) {
	img := testImage(64, 64, gray)
	c := Classify(img, hueband.Traditional())
	if got := c.ChromaticTotal(); got != 0 {
		t.Errorf("chromatic total = %d, want 0 for all-gray image", got)
	}
}

func TestRedGreenRatioSum(t *testing.T) {
	img := testImage(120, 120, gray,
		patch{0, 0, 60, 60, red},
		patch{60, 60, 40, 40, green},
	)
	c := Classify(img, hueband.MultiChannel())
	report := AnalyzeRedGreen(c, 100)

	if report.TotalPixels != 3600+1600 {
		t.Errorf("total = %d, want 5200", report.TotalPixels)
	}
	if sum := report.RedRatio + report.GreenRatio; math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("ratio sum = %v, want 1.0", sum)
	}
	wantRed := 3600.0 / 5200.0
	if math.Abs(report.RedRatio-wantRed) > 1e-9 {
		t.Errorf("red ratio = %v, want %v", report.RedRatio, wantRed)
	}
	if !report.RedDominant() {
		t.Error("expected red-dominant channel")
	}
}

func TestBlueYellowRatioSum(t *testing.T) {
	img := testImage(120, 120, gray,
		patch{0, 0, 50, 50, blue},
		patch{60, 0, 30, 30, cyan},
		patch{0, 60, 40, 40, yellow},
	)
	c := Classify(img, hueband.MultiChannel())
	report := AnalyzeBlueYellow(c, 100)

	wantTotal := 2500 + 900 + 1600
	if report.TotalPixels != wantTotal {
		t.Errorf("total = %d, want %d", report.TotalPixels, wantTotal)
	}
	if sum := report.BlueRatio + report.YellowRatio; math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("ratio sum = %v, want 1.0", sum)
	}
	if !report.BlueDominant() {
		t.Error("expected blue-dominant channel")
	}
	if report.Blue.BlobCount != 2 {
		t.Errorf("blue blob count = %d, want 2", report.Blue.BlobCount)
	}
	if report.Yellow.BlobCount != 1 {
		t.Errorf("yellow blob count = %d, want 1", report.Yellow.BlobCount)
	}
}

func TestEmptyChannelSentinels(t *testing.T) {
	img := testImage(80, 80, gray, patch{0, 0, 40, 40, red})
	c := Classify(img, hueband.MultiChannel())
	report := AnalyzeBlueYellow(c, 100)

	if report.TotalPixels != 0 {
		t.Fatalf("blue-yellow total = %d, want 0", report.TotalPixels)
	}
	if report.BlueRatio != 0 || report.YellowRatio != 0 {
		t.Errorf("ratios = (%v, %v), want 0.0 sentinels", report.BlueRatio, report.YellowRatio)
	}
	if report.Skew() != 0 {
		t.Errorf("skew = %v, want 0 for empty channel", report.Skew())
	}
}

func TestOrangeContributesToBothChannels(t *testing.T) {
	orange := color.RGBA{255, 120, 0, 255}
	img := testImage(100, 100, gray, patch{10, 10, 40, 40, orange})
	c := Classify(img, hueband.MultiChannel())

	rg := AnalyzeRedGreen(c, 100)
	by := AnalyzeBlueYellow(c, 100)

	if rg.Red.Pixels != 1600 {
		t.Errorf("red-side pixels = %d, want 1600 (orange on red side)", rg.Red.Pixels)
	}
	if by.Yellow.Pixels != 1600 {
		t.Errorf("yellow-side pixels = %d, want 1600 (orange on yellow side)", by.Yellow.Pixels)
	}
}

func TestSideStatsNoNaN(t *testing.T) {
	// A single blob must not produce a NaN standard deviation, which would
	// break JSON encoding of the report.
	img := testImage(100, 100, gray, patch{10, 10, 30, 30, green})
	c := Classify(img, hueband.MultiChannel())
	report := AnalyzeRedGreen(c, 100)

	if math.IsNaN(report.Green.AreaStdDev) {
		t.Error("area std dev is NaN for single blob")
	}
	if report.Green.BlobCount != 1 {
		t.Errorf("blob count = %d, want 1", report.Green.BlobCount)
	}
	if report.Green.MeanBlobArea <= 0 {
		t.Errorf("mean blob area = %v, want > 0", report.Green.MeanBlobArea)
	}
}

func TestMinorityStats(t *testing.T) {
	img := testImage(100, 100, gray,
		patch{0, 0, 60, 60, red},
		patch{70, 70, 20, 20, green},
	)
	c := Classify(img, hueband.MultiChannel())
	report := AnalyzeRedGreen(c, 100)

	minority := report.Minority()
	if minority.Pixels != 400 {
		t.Errorf("minority pixels = %d, want 400 (green side)", minority.Pixels)
	}
}
