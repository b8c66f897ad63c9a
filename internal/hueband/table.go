package hueband

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// HueMax is the upper bound of the hue scale. The whole system uses the
// OpenCV convention: hue on [0, 180), saturation and value on [0, 255].
const HueMax = 180.0

// Interval is a half-open hue interval [Lo, Hi) on the 0-180 hue scale.
type Interval struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether h falls inside the interval.
func (iv Interval) Contains(h float64) bool {
	return h >= iv.Lo && h < iv.Hi
}

// Entry assigns one or more hue intervals to a band. Red is the only band
// that legitimately carries two intervals: it wraps around the hue circle,
// so the first and last sub-intervals of the scale union to one band.
type Entry struct {
	Band      Band       `json:"band"`
	Intervals []Interval `json:"intervals"`
}

// Table maps hue values to bands and defines the achromatic cutoffs.
//
// A pixel whose saturation or value falls below the table's minimums is
// classified Achromatic regardless of hue. The interval entries must
// exactly tile [0, HueMax) with no gaps and no overlaps; Validate enforces
// this before the table is ever used.
//
// Two built-in tables exist: Traditional (warm/cool boundaries) and
// MultiChannel (finer per-band boundaries). Their red/orange/yellow
// boundaries intentionally differ; the discrepancy is mode-specific tuning
// inherited from the rule tables this system was calibrated against, not a
// bug to unify.
type Table struct {
	Name          string  `json:"name"`
	MinSaturation float64 `json:"min_saturation"` // 0-255
	MinValue      float64 `json:"min_value"`      // 0-255
	Entries       []Entry `json:"entries"`
}

// Traditional returns the warm/cool hue table used for majority/minority
// classification: red 0-10 and 160-180, orange 10-25, yellow 25-40,
// green 40-80, cyan 80-100, blue 100-130, purple 130-160.
func Traditional() Table {
	return Table{
		Name:          "traditional",
		MinSaturation: 70,
		MinValue:      50,
		Entries: []Entry{
			{Band: Red, Intervals: []Interval{{0, 10}, {160, HueMax}}},
			{Band: Orange, Intervals: []Interval{{10, 25}}},
			{Band: Yellow, Intervals: []Interval{{25, 40}}},
			{Band: Green, Intervals: []Interval{{40, 80}}},
			{Band: Cyan, Intervals: []Interval{{80, 100}}},
			{Band: Blue, Intervals: []Interval{{100, 130}}},
			{Band: Purple, Intervals: []Interval{{130, 160}}},
		},
	}
}

// MultiChannel returns the finer table tuned for the red-green and
// blue-yellow channel analyses. The achromatic cutoffs are considerably
// more permissive than Traditional's, and green is split into
// yellow-green and green proper.
func MultiChannel() Table {
	return Table{
		Name:          "multi_channel",
		MinSaturation: 25,
		MinValue:      40,
		Entries: []Entry{
			{Band: Red, Intervals: []Interval{{0, 10}, {156, HueMax}}},
			{Band: Orange, Intervals: []Interval{{10, 25}}},
			{Band: Yellow, Intervals: []Interval{{25, 35}}},
			{Band: YellowGreen, Intervals: []Interval{{35, 50}}},
			{Band: Green, Intervals: []Interval{{50, 85}}},
			{Band: Cyan, Intervals: []Interval{{85, 105}}},
			{Band: Blue, Intervals: []Interval{{105, 130}}},
			{Band: Purple, Intervals: []Interval{{130, 156}}},
		},
	}
}

// Validate checks that the table's intervals exactly tile [0, HueMax).
//
// Every hue value must be claimed by exactly one band: no gaps, no
// overlaps. The red wrap-around needs no special casing here because its
// two sub-intervals are validated like any others. Saturation and value
// minimums must lie within [0, 255].
func (t Table) Validate() error {
	if t.MinSaturation < 0 || t.MinSaturation > 255 {
		return fmt.Errorf("table %q: min saturation %.1f outside [0,255]", t.Name, t.MinSaturation)
	}
	if t.MinValue < 0 || t.MinValue > 255 {
		return fmt.Errorf("table %q: min value %.1f outside [0,255]", t.Name, t.MinValue)
	}
	if len(t.Entries) == 0 {
		return fmt.Errorf("table %q: no interval entries", t.Name)
	}

	type span struct {
		iv   Interval
		band Band
	}
	var spans []span
	for _, e := range t.Entries {
		for _, iv := range e.Intervals {
			if iv.Lo < 0 || iv.Hi > HueMax || iv.Lo >= iv.Hi {
				return fmt.Errorf("table %q: band %s has invalid interval [%.1f,%.1f)",
					t.Name, e.Band, iv.Lo, iv.Hi)
			}
			spans = append(spans, span{iv, e.Band})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].iv.Lo < spans[j].iv.Lo })

	if spans[0].iv.Lo != 0 {
		return fmt.Errorf("table %q: gap [0.0,%.1f) before band %s",
			t.Name, spans[0].iv.Lo, spans[0].band)
	}
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.iv.Lo < prev.iv.Hi {
			return fmt.Errorf("table %q: bands %s and %s overlap at hue %.1f",
				t.Name, prev.band, cur.band, cur.iv.Lo)
		}
		if cur.iv.Lo > prev.iv.Hi {
			return fmt.Errorf("table %q: gap [%.1f,%.1f) between bands %s and %s",
				t.Name, prev.iv.Hi, cur.iv.Lo, prev.band, cur.band)
		}
	}
	if last := spans[len(spans)-1].iv.Hi; last != HueMax {
		return fmt.Errorf("table %q: gap [%.1f,%.1f) after band %s",
			t.Name, last, HueMax, spans[len(spans)-1].band)
	}
	return nil
}

// Classify maps a pixel's HSV triple to a band.
//
// Hue is on [0, HueMax); saturation and value on [0, 255]. Pixels below
// the achromatic cutoffs return Achromatic. A hue outside the valid range
// also returns Achromatic rather than a spurious band.
func (t Table) Classify(h, s, v float64) Band {
	if s < t.MinSaturation || v < t.MinValue {
		return Achromatic
	}
	for _, e := range t.Entries {
		for _, iv := range e.Intervals {
			if iv.Contains(h) {
				return e.Band
			}
		}
	}
	return Achromatic
}

// ClassifyColor classifies a Go color value.
//
// The color is converted to HSV via go-colorful (hue 0-360, s/v 0-1) and
// rescaled to the OpenCV ranges the tables are written in. Fully
// transparent pixels classify as Achromatic.
func (t Table) ClassifyColor(c color.Color) Band {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Achromatic
	}
	h, s, v := cf.Hsv()
	return t.Classify(h/2, s*255, v*255)
}
