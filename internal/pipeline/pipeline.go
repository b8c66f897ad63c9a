package pipeline

import (
	"image"

	"github.com/lrm2017/color-weakness-detector/internal/annotate"
	"github.com/lrm2017/color-weakness-detector/internal/channels"
	"github.com/lrm2017/color-weakness-detector/internal/diagnosis"
	"github.com/lrm2017/color-weakness-detector/internal/hueband"
)

// Report is the complete analysis output for one image. It is plain data:
// two analyses of the same pixels produce equal reports.
type Report struct {
	Mode   string `json:"mode"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// BandCounts maps each chromatic band name to its pixel count.
	// Achromatic pixels appear in no band.
	BandCounts map[string]int `json:"band_counts"`

	RedGreen   channels.RedGreen   `json:"red_green_channel"`
	BlueYellow channels.BlueYellow `json:"blue_yellow_channel"`

	Diagnosis diagnosis.Result `json:"diagnosis"`
}

// Analyze runs the full pipeline over one image: hue classification, both
// channel analyses, and the diagnosis. The channel selector in cfg is
// ignored here; both channels are always computed because the diagnosis
// needs both.
func Analyze(img image.Image, cfg Config) (*Report, error) {
	table, err := cfg.table()
	if err != nil {
		return nil, err
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, &ConfigError{Field: "thresholds", Reason: err.Error()}
	}

	cls := channels.Classify(img, table)
	rg := channels.AnalyzeRedGreen(cls, cfg.MinBlobArea)
	by := channels.AnalyzeBlueYellow(cls, cfg.MinBlobArea)

	counts := make(map[string]int, hueband.NumBands)
	for b := hueband.Band(0); int(b) < hueband.NumBands; b++ {
		counts[b.String()] = cls.Count(b)
	}

	return &Report{
		Mode:       cfg.Mode,
		Width:      cls.Width,
		Height:     cls.Height,
		BandCounts: counts,
		RedGreen:   rg,
		BlueYellow: by,
		Diagnosis:  diagnosis.Diagnose(rg, by, cfg.Thresholds),
	}, nil
}

// Annotate classifies the image and marks the minority regions of the
// configured channel. ChannelComprehensive marks the minority of the
// warm/cool super-groups; the other selectors mark the minority side of
// their semantic channel.
func Annotate(img image.Image, cfg Config) (*annotate.Annotation, error) {
	table, err := cfg.table()
	if err != nil {
		return nil, err
	}

	cls := channels.Classify(img, table)
	switch cfg.Channel {
	case ChannelRedGreen:
		return annotate.MarkRedGreenMinority(img, cls, cfg.MinBlobArea), nil
	case ChannelBlueYellow:
		return annotate.MarkBlueYellowMinority(img, cls, cfg.MinBlobArea), nil
	case ChannelComprehensive:
		return annotate.MarkWarmCoolMinority(img, cls, cfg.MinBlobArea), nil
	default:
		return nil, &ConfigError{Field: "channel", Reason: "unknown channel " + cfg.Channel}
	}
}
