package diagnosis

import (
	"fmt"
	"math"

	"github.com/lrm2017/color-weakness-detector/internal/channels"
)

// Type is one of the seven diagnosis categories.
type Type string

const (
	Normal        Type = "normal"
	Protanomaly   Type = "protanomaly"
	Protanopia    Type = "protanopia"
	Deuteranomaly Type = "deuteranomaly"
	Deuteranopia  Type = "deuteranopia"
	Tritanomaly   Type = "tritanomaly"
	Tritanopia    Type = "tritanopia"
)

// Result is a derived diagnosis, recomputed fresh on each analysis and
// never mutated.
type Result struct {
	Type        Type    `json:"type"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// insufficientDescription is the fixed description used when an image has
// too few chromatic pixels to support any finding.
const insufficientDescription = "insufficient color data"

// Thresholds are the tunable decision boundaries of the engine.
type Thresholds struct {
	// MinSamplePixels is the minimum combined chromatic pixel count of
	// both channels below which no finding is made.
	MinSamplePixels int `json:"min_sample_pixels"`

	// Dominance is the skew above which a channel counts as dominated by
	// one side.
	Dominance float64 `json:"dominance"`

	// Extreme is the skew above which an anomaly (-anomaly) escalates to a
	// full deficiency (-opia).
	Extreme float64 `json:"extreme"`

	// Secondary is the skew the other channel must stay below for a
	// single-channel dominance call. When both channels dominate, the one
	// with the larger margin over Dominance wins instead.
	Secondary float64 `json:"secondary"`
}

// DefaultThresholds returns the calibrated decision boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSamplePixels: 50,
		Dominance:       0.6,
		Extreme:         0.85,
		Secondary:       0.6,
	}
}

// Validate checks the thresholds for internal consistency.
func (t Thresholds) Validate() error {
	if t.MinSamplePixels < 0 {
		return fmt.Errorf("min sample pixels %d must not be negative", t.MinSamplePixels)
	}
	if t.Dominance <= 0 || t.Dominance >= 1 {
		return fmt.Errorf("dominance threshold %.2f outside (0,1)", t.Dominance)
	}
	if t.Extreme <= t.Dominance || t.Extreme > 1 {
		return fmt.Errorf("extreme threshold %.2f must lie in (%.2f,1]", t.Extreme, t.Dominance)
	}
	if t.Secondary <= 0 || t.Secondary > 1 {
		return fmt.Errorf("secondary threshold %.2f outside (0,1]", t.Secondary)
	}
	return nil
}

// signals is the rule-table input distilled from both channel reports.
type signals struct {
	rg channels.RedGreen
	by channels.BlueYellow
}

// rule is one entry of the ordered decision table: a predicate over the
// skew signals and the result constructor applied when it fires.
type rule struct {
	name    string
	applies func(s signals, t Thresholds) bool
	build   func(s signals, t Thresholds) Result
}

// rules is evaluated top to bottom; the first predicate that fires decides
// the diagnosis. The insufficient-sample guard is deliberately first so a
// near-empty image can never produce a spurious positive finding.
var rules = []rule{
	{
		name: "insufficient sample",
		applies: func(s signals, t Thresholds) bool {
			return s.rg.TotalPixels+s.by.TotalPixels < t.MinSamplePixels
		},
		build: func(signals, Thresholds) Result {
			return Result{Type: Normal, Confidence: 0, Description: insufficientDescription}
		},
	},
	{
		name: "red-green dominance",
		applies: func(s signals, t Thresholds) bool {
			return dominantChannel(s, t) == channelRedGreen
		},
		build: buildRedGreen,
	},
	{
		name: "blue-yellow dominance",
		applies: func(s signals, t Thresholds) bool {
			return dominantChannel(s, t) == channelBlueYellow
		},
		build: buildBlueYellow,
	},
	{
		name:    "normal",
		applies: func(signals, Thresholds) bool { return true },
		build: func(s signals, t Thresholds) Result {
			margin := 1 - math.Max(s.rg.Skew(), s.by.Skew())/t.Dominance
			return Result{
				Type:        Normal,
				Confidence:  clamp01(margin),
				Description: "no channel shows significant single-side dominance",
			}
		},
	},
}

// Diagnose applies the rule table to the two channel reports.
//
// Thresholds must have passed Validate; Diagnose itself performs no
// validation so the decision procedure stays a pure function of its
// inputs.
func Diagnose(rg channels.RedGreen, by channels.BlueYellow, t Thresholds) Result {
	s := signals{rg: rg, by: by}
	for _, r := range rules {
		if r.applies(s, t) {
			return r.build(s, t)
		}
	}
	// Unreachable: the last rule always applies.
	return Result{Type: Normal}
}

type channelID int

const (
	channelNone channelID = iota
	channelRedGreen
	channelBlueYellow
)

// dominantChannel selects the channel that decides the diagnosis, or
// channelNone when neither qualifies.
//
// A channel qualifies when its skew exceeds the dominance threshold and
// the other channel's skew stays below the secondary threshold. When both
// channels dominate simultaneously, the one with the larger margin over
// the dominance threshold wins; never both.
func dominantChannel(s signals, t Thresholds) channelID {
	rgSkew, bySkew := s.rg.Skew(), s.by.Skew()
	rgDominant := rgSkew > t.Dominance
	byDominant := bySkew > t.Dominance

	switch {
	case rgDominant && byDominant:
		if rgSkew >= bySkew {
			return channelRedGreen
		}
		return channelBlueYellow
	case rgDominant && bySkew < t.Secondary:
		return channelRedGreen
	case byDominant && rgSkew < t.Secondary:
		return channelBlueYellow
	default:
		return channelNone
	}
}

func buildRedGreen(s signals, t Thresholds) Result {
	skew := s.rg.Skew()
	extreme := skew >= t.Extreme

	var typ Type
	var desc string
	if s.rg.RedDominant() {
		if extreme {
			typ, desc = Protanopia, "red-green channel almost entirely red; green response absent (protan pattern)"
		} else {
			typ, desc = Protanomaly, "red-green channel strongly red-dominant; green response reduced (protan pattern)"
		}
	} else {
		if extreme {
			typ, desc = Deuteranopia, "red-green channel almost entirely green; red response absent (deutan pattern)"
		} else {
			typ, desc = Deuteranomaly, "red-green channel strongly green-dominant; red response reduced (deutan pattern)"
		}
	}
	return Result{
		Type:        typ,
		Confidence:  confidence(skew, s.rg.Minority(), t),
		Description: desc,
	}
}

func buildBlueYellow(s signals, t Thresholds) Result {
	// Both dominance directions map to the tritan family: the blue-yellow
	// axis has a single confusion line, so there is no blue- vs
	// yellow-deficiency split.
	skew := s.by.Skew()

	var typ Type
	var desc string
	if skew >= t.Extreme {
		typ, desc = Tritanopia, "blue-yellow channel dominated by one side; opposing response absent (tritan pattern)"
	} else {
		typ, desc = Tritanomaly, "blue-yellow channel strongly one-sided; opposing response reduced (tritan pattern)"
	}
	return Result{
		Type:        typ,
		Confidence:  confidence(skew, s.by.Minority(), t),
		Description: desc,
	}
}

// confidence maps the deciding skew to [0,1], growing monotonically with
// the margin over the dominance threshold. Blob statistics of the minority
// side add a bounded bonus: surviving well-formed minority regions mean
// the imbalance is real structure rather than scattered noise. The bonus
// can only raise confidence, never change the category.
func confidence(skew float64, minority channels.SideStats, t Thresholds) float64 {
	base := (skew - t.Dominance) / (1 - t.Dominance)

	bonus := 0.0
	if minority.BlobCount > 0 && minority.MeanBlobArea > 0 {
		bonus = 0.05 + 0.01*math.Min(10, float64(minority.BlobCount-1))
	}
	return clamp01(base + bonus)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
