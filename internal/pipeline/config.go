package pipeline

import (
	"fmt"

	"github.com/lrm2017/color-weakness-detector/internal/diagnosis"
	"github.com/lrm2017/color-weakness-detector/internal/hueband"
	"github.com/lrm2017/color-weakness-detector/internal/regions"
)

// Classification modes. Each selects a different hue interval table.
const (
	ModeTraditional  = "traditional"
	ModeMultiChannel = "multi_channel"
)

// Channel selectors for annotation. Analysis always computes both
// channels; the selector only decides which minority gets marked.
const (
	ChannelRedGreen      = "red_green"
	ChannelBlueYellow    = "blue_yellow"
	ChannelComprehensive = "comprehensive"
)

// ConfigError reports a rejected configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %q: %s", e.Field, e.Reason)
}

// Config selects the behavior of a single analysis run.
type Config struct {
	// Mode selects the hue interval table: ModeTraditional or
	// ModeMultiChannel.
	Mode string `json:"mode"`

	// Channel selects the annotation variant. It does not narrow the
	// analysis itself.
	Channel string `json:"channel"`

	// MinBlobArea is the minimum pixel area a connected region must have
	// to count as a blob. Zero or negative selects the default.
	MinBlobArea int `json:"min_blob_area"`

	// Thresholds are the diagnosis decision boundaries.
	Thresholds diagnosis.Thresholds `json:"thresholds"`
}

// DefaultConfig returns the standard analysis configuration: traditional
// mode, comprehensive annotation, calibrated thresholds.
func DefaultConfig() Config {
	return Config{
		Mode:        ModeTraditional,
		Channel:     ChannelComprehensive,
		MinBlobArea: regions.DefaultMinArea,
		Thresholds:  diagnosis.DefaultThresholds(),
	}
}

// Validate rejects configurations the pipeline cannot run. The resolved
// hue table is validated too, so a malformed built-in table cannot reach
// classification.
func (c Config) Validate() error {
	table, err := c.table()
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return &ConfigError{Field: "mode", Reason: err.Error()}
	}
	switch c.Channel {
	case ChannelRedGreen, ChannelBlueYellow, ChannelComprehensive:
	default:
		return &ConfigError{Field: "channel", Reason: fmt.Sprintf("unknown channel %q", c.Channel)}
	}
	if err := c.Thresholds.Validate(); err != nil {
		return &ConfigError{Field: "thresholds", Reason: err.Error()}
	}
	return nil
}

// table resolves the configured mode to its interval table.
func (c Config) table() (hueband.Table, error) {
	switch c.Mode {
	case ModeTraditional:
		return hueband.Traditional(), nil
	case ModeMultiChannel:
		return hueband.MultiChannel(), nil
	default:
		return hueband.Table{}, &ConfigError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", c.Mode)}
	}
}
