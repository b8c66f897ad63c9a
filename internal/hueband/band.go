package hueband

import "fmt"

// Band identifies one perceptual hue band on the hue circle.
//
// The chromatic bands are numbered 0..NumBands-1 so they can be used as
// array indices. Achromatic is the out-of-band value for pixels whose
// saturation or value is too low to carry reliable hue information; such
// pixels are excluded from every ratio computation.
type Band int

const (
	Red Band = iota
	Orange
	Yellow
	YellowGreen
	Green
	Cyan
	Blue
	Purple
	Achromatic
)

// NumBands is the number of chromatic bands (Achromatic excluded).
const NumBands = int(Achromatic)

var bandNames = [...]string{
	Red:         "red",
	Orange:      "orange",
	Yellow:      "yellow",
	YellowGreen: "yellow_green",
	Green:       "green",
	Cyan:        "cyan",
	Blue:        "blue",
	Purple:      "purple",
	Achromatic:  "achromatic",
}

// String returns the band's lowercase name (e.g. "yellow_green").
func (b Band) String() string {
	if b < 0 || int(b) >= len(bandNames) {
		return fmt.Sprintf("band(%d)", int(b))
	}
	return bandNames[b]
}

// MarshalJSON encodes the band as its name string.
func (b Band) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON decodes a band from its name string.
func (b *Band) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid band value %s", string(data))
	}
	name := string(data[1 : len(data)-1])
	for i, n := range bandNames {
		if n == name {
			*b = Band(i)
			return nil
		}
	}
	return fmt.Errorf("unknown band %q", name)
}

// Warm reports whether the band belongs to the warm super-group
// (red, orange, yellow).
func (b Band) Warm() bool {
	return b == Red || b == Orange || b == Yellow
}

// Cool reports whether the band belongs to the cool super-group
// (yellow-green through purple).
func (b Band) Cool() bool {
	switch b {
	case YellowGreen, Green, Cyan, Blue, Purple:
		return true
	}
	return false
}

// WarmBands lists the warm super-group in classification order.
func WarmBands() []Band { return []Band{Red, Orange, Yellow} }

// CoolBands lists the cool super-group in classification order.
func CoolBands() []Band { return []Band{YellowGreen, Green, Cyan, Blue, Purple} }
