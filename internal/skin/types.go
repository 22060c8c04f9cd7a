// Package skin computes face-region color statistics and maps them to a skin
// type, a brightness health band, and fixed advisory text.
package skin

import "fmt"

// SkinType is the coarse skin category derived from saturation and value.
type SkinType int

const (
	// SkinNormal is the fallback when neither the dry nor the oily rule matches.
	SkinNormal SkinType = iota
	// SkinDry indicates low saturation and low value.
	SkinDry
	// SkinOily indicates high saturation and high value.
	SkinOily
)

func (t SkinType) String() string {
	switch t {
	case SkinDry:
		return "Dry Skin"
	case SkinOily:
		return "Oily Skin"
	case SkinNormal:
		return "Normal Skin"
	default:
		return fmt.Sprintf("SkinType(%d)", int(t))
	}
}

// MarshalText encodes the type as its label.
func (t SkinType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// HealthBand classifies mean raw brightness.
type HealthBand int

const (
	HealthNormal HealthBand = iota
	HealthLow
	HealthHigh
)

func (b HealthBand) String() string {
	switch b {
	case HealthLow:
		return "Low"
	case HealthHigh:
		return "High"
	case HealthNormal:
		return "Normal"
	default:
		return fmt.Sprintf("HealthBand(%d)", int(b))
	}
}

// MarshalText encodes the band as its label.
func (b HealthBand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// ColorStats are the per-region aggregates the classifier consumes.
// Saturation and value use OpenCV's 8-bit scale (0-255).
type ColorStats struct {
	MeanSaturation float64 `json:"mean_saturation"`
	MeanValue      float64 `json:"mean_value"`
	MeanBrightness float64 `json:"mean_brightness"` // Mean of raw R, G and B, not HSV value
}
