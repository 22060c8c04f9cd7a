// Package acne estimates acne severity by counting red-toned blemishes in a
// face region.
package acne

import (
	"fmt"

	"skin-analyzer/pkg/geometry"
)

// Severity grades the number of blemishes found.
type Severity int

const (
	SeverityClear Severity = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
)

func (s Severity) String() string {
	switch s {
	case SeverityClear:
		return "Clear"
	case SeverityMild:
		return "Mild"
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Label is the user-facing wording for a grade.
func (s Severity) Label() string {
	switch s {
	case SeverityMild:
		return "Mild Acne"
	case SeverityModerate:
		return "Moderate Acne"
	case SeveritySevere:
		return "Severe Acne"
	default:
		return "Clear or Minimal Acne"
	}
}

// MarshalText encodes the grade as its short name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Blemish is one external contour that passed the area filter.
type Blemish struct {
	Bounds geometry.RectInt `json:"bounds"` // Bounding box in region coordinates
	Area   float64          `json:"area"`   // Contour area in pixels
}

// DetectionResult holds the outcome of acne detection on one region.
type DetectionResult struct {
	Count     int             // Contours with area above MinArea
	Severity  Severity        // Grade derived from Count
	Blemishes []Blemish       // Qualifying contours, in contour order
	MeanArea  float64         // Mean blemish area, 0 when Count is 0
	StdArea   float64         // Sample std dev of blemish area, 0 when Count < 2
	Params    DetectionParams // Parameters used for detection
}

// DetectionParams holds parameters for acne detection.
// See params.go for defaults.
type DetectionParams struct {
	// HSV band for red-toned skin (OpenCV scale, inclusive)
	HueMin, HueMax float64 // 0-179
	SatMin, SatMax float64 // 0-255
	ValMin, ValMax float64 // 0-255

	// Morphology: erode then dilate, as two separate steps
	KernelSize       int // Square kernel side
	ErodeIterations  int
	DilateIterations int

	// Contours with area <= MinArea are ignored
	MinArea float64

	// Severity bands on blemish count, all strict
	MildAbove     int
	ModerateAbove int
	SevereAbove   int
}
