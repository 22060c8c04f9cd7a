// Package analysis composes color statistics, skin classification, acne
// detection and advisory lookup into a single call over one face region.
package analysis

import (
	"fmt"

	"skin-analyzer/internal/acne"
	"skin-analyzer/internal/face"
	"skin-analyzer/internal/skin"
	"skin-analyzer/pkg/geometry"
)

// Result is the assessment of one face region. It is built once and not
// modified afterwards.
type Result struct {
	SkinType       skin.SkinType   `json:"skin_type"`
	HealthBand     skin.HealthBand `json:"health_band"`
	AcneSeverity   acne.Severity   `json:"acne_severity"`
	SkincareAdvice string          `json:"skincare_advice"`
	HealthAdvice   string          `json:"health_advice"`

	HealthStatus string           `json:"health_status"`
	Stats        skin.ColorStats  `json:"stats"`
	AcneCount    int              `json:"acne_count"`
	Blemishes    []acne.Blemish   `json:"blemishes,omitempty"`
	Bounds       geometry.RectInt `json:"bounds"` // Face crop in the source frame
}

// Analyzer runs the pipeline with a fixed set of acne parameters.
// The zero value is not usable; use New or Analyze.
type Analyzer struct {
	acneParams acne.DetectionParams
}

// New returns an Analyzer using the given acne parameters.
func New(acneParams acne.DetectionParams) *Analyzer {
	return &Analyzer{acneParams: acneParams}
}

// Default returns an Analyzer using acne.DefaultParams.
func Default() *Analyzer {
	return New(acne.DefaultParams())
}

// Analyze runs the default pipeline on r.
func Analyze(r face.Region) (Result, error) {
	return Default().Analyze(r)
}

// Analyze computes the full assessment for r. Errors from the statistics and
// acne steps are returned unchanged, with a zero Result.
func (a *Analyzer) Analyze(r face.Region) (Result, error) {
	stats, err := skin.ComputeStats(r)
	if err != nil {
		return Result{}, err
	}
	skinType, band := stats.Classify()

	detection, err := acne.Detect(r, a.acneParams)
	if err != nil {
		return Result{}, err
	}

	blemishes := make([]acne.Blemish, len(detection.Blemishes))
	copy(blemishes, detection.Blemishes)

	return Result{
		SkinType:       skinType,
		HealthBand:     band,
		AcneSeverity:   detection.Severity,
		SkincareAdvice: skin.SkincareAdvice(skinType),
		HealthAdvice:   skin.HealthAdvice(band),
		HealthStatus:   skin.HealthStatus(band),
		Stats:          stats,
		AcneCount:      detection.Count,
		Blemishes:      blemishes,
		Bounds:         r.Bounds,
	}, nil
}

// Text renders the result as the multi-line summary shown to users.
func (r Result) Text() string {
	return fmt.Sprintf("Skin Type: %s\n%s\nHealth Status: %s\n%s\nAcne Severity: %s\n",
		r.SkinType, r.SkincareAdvice, r.HealthStatus, r.HealthAdvice, r.AcneSeverity.Label())
}
