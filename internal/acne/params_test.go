package acne

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityForCountBoundaries(t *testing.T) {
	tests := []struct {
		count int
		want  Severity
	}{
		{0, SeverityClear},
		{3, SeverityClear},
		{4, SeverityMild},
		{10, SeverityMild},
		{11, SeverityModerate},
		{20, SeverityModerate},
		{21, SeveritySevere},
		{500, SeveritySevere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityForCount(tt.count), "count=%d", tt.count)
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 0.0, p.HueMin)
	assert.Equal(t, 10.0, p.HueMax)
	assert.Equal(t, 50.0, p.SatMin)
	assert.Equal(t, 50.0, p.ValMin)
	assert.Equal(t, 255.0, p.SatMax)
	assert.Equal(t, 255.0, p.ValMax)
	assert.Equal(t, 3, p.KernelSize)
	assert.Equal(t, 2, p.ErodeIterations)
	assert.Equal(t, 2, p.DilateIterations)
	assert.Equal(t, 10.0, p.MinArea)
}

func TestWithHSVCopies(t *testing.T) {
	base := DefaultParams()
	tuned := base.WithHSV(170, 179, 60, 255, 60, 255)

	assert.Equal(t, 170.0, tuned.HueMin)
	assert.Equal(t, 179.0, tuned.HueMax)
	assert.Equal(t, 0.0, base.HueMin, "receiver is not modified")
}

func TestSeverityLabels(t *testing.T) {
	assert.Equal(t, "Clear or Minimal Acne", SeverityClear.Label())
	assert.Equal(t, "Mild Acne", SeverityMild.Label())
	assert.Equal(t, "Moderate Acne", SeverityModerate.Label())
	assert.Equal(t, "Severe Acne", SeveritySevere.Label())
	assert.Equal(t, "Severe", SeveritySevere.String())
}
