package acne

import (
	"errors"
	"testing"

	"skin-analyzer/internal/face"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	skinTone = [3]uint8{230, 190, 140} // hue ~17 on the OpenCV scale, outside the red band
	red      = [3]uint8{200, 30, 30}   // hue 0, saturation ~217
	wrapRed  = [3]uint8{200, 30, 60}   // hue ~175, red but past the wrap
)

func skinRegion(w, h int) face.Region {
	return face.Uniform(w, h, skinTone[0], skinTone[1], skinTone[2])
}

func fillRect(r face.Region, x0, y0, w, h int, c [3]uint8) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r.Set(x, y, c[0], c[1], c[2])
		}
	}
}

// spotted returns a 120x120 region with n separated 6x6 red squares.
func spotted(n int) face.Region {
	r := skinRegion(120, 120)
	for i := 0; i < n; i++ {
		col, row := i%10, i/10
		fillRect(r, 3+col*12, 3+row*12, 6, 6, red)
	}
	return r
}

func TestDetectCountsSpots(t *testing.T) {
	tests := []struct {
		spots int
		want  Severity
	}{
		{0, SeverityClear},
		{3, SeverityClear},
		{4, SeverityMild},
		{10, SeverityMild},
		{11, SeverityModerate},
		{20, SeverityModerate},
		{21, SeveritySevere},
		{35, SeveritySevere},
	}
	for _, tt := range tests {
		result, err := DetectDefault(spotted(tt.spots))
		require.NoError(t, err)
		assert.Equal(t, tt.spots, result.Count, "spots=%d", tt.spots)
		assert.Equal(t, tt.want, result.Severity, "spots=%d", tt.spots)
		assert.Len(t, result.Blemishes, tt.spots)
	}
}

func TestDetectBlemishGeometry(t *testing.T) {
	r := skinRegion(40, 40)
	fillRect(r, 10, 12, 6, 6, red)

	result, err := DetectDefault(r)
	require.NoError(t, err)
	require.Len(t, result.Blemishes, 1)

	b := result.Blemishes[0]
	assert.Equal(t, 10, b.Bounds.X)
	assert.Equal(t, 12, b.Bounds.Y)
	assert.Equal(t, 6, b.Bounds.Width)
	assert.Equal(t, 6, b.Bounds.Height)
	assert.InDelta(t, 25, b.Area, 0.01)
	assert.InDelta(t, 25, result.MeanArea, 0.01)
	assert.Equal(t, 0.0, result.StdArea)
}

func TestDetectAreaStats(t *testing.T) {
	r := skinRegion(60, 30)
	fillRect(r, 5, 5, 6, 6, red)   // contour area 25
	fillRect(r, 25, 5, 11, 11, red) // contour area 100

	result, err := DetectDefault(r)
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.InDelta(t, 62.5, result.MeanArea, 0.01)
	assert.Greater(t, result.StdArea, 0.0)
}

func TestDetectRemovesNoise(t *testing.T) {
	r := skinRegion(60, 60)
	// Scattered single pixels and 3x3 / 4x4 specks do not survive two erosions.
	for i := 0; i < 10; i++ {
		r.Set(2+i*5, 2+i*5, red[0], red[1], red[2])
	}
	fillRect(r, 40, 5, 3, 3, red)
	fillRect(r, 5, 40, 4, 4, red)

	result, err := DetectDefault(r)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, SeverityClear, result.Severity)
	assert.Equal(t, 0.0, result.MeanArea)
}

func TestDetectAreaFilterIsStrict(t *testing.T) {
	r := skinRegion(40, 40)
	fillRect(r, 10, 10, 6, 6, red) // contour area 25

	result, err := Detect(r, DefaultParams().WithMinArea(25))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count, "area equal to the floor is excluded")

	result, err = Detect(r, DefaultParams().WithMinArea(24.5))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestDetectOnlyCountsExternalContours(t *testing.T) {
	r := skinRegion(40, 40)
	// Red ring 30x30, 8 px thick, with a separate red square inside the hole.
	fillRect(r, 5, 5, 30, 30, red)
	fillRect(r, 13, 13, 14, 14, skinTone)
	fillRect(r, 17, 17, 6, 6, red)

	result, err := DetectDefault(r)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestDetectIgnoresHueWrap(t *testing.T) {
	r := skinRegion(60, 60)
	fillRect(r, 5, 5, 8, 8, wrapRed)
	fillRect(r, 30, 30, 8, 8, wrapRed)

	result, err := DetectDefault(r)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
}

func TestDetectDoesNotMutateInput(t *testing.T) {
	r := spotted(12)
	before := append([]uint8(nil), r.Pix...)

	_, err := DetectDefault(r)
	require.NoError(t, err)
	assert.Equal(t, before, r.Pix)
}

func TestDetectEmptyRegion(t *testing.T) {
	result, err := DetectDefault(face.Uniform(0, 5, 0, 0, 0))
	assert.True(t, errors.Is(err, face.ErrInvalidInput))
	assert.Nil(t, result)
}

func TestDetectRejectsBadKernel(t *testing.T) {
	p := DefaultParams()
	p.KernelSize = 0
	_, err := Detect(skinRegion(10, 10), p)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, face.ErrInvalidInput))
}
