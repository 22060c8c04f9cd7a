package face

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"skin-analyzer/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionCopiesBuffer(t *testing.T) {
	pix := []uint8{1, 2, 3, 4, 5, 6}
	r, err := NewRegion(2, 1, pix)
	require.NoError(t, err)

	pix[0] = 99
	red, green, blue := r.At(0, 0)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{red, green, blue})
	assert.Equal(t, geometry.RectInt{Width: 2, Height: 1}, r.Bounds)
}

func TestNewRegionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		pix  []uint8
	}{
		{"zero width", 0, 2, nil},
		{"zero height", 2, 0, nil},
		{"negative", -1, 2, nil},
		{"short buffer", 2, 2, make([]uint8, 11)},
		{"long buffer", 1, 1, make([]uint8, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegion(tt.w, tt.h, tt.pix)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestFromImageCropsAndClips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.SetRGBA(5, 6, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	r, err := FromImage(img, geometry.RectInt{X: 4, Y: 4, Width: 20, Height: 20})
	require.NoError(t, err)

	assert.Equal(t, 6, r.Width)
	assert.Equal(t, 6, r.Height)
	assert.Equal(t, geometry.RectInt{X: 4, Y: 4, Width: 6, Height: 6}, r.Bounds)
	red, green, blue := r.At(1, 2)
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{red, green, blue})
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(100, 100, 110, 110))
	img.SetRGBA(100, 100, color.RGBA{R: 7, A: 255})

	r, err := FromImage(img, geometry.RectInt{X: 100, Y: 100, Width: 2, Height: 2})
	require.NoError(t, err)
	red, _, _ := r.At(0, 0)
	assert.Equal(t, uint8(7), red)
}

func TestFromImageOutside(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, err := FromImage(img, geometry.RectInt{X: 50, Y: 50, Width: 5, Height: 5})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestToMatCopies(t *testing.T) {
	r := Uniform(4, 3, 10, 20, 30)

	mat, err := r.ToMat()
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 3, mat.Rows())
	assert.Equal(t, 4, mat.Cols())
	assert.Equal(t, 3, mat.Channels())
	v := mat.GetVecbAt(2, 3)
	assert.Equal(t, []uint8{10, 20, 30}, []uint8{v[0], v[1], v[2]})

	// Writing the Mat must not reach the region.
	mat.SetUCharAt(0, 0, 255)
	red, _, _ := r.At(0, 0)
	assert.Equal(t, uint8(10), red)
}

func TestToMatInvalid(t *testing.T) {
	mat, err := Region{}.ToMat()
	defer mat.Close()
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestUniformEmpty(t *testing.T) {
	r := Uniform(0, 5, 1, 1, 1)
	assert.Nil(t, r.Pix)
	assert.Error(t, r.Validate())
}
