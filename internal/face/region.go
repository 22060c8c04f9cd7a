// Package face holds the face region handed to the analysis core and the
// cascade detector that locates it in a frame.
package face

import (
	"errors"
	"fmt"
	"image"

	"skin-analyzer/pkg/geometry"

	"gocv.io/x/gocv"
)

// ErrInvalidInput is returned when a region has no pixels or a buffer that
// does not match its dimensions. It is the only error the analysis core raises.
var ErrInvalidInput = errors.New("invalid input")

// Region is a cropped face: a packed RGB buffer, row major, 3 bytes per pixel.
// Bounds records where the crop came from in the source frame.
type Region struct {
	Width  int
	Height int
	Pix    []uint8
	Bounds geometry.RectInt
}

// NewRegion wraps an RGB buffer. The buffer is copied so later writes by the
// caller cannot change the region.
func NewRegion(width, height int, pix []uint8) (Region, error) {
	r := Region{Width: width, Height: height}
	if err := (Region{Width: width, Height: height, Pix: pix}).Validate(); err != nil {
		return Region{}, err
	}
	r.Pix = make([]uint8, len(pix))
	copy(r.Pix, pix)
	r.Bounds = geometry.RectInt{Width: width, Height: height}
	return r, nil
}

// FromImage crops rect out of img. The rectangle is clipped to the image;
// a crop that ends up empty is ErrInvalidInput.
func FromImage(img image.Image, rect geometry.RectInt) (Region, error) {
	crop := rect.Intersect(geometry.RectFromImage(img.Bounds()))
	if crop.Empty() {
		return Region{}, fmt.Errorf("%w: crop %s outside image %s", ErrInvalidInput, rect, geometry.RectFromImage(img.Bounds()))
	}

	r := Region{
		Width:  crop.Width,
		Height: crop.Height,
		Pix:    make([]uint8, crop.Width*crop.Height*3),
		Bounds: crop,
	}
	for y := 0; y < crop.Height; y++ {
		row := y * crop.Width * 3
		for x := 0; x < crop.Width; x++ {
			cr, cg, cb, _ := img.At(crop.X+x, crop.Y+y).RGBA()
			i := row + x*3
			r.Pix[i+0] = uint8(cr >> 8)
			r.Pix[i+1] = uint8(cg >> 8)
			r.Pix[i+2] = uint8(cb >> 8)
		}
	}
	return r, nil
}

// Uniform returns a width x height region filled with a single color.
func Uniform(width, height int, r, g, b uint8) Region {
	reg := Region{Width: width, Height: height, Bounds: geometry.RectInt{Width: width, Height: height}}
	if width <= 0 || height <= 0 {
		return reg
	}
	reg.Pix = make([]uint8, width*height*3)
	for i := 0; i < len(reg.Pix); i += 3 {
		reg.Pix[i+0] = r
		reg.Pix[i+1] = g
		reg.Pix[i+2] = b
	}
	return reg
}

// Validate checks the non-empty precondition shared by every analysis step.
func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: region is %dx%d", ErrInvalidInput, r.Width, r.Height)
	}
	if len(r.Pix) != r.Width*r.Height*3 {
		return fmt.Errorf("%w: buffer has %d bytes, want %d for %dx%d RGB",
			ErrInvalidInput, len(r.Pix), r.Width*r.Height*3, r.Width, r.Height)
	}
	return nil
}

// At returns the RGB triple at (x, y) in region coordinates.
func (r Region) At(x, y int) (uint8, uint8, uint8) {
	i := (y*r.Width + x) * 3
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// Set writes the RGB triple at (x, y). Intended for building synthetic regions;
// the analysis core never calls it.
func (r Region) Set(x, y int, red, green, blue uint8) {
	i := (y*r.Width + x) * 3
	r.Pix[i], r.Pix[i+1], r.Pix[i+2] = red, green, blue
}

// ToMat copies the region into a new 3-channel RGB Mat owned by the caller.
// The region's buffer is never shared with OpenCV.
func (r Region) ToMat() (gocv.Mat, error) {
	if err := r.Validate(); err != nil {
		return gocv.NewMat(), err
	}

	mat := gocv.NewMatWithSize(r.Height, r.Width, gocv.MatTypeCV8UC3)
	data, err := mat.DataPtrUint8()
	if err != nil {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("failed to access mat data: %w", err)
	}
	copy(data, r.Pix)
	return mat, nil
}
