package face

import (
	"errors"
	"fmt"
	"image"

	skinimage "skin-analyzer/internal/image"
	"skin-analyzer/pkg/geometry"

	"gocv.io/x/gocv"
)

// ErrNoFace is returned by the detector when a frame contains no face.
// Callers decide how to report it; the analysis core is never invoked.
var ErrNoFace = errors.New("no face detected")

// DetectorParams mirrors the cascade settings used by the capture loop.
type DetectorParams struct {
	ScaleFactor  float64
	MinNeighbors int
	MinSize      int // Smallest face side in pixels, 0 for no limit
}

// DefaultDetectorParams returns the cascade settings the analyzer ships with.
func DefaultDetectorParams() DetectorParams {
	return DetectorParams{
		ScaleFactor:  1.1,
		MinNeighbors: 4,
	}
}

// Detector wraps a Haar cascade. A Detector is not safe for concurrent use;
// give each goroutine its own.
type Detector struct {
	cascade gocv.CascadeClassifier
	params  DetectorParams
}

// NewDetector loads the cascade XML at path.
func NewDetector(path string, params DetectorParams) (*Detector, error) {
	if path == "" {
		return nil, fmt.Errorf("cascade path is empty")
	}
	cascade := gocv.NewCascadeClassifier()
	if !cascade.Load(path) {
		cascade.Close()
		return nil, fmt.Errorf("failed to load cascade %s", path)
	}
	return &Detector{cascade: cascade, params: params}, nil
}

// Close releases the cascade.
func (d *Detector) Close() error {
	return d.cascade.Close()
}

// DetectAll returns every face rectangle the cascade finds, in cascade order.
func (d *Detector) DetectAll(img image.Image) ([]geometry.RectInt, error) {
	mat, err := skinimage.ImageToMat(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	minSize := image.Point{}
	if d.params.MinSize > 0 {
		minSize = image.Point{X: d.params.MinSize, Y: d.params.MinSize}
	}
	rects := d.cascade.DetectMultiScaleWithParams(gray, d.params.ScaleFactor, d.params.MinNeighbors, 0, minSize, image.Point{})

	faces := make([]geometry.RectInt, len(rects))
	for i, r := range rects {
		faces[i] = geometry.RectFromImage(r)
	}
	return faces, nil
}

// DetectFirst returns the first face the cascade reports. Only one face is
// ever analyzed per frame.
func (d *Detector) DetectFirst(img image.Image) (geometry.RectInt, error) {
	faces, err := d.DetectAll(img)
	if err != nil {
		return geometry.RectInt{}, err
	}
	if len(faces) == 0 {
		return geometry.RectInt{}, ErrNoFace
	}
	return faces[0], nil
}

// Locate detects the first face in img and crops it into a Region.
func (d *Detector) Locate(img image.Image) (Region, error) {
	rect, err := d.DetectFirst(img)
	if err != nil {
		return Region{}, err
	}
	return FromImage(img, rect)
}
