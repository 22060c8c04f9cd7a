package acne

import (
	"fmt"
	"image"

	"skin-analyzer/internal/face"
	"skin-analyzer/pkg/geometry"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// Detect runs the blemish pipeline on a face region:
// HSV red-band mask, erosion, dilation, external contours, area filter.
// The region is copied before segmentation and never modified.
func Detect(r face.Region, params DetectionParams) (*DetectionResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if params.KernelSize <= 0 || params.ErodeIterations < 0 || params.DilateIterations < 0 {
		return nil, fmt.Errorf("invalid morphology parameters: kernel=%d erode=%d dilate=%d",
			params.KernelSize, params.ErodeIterations, params.DilateIterations)
	}

	rgb, err := r.ToMat()
	if err != nil {
		return nil, err
	}
	defer rgb.Close()

	mask := createRedMask(rgb, params)
	defer mask.Close()

	cleanupMask(&mask, params)

	blemishes := findBlemishes(mask, params.MinArea)

	result := &DetectionResult{
		Count:     len(blemishes),
		Severity:  params.Severity(len(blemishes)),
		Blemishes: blemishes,
		Params:    params,
	}
	result.MeanArea, result.StdArea = areaStats(blemishes)

	return result, nil
}

// DetectDefault runs Detect with DefaultParams.
func DetectDefault(r face.Region) (*DetectionResult, error) {
	return Detect(r, DefaultParams())
}

// createRedMask selects pixels inside the HSV band. Bounds are inclusive.
func createRedMask(rgb gocv.Mat, params DetectionParams) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(rgb, &hsv, gocv.ColorRGBToHSV)

	mask := gocv.NewMat()
	gocv.InRangeWithScalar(hsv,
		gocv.NewScalar(params.HueMin, params.SatMin, params.ValMin, 0),
		gocv.NewScalar(params.HueMax, params.SatMax, params.ValMax, 0),
		&mask)
	return mask
}

// cleanupMask erodes then dilates the mask in place. The two steps run as
// separate single-pass loops so the iteration counts apply exactly as given;
// this is not collapsed into a morphological open.
func cleanupMask(mask *gocv.Mat, params DetectionParams) {
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: params.KernelSize, Y: params.KernelSize})
	defer kernel.Close()

	// Remove isolated red pixels
	for i := 0; i < params.ErodeIterations; i++ {
		gocv.Erode(*mask, mask, kernel)
	}

	// Grow surviving blobs back to size
	for i := 0; i < params.DilateIterations; i++ {
		gocv.Dilate(*mask, mask, kernel)
	}
}

// findBlemishes returns external contours whose area exceeds minArea.
func findBlemishes(mask gocv.Mat, minArea float64) []Blemish {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var blemishes []Blemish
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		area := gocv.ContourArea(c)
		if area <= minArea {
			continue
		}
		blemishes = append(blemishes, Blemish{
			Bounds: geometry.RectFromImage(gocv.BoundingRect(c)),
			Area:   area,
		})
	}
	return blemishes
}

func areaStats(blemishes []Blemish) (mean, std float64) {
	if len(blemishes) == 0 {
		return 0, 0
	}
	areas := make([]float64, len(blemishes))
	for i, b := range blemishes {
		areas[i] = b.Area
	}
	if len(areas) == 1 {
		return areas[0], 0
	}
	return stat.MeanStdDev(areas, nil)
}
