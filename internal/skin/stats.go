package skin

import (
	"skin-analyzer/internal/face"

	"gocv.io/x/gocv"
)

// ComputeStats converts the region to HSV and averages its channels.
//
// MeanBrightness is taken over the raw RGB buffer, not the HSV value channel.
// The skin rules read S and V while the health rule reads raw brightness, and
// changing either source shifts classifications.
func ComputeStats(r face.Region) (ColorStats, error) {
	rgb, err := r.ToMat()
	if err != nil {
		return ColorStats{}, err
	}
	defer rgb.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(rgb, &hsv, gocv.ColorRGBToHSV)

	hsvMean := hsv.Mean()
	rgbMean := rgb.Mean()

	return ColorStats{
		MeanSaturation: hsvMean.Val2,
		MeanValue:      hsvMean.Val3,
		// Every channel has the same pixel count, so the mean of the
		// per-channel means is the mean over the whole buffer.
		MeanBrightness: (rgbMean.Val1 + rgbMean.Val2 + rgbMean.Val3) / 3,
	}, nil
}
