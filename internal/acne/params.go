package acne

// DefaultParams returns the detection parameters the severity bands are
// calibrated against. Changing them changes severity grades.
func DefaultParams() DetectionParams {
	return DetectionParams{
		// Low-hue red band only; hues near the 180 wrap are not included
		HueMin: 0,
		HueMax: 10,
		SatMin: 50,
		SatMax: 255,
		ValMin: 50,
		ValMax: 255,

		KernelSize:       3,
		ErodeIterations:  2,
		DilateIterations: 2,

		MinArea: 10,

		MildAbove:     3,
		ModerateAbove: 10,
		SevereAbove:   20,
	}
}

// WithHSV returns a copy of params with custom HSV color ranges.
// Useful when tuning against sampled blemish colors.
func (p DetectionParams) WithHSV(hMin, hMax, sMin, sMax, vMin, vMax float64) DetectionParams {
	p.HueMin = hMin
	p.HueMax = hMax
	p.SatMin = sMin
	p.SatMax = sMax
	p.ValMin = vMin
	p.ValMax = vMax
	return p
}

// WithMinArea returns a copy of params with a different contour area floor.
func (p DetectionParams) WithMinArea(area float64) DetectionParams {
	p.MinArea = area
	return p
}

// SeverityForCount grades a blemish count with the default bands.
func SeverityForCount(count int) Severity {
	return DefaultParams().Severity(count)
}

// Severity grades a blemish count. Bands are checked from most to least
// severe, each with a strict comparison.
func (p DetectionParams) Severity(count int) Severity {
	switch {
	case count > p.SevereAbove:
		return SeveritySevere
	case count > p.ModerateAbove:
		return SeverityModerate
	case count > p.MildAbove:
		return SeverityMild
	default:
		return SeverityClear
	}
}
