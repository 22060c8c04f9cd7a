package skin

// Skin type thresholds on the 0-255 saturation/value scale. All comparisons
// are strict.
const (
	DrySaturationMax  = 60
	DryValueMax       = 70
	OilySaturationMin = 150
	OilyValueMin      = 150
)

// Health band thresholds on mean raw brightness. Both bounds are strict.
const (
	LowBrightnessMax  = 80
	HighBrightnessMin = 170
)

// ClassifySkinType applies the dry rule, then the oily rule, and falls back to
// normal.
func ClassifySkinType(saturation, value float64) SkinType {
	if saturation < DrySaturationMax && value < DryValueMax {
		return SkinDry
	}
	if saturation > OilySaturationMin && value > OilyValueMin {
		return SkinOily
	}
	return SkinNormal
}

// ClassifyHealth bands mean raw brightness.
func ClassifyHealth(brightness float64) HealthBand {
	switch {
	case brightness < LowBrightnessMax:
		return HealthLow
	case brightness > HighBrightnessMin:
		return HealthHigh
	default:
		return HealthNormal
	}
}

// Classify is a convenience wrapper over both rules.
func (s ColorStats) Classify() (SkinType, HealthBand) {
	return ClassifySkinType(s.MeanSaturation, s.MeanValue), ClassifyHealth(s.MeanBrightness)
}
