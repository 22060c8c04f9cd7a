package skin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySkinTypeBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		saturation float64
		value      float64
		want       SkinType
	}{
		{"just under dry thresholds", 59, 69, SkinDry},
		{"dry thresholds are exclusive", 60, 70, SkinNormal},
		{"dry needs both channels low", 59, 70, SkinNormal},
		{"just over oily thresholds", 151, 151, SkinOily},
		{"oily thresholds are exclusive", 150, 150, SkinNormal},
		{"oily needs both channels high", 151, 150, SkinNormal},
		{"mid range", 100, 120, SkinNormal},
		{"zero", 0, 0, SkinDry},
		{"saturated max", 255, 255, SkinOily},
		{"negative input", -10, -10, SkinDry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySkinType(tt.saturation, tt.value))
		})
	}
}

func TestClassifyHealthBoundaries(t *testing.T) {
	tests := []struct {
		brightness float64
		want       HealthBand
	}{
		{0, HealthLow},
		{79, HealthLow},
		{79.999, HealthLow},
		{80, HealthNormal},
		{170, HealthNormal},
		{170.001, HealthHigh},
		{171, HealthHigh},
		{255, HealthHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyHealth(tt.brightness), "brightness %v", tt.brightness)
	}
}

func TestColorStatsClassify(t *testing.T) {
	st, hb := ColorStats{MeanSaturation: 20, MeanValue: 40, MeanBrightness: 40}.Classify()
	assert.Equal(t, SkinDry, st)
	assert.Equal(t, HealthLow, hb)
}

func TestAdviceIsTotal(t *testing.T) {
	for _, st := range []SkinType{SkinDry, SkinOily, SkinNormal} {
		assert.Contains(t, SkincareAdvice(st), "Detected.\n", st.String())
	}
	for _, hb := range []HealthBand{HealthLow, HealthNormal, HealthHigh} {
		assert.True(t, len(HealthAdvice(hb)) > 0, hb.String())
		assert.True(t, len(HealthStatus(hb)) > 0, hb.String())
	}

	assert.Equal(t, "Dry Skin Detected.\n"+
		"- Use hydrating cleansers\n"+
		"- Avoid hot water on skin\n"+
		"- Moisturize with hyaluronic acid\n"+
		"- Avoid alcohol-based products\n", SkincareAdvice(SkinDry))
	assert.Contains(t, HealthAdvice(HealthLow), "fatigue or dehydration")
	assert.Contains(t, HealthAdvice(HealthHigh), "Good skin brightness")
	assert.Contains(t, HealthAdvice(HealthNormal), "Healthy skin tone")
	assert.Contains(t, SkincareAdvice(SkinOily), "salicylic acid")
	assert.Contains(t, SkincareAdvice(SkinNormal), "SPF 30+")
}

func TestEnumLabels(t *testing.T) {
	text, err := SkinOily.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Oily Skin", string(text))
	assert.Equal(t, "High", HealthHigh.String())
	assert.Equal(t, "SkinType(9)", SkinType(9).String())
}
