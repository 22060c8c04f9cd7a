package skin

var skincareAdvice = map[SkinType]string{
	SkinDry: "Dry Skin Detected.\n" +
		"- Use hydrating cleansers\n" +
		"- Avoid hot water on skin\n" +
		"- Moisturize with hyaluronic acid\n" +
		"- Avoid alcohol-based products\n",
	SkinOily: "Oily Skin Detected.\n" +
		"- Use oil-free products\n" +
		"- Cleanse with salicylic acid\n" +
		"- Avoid heavy creams\n" +
		"- Use mattifying moisturizers\n",
	SkinNormal: "Normal Skin Detected.\n" +
		"- Maintain balanced routine\n" +
		"- Hydrate regularly\n" +
		"- Use sunscreen with SPF 30+\n",
}

var healthAdvice = map[HealthBand]string{
	HealthLow: "Health Note:\n" +
		"- Signs of fatigue or dehydration detected\n" +
		"- Ensure adequate hydration\n" +
		"- Aim for regular sleep patterns\n",
	HealthHigh: "Health Note:\n" +
		"- Good skin brightness detected\n" +
		"- Maintain hydration\n" +
		"- Continue a balanced diet\n",
	HealthNormal: "Health Note:\n" +
		"- Healthy skin tone observed\n" +
		"- Continue a balanced lifestyle\n",
}

var healthStatus = map[HealthBand]string{
	HealthLow:    "Low brightness: potential fatigue or dehydration.",
	HealthHigh:   "High brightness: possibly well-hydrated or lighter skin.",
	HealthNormal: "Normal brightness and health tone.",
}

// SkincareAdvice returns the care routine for a skin type. Values outside the
// enum get the normal routine.
func SkincareAdvice(t SkinType) string {
	if s, ok := skincareAdvice[t]; ok {
		return s
	}
	return skincareAdvice[SkinNormal]
}

// HealthAdvice returns the health note for a brightness band.
func HealthAdvice(b HealthBand) string {
	if s, ok := healthAdvice[b]; ok {
		return s
	}
	return healthAdvice[HealthNormal]
}

// HealthStatus returns the one-line summary for a brightness band.
func HealthStatus(b HealthBand) string {
	if s, ok := healthStatus[b]; ok {
		return s
	}
	return healthStatus[HealthNormal]
}
