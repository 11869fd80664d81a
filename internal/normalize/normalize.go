// Package normalize maps heterogeneous raw inputs onto a common [0,1] scale.
//
// Every function clamps its result. Out-of-domain input is never an error:
// values come from user-entered forms and must not break scoring.
package normalize

import "math"

// Domain bounds for the physical normalizers
const (
	HeightMinCm = 140.0
	HeightMaxCm = 190.0
	BMIMin      = 15.0
	BMIMax      = 35.0

	// DefaultCategoryMax is the typical maximum of a category point-sum
	DefaultCategoryMax = 30.0

	LikertMin = 1.0
	LikertMax = 5.0
)

// Clamp01 limits v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Range maps raw from [min,max] onto [0,1].
// A degenerate or inverted domain yields 0.
func Range(raw, min, max float64) float64 {
	if !(max > min) {
		return 0
	}
	return Clamp01((raw - min) / (max - min))
}

// Height normalizes a height in centimetres over [140,190].
//
// The gender argument is accepted but does not change the result; no gender
// baseline is applied, and existing rankings depend on that.
func Height(cm float64, gender string) float64 {
	return Range(cm, HeightMinCm, HeightMaxCm)
}

// BMI normalizes a body-mass index over [15,35].
func BMI(bmi float64) float64 {
	return Range(bmi, BMIMin, BMIMax)
}

// CalculateBMI returns weight/height² rounded to one decimal place.
// Non-positive height returns 0.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 || math.IsNaN(heightCm) || math.IsNaN(weightKg) {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// Score normalizes a category point-sum over [0,max].
// A non-positive max falls back to DefaultCategoryMax.
func Score(raw, max float64) float64 {
	if !(max > 0) {
		max = DefaultCategoryMax
	}
	return Range(raw, 0, max)
}

// Likert maps a 1-5 rating onto [0,1] via (v-1)/4.
func Likert(v float64) float64 {
	return Range(v, LikertMin, LikertMax)
}

// Percent maps raw over [0,max] onto [0,100].
// A non-positive max falls back to DefaultCategoryMax.
func Percent(raw, max float64) float64 {
	return Score(raw, max) * 100
}

// Similarity returns 1-|a-b| for two values on the unit scale.
func Similarity(a, b float64) float64 {
	return Clamp01(1 - math.Abs(Clamp01(a)-Clamp01(b)))
}
