package utils

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoEstimate is returned when a body-fat percentage cannot be derived from
// the given inputs (non-positive skinfold total). Callers surface it as
// "no estimate", never as NaN or Infinity.
var ErrNoEstimate = errors.New("body fat estimate unavailable")

// Durnin & Womersley regression coefficients for the four-site skinfold sum:
// density = C - M * log10(total mm), then Siri's equation for the percentage.
type dwCoeff struct {
	C, M float64
}

type dwBand struct {
	minAge int
	coeff  dwCoeff
}

// Bands are disjoint closed intervals; each entry covers minAge up to the
// next entry's minAge. Ages below the first band fall back to it.
var dwMale = []dwBand{
	{17, dwCoeff{1.1620, 0.0678}},
	{20, dwCoeff{1.1631, 0.0632}},
	{30, dwCoeff{1.1422, 0.0544}},
	{40, dwCoeff{1.1620, 0.0700}},
	{50, dwCoeff{1.1715, 0.0779}},
}

var dwFemale = []dwBand{
	{16, dwCoeff{1.1549, 0.0678}},
	{20, dwCoeff{1.1599, 0.0717}},
	{30, dwCoeff{1.1423, 0.0632}},
	{40, dwCoeff{1.1333, 0.0612}},
	{50, dwCoeff{1.1339, 0.0645}},
}

func dwLookup(bands []dwBand, age int) dwCoeff {
	selected := bands[0].coeff
	for _, b := range bands {
		if age >= b.minAge {
			selected = b.coeff
		}
	}
	return selected
}

// EstimateBodyFat converts the sum of the four skinfold sites (mm) into an
// estimated body-fat percentage. The result keeps full precision; use Round1
// for display. sex is "male" or "female".
func EstimateBodyFat(totalMm float64, age int, sex string) (float64, error) {
	if totalMm <= 0 {
		return 0, ErrNoEstimate
	}

	var c dwCoeff
	switch sex {
	case "male":
		c = dwLookup(dwMale, age)
	case "female":
		c = dwLookup(dwFemale, age)
	default:
		return 0, fmt.Errorf("unknown sex %q", sex)
	}

	density := c.C - c.M*math.Log10(totalMm)
	percent := (4.95/density - 4.50) * 100
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0, ErrNoEstimate
	}
	return percent, nil
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
