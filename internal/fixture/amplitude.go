package fixture

import "math"

const (
	baseMagnitude     = 1000.0
	seasonalAmplitude = 0.15
	annualGrowthRate  = 0.12
	growthAnchorYear  = 2023
)

// BaseAmount returns the seasonal, growth-adjusted base magnitude for a
// period. Every amount in the dataset is a fixed multiple of this value.
//
// The seasonal term feeds the raw month number (1-12) to sin rather than an
// angle scaled to a 12-month cycle, so the wave is quasi-periodic instead of
// calendar-periodic. The downstream application is calibrated to that shape;
// keep the formula as-is.
func BaseAmount(p Period) float64 {
	seasonality := 1 + seasonalAmplitude*math.Sin(float64(p.Month))
	growth := 1 + annualGrowthRate*float64(p.Year-growthAnchorYear)
	return baseMagnitude * seasonality * growth
}
