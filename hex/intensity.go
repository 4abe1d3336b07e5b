package hex

import "math"

// IntensityCurve maps seconds into a fight to a meteor pressure value.
type IntensityCurve interface {
	Intensity(seconds float64) float64
}

type CurveFunc func(seconds float64) float64

func (f CurveFunc) Intensity(seconds float64) float64 { return f(seconds) }

// DefaultCurve is EngagementIntensity as an IntensityCurve.
var DefaultCurve IntensityCurve = CurveFunc(EngagementIntensity)

// EngagementIntensity rises from 1 toward 4 over the first minute, oscillates
// on three interfering waves and opens with a spike in the first three seconds.
// It never drops below 0.5.
func EngagementIntensity(seconds float64) float64 {
	base := 1 + 3*(1-math.Exp(-seconds/30))
	amp := 1 + 0.5*(1-math.Exp(-seconds/60))

	wave := math.Sin(seconds*0.8)*1.5*amp +
		math.Sin(seconds*2.1)*1.0*amp +
		math.Sin(seconds*4.7)*0.5

	entrance := 0.0
	if seconds < 3 {
		entrance = (3 - seconds) * 2
	}
	return math.Max(0.5, base+wave+entrance)
}
