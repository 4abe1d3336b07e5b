package component

// GravityScale scales world gravity for a dynamic physics body.
// 1.0 = normal gravity, 0.0 = no gravity. Sign is +1 for downward and -1 once
// gravity has been inverted for this body.
type GravityScale struct {
	Scale float64
	Sign  float64
}

// Effective returns the signed multiplier applied to world gravity.
func (g *GravityScale) Effective() float64 {
	if g == nil {
		return 1
	}
	sign := g.Sign
	if sign == 0 {
		sign = 1
	}
	return g.Scale * sign
}

var GravityScaleComponent = NewComponent[GravityScale]()
