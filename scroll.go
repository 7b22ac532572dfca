package folio

// DefaultScrollRate is the background scroll uniform's approach rate per second.
const DefaultScrollRate = 0.8

// ScrollUniform smooths the background's scroll value toward the section
// fraction published by the Navigator. It holds no other state; the shader
// does all the visual work.
type ScrollUniform struct {
	Value float64
	Rate  float64
}

// NewScrollUniform returns a ScrollUniform at 0 with the default rate.
func NewScrollUniform() *ScrollUniform {
	return &ScrollUniform{Rate: DefaultScrollRate}
}

// Update moves Value toward target by lerp(Value, target, dt*Rate). The
// blend factor is capped at 1 so a long frame never overshoots.
func (s *ScrollUniform) Update(dt, target float64) {
	if dt <= 0 {
		return
	}
	t := dt * s.Rate
	if t > 1 {
		t = 1
	}
	s.Value = lerp(s.Value, target, t)
}
