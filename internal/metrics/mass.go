package metrics

// Mass accumulates the trapezoid integral of the observed curve. For a
// true density over [0,1] the value stays near 1 regardless of how many
// operator applications produced the curve.
type Mass struct {
	name  string
	prevX float64
	prevY float64
	has   bool
	area  float64
}

func NewMass() *Mass {
	return &Mass{name: "mass"}
}

func (m *Mass) Name() string { return m.name }

func (m *Mass) Observe(x, y float64) {
	if m.has {
		m.area += 0.5 * (y + m.prevY) * (x - m.prevX)
	}
	m.prevX, m.prevY = x, y
	m.has = true
}

func (m *Mass) Value() float64 {
	return m.area
}

func (m *Mass) Reset() {
	m.prevX, m.prevY = 0, 0
	m.has = false
	m.area = 0
}
