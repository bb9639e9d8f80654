package metrics

// Peak tracks the largest curve value seen.
type Peak struct {
	name string
	max  float64
	has  bool
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(x, y float64) {
	if !p.has || y > p.max {
		p.max = y
	}
	p.has = true
}

func (p *Peak) Value() float64 {
	return p.max
}

func (p *Peak) Reset() {
	p.max = 0
	p.has = false
}

// Negativity tracks the magnitude of the most negative value seen. A true
// density keeps it at exactly zero.
type Negativity struct {
	name  string
	worst float64
}

func NewNegativity() *Negativity {
	return &Negativity{name: "negativity"}
}

func (n *Negativity) Name() string { return n.name }

func (n *Negativity) Observe(x, y float64) {
	if y < 0 && -y > n.worst {
		n.worst = -y
	}
}

func (n *Negativity) Value() float64 {
	return n.worst
}

func (n *Negativity) Reset() {
	n.worst = 0
}
