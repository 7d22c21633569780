package biquad

// Cascade is an ordered series of biquad sections. Each sample passes through
// every section in order: the output of section i is the input of section
// i+1. The section order is significant numerically; reordering sections
// changes rounding even though the ideal transfer function is the same.
//
// A Cascade exclusively owns its sections and is built append-only, with the
// capacity fixed at construction.
type Cascade struct {
	sections []Section
}

// NewCascade creates an empty cascade with room for capacity sections.
func NewCascade(capacity int) *Cascade {
	if capacity < 0 {
		capacity = 0
	}

	return &Cascade{sections: make([]Section, 0, capacity)}
}

// NewCascadeFrom creates a cascade with one section per coefficient set,
// in the given order.
func NewCascadeFrom(coeffs []Coefficients) *Cascade {
	c := NewCascade(len(coeffs))
	for i := range coeffs {
		c.Append(coeffs[i])
	}

	return c
}

// Append adds a section with the given coefficients and zero state at the
// end of the cascade.
func (c *Cascade) Append(coeffs Coefficients) {
	c.sections = append(c.sections, Section{Coefficients: coeffs})
}

// ProcessSample cascades one input sample through all sections in order.
func (c *Cascade) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade. The state
// of every section carries across calls.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst through the full cascade. Both slices
// must have the same length.
func (c *Cascade) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = c.ProcessSample(x)
	}
}

// Reset clears the delay state of every section.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Order returns the total filter order (2 per full biquad section).
func (c *Cascade) Order() int {
	return 2 * len(c.sections)
}

// Section returns a pointer to the i-th section for inspection or
// modification.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// Stable reports whether every section of the cascade is stable.
func (c *Cascade) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}

	return true
}

// State returns a snapshot of all section delay states.
func (c *Cascade) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states. The slice length must
// match NumSections.
func (c *Cascade) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
