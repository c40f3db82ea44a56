package count

import "math/rand"

// Picker chooses target numerals uniformly from an inclusive range.
type Picker struct {
	min int
	max int
	rng *rand.Rand
}

// NewPicker creates a picker over [min, max]. If max < min the bounds are swapped.
func NewPicker(min, max int, rng *rand.Rand) *Picker {
	if max < min {
		min, max = max, min
	}
	return &Picker{min: min, max: max, rng: rng}
}

func (p *Picker) size() int {
	return p.max - p.min + 1
}

// PickInitial returns a uniformly random numeral from the range.
func (p *Picker) PickInitial() int {
	return p.min + p.rng.Intn(p.size())
}

// PickNext returns a uniformly random numeral from the range other than previous.
//
// It draws from the size-1 remaining values and shifts past previous, so it
// always terminates after a single draw. A single-value range has nothing else
// to offer and returns that value.
func (p *Picker) PickNext(previous int) int {
	n := p.size()
	if n == 1 {
		return p.min
	}
	if previous < p.min || previous > p.max {
		return p.PickInitial()
	}

	v := p.min + p.rng.Intn(n-1)
	if v >= previous {
		v++
	}
	return v
}
