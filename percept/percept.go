// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package percept implements the perceptual bias transform applied to
stimulus values before decision-making.

The transform preserves which side of the 0.5 midpoint a value falls on,
but redraws its magnitude from a side-specific interval whose width
shrinks as the bias parameter grows: with gap = (1-bias)/2, values below
the midpoint are redrawn uniformly from [0, gap), and values at or above
it from [0.5+bias/2, 0.5+bias/2+gap).  At bias = 0 the transform is the
identity; as bias approaches 1 perceived values are pushed toward the
extremes.  At bias = 1 both intervals have zero width, and the draw
collapses to the interval's lower bound: exactly 0 on the low side and
exactly 1 on the high side.
*/
package percept

import (
	"math/rand"

	"github.com/emer/etable/minmax"
)

// BiasParams parameterizes the perceptual bias transform.
type BiasParams struct {
	Bias float32 `min:"0" max:"1" def:"0" desc:"perceptual distortion strength -- 0 = veridical perception, 1 = perceived values collapse to exactly 0 or 1"`

	Low  minmax.F64 `inactive:"+" view:"-" json:"-" xml:"-" desc:"redraw interval for values below the midpoint"`
	High minmax.F64 `inactive:"+" view:"-" json:"-" xml:"-" desc:"redraw interval for values at or above the midpoint"`
}

func (bp *BiasParams) Update() {
	if bp.Bias < 0 {
		bp.Bias = 0
	}
	if bp.Bias > 1 {
		bp.Bias = 1
	}
	gap := float64(1-bp.Bias) / 2
	bp.Low.Min = 0
	bp.Low.Max = gap
	bp.High.Min = 0.5 + float64(bp.Bias)/2
	bp.High.Max = bp.High.Min + gap
	if bp.High.Max > 1 { // float32 rounding can push the upper bound past 1
		bp.High.Max = 1
	}
}

func (bp *BiasParams) Defaults() {
	bp.Bias = 0
	bp.Update()
}

// uniformIn draws uniformly from [mm.Min, mm.Max).  A zero-width interval
// is a fixed point, yielding mm.Min exactly.
func uniformIn(mm minmax.F64, rnd *rand.Rand) float64 {
	return mm.Min + rnd.Float64()*(mm.Max-mm.Min)
}

// Apply returns the perceived value for a single stimulus value.
// At Bias = 0 it returns v exactly, consuming no random numbers.
func (bp *BiasParams) Apply(v float64, rnd *rand.Rand) float64 {
	if bp.Bias == 0 {
		return v
	}
	if v < 0.5 {
		return uniformIn(bp.Low, rnd)
	}
	return uniformIn(bp.High, rnd)
}

// ApplySeq returns a new slice of perceived values for the given stimulus
// values, leaving the input unmodified.
func (bp *BiasParams) ApplySeq(vals []float64, rnd *rand.Rand) []float64 {
	per := make([]float64, len(vals))
	for i, v := range vals {
		per[i] = bp.Apply(v, rnd)
	}
	return per
}
