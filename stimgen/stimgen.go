// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stimgen generates sequences of continuous stimulus values in [0,1]
along with their binary ground-truth labels, defined as value > 0.5.

All randomness is drawn from an explicitly-passed rand.Rand source, so the
caller controls reproducibility by seeding that source.
*/
package stimgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/goki/ki/kit"
)

// ErrUnsupportedMode is returned by Gen for any mode other than the
// supported generation modes.
var ErrUnsupportedMode = errors.New("stimgen: unsupported generation mode")

// Modes are the supported stimulus generation modes.
type Modes int

//go:generate stringer -type=Modes

var KiT_Modes = kit.Enums.AddEnum(ModesN, kit.NotBitFlag, nil)

func (ev Modes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Modes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The stimulus generation modes
const (
	// Random draws each stimulus value independently from the uniform
	// distribution over [0,1).
	Random Modes = iota

	ModesN
)

// ModeFromString returns the mode with the given name, e.g., from a
// command-line argument.  The match is exact.
func ModeFromString(str string) (Modes, error) {
	for md := Modes(0); md < ModesN; md++ {
		if md.String() == str {
			return md, nil
		}
	}
	return ModesN, fmt.Errorf("%w: %q", ErrUnsupportedMode, str)
}

// Sequence is an ordered sequence of stimulus values in [0,1] and the
// derived ground-truth labels Correct[i] = Values[i] > 0.5.
// It is created once per run by Gen and not modified thereafter.
type Sequence struct {
	Values  []float64 `desc:"stimulus values in [0,1]"`
	Correct []bool    `desc:"ground-truth labels: Values[i] > 0.5"`
}

// Len returns the number of trials in the sequence.
func (sq *Sequence) Len() int {
	return len(sq.Values)
}

// Gen generates a sequence of n stimulus values using the given mode,
// drawing from the given random source.  It returns ErrUnsupportedMode
// for any mode other than Random, and an error for n < 1.
func Gen(n int, mode Modes, rnd *rand.Rand) (*Sequence, error) {
	if n < 1 {
		return nil, fmt.Errorf("stimgen: sequence length must be >= 1, got %d", n)
	}
	if mode != Random {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}
	sq := &Sequence{Values: make([]float64, n), Correct: make([]bool, n)}
	for i := range sq.Values {
		v := rnd.Float64()
		sq.Values[i] = v
		sq.Correct[i] = v > 0.5
	}
	return sq, nil
}
