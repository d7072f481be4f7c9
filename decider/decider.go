// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decider implements decision makers that emit binary decisions
over a stimulus sequence.

A Maker operates in one of two modes.  In stimulus-independent mode,
Decide draws every decision from a fixed success probability P,
ignoring stimuli entirely.  In stimulus-driven mode, Perceive first
passes the stimulus values through the perceptual bias transform, and
DecideFromPerception then draws one Bernoulli sample per trial with the
perceived value itself as that trial's success probability.

All randomness is drawn from an explicitly-passed rand.Rand source.
*/
package decider

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cogsim/decider/percept"
	"github.com/cogsim/decider/score"
	"github.com/cogsim/decider/stimgen"
	"github.com/goki/mat32"
)

var (
	// ErrNoProb is returned by Decide when no success probability has
	// been set on the maker.
	ErrNoProb = errors.New("decider: success probability P is not set")

	// ErrNoPercept is returned by DecideFromPerception before Perceive
	// has been called.
	ErrNoPercept = errors.New("decider: no perceived stimulus -- call Perceive first")

	// ErrNoDecisions is returned by Accuracy before any decisions exist.
	// It reports unavailability and is not fatal.
	ErrNoDecisions = errors.New("decider: no decisions yet -- accuracy unavailable")
)

// Maker is a single decision maker.  Its perceived values, decisions and
// accuracy are owned by the maker and set once per run -- there is no
// sharing between makers.
type Maker struct {
	Nm        string             `desc:"name of this decision maker"`
	P         float32            `min:"0" max:"1" desc:"success probability for stimulus-independent decisions -- NaN = unset"`
	Bias      percept.BiasParams `view:"inline" desc:"perceptual bias applied by Perceive"`
	Perceived []float64          `view:"-" desc:"perceived stimulus values from the last Perceive"`
	Decisions []bool             `view:"-" desc:"binary decisions from the last Decide or DecideFromPerception"`
	Acc       float64            `inactive:"+" desc:"accuracy vs. ground-truth labels -- NaN until computed"`
}

// NewMaker returns a new named maker with default parameters.
func NewMaker(name string) *Maker {
	mk := &Maker{Nm: name}
	mk.Defaults()
	return mk
}

// NewBiasedMaker returns a new named stimulus-driven maker with the
// given perceptual bias.
func NewBiasedMaker(name string, bias float32) *Maker {
	mk := NewMaker(name)
	mk.Bias.Bias = bias
	mk.Bias.Update()
	return mk
}

func (mk *Maker) Name() string { return mk.Nm }

func (mk *Maker) Defaults() {
	mk.P = mat32.NaN()
	mk.Bias.Defaults()
	mk.Acc = math.NaN()
}

// InitRun clears the per-run state (perceived values, decisions,
// accuracy), keeping the maker's parameters.
func (mk *Maker) InitRun() {
	mk.Perceived = nil
	mk.Decisions = nil
	mk.Acc = math.NaN()
}

// SetP sets the fixed success probability for stimulus-independent
// decisions.
func (mk *Maker) SetP(p float32) {
	mk.P = p
}

// HasP returns true if a fixed success probability has been set.
func (mk *Maker) HasP() bool {
	return !mat32.IsNaN(mk.P)
}

// Decide draws n independent Bernoulli(P) decisions, ignoring any
// stimulus.  It returns ErrNoProb if no success probability is set.
// The decisions are stored on the maker and returned.
func (mk *Maker) Decide(n int, rnd *rand.Rand) ([]bool, error) {
	if !mk.HasP() {
		return nil, fmt.Errorf("%w: maker %s", ErrNoProb, mk.Nm)
	}
	if n < 1 {
		return nil, fmt.Errorf("decider: maker %s: n must be >= 1, got %d", mk.Nm, n)
	}
	p := float64(mk.P)
	dec := make([]bool, n)
	for i := range dec {
		dec[i] = rnd.Float64() < p
	}
	mk.Decisions = dec
	return dec, nil
}

// Perceive transforms each stimulus value through the maker's bias
// parameters.  The perceived values are stored on the maker and returned
// as a new slice -- the input sequence is never modified.
func (mk *Maker) Perceive(sq *stimgen.Sequence, rnd *rand.Rand) []float64 {
	mk.Perceived = mk.Bias.ApplySeq(sq.Values, rnd)
	return mk.Perceived
}

// DecideFromPerception draws one Bernoulli decision per perceived value,
// with the perceived value as that trial's success probability.
// It returns ErrNoPercept if Perceive has not been called.
func (mk *Maker) DecideFromPerception(rnd *rand.Rand) ([]bool, error) {
	if len(mk.Perceived) == 0 {
		return nil, fmt.Errorf("%w: maker %s", ErrNoPercept, mk.Nm)
	}
	dec := make([]bool, len(mk.Perceived))
	for i, pv := range mk.Perceived {
		dec[i] = rnd.Float64() < pv
	}
	mk.Decisions = dec
	return dec, nil
}

// Accuracy computes the proportion of decisions equal to the given
// ground-truth labels, stores it on the maker, and returns it.
// Before any decisions exist it returns NaN and ErrNoDecisions.
func (mk *Maker) Accuracy(correct []bool) (float64, error) {
	if len(mk.Decisions) == 0 {
		return math.NaN(), fmt.Errorf("%w: maker %s", ErrNoDecisions, mk.Nm)
	}
	acc, err := score.Accuracy(mk.Decisions, correct)
	if err != nil {
		return math.NaN(), fmt.Errorf("decider: maker %s: %w", mk.Nm, err)
	}
	mk.Acc = acc
	return acc, nil
}

// HasAccuracy returns true once Accuracy has been computed for this run.
func (mk *Maker) HasAccuracy() bool {
	return !math.IsNaN(mk.Acc)
}

// String returns a one-line text summary: name, bias and accuracy.
func (mk *Maker) String() string {
	acc := "n/a"
	if mk.HasAccuracy() {
		acc = fmt.Sprintf("%.4g", mk.Acc)
	}
	return fmt.Sprintf("%s\tbias: %g\taccuracy: %s", mk.Nm, mk.Bias.Bias, acc)
}
