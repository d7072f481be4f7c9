// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package percept

import (
	"math"
	"math/rand"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-6

func TestDefaults(t *testing.T) {
	bp := BiasParams{}
	bp.Defaults()
	if bp.Bias != 0 {
		t.Errorf("default bias err: got %v, want 0", bp.Bias)
	}
	if math.Abs(bp.Low.Min-0) > difTol || math.Abs(bp.Low.Max-0.5) > difTol {
		t.Errorf("low interval err: got [%v, %v), want [0, 0.5)", bp.Low.Min, bp.Low.Max)
	}
	if math.Abs(bp.High.Min-0.5) > difTol || math.Abs(bp.High.Max-1) > difTol {
		t.Errorf("high interval err: got [%v, %v), want [0.5, 1)", bp.High.Min, bp.High.Max)
	}
}

func TestUpdateIntervals(t *testing.T) {
	bp := BiasParams{}
	bp.Defaults()
	bp.Bias = 0.7
	bp.Update()
	gap := float64(1-float32(0.7)) / 2
	if math.Abs(bp.Low.Max-gap) > difTol {
		t.Errorf("gap err: got %v, want %v", bp.Low.Max, gap)
	}
	hi := 0.5 + float64(float32(0.7))/2
	if math.Abs(bp.High.Min-hi) > difTol || math.Abs(bp.High.Max-(hi+gap)) > difTol {
		t.Errorf("high interval err: got [%v, %v), want [%v, %v)", bp.High.Min, bp.High.Max, hi, hi+gap)
	}
}

func TestBiasZeroIdentity(t *testing.T) {
	bp := BiasParams{}
	bp.Defaults()
	rnd := rand.New(rand.NewSource(1))
	vals := []float64{0, 0.1, 0.49999, 0.5, 0.7, 0.99999}
	per := bp.ApplySeq(vals, rnd)
	for i := range vals {
		if per[i] != vals[i] {
			t.Errorf("identity err: idx: %d, got %v, want %v", i, per[i], vals[i])
		}
	}
	per[0] = 42 // returned slice must be a fresh copy
	if vals[0] == 42 {
		t.Errorf("ApplySeq aliased its input")
	}
}

func TestBiasIntervals(t *testing.T) {
	bp := BiasParams{}
	bp.Defaults()
	bp.Bias = 0.7
	bp.Update()
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		lo := bp.Apply(rnd.Float64()*0.5, rnd)
		if lo < bp.Low.Min || lo >= bp.Low.Max {
			t.Fatalf("low draw err: idx: %d, got %v, want in [%v, %v)", i, lo, bp.Low.Min, bp.Low.Max)
		}
		hi := bp.Apply(0.5+rnd.Float64()*0.5, rnd)
		if hi < bp.High.Min || hi >= bp.High.Max {
			t.Fatalf("high draw err: idx: %d, got %v, want in [%v, %v)", i, hi, bp.High.Min, bp.High.Max)
		}
	}
}

func TestBiasOneCollapse(t *testing.T) {
	bp := BiasParams{}
	bp.Defaults()
	bp.Bias = 1
	bp.Update()
	rnd := rand.New(rand.NewSource(3))
	// zero-width intervals are fixed points: exactly 0 below the midpoint,
	// exactly 1 at or above it
	if v := bp.Apply(0.3, rnd); v != 0 {
		t.Errorf("low collapse err: got %v, want 0", v)
	}
	if v := bp.Apply(0.7, rnd); v != 1 {
		t.Errorf("high collapse err: got %v, want 1", v)
	}
	if v := bp.Apply(0.5, rnd); v != 1 {
		t.Errorf("midpoint collapse err: got %v, want 1", v)
	}
}

func TestBiasClamped(t *testing.T) {
	bp := BiasParams{}
	bp.Defaults()
	bp.Bias = 1.5
	bp.Update()
	if bp.Bias != 1 {
		t.Errorf("clamp err: got %v, want 1", bp.Bias)
	}
	bp.Bias = -0.5
	bp.Update()
	if bp.Bias != 0 {
		t.Errorf("clamp err: got %v, want 0", bp.Bias)
	}
}
