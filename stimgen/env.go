// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimgen

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
)

// StimEnv serves a generated stimulus Sequence one trial at a time as an
// environment.  Each epoch steps through the full sequence, and a fresh
// sequence is generated at the start of each subsequent epoch.
type StimEnv struct {
	Nm    string          `desc:"name of this environment"`
	Dsc   string          `desc:"description of this environment"`
	Mode  Modes           `desc:"stimulus generation mode"`
	N     int             `desc:"number of trials (stimulus values) per sequence"`
	Rnd   *rand.Rand      `view:"-" desc:"random source for stimulus generation -- seeded by the caller"`
	Seq   *Sequence       `view:"no-inline" desc:"current stimulus sequence"`
	Stim  etensor.Float64 `desc:"current stimulus value (scalar)"`
	Cor   etensor.Int     `desc:"current ground-truth label, 0 or 1 (scalar)"`
	Run   env.Ctr         `view:"inline" desc:"current run of model as provided during Init"`
	Epoch env.Ctr         `view:"inline" desc:"number of times through the full sequence"`
	Trial env.Ctr         `view:"inline" desc:"trial increments over stimulus values within the sequence"`
}

func (ev *StimEnv) Name() string { return ev.Nm }
func (ev *StimEnv) Desc() string { return ev.Dsc }

// Config sets the sequence length, generation mode and random source,
// configures the state tensors, and generates the initial sequence.
func (ev *StimEnv) Config(n int, mode Modes, rnd *rand.Rand) error {
	ev.N = n
	ev.Mode = mode
	ev.Rnd = rnd
	ev.Trial.Max = n
	ev.Stim.SetShape([]int{1}, nil, nil)
	ev.Cor.SetShape([]int{1}, nil, nil)
	return ev.NewSequence()
}

// NewSequence generates a fresh stimulus sequence from the configured
// mode and random source.
func (ev *StimEnv) NewSequence() error {
	sq, err := Gen(ev.N, ev.Mode, ev.Rnd)
	if err != nil {
		return err
	}
	ev.Seq = sq
	return nil
}

func (ev *StimEnv) Validate() error {
	if ev.N < 1 {
		return fmt.Errorf("StimEnv: %v has N == 0 -- need to Config", ev.Nm)
	}
	if ev.Mode < 0 || ev.Mode >= ModesN {
		return fmt.Errorf("%w: %d", ErrUnsupportedMode, ev.Mode)
	}
	if ev.Rnd == nil {
		return fmt.Errorf("StimEnv: %v has no random source -- need to Config", ev.Nm)
	}
	return nil
}

func (ev *StimEnv) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Epoch, env.Trial}
}

func (ev *StimEnv) States() env.Elements {
	els := env.Elements{
		{Name: "Stimulus", Shape: []int{1}, DimNames: nil},
		{Name: "Correct", Shape: []int{1}, DimNames: nil},
	}
	return els
}

func (ev *StimEnv) State(element string) etensor.Tensor {
	switch element {
	case "Stimulus":
		return &ev.Stim
	case "Correct":
		return &ev.Cor
	}
	return nil
}

func (ev *StimEnv) Actions() env.Elements {
	return nil
}

// String returns the current trial state as a string
func (ev *StimEnv) String() string {
	return fmt.Sprintf("Trl_%d_V_%g", ev.Trial.Cur, ev.Stim.Values[0])
}

func (ev *StimEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0
}

func (ev *StimEnv) Step() bool {
	ev.Epoch.Same() // good idea to just reset all non-inner-most counters at start
	if ev.Trial.Incr() {
		// fresh sequence each pass -- cannot fail after a successful Config,
		// but keep serving the current sequence if it somehow does
		if err := ev.NewSequence(); err != nil {
			log.Println(err)
		}
		ev.Epoch.Incr()
	}
	ev.Stim.Values[0] = ev.Seq.Values[ev.Trial.Cur]
	if ev.Seq.Correct[ev.Trial.Cur] {
		ev.Cor.Values[0] = 1
	} else {
		ev.Cor.Values[0] = 0
	}
	return true
}

func (ev *StimEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *StimEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*StimEnv)(nil)
