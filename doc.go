// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decider simulates binary decision-making over continuous stimuli,
to compare candidate decision-maker models against a designated
ground-truth decision process.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* stimgen: generates sequences of continuous stimulus values in [0,1] and
their binary ground-truth labels (value > 0.5), including a StimEnv
environment that serves the sequence trial-by-trial.

* percept: the perceptual bias transform that distorts stimulus values
toward the extremes as the bias parameter increases toward 1.

* decider: decision makers that emit binary decisions either from a fixed
success probability, or from perceived stimulus values treated as
per-trial success probabilities.

* score: accuracy against ground-truth labels, percent agreement between
makers, and tabular summary statistics.

* examples: runnable simulations.  examples/cmpbias runs the full
generate -> perceive -> decide -> score pipeline over multiple makers and
runs, and reports per-maker accuracy and agreement with the ground-truth
maker.
*/
package decider
