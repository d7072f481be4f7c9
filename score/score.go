// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package score compares binary decision sequences: accuracy against
ground-truth labels, and percent agreement between two makers' decisions.
It also builds tabular summaries of per-maker results.
*/
package score

import (
	"errors"
	"fmt"

	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/split"
)

var (
	// ErrLengthMismatch is returned when comparing sequences of unequal length.
	ErrLengthMismatch = errors.New("score: sequences have unequal length")

	// ErrEmpty is returned when comparing empty sequences.
	ErrEmpty = errors.New("score: empty decision sequences")
)

// PctMatch returns the proportion of positions at which the two decision
// sequences agree.  It is symmetric in its arguments, and 1 for a
// sequence compared against itself.  Both sequences must be non-empty and
// of equal length.
func PctMatch(a, b []bool) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, ErrEmpty
	}
	n := 0
	for i := range a {
		if a[i] == b[i] {
			n++
		}
	}
	return float64(n) / float64(len(a)), nil
}

// Accuracy returns the proportion of decisions equal to the ground-truth
// labels.  It is the same comparison as PctMatch with the labels as
// reference.
func Accuracy(decisions, correct []bool) (float64, error) {
	return PctMatch(decisions, correct)
}

// MatchRef returns the percent match of each candidate decision sequence
// against the reference decisions, in candidate order.
func MatchRef(ref []bool, cands [][]bool) ([]float64, error) {
	pms := make([]float64, len(cands))
	for i, cd := range cands {
		pm, err := PctMatch(cd, ref)
		if err != nil {
			return nil, err
		}
		pms[i] = pm
	}
	return pms, nil
}

// Entry is one maker's results for the summary table.
type Entry struct {
	Maker    string  `desc:"maker name"`
	Bias     float64 `desc:"perceptual bias parameter"`
	Accuracy float64 `desc:"accuracy vs. ground-truth labels"`
	PctMatch float64 `desc:"percent agreement with the reference maker's decisions"`
}

// Table returns a new summary table with one row per entry.
func Table(entries []Entry) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "Scores")
	dt.SetMetaData("desc", "Per-maker accuracy and agreement with the reference maker")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{Name: "Maker", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Bias", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Accuracy", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "PctMatch", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, len(entries))
	for i, e := range entries {
		dt.SetCellString("Maker", i, e.Maker)
		dt.SetCellFloat("Bias", i, e.Bias)
		dt.SetCellFloat("Accuracy", i, e.Accuracy)
		dt.SetCellFloat("PctMatch", i, e.PctMatch)
	}
	return dt
}

// Cand is one named candidate decision sequence for SummaryTable.
type Cand struct {
	Maker     string  `desc:"maker name"`
	Bias      float64 `desc:"perceptual bias parameter"`
	Decisions []bool  `desc:"the maker's decisions for this run"`
}

// SummaryTable scores each candidate against the ground-truth labels and
// the reference maker's decisions, returning a table with one row per
// candidate.
func SummaryTable(correct, ref []bool, cands []Cand) (*etable.Table, error) {
	entries := make([]Entry, len(cands))
	for i, cd := range cands {
		acc, err := Accuracy(cd.Decisions, correct)
		if err != nil {
			return nil, fmt.Errorf("score: candidate %s: %w", cd.Maker, err)
		}
		pm, err := PctMatch(cd.Decisions, ref)
		if err != nil {
			return nil, fmt.Errorf("score: candidate %s: %w", cd.Maker, err)
		}
		entries[i] = Entry{Maker: cd.Maker, Bias: cd.Bias, Accuracy: acc, PctMatch: pm}
	}
	return Table(entries), nil
}

// RunStats aggregates a run log with Maker, Accuracy and PctMatch columns
// into per-maker means across runs.
func RunStats(runLog *etable.Table) *etable.Table {
	ix := etable.NewIdxView(runLog)
	spl := split.GroupBy(ix, []string{"Maker"})
	split.Agg(spl, "Accuracy", agg.AggMean)
	split.Agg(spl, "PctMatch", agg.AggMean)
	return spl.AggsToTable(etable.ColNameOnly)
}
