// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"
	"time"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/inp"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/spatial/r3"
)

// ReductionError reports missing results or a malformed status log
type ReductionError struct {
	Msg string
}

func (o *ReductionError) Error() string { return "reduction: " + o.Msg }

func redErr(msg string, prm ...interface{}) error {
	return &ReductionError{io.Sf(msg, prm...)}
}

// StageInfo holds the name and duration of one stage
type StageInfo struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// Reducer holds what is needed to reduce the results of one simulation
type Reducer struct {
	Stages       []StageInfo `json:"stages"`       // in schedule order
	ForceRegion  string      `json:"forceregion"`  // history region with reaction forces
	Forces       [3]string   `json:"forces"`       // reaction force variables
	EnergyRegion string      `json:"energyregion"` // history region with energies
	Energies     [2]string   `json:"energies"`     // internal and kinetic energy variables
	NodeSet      string      `json:"nodeset"`      // node set along the scratch track
	MetaKeys     []string    `json:"metakeys"`     // provenance
	MetaVals     []string    `json:"metavals"`     // provenance
}

// NewReducer returns the reducer of the results of a specification
func NewReducer(spec *inp.ModelSpecification) (o *Reducer) {
	o = &Reducer{
		ForceRegion:  geo.RegIndenterRP,
		Forces:       [3]string{"RF1", "RF2", "RF3"},
		EnergyRegion: geo.RegSubstrate,
		Energies:     [2]string{"ALLIE", "ALLKE"},
		NodeSet:      geo.RegTrack,
	}
	if r := spec.Output("ReactionForces"); r != nil && len(r.Variables) == 3 {
		o.ForceRegion = r.Region
		copy(o.Forces[:], r.Variables)
	}
	if r := spec.Output("Energy"); r != nil && len(r.Variables) == 2 {
		o.EnergyRegion = r.Region
		copy(o.Energies[:], r.Variables)
	}
	if r := spec.Output("TrackProfile"); r != nil {
		o.NodeSet = r.Region
	}
	for _, s := range spec.Stages {
		o.Stages = append(o.Stages, StageInfo{s.Name, s.Duration})
	}
	o.MetaKeys, o.MetaVals = spec.Provenance()
	return
}

// Reduce extracts the time series of forces and energies and the deformed track profile
//  Stages are concatenated in schedule order; the times of each stage are shifted by the
//  cumulative duration of the preceding stages. A first sample that coincides with the last
//  sample of the preceding stage is dropped and reported in Table.Warnings. Nodes are sorted
//  by (z, -x, y).
func (o *Reducer) Reduce(h Handle, statusLog string) (tab *Table, err error) {

	// status log
	tab = &Table{Generated: time.Now(), MetaKeys: o.MetaKeys, MetaVals: o.MetaVals}
	tab.Wallclock, err = ParseWallclock(statusLog)
	if err != nil {
		return nil, err
	}

	// time series
	shift := 0.0
	for _, st := range o.Stages {
		rows, err := o.stageRows(h, st.Name)
		if err != nil {
			return nil, err
		}
		t := make([]float64, len(rows))
		for i, r := range rows {
			t[i] = r.Time
		}
		floats.AddConst(shift, t)
		for i, r := range rows {
			r.Time = t[i]
			if n := len(tab.Times); n > 0 {
				last := tab.Times[n-1].Time
				if math.Abs(r.Time-last) <= TolT*math.Max(1, math.Abs(last)) {
					tab.warn("sample of stage %q at t=%g merged with the previous sample of stage %q", st.Name, r.Time, tab.Times[n-1].Stage)
					continue
				}
				if r.Time < last {
					return nil, redErr("time of stage %q decreases from %g to %g; results do not match the schedule", st.Name, last, r.Time)
				}
			}
			tab.Times = append(tab.Times, r)
		}
		shift += st.Duration
	}

	// nodes
	nodes, ok := h.NodeSet(o.NodeSet)
	if !ok {
		return nil, redErr("node set %q is missing", o.NodeSet)
	}
	disp, ok := h.FinalDisplacementField(o.NodeSet)
	if !ok {
		return nil, redErr("final displacement field of node set %q is missing", o.NodeSet)
	}
	nodes = SortNodes(nodes)
	for _, n := range nodes {
		u, found := disp[n.Label]
		if !found {
			tab.warn("node %d has no displacement; zero used", n.Label)
		}
		tab.Nodes = append(tab.Nodes, NodeRow{Label: n.Label, X: n.X, Xdef: r3.Add(n.X, u)})
	}
	return
}

// SortNodes removes repeated labels, keeping the first occurrence, and sorts by (z, -x, y, label)
func SortNodes(nodes []Node) (res []Node) {
	seen := make(map[int]bool)
	for _, n := range nodes {
		if !seen[n.Label] {
			seen[n.Label] = true
			res = append(res, n)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.X.Z != b.X.Z {
			return a.X.Z < b.X.Z
		}
		if a.X.X != b.X.X {
			return a.X.X > b.X.X
		}
		if a.X.Y != b.X.Y {
			return a.X.Y < b.X.Y
		}
		return a.Label < b.Label
	})
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// stageRows returns the rows of one stage with stage-local times
func (o *Reducer) stageRows(h Handle, stage string) (rows []TimeRow, err error) {

	// regions
	frc, ok := h.HistoryRegion(stage, o.ForceRegion)
	if !ok {
		return nil, redErr("history region %q of stage %q is missing", o.ForceRegion, stage)
	}
	eng, ok := h.HistoryRegion(stage, o.EnergyRegion)
	if !ok {
		return nil, redErr("history region %q of stage %q is missing", o.EnergyRegion, stage)
	}

	// master times
	first, ok := frc[o.Forces[0]]
	if !ok {
		return nil, redErr("variable %s of region %q of stage %q is missing", o.Forces[0], o.ForceRegion, stage)
	}
	t := first.T
	rows = make([]TimeRow, len(t))
	for i := range rows {
		rows[i].Stage = stage
		rows[i].Time = t[i]
	}

	// values
	get := func(reg Region, regname, key string) ([]float64, error) {
		s, ok := reg[key]
		if !ok {
			return nil, redErr("variable %s of region %q of stage %q is missing", key, regname, stage)
		}
		return resample(s, t, key)
	}
	for k, key := range o.Forces {
		v, err := get(frc, o.ForceRegion, key)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].RF[k] = v[i]
		}
	}
	ie, err := get(eng, o.EnergyRegion, o.Energies[0])
	if err != nil {
		return nil, err
	}
	ke, err := get(eng, o.EnergyRegion, o.Energies[1])
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].IE = ie[i]
		rows[i].KE = ke[i]
	}
	return
}

// resample returns the values of s at times t, interpolating when s is sampled at other times
func resample(s Series, t []float64, key string) (v []float64, err error) {
	if len(s.T) != len(s.V) {
		return nil, redErr("series %s has %d times but %d values", key, len(s.T), len(s.V))
	}
	if floats.Equal(s.T, t) {
		return s.V, nil
	}
	v = make([]float64, len(t))
	switch len(s.T) {
	case 0:
		return nil, redErr("series %s is empty", key)
	case 1:
		for i := range v {
			v[i] = s.V[0]
		}
		return
	}
	var pl interp.PiecewiseLinear
	if e := pl.Fit(s.T, s.V); e != nil {
		return nil, redErr("cannot resample series %s: %v", key, e)
	}
	for i, ti := range t {
		v[i] = pl.Predict(ti)
	}
	return
}
