// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// regionList implements RegionChecker
type regionList []string

func (o regionList) Has(name string) bool {
	for _, n := range o {
		if n == name {
			return true
		}
	}
	return false
}

var allRegions = regionList{geo.RegBottom, geo.RegXmin, geo.RegZmin, geo.RegIndenterRP}

func Test_schedule01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("schedule01. canonical three stages")

	var cfg ScheduleConfig
	cfg.SetDefault()
	s, err := BuildSchedule(cfg, allRegions)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("starts = %v\n", s.Starts())
	chk.Strings(tst, "names", s.Names(), []string{StageApproach, StageScratch, StageUnload})
	chk.Array(tst, "starts", 1e-15, s.Starts(), []float64{0, 0.0001, 0.0101})
	chk.Float64(tst, "total", 1e-15, s.Total(), 0.0102)

	// tangential dof: fixed, driven, fixed
	states := []DofState{Fixed, Driven, Fixed}
	for i := range s {
		c, ok := s.DofStates(i)[geo.RegIndenterRP+".u3"]
		if !ok {
			tst.Errorf("u3 of indenter is missing in stage %d\n", i)
			return
		}
		chk.String(tst, c.State.String(), states[i].String())
	}
	c := s.DofStates(2)[geo.RegIndenterRP+".u2"]
	chk.String(tst, c.State.String(), "driven")
	chk.Float64(tst, "depth", 1e-15, c.Value, -0.01)
	chk.String(tst, c.Amplitude, AmpNormal)
	if _, ok := s.DofStates(0)[geo.RegZmin+".u3"]; ok {
		tst.Errorf("z-symmetry must not be applied by default\n")
	}

	// sampling
	chk.Float64(tst, "field: approach", 1e-15, s[0].Output.FieldInterval, 0.0001/5)
	chk.Float64(tst, "field: scratch", 1e-15, s[1].Output.FieldInterval, 0.01/20)
	chk.Float64(tst, "history: scratch", 1e-15, s[1].Output.HistoryInterval, 0.01/100)
	chk.Float64(tst, "history: approach", 1e-15, s[0].Output.HistoryInterval, 0.0001)

	// merged amplitudes
	fcns := s.Functions()
	chk.Int(tst, "nfcns", len(fcns), 2)
	normal, err := fcns.Get(AmpNormal)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "normal(0)", 1e-15, normal.F(0, nil), 0)
	chk.Float64(tst, "normal(t1/2)", 1e-12, normal.F(0.00005, nil), 0.5)
	chk.Float64(tst, "normal(scratch)", 1e-15, normal.F(0.005, nil), 1)
	chk.Float64(tst, "normal(unload/2)", 1e-9, normal.F(0.01015, nil), 0.5)
	chk.Float64(tst, "normal(end)", 1e-9, normal.F(0.0102, nil), 0)
	tang, err := fcns.Get(AmpTangential)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "tangential(approach)", 1e-15, tang.F(0.00005, nil), 0)
	chk.Float64(tst, "tangential(scratch/2)", 1e-12, tang.F(0.0051, nil), 0.5)
	chk.Float64(tst, "tangential(end)", 1e-9, tang.F(0.0102, nil), 1)
	io.Pf("%v\n", fcns)
	if chk.Verbose {
		fcns.PlotAll(&PlotFdata{Ti: 0, Tf: s.Total()}, "/tmp/scratch", "schedule01")
	}
}

func Test_schedule02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("schedule02. progressive load")

	var cfg ScheduleConfig
	cfg.SetDefault()
	cfg.Progressive = true
	cfg.ZSymmetry = true
	s, err := BuildSchedule(cfg, allRegions)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Strings(tst, "names", s.Names(), []string{StageProgressive, StageUnload})
	chk.Array(tst, "starts", 1e-15, s.Starts(), []float64{0, 0.01})
	chk.Float64(tst, "total", 1e-15, s.Total(), 0.0101)
	if _, ok := s.DofStates(0)[geo.RegZmin+".u3"]; !ok {
		tst.Errorf("z-symmetry is missing\n")
	}
	fcns := s.Functions()
	normal, _ := fcns.Get(AmpNormal)
	tang, _ := fcns.Get(AmpTangential)
	chk.Float64(tst, "normal(t/2)", 1e-12, normal.F(0.005, nil), 0.5)
	chk.Float64(tst, "tangential(t/2)", 1e-12, tang.F(0.005, nil), 0.5)
	chk.Float64(tst, "normal(end)", 1e-9, normal.F(0.0101, nil), 0)
}

func Test_schedule03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("schedule03. invalid schedules")

	var cfg ScheduleConfig
	cfg.SetDefault()
	cfg.T2 = 0
	_, err := BuildSchedule(cfg, allRegions)
	var serr *ScheduleError
	if !errors.As(err, &serr) {
		tst.Errorf("zero duration should have failed with ScheduleError. err=%v\n", err)
	}

	cfg.SetDefault()
	_, err = BuildSchedule(cfg, regionList{geo.RegBottom, geo.RegXmin})
	if !errors.As(err, &serr) {
		tst.Errorf("unknown region should have failed with ScheduleError. err=%v\n", err)
		return
	}
	io.Pforan("%v\n", err)

	// overlapping stages
	s, _ := BuildSchedule(cfg, allRegions)
	s[1].Start = 0
	if err = s.Check(); err == nil {
		tst.Errorf("overlapping stages should have failed\n")
	}

	// non-monotone amplitude
	amp := Amplitude{"bad", []Knot{{0, 0}, {1, 1}, {2, 0.5}}}
	if err = amp.Check(); err == nil {
		tst.Errorf("non-monotone amplitude should have failed\n")
	}
}
