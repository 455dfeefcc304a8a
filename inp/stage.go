// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// stage names
const (
	StageApproach    = "Approach"
	StageScratch     = "Scratch"
	StageProgressive = "ProgressiveScratch"
	StageUnload      = "Unload"
)

// amplitude names
const (
	AmpNormal     = "normal"
	AmpTangential = "tangential"
)

// ScheduleError reports a non-positive duration or a transition on an unknown region
type ScheduleError struct {
	Msg string
}

func (o *ScheduleError) Error() string { return "schedule: " + o.Msg }

func schedErr(msg string, prm ...interface{}) error {
	return &ScheduleError{io.Sf(msg, prm...)}
}

// DofState defines the state of a degree of freedom
type DofState int

const (
	Free   DofState = iota // unconstrained
	Fixed                  // held at its current displacement
	Driven                 // prescribed displacement scaled by an amplitude
)

// String returns the name of the state
func (o DofState) String() string {
	switch o {
	case Free:
		return "free"
	case Fixed:
		return "fixed"
	case Driven:
		return "driven"
	}
	return io.Sf("state(%d)", int(o))
}

// DofChange changes the state of one degree of freedom of a region; it is effective from the
// owning stage onwards until superseded
type DofChange struct {
	Region    string   `json:"region"`
	Dof       string   `json:"dof"`                 // u1, u2, u3, ur1, ur2 or ur3
	State     DofState `json:"state"`               // new state
	Value     float64  `json:"value,omitempty"`     // Driven: prescribed displacement
	Amplitude string   `json:"amplitude,omitempty"` // Driven: amplitude name
}

// Output holds the sampling intervals of a stage
type Output struct {
	FieldInterval   float64 `json:"fieldinterval"`
	HistoryInterval float64 `json:"historyinterval"`
}

// Stage holds one phase of the loading schedule
type Stage struct {
	Name        string      `json:"name"`
	Start       float64     `json:"start"`       // cumulative duration of preceding stages
	Duration    float64     `json:"duration"`
	Amplitudes  []Amplitude `json:"amplitudes"`  // knots use absolute times
	Transitions []DofChange `json:"transitions"` // applied at the start of the stage
	Output      Output      `json:"output"`
}

// End returns the end time of the stage
func (o *Stage) End() float64 { return o.Start + o.Duration }

// ScheduleConfig holds the input of the load schedule
type ScheduleConfig struct {
	Depth        float64 `json:"depth"`        // indentation depth (applied downwards)
	Length       float64 `json:"length"`       // scratch length
	T1           float64 `json:"t1"`           // approach duration
	T2           float64 `json:"t2"`           // scratch duration; progressive: combined duration
	T3           float64 `json:"t3"`           // unload duration
	Progressive  bool    `json:"progressive"`  // merge approach and scratch into one stage
	ZSymmetry    bool    `json:"zsymmetry"`    // z-symmetry at the start face
	FieldFrames  int     `json:"fieldframes"`  // field frames of short stages [default=5]
	ScratchFrame int     `json:"scratchframe"` // field frames of the scratch stage [default=20]
	ForceSamples int     `json:"forcesamples"` // history samples during the scratch [default=100]
}

// SetDefault sets default values
func (o *ScheduleConfig) SetDefault() {
	o.Depth = 0.01
	o.Length = 2.0
	o.T1 = 1e-4
	o.T2 = 1e-2
	o.T3 = 1e-4
	o.FieldFrames = 5
	o.ScratchFrame = 20
	o.ForceSamples = 100
}

// RegionChecker tells whether a region exists
type RegionChecker interface {
	Has(name string) bool
}

// Schedule holds the ordered stages
type Schedule []Stage

// BuildSchedule builds the canonical three-stage schedule (Approach, Scratch, Unload) or the
// progressive variant (ProgressiveScratch, Unload)
func BuildSchedule(cfg ScheduleConfig, regions RegionChecker) (o Schedule, err error) {

	// durations
	var names []string
	var durs []float64
	if cfg.Progressive {
		names = []string{StageProgressive, StageUnload}
		durs = []float64{cfg.T2, cfg.T3}
	} else {
		names = []string{StageApproach, StageScratch, StageUnload}
		durs = []float64{cfg.T1, cfg.T2, cfg.T3}
	}
	for i, d := range durs {
		if !(d > 0) {
			return nil, schedErr("duration of stage %q must be positive; got %g", names[i], d)
		}
	}
	if cfg.FieldFrames < 1 {
		cfg.FieldFrames = 5
	}
	if cfg.ScratchFrame < 1 {
		cfg.ScratchFrame = 20
	}
	if cfg.ForceSamples < 1 {
		cfg.ForceSamples = 100
	}

	// start times
	cum := floats.CumSum(make([]float64, len(durs)), durs)
	o = make(Schedule, len(durs))
	for i := range o {
		o[i].Name = names[i]
		o[i].Duration = durs[i]
		o[i].Start = cum[i] - durs[i]
	}

	// boundary conditions and amplitudes
	ramp := func(name string, t0, t1, v0, v1 float64) Amplitude {
		return Amplitude{name, []Knot{{t0, v0}, {t1, v1}}}
	}
	o[0].Transitions = initialConditions(cfg)
	scr := &o[len(o)-2]
	if cfg.Progressive {
		scr.Transitions = append(scr.Transitions, DofChange{geo.RegIndenterRP, "u3", Driven, cfg.Length, AmpTangential})
		scr.Amplitudes = []Amplitude{
			ramp(AmpNormal, scr.Start, scr.End(), 0, 1),
			ramp(AmpTangential, scr.Start, scr.End(), 0, 1),
		}
	} else {
		app := &o[0]
		app.Amplitudes = []Amplitude{ramp(AmpNormal, app.Start, app.End(), 0, 1)}
		scr.Transitions = []DofChange{{geo.RegIndenterRP, "u3", Driven, cfg.Length, AmpTangential}}
		scr.Amplitudes = []Amplitude{
			ramp(AmpNormal, scr.Start, scr.End(), 1, 1),
			ramp(AmpTangential, scr.Start, scr.End(), 0, 1),
		}
	}
	unl := &o[len(o)-1]
	unl.Transitions = []DofChange{{geo.RegIndenterRP, "u3", Fixed, 0, ""}}
	unl.Amplitudes = []Amplitude{ramp(AmpNormal, unl.Start, unl.End(), 1, 0)}

	// output sampling
	tscr := scr.Duration
	for i := range o {
		s := &o[i]
		frames := cfg.FieldFrames
		if s == scr {
			frames = cfg.ScratchFrame
		}
		s.Output.FieldInterval = s.Duration / float64(frames)
		s.Output.HistoryInterval = math.Min(s.Duration, tscr/float64(cfg.ForceSamples))
	}

	// check
	if regions != nil {
		for _, s := range o {
			for _, c := range s.Transitions {
				if !regions.Has(c.Region) {
					return nil, schedErr("stage %q changes %s of region %q which does not exist", s.Name, c.Dof, c.Region)
				}
			}
		}
	}
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}

// Check checks that stages are contiguous and that amplitudes are valid and lie inside their
// stages
func (o Schedule) Check() error {
	t := 0.0
	for _, s := range o {
		if !(s.Duration > 0) {
			return schedErr("duration of stage %q must be positive; got %g", s.Name, s.Duration)
		}
		if math.Abs(s.Start-t) > 1e-12*math.Max(1, t) {
			return schedErr("stage %q starts at %g instead of %g", s.Name, s.Start, t)
		}
		for _, a := range s.Amplitudes {
			if err := a.Check(); err != nil {
				return schedErr("stage %q: %v", s.Name, err)
			}
			if a.Start() < s.Start-1e-15 || a.End() > s.End()+1e-15 {
				return schedErr("stage %q: amplitude %q covers [%g,%g] outside [%g,%g]", s.Name, a.Name, a.Start(), a.End(), s.Start, s.End())
			}
		}
		for _, c := range s.Transitions {
			if c.State == Driven && c.Amplitude == "" {
				return schedErr("stage %q: driven %s of %q has no amplitude", s.Name, c.Dof, c.Region)
			}
		}
		t += s.Duration
	}
	return nil
}

// Starts returns the start times of all stages
func (o Schedule) Starts() (t []float64) {
	for _, s := range o {
		t = append(t, s.Start)
	}
	return
}

// Durations returns the durations of all stages
func (o Schedule) Durations() (d []float64) {
	for _, s := range o {
		d = append(d, s.Duration)
	}
	return
}

// Total returns the total duration of the schedule
func (o Schedule) Total() float64 {
	return floats.Sum(o.Durations())
}

// Names returns the stage names in order
func (o Schedule) Names() (names []string) {
	for _, s := range o {
		names = append(names, s.Name)
	}
	return
}

// DofStates returns the effective state of every (region, dof) pair during stage idx
func (o Schedule) DofStates(idx int) map[string]DofChange {
	res := make(map[string]DofChange)
	for i := 0; i <= idx && i < len(o); i++ {
		for _, c := range o[i].Transitions {
			res[c.Region+"."+c.Dof] = c
		}
	}
	return res
}

// Functions merges the amplitudes of all stages into one piecewise-linear function per name
// spanning the whole schedule
func (o Schedule) Functions() (fcns FuncsData) {
	merged := make(map[string]*Amplitude)
	var order []string
	for _, s := range o {
		for _, a := range s.Amplitudes {
			m, ok := merged[a.Name]
			if !ok {
				m = &Amplitude{Name: a.Name}
				merged[a.Name] = m
				order = append(order, a.Name)
			}
			for _, k := range a.Knots {
				if n := len(m.Knots); n > 0 && m.Knots[n-1] == k {
					continue
				}
				m.Knots = append(m.Knots, k)
			}
		}
	}
	for _, name := range order {
		fcns = append(fcns, NewFuncData(merged[name]))
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// initialConditions returns the conditions applied at the start of the first stage
func initialConditions(cfg ScheduleConfig) (res []DofChange) {
	fix := func(region string, dofs ...string) {
		for _, d := range dofs {
			res = append(res, DofChange{Region: region, Dof: d, State: Fixed})
		}
	}
	fix(geo.RegBottom, "u1", "u2", "u3", "ur1", "ur2", "ur3") // encastre
	fix(geo.RegXmin, "u1", "ur2", "ur3")                      // x-symmetry
	if cfg.ZSymmetry {
		fix(geo.RegZmin, "u3", "ur1", "ur2")
	}
	fix(geo.RegIndenterRP, "u1", "u3", "ur1", "ur2", "ur3")
	res = append(res, DofChange{geo.RegIndenterRP, "u2", Driven, -cfg.Depth, AmpNormal})
	return
}
