// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotFdata holds information to plot functions
type PlotFdata struct {
	Ti   float64  `json:"ti"`   // initial time
	Tf   float64  `json:"tf"`   // final time
	Np   int      `json:"np"`   // number of points
	Skip []string `json:"skip"` // skip functions
}

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: normal, tangential
	Type string     `json:"type"` // type of function. "pts" => piecewise linear with t0,y0,t1,y1,...
	Prms dbf.Params `json:"prms"` // parameters
}

// Funcs holds functions
type FuncsData []*FuncData

// NewFuncData converts an amplitude into function data of type "pts"
func NewFuncData(amp *Amplitude) *FuncData {
	f := &FuncData{Name: amp.Name, Type: "pts"}
	for i, k := range amp.Knots {
		f.Prms = append(f.Prms, &dbf.P{N: io.Sf("t%d", i), V: k.T}, &dbf.P{N: io.Sf("y%d", i), V: k.V})
	}
	return f
}

// Get returns function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	for _, f := range o {
		if f.Name == name {
			fcn, err = dbf.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// PlotAll plot all functions
func (o FuncsData) PlotAll(pd *PlotFdata, dirout, fnkey string) {
	np := pd.Np
	if np < 2 {
		np = 101
	}
	for _, f := range o {
		if utl.StrIndexSmall(pd.Skip, f.Name) >= 0 {
			continue
		}
		ff, err := o.Get(f.Name)
		if err != nil {
			chk.Panic("%v", err)
		}
		t := utl.LinSpace(pd.Ti, pd.Tf, np)
		y := make([]float64, np)
		for i, ti := range t {
			y[i] = ff.F(ti, nil)
		}
		plt.Reset(false, nil)
		plt.Plot(t, y, &plt.A{C: "b", L: f.Name})
		plt.Gll("$t$", f.Name, nil)
		plt.Save(dirout, io.Sf("functions-%s-%s", fnkey, f.Name))
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	var l []string
	for _, p := range o.Prms {
		l = append(l, io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V))
	}
	return io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : [\n        %s\n      ]\n    }", o.Name, o.Type, strings.Join(l, ",\n        "))
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
