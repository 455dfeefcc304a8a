// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// ForceSeries returns the time and the named column ("RF1", "RF2", "RF3", "IE" or "KE") of the
// time rows
func (o *Table) ForceSeries(key string) (t, y []float64, err error) {
	t = make([]float64, len(o.Times))
	y = make([]float64, len(o.Times))
	for i, r := range o.Times {
		t[i] = r.Time
		switch key {
		case "RF1":
			y[i] = r.RF[0]
		case "RF2":
			y[i] = r.RF[1]
		case "RF3":
			y[i] = r.RF[2]
		case "IE":
			y[i] = r.IE
		case "KE":
			y[i] = r.KE
		default:
			return nil, nil, chk.Err("column %q is not a time series", key)
		}
	}
	return
}

// PlotForces plots the reaction forces and energies versus time into
// <dirout>/<fnkey>_forces and <dirout>/<fnkey>_energies
func PlotForces(tab *Table, dirout, fnkey string) {
	sty := GetDefaultStyles()
	draw := func(keys []string, ylbl, suffix string) {
		plt.Reset(false, nil)
		for _, key := range keys {
			t, y, err := tab.ForceSeries(key)
			if err != nil {
				chk.Panic("%v", err)
			}
			plt.Plot(t, y, sty[key])
		}
		plt.Gll(GetTexLabel("time", "[s]"), ylbl, nil)
		plt.Save(dirout, io.Sf("%s_%s", fnkey, suffix))
	}
	draw([]string{"RF1", "RF2", "RF3"}, "$F\\;[N]$", "forces")
	draw([]string{"IE", "KE"}, "$E\\;[mJ]$", "energies")
}

// PlotProfile plots the height of the track nodes along the scratch direction, before and
// after the scratch, into <dirout>/<fnkey>_profile
func PlotProfile(tab *Table, dirout, fnkey string) {
	sty := GetDefaultStyles()
	n := len(tab.Nodes)
	z := make([]float64, n)
	y0 := make([]float64, n)
	y1 := make([]float64, n)
	for i, nod := range tab.Nodes {
		z[i] = nod.X.Z
		y0[i] = nod.X.Y
		y1[i] = nod.Xdef.Y
	}
	plt.Reset(false, nil)
	plt.Plot(z, y0, sty["undeformed"])
	plt.Plot(z, y1, sty["deformed"])
	plt.Gll(GetTexLabel("z", "[mm]"), GetTexLabel("y_deformed", "[mm]"), nil)
	plt.Save(dirout, fnkey+"_profile")
}
