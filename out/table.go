// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"time"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

// Columns holds the column names of the reduced table
var Columns = []string{"Time", "RF1", "RF2", "RF3", "IE", "KE", "NodeLabel",
	"x_undeformed", "y_undeformed", "z_undeformed", "x_deformed", "y_deformed", "z_deformed"}

// TimeRow holds one sample of the forces and energies
type TimeRow struct {
	Stage string     `json:"stage"`
	Time  float64    `json:"time"` // shifted to the schedule time
	RF    [3]float64 `json:"rf"`
	IE    float64    `json:"ie"`
	KE    float64    `json:"ke"`
}

// NodeRow holds the undeformed and deformed coordinates of one node of the track
type NodeRow struct {
	Label int    `json:"label"`
	X     r3.Vec `json:"x"`    // undeformed
	Xdef  r3.Vec `json:"xdef"` // deformed
}

// Table holds the reduced results. Time and node rows are parallel columns zipped by position.
type Table struct {
	Generated time.Time `json:"generated"`
	MetaKeys  []string  `json:"metakeys"`
	MetaVals  []string  `json:"metavals"`
	Wallclock float64   `json:"wallclock"` // solve duration [s]
	Times     []TimeRow `json:"times"`
	Nodes     []NodeRow `json:"nodes"`
	Warnings  []string  `json:"warnings"`
}

// NumRows returns the number of zipped rows
func (o *Table) NumRows() int {
	if len(o.Times) > len(o.Nodes) {
		return len(o.Times)
	}
	return len(o.Nodes)
}

// Row returns the fields of zipped row i; missing entries are empty strings
func (o *Table) Row(i int) (fields []string) {
	fields = make([]string, len(Columns))
	if i < len(o.Times) {
		r := o.Times[i]
		for k, v := range []float64{r.Time, r.RF[0], r.RF[1], r.RF[2], r.IE, r.KE} {
			fields[k] = io.Sf("%g", v)
		}
	}
	if i < len(o.Nodes) {
		n := o.Nodes[i]
		fields[6] = io.Sf("%d", n.Label)
		for k, v := range []float64{n.X.X, n.X.Y, n.X.Z, n.Xdef.X, n.Xdef.Y, n.Xdef.Z} {
			fields[7+k] = io.Sf("%g", v)
		}
	}
	return
}

// Header returns the comment lines of the header block
func (o *Table) Header() (lines []string) {
	lines = append(lines, "# generated = "+o.Generated.Format(time.RFC3339))
	for i, k := range o.MetaKeys {
		lines = append(lines, io.Sf("# %s = %s", k, o.MetaVals[i]))
	}
	lines = append(lines, io.Sf("# wallclock = %g", o.Wallclock))
	for _, w := range o.Warnings {
		lines = append(lines, "# warning: "+w)
	}
	return
}

// Write writes the table as comma-separated values with a commented header block
func (o *Table) Write(buf *bytes.Buffer) {
	for _, l := range o.Header() {
		io.Ff(buf, "%s\n", l)
	}
	writeCsvLine(buf, Columns)
	for i := 0; i < o.NumRows(); i++ {
		writeCsvLine(buf, o.Row(i))
	}
}

// WriteFile writes the table to <dirout>/<fnkey>_reduced.csv and returns the file path
func (o *Table) WriteFile(dirout, fnkey string) (fn string) {
	var buf bytes.Buffer
	o.Write(&buf)
	fn = fnkey + "_reduced.csv"
	io.WriteFileD(dirout, fn, &buf)
	return dirout + "/" + fn
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func (o *Table) warn(msg string, prm ...interface{}) {
	o.Warnings = append(o.Warnings, io.Sf(msg, prm...))
}

func writeCsvLine(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			io.Ff(buf, ",")
		}
		io.Ff(buf, "%s", f)
	}
	io.Ff(buf, "\n")
}
