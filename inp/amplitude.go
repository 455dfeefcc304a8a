// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// Knot holds one (time, value) pair of an amplitude; times are absolute
type Knot struct {
	T float64 `json:"t"`
	V float64 `json:"v"`
}

// Amplitude is a piecewise-linear multiplier applied to prescribed displacements
type Amplitude struct {
	Name  string `json:"name"`
	Knots []Knot `json:"knots"`
}

// Check checks that times do not decrease, values are in [0,1] and values are monotone
func (o *Amplitude) Check() error {
	if len(o.Knots) < 2 {
		return chk.Err("amplitude %q needs at least two knots", o.Name)
	}
	up, down := false, false
	for i, k := range o.Knots {
		if k.V < 0 || k.V > 1 {
			return chk.Err("amplitude %q: value %g at t=%g is outside [0,1]", o.Name, k.V, k.T)
		}
		if i == 0 {
			continue
		}
		p := o.Knots[i-1]
		if k.T < p.T {
			return chk.Err("amplitude %q: time decreases from %g to %g", o.Name, p.T, k.T)
		}
		up = up || k.V > p.V
		down = down || k.V < p.V
	}
	if up && down {
		return chk.Err("amplitude %q is not monotone within its phase", o.Name)
	}
	return nil
}

// Start returns the time of the first knot
func (o *Amplitude) Start() float64 { return o.Knots[0].T }

// End returns the time of the last knot
func (o *Amplitude) End() float64 { return o.Knots[len(o.Knots)-1].T }
