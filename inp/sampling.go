// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// Range holds the sampling range of one named parameter; see Params.Set for names
type Range struct {
	Name     string  `json:"name"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Decimals int     `json:"decimals"` // rounding; negative => none
}

// SampleParams generates n parameter sets from base by Latin hypercube sampling of ranges.
// Keys are base.Key followed by "_000", "_001", ... The same seed gives the same sets.
func SampleParams(base *Params, ranges []Range, n int, seed int) (res []*Params, err error) {
	if n < 1 {
		return nil, chk.Err("number of samples must be positive; got %d", n)
	}
	if len(ranges) == 0 {
		return nil, chk.Err("at least one range is required")
	}
	for _, r := range ranges {
		if r.Max < r.Min {
			return nil, chk.Err("range of %q is invalid: min=%g > max=%g", r.Name, r.Min, r.Max)
		}
	}
	rnd.Init(seed)
	cells := rnd.LatinIHS(len(ranges), n, 5) // [dim][n] with values in 1..n
	res = make([]*Params, n)
	for j := 0; j < n; j++ {
		p := base.Clone()
		p.Key = io.Sf("%s_%03d", base.Key, j)
		for k, r := range ranges {
			u := (float64(cells[k][j]-1) + rnd.Float64(0, 1)) / float64(n)
			v := roundTo(r.Min+u*(r.Max-r.Min), r.Decimals)
			if err = p.Set(r.Name, v); err != nil {
				return nil, err
			}
		}
		res[j] = p
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func roundTo(x float64, decimals int) float64 {
	if decimals < 0 {
		return x
	}
	s := math.Pow(10, float64(decimals))
	return math.Round(x*s) / s
}
