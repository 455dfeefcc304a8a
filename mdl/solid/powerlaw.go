// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// PowerLaw implements the power-law hardening σ = K·ε^n with K = E·εy^(1-n)
type PowerLaw struct {
	SigY float64 // yield strength
	E    float64 // Young's modulus
	N    float64 // hardening exponent
}

// add model to factory
func init() {
	allocators["powerlaw"] = func() Model { return new(PowerLaw) }
}

// Init initialises model
func (o *PowerLaw) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "sY":
			o.SigY = p.V
		case "E":
			o.E = p.V
		case "n":
			o.N = p.V
		default:
			return unknownPrm("powerlaw", p.N)
		}
	}
	return o.check()
}

// GetPrms gets (an example) of parameters
func (o PowerLaw) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "sY", V: 600},
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "n", V: 0.2},
	}
}

// Curve tabulates the hardening law
func (o *PowerLaw) Curve() (Curve, error) {
	return PowerLawHardening(o.SigY, o.E, o.N)
}

// PowerLawHardening computes the hardening curve of the power law
//  Input:
//   σy -- yield strength
//   E  -- Young's modulus
//   n  -- hardening exponent in (0,1)
//  Output:
//   curve -- (σ, εp) pairs starting at (σy, 0); σ = K·ε^n and εp = ε - σ/E for every ε > εy of
//            the strain grid, rounded to Decimals. Points not strictly greater than the previous
//            one are dropped.
func PowerLawHardening(σy, E, n float64) (curve Curve, err error) {
	o := PowerLaw{σy, E, n}
	if err = o.check(); err != nil {
		return
	}
	εy := σy / E
	K := E * math.Pow(εy, 1-n)
	curve = Curve{{σy, 0}}
	for _, ε := range StrainGrid() {
		if ε <= εy {
			continue
		}
		σ := K * math.Pow(ε, n)
		curve = coalesce(curve, CurvePoint{round(σ), round(ε - σ/E)})
	}
	if len(curve) < 2 {
		return nil, matErr("power law with σy=%g E=%g n=%g produced no point beyond yield", σy, E, n)
	}
	err = curve.Check()
	return
}

func (o PowerLaw) check() error {
	if !(o.SigY > 0) {
		return matErr("yield strength σy=%g must be positive", o.SigY)
	}
	if !(o.E > 0) {
		return matErr("Young's modulus E=%g must be positive", o.E)
	}
	if !(o.N > 0 && o.N < 1) {
		return matErr("hardening exponent n=%g must be in (0,1)", o.N)
	}
	return nil
}
