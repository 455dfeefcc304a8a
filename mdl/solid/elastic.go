// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Elastic holds isotropic elasticity and density
type Elastic struct {
	E   float64 `json:"E"`   // Young's modulus
	Nu  float64 `json:"nu"`  // Poisson's coefficient
	Rho float64 `json:"rho"` // density
}

// add model to factory
func init() {
	allocators["elastic"] = func() Model { return new(Elastic) }
}

// Init initialises model
func (o *Elastic) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return unknownPrm("elastic", p.N)
		}
	}
	return o.Validate()
}

// GetPrms gets (an example) of parameters
func (o Elastic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "rho", V: 7.8e-9},
	}
}

// Validate checks the constants
func (o Elastic) Validate() error {
	if !(o.E > 0) {
		return matErr("Young's modulus E=%g must be positive", o.E)
	}
	if !(o.Nu > -1 && o.Nu < 0.5) {
		return matErr("Poisson's coefficient ν=%g must be in (-1,0.5)", o.Nu)
	}
	if !(o.Rho > 0) {
		return matErr("density rho=%g must be positive", o.Rho)
	}
	return nil
}

// G returns the shear modulus
func (o Elastic) G() float64 { return o.E / (2 * (1 + o.Nu)) }

// WaveSpeed returns the dilatational wave speed used to estimate the stable time increment
func (o Elastic) WaveSpeed() float64 {
	λ := o.E * o.Nu / ((1 + o.Nu) * (1 - 2*o.Nu))
	return math.Sqrt((λ + 2*o.G()) / o.Rho)
}

// StableIncrement estimates the stable explicit time increment of an element of size Le, with
// the density scaled by factor
func (o Elastic) StableIncrement(Le, factor float64) float64 {
	if factor < 1 {
		factor = 1
	}
	return Le / o.WaveSpeed() * math.Sqrt(factor)
}
