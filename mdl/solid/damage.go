// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/fun/dbf"

// Evolution holds the displacement-based damage evolution derived from the fracture toughness
//  E* = E/(1-ν²)    Gf = kc²/E*    δf = 2·Gf/uts
type Evolution struct {
	Kc                   float64 `json:"kc"`        // fracture toughness
	Uts                  float64 `json:"uts"`       // ultimate tensile strength
	E                    float64 `json:"E"`         // Young's modulus
	Nu                   float64 `json:"nu"`        // Poisson's coefficient
	EStar                float64 `json:"Estar"`     // plane-strain modulus
	FractureEnergy       float64 `json:"Gf"`        // fracture energy
	CriticalDisplacement float64 `json:"deltaf"`    // displacement at failure
	Type                 string  `json:"type"`      // "displacement"
	Softening            string  `json:"softening"` // "linear"
}

// DamageLaw holds damage initiation and evolution
type DamageLaw struct {
	Initiation *JohnsonCookDamage `json:"initiation"`
	Evolution  *Evolution         `json:"evolution"`
}

// add model to factory
func init() {
	allocators["damevol"] = func() Model { return new(Evolution) }
}

// DamageEvolution computes the critical displacement of a linear softening law
func DamageEvolution(kc, uts, E, ν float64) (o *Evolution, err error) {
	o = &Evolution{Kc: kc, Uts: uts, E: E, Nu: ν}
	if err = o.compute(); err != nil {
		return nil, err
	}
	return
}

// Init initialises model
func (o *Evolution) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "kc":
			o.Kc = p.V
		case "uts":
			o.Uts = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		default:
			return unknownPrm("damevol", p.N)
		}
	}
	return o.compute()
}

// GetPrms gets (an example) of parameters
func (o Evolution) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "kc", V: 2000},
		&dbf.P{N: "uts", V: 1000},
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
	}
}

func (o *Evolution) compute() error {
	if !(o.Uts > 0) {
		return matErr("ultimate tensile strength uts=%g must be positive", o.Uts)
	}
	if !(o.Nu < 1 && o.Nu > -1) {
		return matErr("Poisson's coefficient ν=%g must be in (-1,1)", o.Nu)
	}
	if !(o.E > 0) {
		return matErr("Young's modulus E=%g must be positive", o.E)
	}
	if o.Kc < 0 {
		return matErr("fracture toughness kc=%g must not be negative", o.Kc)
	}
	o.EStar = o.E / (1 - o.Nu*o.Nu)
	o.FractureEnergy = o.Kc * o.Kc / o.EStar
	o.CriticalDisplacement = 2 * o.FractureEnergy / o.Uts
	o.Type = "displacement"
	o.Softening = "linear"
	return nil
}
