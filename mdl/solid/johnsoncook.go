// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// JohnsonCook holds the Johnson-Cook hardening law
//  σ = (A + B·εp^n)·(1 - T*^m)   with   T* = (T - Tt) / (Tm - Tt)
// The strain-rate term is handled by the solver and is not part of this record
type JohnsonCook struct {
	A  float64 `json:"A"`  // initial yield strength
	B  float64 `json:"B"`  // hardening modulus
	N  float64 `json:"n"`  // hardening exponent
	M  float64 `json:"m"`  // thermal softening exponent
	Tm float64 `json:"Tm"` // melting temperature
	Tt float64 `json:"Tt"` // transition temperature
}

// JohnsonCookDamage holds the Johnson-Cook fracture strain law
//  εf = [d1 + d2·exp(d3·η)]·[1 + d4·ln(ε̇/Sr)]·[1 + d5·T*]
type JohnsonCookDamage struct {
	D1 float64 `json:"d1"`
	D2 float64 `json:"d2"`
	D3 float64 `json:"d3"`
	D4 float64 `json:"d4"`
	D5 float64 `json:"d5"`
	Tm float64 `json:"Tm"` // melting temperature
	Tt float64 `json:"Tt"` // transition temperature
	Sr float64 `json:"Sr"` // reference strain rate
}

// add models to factory
func init() {
	allocators["jc"] = func() Model { return new(JohnsonCook) }
	allocators["jcdamage"] = func() Model { return new(JohnsonCookDamage) }
}

// JohnsonCookHardening returns the closed-form Johnson-Cook hardening record
func JohnsonCookHardening(A, B, n, m, Tm, Tt float64) (o *JohnsonCook, err error) {
	o = &JohnsonCook{A, B, n, m, Tm, Tt}
	if err = o.check(); err != nil {
		return nil, err
	}
	return
}

// Init initialises model
func (o *JohnsonCook) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = p.V
		case "B":
			o.B = p.V
		case "n":
			o.N = p.V
		case "m":
			o.M = p.V
		case "Tm":
			o.Tm = p.V
		case "Tt":
			o.Tt = p.V
		default:
			return unknownPrm("jc", p.N)
		}
	}
	return o.check()
}

// GetPrms gets (an example) of parameters
func (o JohnsonCook) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: 550},
		&dbf.P{N: "B", V: 1000},
		&dbf.P{N: "n", V: 0.25},
		&dbf.P{N: "m", V: 0},
		&dbf.P{N: "Tm", V: 0},
		&dbf.P{N: "Tt", V: 0},
	}
}

// Stress computes the flow stress at plastic strain εp and temperature T
func (o *JohnsonCook) Stress(εp, T float64) float64 {
	σ := o.A
	if εp > 0 {
		σ += o.B * math.Pow(εp, o.N)
	}
	if θ := homologous(T, o.Tm, o.Tt); θ > 0 {
		σ *= 1 - math.Pow(θ, o.M)
	}
	return σ
}

// Curve tabulates the law at the transition temperature
func (o *JohnsonCook) Curve() (Curve, error) {
	return o.Tabulate(o.Tt)
}

// Tabulate tabulates the law at temperature T over the plastic strains of the strain grid
func (o *JohnsonCook) Tabulate(T float64) (curve Curve, err error) {
	σy := o.Stress(0, T)
	if !(σy > 0) {
		return nil, matErr("Johnson-Cook yield stress at T=%g is not positive", T)
	}
	curve = Curve{{σy, 0}}
	for _, εp := range StrainGrid() {
		curve = coalesce(curve, CurvePoint{round(o.Stress(εp, T)), εp})
	}
	err = curve.Check()
	return
}

func (o *JohnsonCook) check() error {
	if !(o.A > 0) {
		return matErr("Johnson-Cook A=%g must be positive", o.A)
	}
	if o.B < 0 {
		return matErr("Johnson-Cook B=%g must not be negative", o.B)
	}
	if !(o.N > 0) {
		return matErr("Johnson-Cook n=%g must be positive", o.N)
	}
	if o.M < 0 {
		return matErr("Johnson-Cook m=%g must not be negative", o.M)
	}
	if o.Tm < o.Tt {
		return matErr("melting temperature Tm=%g is below transition temperature Tt=%g", o.Tm, o.Tt)
	}
	return nil
}

// JohnsonCookDamageInitiation returns the closed-form Johnson-Cook fracture strain record
func JohnsonCookDamageInitiation(d1, d2, d3, d4, d5, Tm, Tt, Sr float64) (o *JohnsonCookDamage, err error) {
	o = &JohnsonCookDamage{d1, d2, d3, d4, d5, Tm, Tt, Sr}
	if err = o.check(); err != nil {
		return nil, err
	}
	return
}

// Init initialises model
func (o *JohnsonCookDamage) Init(prms dbf.Params) (err error) {
	o.Sr = 1
	for _, p := range prms {
		switch p.N {
		case "d1":
			o.D1 = p.V
		case "d2":
			o.D2 = p.V
		case "d3":
			o.D3 = p.V
		case "d4":
			o.D4 = p.V
		case "d5":
			o.D5 = p.V
		case "Tm":
			o.Tm = p.V
		case "Tt":
			o.Tt = p.V
		case "Sr":
			o.Sr = p.V
		default:
			return unknownPrm("jcdamage", p.N)
		}
	}
	return o.check()
}

// GetPrms gets (an example) of parameters
func (o JohnsonCookDamage) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "d1", V: 1.1},
		&dbf.P{N: "d2", V: 0.1},
		&dbf.P{N: "d3", V: -0.5},
		&dbf.P{N: "d4", V: 0},
		&dbf.P{N: "d5", V: 0},
		&dbf.P{N: "Tm", V: 0},
		&dbf.P{N: "Tt", V: 0},
		&dbf.P{N: "Sr", V: 1},
	}
}

// FractureStrain computes the equivalent plastic strain at damage initiation
//  η    -- stress triaxiality
//  rate -- equivalent plastic strain rate
//  T    -- temperature
func (o *JohnsonCookDamage) FractureStrain(η, rate, T float64) float64 {
	εf := o.D1 + o.D2*math.Exp(o.D3*η)
	if rate > o.Sr {
		εf *= 1 + o.D4*math.Log(rate/o.Sr)
	}
	return εf * (1 + o.D5*homologous(T, o.Tm, o.Tt))
}

func (o *JohnsonCookDamage) check() error {
	if !(o.Sr > 0) {
		return matErr("reference strain rate Sr=%g must be positive", o.Sr)
	}
	if o.Tm < o.Tt {
		return matErr("melting temperature Tm=%g is below transition temperature Tt=%g", o.Tm, o.Tt)
	}
	if o.FractureStrain(0, o.Sr, o.Tt) <= 0 {
		return matErr("Johnson-Cook fracture strain at zero triaxiality is not positive: d1=%g d2=%g", o.D1, o.D2)
	}
	return nil
}

// homologous returns the homologous temperature T* clipped to [0,1]; zero when Tm == Tt
func homologous(T, Tm, Tt float64) float64 {
	if Tm <= Tt || T <= Tt {
		return 0
	}
	if T >= Tm {
		return 1
	}
	return (T - Tt) / (Tm - Tt)
}
