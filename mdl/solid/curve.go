// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Decimals is the precision of tabulated curves
const Decimals = 5

// CurvePoint holds one point of a hardening curve
type CurvePoint struct {
	Stress        float64 `json:"stress"`
	PlasticStrain float64 `json:"plasticstrain"`
}

// Curve holds a tabulated hardening curve starting at the yield point (σy, 0)
type Curve []CurvePoint

// Check checks that the curve starts at zero plastic strain and increases strictly in both
// coordinates
func (o Curve) Check() error {
	if len(o) < 2 {
		return matErr("hardening curve must have at least two points; got %d", len(o))
	}
	if o[0].PlasticStrain != 0 {
		return matErr("hardening curve must start at zero plastic strain; got %g", o[0].PlasticStrain)
	}
	for i := 1; i < len(o); i++ {
		if !(o[i].Stress > o[i-1].Stress && o[i].PlasticStrain > o[i-1].PlasticStrain) {
			return matErr("hardening curve is not strictly increasing at point %d: %v → %v", i, o[i-1], o[i])
		}
	}
	return nil
}

// Stresses returns the stress column
func (o Curve) Stresses() (σ []float64) {
	σ = make([]float64, len(o))
	for i, p := range o {
		σ[i] = p.Stress
	}
	return
}

// PlasticStrains returns the plastic strain column
func (o Curve) PlasticStrains() (εp []float64) {
	εp = make([]float64, len(o))
	for i, p := range o {
		εp[i] = p.PlasticStrain
	}
	return
}

// StrainGrid returns the ascending strain samples used to tabulate hardening laws; the grid is
// denser near yield and reaches 200% strain
func StrainGrid() (ε []float64) {
	ε = append(ε, utl.LinSpace(1e-4, 1e-3, 10)...)
	ε = append(ε, utl.LinSpace(2e-3, 1e-2, 9)...)
	ε = append(ε, utl.LinSpace(2e-2, 1e-1, 9)...)
	ε = append(ε, utl.LinSpace(0.15, 2.0, 38)...)
	for i := range ε {
		ε[i] = round(ε[i])
	}
	return
}

// coalesce appends p to curve only if it is strictly greater than the last point in both
// coordinates
func coalesce(curve Curve, p CurvePoint) Curve {
	last := curve[len(curve)-1]
	if p.Stress > last.Stress && p.PlasticStrain > last.PlasticStrain {
		return append(curve, p)
	}
	return curve
}

func round(x float64) float64 {
	s := math.Pow10(Decimals)
	return math.Round(x*s) / s
}
