// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements the material laws handed to the explicit solver
/*
 *             |  parameters                  |  output
 *  ===========================================================================
 *   elastic   |  E, nu, rho                  |  record
 *   powerlaw  |  sY, E, n                    |  tabulated (σ, εp) curve
 *   jc        |  A, B, n, m, Tm, Tt          |  record (closed form)
 *   jcdamage  |  d1..d5, Tm, Tt, Sr          |  record (closed form)
 *   damevol   |  kc, uts, E, nu              |  critical displacement
 */
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for material models
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
}

// Hardening defines models that can be converted into a tabulated hardening curve
type Hardening interface {
	Model
	Curve() (Curve, error)
}

// MaterialError reports invalid physical constants
type MaterialError struct {
	Msg string
}

func (o *MaterialError) Error() string { return "material: " + o.Msg }

func matErr(msg string, prm ...interface{}) error {
	return &MaterialError{io.Sf(msg, prm...)}
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// unknownPrm returns the error for parameters a model does not recognise
func unknownPrm(model, name string) error {
	return matErr("%s: parameter named %q is invalid", model, name)
}
