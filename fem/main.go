// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem drives scratch simulations: it builds the specification, hands it to the solver
// and reduces the results
package fem

import (
	"context"
	"time"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/inp"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/out"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for one scratch simulation
type Main struct {
	Spec    *inp.ModelSpecification // specification
	Reducer *out.Reducer            // reducer of the results of Spec
	Solver  Solver                  // external solver
	ShowMsg bool                    // show messages
}

// NewMain builds the specification of p and returns a new Main structure
func NewMain(p *inp.Params, solver Solver, verbose bool) (o *Main, err error) {
	o = &Main{Solver: solver, ShowMsg: verbose}
	o.Spec, err = inp.Build(p)
	if err != nil {
		return nil, err
	}
	o.Reducer = out.NewReducer(o.Spec)
	if o.ShowMsg {
		io.Pf("> Specification %q built\n", o.Spec.Key)
		io.Pf("> Material: %v\n", o.Spec.Material)
		io.Pf("> Stages: %v (total = %g)\n", o.Spec.Stages.Names(), o.Spec.Stages.Total())
		io.Pf("> Estimated number of elements = %d\n", o.Spec.Mesh.ElementCount())
		for _, w := range o.Spec.Mesh.Warnings {
			io.Pforan("> mesh plan: %s\n", w)
		}
	}
	return
}

// Run submits the specification to the solver, waits for completion and reduces the results
func (o *Main) Run(ctx context.Context) (tab *out.Table, err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// solve
	if o.ShowMsg {
		io.Pf("> Running solver\n")
	}
	res, err := o.Solver.Solve(ctx, o.Spec)
	if err != nil {
		return
	}

	// reduce
	if o.ShowMsg {
		io.Pf("> Reducing results\n")
	}
	tab, err = o.Reducer.Reduce(res.Results, res.StatusLog)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pfcyan("> Wall-clock time = %g s\n", tab.Wallclock)
		for _, w := range tab.Warnings {
			io.Pforan("> reduction: %s\n", w)
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
