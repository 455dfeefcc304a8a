// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"sync"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/inp"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Result holds the outcome of one run of a sweep
type Result struct {
	Index int                     // index of parameters in the sweep
	Key   string                  // simulation key
	Spec  *inp.ModelSpecification // nil if the specification could not be built
	Table *out.Table              // nil if the run failed
	Err   error                   // SpecificationError, SolverFailure or ReductionError
}

// SweepData holds the options of a sweep
type SweepData struct {
	Slots   int  `json:"slots"`   // solver runs at the same time (licensed compute slots) [default=1]
	Workers int  `json:"workers"` // runs being built, solved or reduced at the same time [default=2*Slots]
	Verbose bool `json:"verbose"` // show messages
}

// Sweep runs one simulation per parameter set. Specifications are built and results reduced
// concurrently while at most Slots solver runs are in progress. Failures of single runs are
// handed to sink in Result.Err and do not stop the sweep; an error returned by sink or the
// cancellation of ctx does. sink is never called concurrently.
func Sweep(ctx context.Context, params []*inp.Params, solver Solver, sd SweepData, sink func(*Result) error) error {

	// options
	if sd.Slots < 1 {
		sd.Slots = 1
	}
	if sd.Workers < sd.Slots {
		sd.Workers = 2 * sd.Slots
	}
	if sink == nil {
		return chk.Err("sink function is required")
	}

	// run
	slots := semaphore.NewWeighted(int64(sd.Slots))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sd.Workers)
	for i, p := range params {
		i, p := i, p
		g.Go(func() error {
			res := &Result{Index: i, Key: p.Key}

			// build
			m, err := NewMain(p, solver, false)
			if err != nil {
				res.Err = err
			} else {
				res.Spec = m.Spec

				// solve and reduce
				if err = slots.Acquire(ctx, 1); err != nil {
					return err
				}
				sol, err := solver.Solve(ctx, m.Spec)
				slots.Release(1)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					res.Err = err
				} else {
					res.Table, res.Err = m.Reducer.Reduce(sol.Results, sol.StatusLog)
				}
			}
			if sd.Verbose {
				if res.Err == nil {
					io.PfGreen("> %s: success\n", res.Key)
				} else {
					io.PfRed("> %s: %v\n", res.Key, res.Err)
				}
			}

			// report
			mu.Lock()
			defer mu.Unlock()
			return sink(res)
		})
	}
	return g.Wait()
}
