// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/fem"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/inp"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	resultspath := io.ArgToString(1, "")
	statuspath := io.ArgToString(2, "")
	verbose := io.ArgToBool(3, true)
	doplot := io.ArgToBool(4, false)

	// message
	if verbose {
		io.PfWhite("\nScratch -- scratch-test simulation builder and reducer\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"parameters file (json, toml or yaml)", "fnamepath", fnamepath,
			"results exported by the solver", "resultspath", resultspath,
			"status log of the solver", "statuspath", statuspath,
			"show messages", "verbose", verbose,
			"plot reduced results", "doplot", doplot,
		))
	}

	// parameters and specification
	p, err := inp.ReadParams(fnamepath)
	if err != nil {
		chk.Panic("cannot read parameters:\n%v", err)
	}
	solver, err := fem.NewSolver(fem.SolverData{Type: "replay", DirWork: p.DirOut, Results: resultspath, Status: statuspath})
	if err != nil {
		chk.Panic("%v", err)
	}
	analysis, err := fem.NewMain(p, solver, verbose)
	if err != nil {
		chk.Panic("cannot build specification:\n%v", err)
	}
	var buf bytes.Buffer
	if err = analysis.Spec.Encode(&buf, "json"); err != nil {
		chk.Panic("cannot encode specification:\n%v", err)
	}
	io.WriteFileVD(p.DirOut, p.Key+".spec.json", &buf)
	if resultspath == "" {
		return
	}

	// reduce
	tab, err := analysis.Run(context.Background())
	if err != nil {
		chk.Panic("cannot reduce results of %q:\n%v", resultspath, err)
	}
	tab.WriteFile(p.DirOut, p.Key)
	if err = tab.WriteXlsx(filepath.Join(p.DirOut, p.Key+"_reduced.xlsx")); err != nil {
		chk.Panic("%v", err)
	}
	if doplot {
		pd := &inp.PlotFdata{Ti: 0, Tf: analysis.Spec.Stages.Total()}
		analysis.Spec.Functions.PlotAll(pd, p.DirOut, p.Key)
		out.PlotForces(tab, p.DirOut, p.Key)
		out.PlotProfile(tab, p.DirOut, p.Key)
	}
}
