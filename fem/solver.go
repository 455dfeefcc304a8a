// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/inp"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Outcome holds the results of a successful solver run
type Outcome struct {
	Results   out.Handle // raw results
	StatusLog string     // contents of the status log
}

// SolverFailure reports a solver run that did not complete
type SolverFailure struct {
	ExitCode int    // -1 if the run was cancelled or timed out
	LogTail  string // last lines of the solver output
}

func (o *SolverFailure) Error() string {
	return io.Sf("solver failed with exit code %d:\n%s", o.ExitCode, o.LogTail)
}

// Solver runs one simulation. Solve blocks until the run completes or ctx is done.
type Solver interface {
	Solve(ctx context.Context, spec *inp.ModelSpecification) (*Outcome, error)
}

// SolverData holds the configuration of solvers
type SolverData struct {
	Type    string   `json:"type"`    // "command" or "replay"
	Command string   `json:"command"` // command: executable
	Args    []string `json:"args"`    // command: arguments given before the specification file
	DirWork string   `json:"dirwork"` // directory with specification, results and status log files
	Tail    int      `json:"tail"`    // number of output lines kept on failure [default=20]
	Results string   `json:"results"` // replay: results file [default=<dirwork>/<key>_results.json]
	Status  string   `json:"status"`  // replay: status log [default=<dirwork>/<key>.sta]
}

// NewSolver returns the solver of type sd.Type
func NewSolver(sd SolverData) (Solver, error) {
	if sd.Tail < 1 {
		sd.Tail = 20
	}
	if alloc, ok := allocators[sd.Type]; ok {
		return alloc(sd), nil
	}
	return nil, chk.Err("cannot find solver type named %q", sd.Type)
}

// allocators holds all available solvers
var allocators = map[string]func(sd SolverData) Solver{
	"command": func(sd SolverData) Solver { return &CommandSolver{sd} },
	"replay":  func(sd SolverData) Solver { return &ReplaySolver{sd.DirWork, sd.Results, sd.Status} },
}

// file names of one run
func specPath(dir, key string) string    { return filepath.Join(dir, key+".spec.json") }
func resultsPath(dir, key string) string { return filepath.Join(dir, key+"_results.json") }
func statusPath(dir, key string) string  { return filepath.Join(dir, key+".sta") }

// CommandSolver runs an external program with the specification file as last argument. The
// program must write <key>_results.json and <key>.sta next to the specification.
type CommandSolver struct {
	SolverData
}

// Solve runs the external program
func (o *CommandSolver) Solve(ctx context.Context, spec *inp.ModelSpecification) (*Outcome, error) {

	// specification file
	var buf bytes.Buffer
	if err := spec.Encode(&buf, "json"); err != nil {
		return nil, chk.Err("cannot encode specification %q: %v", spec.Key, err)
	}
	if err := os.MkdirAll(o.DirWork, 0777); err != nil {
		return nil, chk.Err("cannot create work directory: %v", err)
	}
	if err := os.WriteFile(specPath(o.DirWork, spec.Key), buf.Bytes(), 0644); err != nil {
		return nil, chk.Err("cannot write specification %q: %v", spec.Key, err)
	}

	// run
	var output bytes.Buffer
	args := append(append([]string{}, o.Args...), specPath(o.DirWork, spec.Key))
	cmd := exec.CommandContext(ctx, o.Command, args...)
	cmd.Dir = o.DirWork
	cmd.Stdout = &output
	cmd.Stderr = &output
	err := cmd.Run()
	if err != nil {
		code := -1
		var xerr *exec.ExitError
		if errors.As(err, &xerr) && ctx.Err() == nil {
			code = xerr.ExitCode()
		}
		tail := tailLines(output.String(), o.Tail)
		if tail == "" {
			tail = err.Error()
		}
		return nil, &SolverFailure{code, tail}
	}
	return readOutcome(resultsPath(o.DirWork, spec.Key), statusPath(o.DirWork, spec.Key))
}

// ReplaySolver returns results written by an earlier run; it does not run anything
type ReplaySolver struct {
	DirWork string
	Results string // results file; empty => <DirWork>/<key>_results.json
	Status  string // status log; empty => <DirWork>/<key>.sta
}

// Solve reads the results of spec.Key
func (o *ReplaySolver) Solve(ctx context.Context, spec *inp.ModelSpecification) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, sta := o.Results, o.Status
	if res == "" {
		res = resultsPath(o.DirWork, spec.Key)
	}
	if sta == "" {
		sta = statusPath(o.DirWork, spec.Key)
	}
	return readOutcome(res, sta)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func readOutcome(results, status string) (*Outcome, error) {
	h, err := out.ReadHandle(results)
	if err != nil {
		return nil, err
	}
	sta, err := io.ReadFile(status)
	if err != nil {
		return nil, chk.Err("cannot read status log %q: %v", status, err)
	}
	return &Outcome{h, string(sta)}, nil
}

func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
