// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the reduction of raw solver results into tables and plots
package out

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

// constants
var (
	TolT = 1e-12 // relative tolerance to compare times
)

// Series holds one time series
type Series struct {
	T []float64 `json:"t"` // stage-local times
	V []float64 `json:"v"` // values
}

// Region maps variable names (e.g. "RF1", "ALLIE") to time series
type Region map[string]Series

// Node holds the label and undeformed coordinates of a node
type Node struct {
	Label int    `json:"label"`
	X     r3.Vec `json:"x"`
}

// Handle is the query surface of raw solver results
type Handle interface {
	Stages() []string                                            // stage names; order is not guaranteed
	HistoryRegion(stage, region string) (Region, bool)           // history output of a region during a stage
	FinalDisplacementField(nodeSet string) (map[int]r3.Vec, bool) // displacements at the last frame of the last stage
	NodeSet(name string) ([]Node, bool)                          // nodes of a set; may contain repeated labels
}

// MemHandle holds results in memory. It is also the format of results exported by the
// solver-side extraction script.
type MemHandle struct {
	StageNames    []string                     `json:"stages"`
	History       map[string]map[string]Region `json:"history"`       // stage => region => variables
	Displacements map[string]map[int]r3.Vec    `json:"displacements"` // node set => label => u
	NodeSets      map[string][]Node            `json:"nodesets"`
}

// NewMemHandle returns an empty handle
func NewMemHandle() *MemHandle {
	return &MemHandle{
		History:       make(map[string]map[string]Region),
		Displacements: make(map[string]map[int]r3.Vec),
		NodeSets:      make(map[string][]Node),
	}
}

// ReadHandle reads results from a JSON file
func ReadHandle(path string) (o *MemHandle, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read results file %q:\n%v", path, err)
	}
	o = NewMemHandle()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode results file %q:\n%v", path, err)
	}
	return
}

// SetHistory sets the time series of variable key of region during stage
func (o *MemHandle) SetHistory(stage, region, key string, t, v []float64) {
	if o.History[stage] == nil {
		o.History[stage] = make(map[string]Region)
		o.StageNames = append(o.StageNames, stage)
	}
	if o.History[stage][region] == nil {
		o.History[stage][region] = make(Region)
	}
	o.History[stage][region][key] = Series{t, v}
}

// Stages returns the stage names in insertion order
func (o *MemHandle) Stages() []string { return o.StageNames }

// HistoryRegion returns the variables of region during stage
func (o *MemHandle) HistoryRegion(stage, region string) (Region, bool) {
	r, ok := o.History[stage][region]
	return r, ok
}

// FinalDisplacementField returns the final displacements of the nodes in a set
func (o *MemHandle) FinalDisplacementField(nodeSet string) (map[int]r3.Vec, bool) {
	u, ok := o.Displacements[nodeSet]
	return u, ok
}

// NodeSet returns the nodes of a set
func (o *MemHandle) NodeSet(name string) ([]Node, bool) {
	n, ok := o.NodeSets[name]
	return n, ok
}
