// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/msh"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Build composes the geometry, mesh plan, material, schedule and output requests of one
// simulation and cross-validates them. All problems are collected into one SpecificationError.
// Build does not modify p and returns identical specifications for identical input.
func Build(p *Params) (o *ModelSpecification, err error) {

	var vs Violations
	p = p.Clone()
	o = &ModelSpecification{Key: p.Key, Desc: p.Desc, Params: p}

	// geometry
	o.Profile, err = p.Indenter.Profile()
	if err != nil {
		vs.Add("indenter", "%v", err)
	}
	ext := p.Block.Extents()
	planes, trk, err := geo.LayoutPlanes(ext, p.Schedule.Length, p.Block.Layout)
	if err != nil {
		vs.Add("block", "%v", err)
	} else if err = msh.CheckPlanes(ext, planes); err != nil {
		vs.Add("mesh", "%v", err)
	} else {
		o.Block, err = geo.NewBlock(ext, planes...)
		if err != nil {
			vs.Add("block", "%v", err)
		} else {
			o.Track = trk
		}
	}
	o.Regions = geo.NewRegionSet(o.Block, o.Profile)

	// mesh
	if o.Block != nil && o.Profile != nil {
		o.Mesh, err = msh.NewPlan(o.Block, o.Track, o.Profile, p.Mesh.Targets, p.Mesh.Options)
		if err != nil {
			vs.Add("mesh", "%v", err)
		} else {
			for _, name := range o.Mesh.Regions() {
				if !o.Regions.Has(name) {
					vs.Add("mesh", "region %q does not exist", name)
				}
			}
		}
	}

	// material
	o.Material = buildMaterial(&p.Material, &vs)

	// contact
	if !(p.Friction >= 0 && p.Friction <= 1) {
		vs.Add("friction", "coefficient %g must be in [0,1]", p.Friction)
	}
	o.Contact = Contact{
		Friction:    p.Friction,
		Formulation: "penalty",
		Normal:      "hard",
		Master:      geo.RegIndenter,
		Slave:       geo.RegTop,
	}

	// schedule
	if !(p.Schedule.Depth > 0) {
		vs.Add("schedule", "indentation depth %g must be positive", p.Schedule.Depth)
	}
	if o.Profile != nil && o.Profile.Kind == geo.Pyramidal && p.Schedule.Depth > o.Profile.Height() {
		vs.Add("schedule", "indentation depth %g exceeds the indenter height %g", p.Schedule.Depth, o.Profile.Height())
	}
	o.Stages, err = BuildSchedule(p.Schedule, o.Regions)
	if err != nil {
		vs.Add("schedule", "%v", err)
	} else {
		o.Functions = o.Stages.Functions()
	}

	// outputs
	o.Outputs = p.Outputs
	if len(o.Outputs) == 0 {
		o.Outputs = DefaultOutputs()
	}
	names := make(map[string]bool)
	for i, r := range o.Outputs {
		field := io.Sf("outputs[%d]", i)
		if r == nil {
			vs.Add(field, "output request is empty")
			continue
		}
		if names[r.Name] {
			vs.Add(field, "output name %q is repeated", r.Name)
		}
		names[r.Name] = true
		if r.Kind != HistoryOutput && r.Kind != FieldOutput {
			vs.Add(field, "kind %q is invalid; options are %q and %q", r.Kind, HistoryOutput, FieldOutput)
		}
		if !o.Regions.Has(r.Region) {
			vs.Add(field, "region %q does not exist", r.Region)
		}
		if len(r.Variables) == 0 {
			vs.Add(field, "no variables requested")
		}
	}

	// mass scaling
	o.MassScaling = p.MassScaling
	if o.MassScaling.Factor < 0 || o.MassScaling.TargetIncrement < 0 {
		vs.Add("massscaling", "factor %g and target increment %g must not be negative", o.MassScaling.Factor, o.MassScaling.TargetIncrement)
	} else if o.Material.Elastic != nil {
		le := utl.Min(p.Mesh.Targets.Fine[0], utl.Min(p.Mesh.Targets.Fine[1], p.Mesh.Targets.Fine[2]))
		if o.MassScaling.TargetIncrement > 0 {
			dt := o.Material.Elastic.StableIncrement(le, 1)
			o.MassScaling.Factor = math.Max(1, math.Pow(o.MassScaling.TargetIncrement/dt, 2))
		}
		o.MassScaling.StableIncrement = o.Material.Elastic.StableIncrement(le, o.MassScaling.Factor)
	}

	// results
	if len(vs) > 0 {
		return nil, &SpecificationError{vs}
	}
	return o, nil
}
