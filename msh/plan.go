// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// ZoningError reports an inconsistent or out-of-range partition or sizing request
type ZoningError struct {
	Msg string
}

func (o *ZoningError) Error() string { return "zoning: " + o.Msg }

func zoneErr(msg string, prm ...interface{}) error {
	return &ZoningError{io.Sf(msg, prm...)}
}

// CheckPlanes checks that every partition offset lies strictly inside the block extents
func CheckPlanes(ext geo.BlockExtents, planes []geo.PartitionPlane) error {
	for _, p := range planes {
		if p.Axis < geo.X || p.Axis > geo.Z {
			return zoneErr("partition plane %q has invalid axis %d", p.Name, int(p.Axis))
		}
		if !ext.Inside(p.Axis, p.Offset) {
			return zoneErr("partition plane %q at %v=%g is not strictly inside [%g,%g]",
				p.Name, p.Axis, p.Offset, ext.Min[p.Axis], ext.Max[p.Axis])
		}
	}
	return nil
}

// Targets holds the target element sizes per axis
type Targets struct {
	Fine        [3]float64 `json:"fine"`        // size along the track
	Coarse      [3]float64 `json:"coarse"`      // size far from the track
	IndenterMin float64    `json:"indentermin"` // discrete indenters: size at the tip
	IndenterMax float64    `json:"indentermax"` // discrete indenters: size at the base
}

// SetDefault sets the sizes used for the canonical scratch model
func (o *Targets) SetDefault() {
	o.Fine = [3]float64{0.04, 0.04, 0.04}
	o.Coarse = [3]float64{0.3, 0.3, 0.15}
	o.IndenterMin = 0.0025
	o.IndenterMax = 0.025
}

// Options holds options for the planner
type Options struct {
	Tol       float64 `json:"tol"`       // relative tolerance at shared zone boundaries [default=1e-6]
	Shape     string  `json:"shape"`     // element shape: "hex" or "tet" [default=hex]
	Technique string  `json:"technique"` // "structured", "sweep" or "free" [default=structured]
	ElemCode  string  `json:"elemcode"`  // solver element code [default=C3D8R]
	Roof      bool    `json:"roof"`      // add roof-style partitions beside the track
}

// SetDefault sets default values
func (o *Options) SetDefault() {
	if o.Tol <= 0 {
		o.Tol = 1e-6
	}
	if o.Shape == "" {
		o.Shape = "hex"
	}
	if o.Technique == "" {
		o.Technique = "structured"
		if o.Shape == "tet" {
			o.Technique = "free"
		}
	}
	if o.ElemCode == "" {
		o.ElemCode = "C3D8R"
		if o.Shape == "tet" {
			o.ElemCode = "C3D10M"
		}
	}
}

// EdgeSeed attaches a sizing rule to a named edge region
type EdgeSeed struct {
	Region string     `json:"region"` // e.g. "edge.x0" or "indenter.flank"
	Axis   geo.Axis   `json:"axis"`   // axis of block edges
	Seg    int        `json:"seg"`    // segment index; -1 if not a block edge
	A      float64    `json:"a"`      // coordinate of End1
	B      float64    `json:"b"`      // coordinate of End2
	Rule   SizingRule `json:"rule"`
}

// ZoneHint holds meshing hints for one zone
type ZoneHint struct {
	Zone      string `json:"zone"`
	Shape     string `json:"shape"`
	Technique string `json:"technique"`
	ElemCode  string `json:"elemcode"`
	Track     bool   `json:"track"` // zone contains the scratch track
}

// Plan holds the mesh-density plan
type Plan struct {
	Edges    []EdgeSeed  `json:"edges"`
	Zones    []ZoneHint  `json:"zones"`
	Roof     []RoofBlock `json:"roof,omitempty"`
	Tol      float64     `json:"tol"`
	Warnings []string    `json:"warnings,omitempty"`
}

// NewPlan computes the mesh plan of a partitioned block
//  Along each axis:
//   track segment        -- Uniform(fine)
//   neighbour segments   -- Biased(fine, coarse) with smallest elements toward the track
//   remaining segments   -- Uniform(coarse)
//  prof is only used to seed discrete (pyramidal) indenters and may be nil
func NewPlan(b *geo.Block, trk *geo.Track, prof *geo.Profile, tg Targets, opt Options) (o *Plan, err error) {

	// check targets
	opt.SetDefault()
	for _, a := range geo.Axes {
		if !(tg.Fine[a] > 0 && tg.Coarse[a] > 0) {
			return nil, zoneErr("sizes along %v must be positive. fine=%g coarse=%g", a, tg.Fine[a], tg.Coarse[a])
		}
		if tg.Fine[a] > tg.Coarse[a] {
			return nil, zoneErr("fine size %g exceeds coarse size %g along %v", tg.Fine[a], tg.Coarse[a], a)
		}
	}
	if err = CheckPlanes(b.Extents, b.Planes); err != nil {
		return nil, err
	}
	o = &Plan{Tol: opt.Tol}

	// block edges
	var tseg [3]int
	for _, a := range geo.Axes {
		segs := b.Segments(a)
		t := trk.Segment(b, a)
		if t < 0 {
			return nil, zoneErr("scratch track lies outside the block along %v", a)
		}
		tseg[a] = t
		fine, coarse := tg.Fine[a], tg.Coarse[a]
		if segs[t].Len() < fine {
			o.warn("track segment %s is shorter (%g) than the fine size %g", segs[t].ID(), segs[t].Len(), fine)
		}
		reached := [2]float64{coarse, coarse} // below and above the track
		for i, s := range segs {
			var rule SizingRule
			side := 0
			if i > t {
				side = 1
			}
			switch {
			case i == t:
				rule = Uniform(fine)
			case i == t-1 || i == t+1:
				toward := End2
				if i > t {
					toward = End1
				}
				max := coarse
				if s.Len() < max {
					max = utl.Max(s.Len(), fine)
					o.warn("segment %s is shorter (%g) than the coarse size %g; bias clamped to %g", s.ID(), s.Len(), coarse, max)
				}
				reached[side] = max
				rule = Biased(fine, max, toward)
			default:
				rule = Uniform(reached[side])
			}
			o.Edges = append(o.Edges, EdgeSeed{geo.EdgeName(s.ID()), a, i, s.A, s.B, rule})
		}
	}

	// indenter edges
	if prof != nil && prof.Kind == geo.Pyramidal {
		if !(tg.IndenterMin > 0) || tg.IndenterMin > tg.IndenterMax {
			return nil, zoneErr("indenter sizes must satisfy 0 < min ≤ max. min=%g max=%g", tg.IndenterMin, tg.IndenterMax)
		}
		L := math.Hypot(prof.HalfWidth, prof.Height())
		o.Edges = append(o.Edges, EdgeSeed{geo.RegFlank, geo.Y, -1, 0, L, Biased(tg.IndenterMin, tg.IndenterMax, End1)})
	}

	// zones
	for _, z := range b.Zones() {
		o.Zones = append(o.Zones, ZoneHint{
			Zone:      "zone." + z.ID,
			Shape:     opt.Shape,
			Technique: opt.Technique,
			ElemCode:  opt.ElemCode,
			Track:     z.Seg[geo.X] == tseg[geo.X] && z.Seg[geo.Y] == tseg[geo.Y] && z.Seg[geo.Z] == tseg[geo.Z],
		})
	}

	// roof partitions
	if opt.Roof {
		o.Roof, err = RoofPattern(b, trk, tg.Fine[geo.X], tg.Fine[geo.Z])
		if err != nil {
			return nil, err
		}
	}

	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks every rule and the continuity of element sizes at each boundary shared by two
// adjacent segments
func (o *Plan) Validate() error {
	for _, a := range geo.Axes {
		var prev *EdgeSeed
		for i := range o.Edges {
			e := &o.Edges[i]
			if e.Seg < 0 || e.Axis != a {
				continue
			}
			if err := e.Rule.Validate(); err != nil {
				return zoneErr("%s: %v", e.Region, err)
			}
			if prev != nil {
				if math.Abs(prev.B-e.A) > 1e-12 || e.Seg != prev.Seg+1 {
					return zoneErr("edge regions %s and %s are not contiguous", prev.Region, e.Region)
				}
				s1, s2 := prev.Rule.SizeAt(End2), e.Rule.SizeAt(End1)
				if utl.Max(s1, s2)/utl.Min(s1, s2)-1 > o.Tol {
					return zoneErr("element size jumps from %g (%s) to %g (%s) at %v=%g",
						s1, prev.Region, s2, e.Region, a, e.A)
				}
			}
			prev = e
		}
	}
	for _, e := range o.Edges {
		if e.Seg < 0 {
			if err := e.Rule.Validate(); err != nil {
				return zoneErr("%s: %v", e.Region, err)
			}
		}
	}
	return nil
}

// Rule returns the sizing rule of an edge region
func (o *Plan) Rule(region string) (rule SizingRule, ok bool) {
	for _, e := range o.Edges {
		if e.Region == region {
			return e.Rule, true
		}
	}
	return
}

// Set returns a copy of the plan with the rule of region replaced. The copy is validated.
func (o *Plan) Set(region string, rule SizingRule) (*Plan, error) {
	p := *o
	p.Edges = append([]EdgeSeed{}, o.Edges...)
	found := false
	for i := range p.Edges {
		if p.Edges[i].Region == region {
			p.Edges[i].Rule = rule
			found = true
		}
	}
	if !found {
		return nil, zoneErr("edge region %q is not in the plan", region)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Regions returns the names of all regions referenced by the plan
func (o *Plan) Regions() (names []string) {
	for _, e := range o.Edges {
		names = append(names, e.Region)
	}
	for _, z := range o.Zones {
		names = append(names, z.Zone)
	}
	return
}

// ElementCount estimates the number of substrate elements of a structured mesh
func (o *Plan) ElementCount() int {
	n := [3]int{}
	for _, e := range o.Edges {
		if e.Seg >= 0 {
			n[e.Axis] += e.Rule.NumElems(e.B - e.A)
		}
	}
	return n[0] * n[1] * n[2]
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func (o *Plan) warn(msg string, prm ...interface{}) {
	o.Warnings = append(o.Warnings, io.Sf(msg, prm...))
}
