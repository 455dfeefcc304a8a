// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"errors"
	"testing"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func defaultBlock(tst *testing.T) (*geo.Block, *geo.Track) {
	ext := geo.BlockExtents{Max: [3]float64{0.96, 0.8, 3.0}}
	b, trk, err := geo.ScratchLayout(ext, 2.0, geo.LayoutOptions{DepthOffset: 0.2})
	if err != nil {
		tst.Fatalf("cannot build block: %v\n", err)
	}
	return b, trk
}

func defaultTargets() (tg Targets) {
	tg.SetDefault()
	return
}

func Test_plan01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plan01. canonical plan")

	b, trk := defaultBlock(tst)
	p, err := NewPlan(b, trk, nil, defaultTargets(), Options{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, e := range p.Edges {
		io.Pforan("%-8s [%5.2f,%5.2f] %v\n", e.Region, e.A, e.B, e.Rule)
	}
	chk.Int(tst, "nedges", len(p.Edges), 7)
	chk.Int(tst, "nzones", len(p.Zones), 12)
	chk.Int(tst, "warnings", len(p.Warnings), 0)

	check := func(region string, correct SizingRule) {
		r, ok := p.Rule(region)
		if !ok {
			tst.Errorf("region %q is missing\n", region)
			return
		}
		if r != correct {
			tst.Errorf("%s: rule %v != %v\n", region, r, correct)
		}
	}
	check("edge.x0", Uniform(0.04))
	check("edge.x1", Biased(0.04, 0.3, End1))
	check("edge.y0", Biased(0.04, 0.3, End2))
	check("edge.y1", Uniform(0.04))
	check("edge.z0", Biased(0.04, 0.15, End2))
	check("edge.z1", Uniform(0.04))
	check("edge.z2", Biased(0.04, 0.15, End1))

	ntrack := 0
	for _, z := range p.Zones {
		if z.Track {
			ntrack++
			chk.String(tst, z.Zone, "zone.x0y1z1")
		}
		chk.String(tst, z.ElemCode, "C3D8R")
	}
	chk.Int(tst, "track zones", ntrack, 1)
	chk.Int(tst, "element count", p.ElementCount(), 16*10*62)
}

func Test_plan02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plan02. boundary continuity for many layouts")

	tg := defaultTargets()
	for _, lx := range []float64{0.6, 0.96, 2.0} {
		for _, frac := range []float64{0.1, 0.25, 0.5, 0.9} {
			for _, L := range []float64{0.5, 1.0, 2.0, 2.9} {
				for _, dy := range []float64{0, 0.05, 0.4} {
					ext := geo.BlockExtents{Max: [3]float64{lx, 0.8, 3.0}}
					b, trk, err := geo.ScratchLayout(ext, L, geo.LayoutOptions{WidthFraction: frac, DepthOffset: dy})
					if err != nil {
						tst.Errorf("layout failed: %v\n", err)
						return
					}
					p, err := NewPlan(b, trk, nil, tg, Options{})
					if err != nil {
						tst.Errorf("plan failed: lx=%g frac=%g L=%g dy=%g: %v\n", lx, frac, L, dy, err)
						return
					}
					assertContinuous(tst, p)
				}
			}
		}
	}

	// far segments receive the coarsest size
	ext := geo.BlockExtents{Max: [3]float64{0.96, 0.8, 3.0}}
	b, err := geo.NewBlock(ext,
		geo.PartitionPlane{Name: "w", Axis: geo.X, Offset: 0.48},
		geo.PartitionPlane{Name: "a", Axis: geo.Z, Offset: 0.2},
		geo.PartitionPlane{Name: "b", Axis: geo.Z, Offset: 0.45},
		geo.PartitionPlane{Name: "c", Axis: geo.Z, Offset: 2.5},
		geo.PartitionPlane{Name: "d", Axis: geo.Z, Offset: 2.8},
	)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	trk := &geo.Track{X0: 0, Y: 0.8, Z0: 0.5, Z1: 2.5}
	p, err := NewPlan(b, trk, nil, tg, Options{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("warnings = %v\n", p.Warnings)
	r0, _ := p.Rule("edge.z0")
	r1, _ := p.Rule("edge.z1")
	r2, _ := p.Rule("edge.z2")
	r4, _ := p.Rule("edge.z4")
	chk.Float64(tst, "z0 size", 1e-15, r0.Size, 0.15)
	chk.Float64(tst, "z4 size", 1e-15, r4.Size, 0.15)
	chk.Int(tst, "z1 kind", int(r1.Kind), int(KindBiased))
	chk.Int(tst, "z2 kind", int(r2.Kind), int(KindUniform))
	assertContinuous(tst, p)
}

func Test_plan03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plan03. clamped bias")

	ext := geo.BlockExtents{Max: [3]float64{0.96, 0.8, 3.0}}
	b, err := geo.NewBlock(ext,
		geo.PartitionPlane{Name: "w", Axis: geo.X, Offset: 0.48},
		geo.PartitionPlane{Name: "a", Axis: geo.Z, Offset: 0.4},
		geo.PartitionPlane{Name: "b", Axis: geo.Z, Offset: 0.5},
		geo.PartitionPlane{Name: "c", Axis: geo.Z, Offset: 2.5},
	)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	trk := &geo.Track{X0: 0, Y: 0.8, Z0: 0.5, Z1: 2.5}
	p, err := NewPlan(b, trk, nil, defaultTargets(), Options{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "warnings", len(p.Warnings), 1)
	r0, _ := p.Rule("edge.z0")
	r1, _ := p.Rule("edge.z1")
	chk.Float64(tst, "clamped max", 1e-15, r1.Max, 0.1)
	chk.Float64(tst, "far size", 1e-15, r0.Size, 0.1)
	assertContinuous(tst, p)
}

func Test_plan04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plan04. invalid requests")

	b, trk := defaultBlock(tst)

	tg := defaultTargets()
	tg.Fine[geo.Z] = 0.2
	_, err := NewPlan(b, trk, nil, tg, Options{})
	var zerr *ZoningError
	if !errors.As(err, &zerr) {
		tst.Errorf("fine > coarse should have failed with ZoningError. err=%v\n", err)
	}

	p, err := NewPlan(b, trk, nil, defaultTargets(), Options{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	_, err = p.Set("edge.z1", Uniform(0.08))
	if !errors.As(err, &zerr) {
		tst.Errorf("discontinuous rule should have failed with ZoningError. err=%v\n", err)
	}
	_, err = p.Set("edge.x1", Biased(0.3, 0.04, End1))
	if !errors.As(err, &zerr) {
		tst.Errorf("min > max should have failed with ZoningError. err=%v\n", err)
	}
	q, err := p.Set("edge.x1", Biased(0.04, 0.2, End1))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r, _ := p.Rule("edge.x1")
	chk.Float64(tst, "original untouched", 1e-15, r.Max, 0.3)
	r, _ = q.Rule("edge.x1")
	chk.Float64(tst, "new max", 1e-15, r.Max, 0.2)

	// partition offsets on the boundary or outside
	ext := b.Extents
	for _, pl := range []geo.PartitionPlane{
		{Name: geo.PlaneDepth, Axis: geo.Y, Offset: ext.Min[geo.Y]},
		{Name: geo.PlaneEnd, Axis: geo.Z, Offset: ext.Max[geo.Z] + 0.1},
	} {
		bad := &geo.Block{Extents: ext, Planes: append(append([]geo.PartitionPlane{}, b.Planes...), pl), Segs: b.Segs}
		_, err = NewPlan(bad, trk, nil, defaultTargets(), Options{})
		if !errors.As(err, &zerr) {
			tst.Errorf("plane %q at %g should have failed with ZoningError. err=%v\n", pl.Name, pl.Offset, err)
		}
		if err = CheckPlanes(ext, bad.Planes); err == nil {
			tst.Errorf("CheckPlanes should have failed for plane %q\n", pl.Name)
		}
	}
	if err = CheckPlanes(ext, b.Planes); err != nil {
		tst.Errorf("test failed: %v\n", err)
	}
}

func Test_plan05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plan05. pyramidal indenter and roof pattern")

	b, trk := defaultBlock(tst)
	prof, err := geo.BuildPyramidalProfile(0.4, -60)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	p, err := NewPlan(b, trk, prof, defaultTargets(), Options{Roof: true})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r, ok := p.Rule(geo.RegFlank)
	if !ok {
		tst.Errorf("flank seeds are missing\n")
		return
	}
	chk.Float64(tst, "flank min", 1e-15, r.Min, 0.0025)
	chk.Float64(tst, "flank max", 1e-15, r.Max, 0.025)

	chk.Int(tst, "roof blocks", len(p.Roof), 25)
	chk.Float64(tst, "roof x1", 1e-15, p.Roof[0].X1, 0.48)
	chk.Float64(tst, "roof x2", 1e-15, p.Roof[0].X2, 0.56)
	if p.Roof[0].Flip || !p.Roof[1].Flip {
		tst.Errorf("roof blocks must alternate their orientation\n")
	}
	chk.Float64(tst, "second z1", 1e-14, p.Roof[1].Z1, 0.66)
	chk.Float64(tst, "second z2", 1e-14, p.Roof[1].Z2, 0.58)
}

func Test_sizing01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sizing01. seeds")

	x := Uniform(0.04).Seeds(0.48)
	chk.Int(tst, "uniform nelems", len(x)-1, 12)
	chk.Float64(tst, "uniform last", 1e-15, x[12], 0.48)

	for _, toward := range []End{End1, End2} {
		r := Biased(0.04, 0.3, toward)
		x = r.Seeds(0.48)
		chk.Int(tst, "biased nelems", len(x)-1, 4)
		chk.Float64(tst, "biased last", 1e-15, x[4], 0.48)
		first, last := x[1]-x[0], x[4]-x[3]
		if toward == End1 && first >= last {
			tst.Errorf("elements must grow away from End1: %v\n", x)
		}
		if toward == End2 && first <= last {
			tst.Errorf("elements must grow away from End2: %v\n", x)
		}
		for i := 1; i < len(x); i++ {
			if x[i] <= x[i-1] {
				tst.Errorf("seeds must increase: %v\n", x)
				break
			}
		}
	}
	chk.Float64(tst, "ratio", 1e-15, Biased(0.04, 0.3, End1).Ratio(), 7.5)
	chk.Int(tst, "short edge", Biased(0.04, 0.3, End1).NumElems(0.03), 1)
}

// assertContinuous checks sizes at every shared boundary
func assertContinuous(tst *testing.T, p *Plan) {
	for _, a := range geo.Axes {
		var prev *EdgeSeed
		for i := range p.Edges {
			e := &p.Edges[i]
			if e.Seg < 0 || e.Axis != a {
				continue
			}
			if prev != nil {
				chk.Float64(tst, io.Sf("%s|%s", prev.Region, e.Region), 1e-15, prev.Rule.SizeAt(End2), e.Rule.SizeAt(End1))
				if e.Rule.Kind == KindBiased && e.Rule.Min > e.Rule.Max {
					tst.Errorf("%s: min > max\n", e.Region)
				}
			}
			prev = e
		}
	}
}
