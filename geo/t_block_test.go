// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func defaultExtents() BlockExtents {
	return BlockExtents{Min: [3]float64{0, 0, 0}, Max: [3]float64{0.96, 0.8, 3.0}}
}

func Test_block01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("block01. scratch layout")

	b, trk, err := ScratchLayout(defaultExtents(), 2.0, LayoutOptions{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "nsegs x", len(b.Segments(X)), 2)
	chk.Int(tst, "nsegs y", len(b.Segments(Y)), 1)
	chk.Int(tst, "nsegs z", len(b.Segments(Z)), 3)
	chk.Float64(tst, "track-width", 1e-15, b.Segments(X)[0].B, 0.48)
	chk.Float64(tst, "track-start", 1e-15, b.Segments(Z)[1].A, 0.5)
	chk.Float64(tst, "track-end", 1e-15, b.Segments(Z)[1].B, 2.5)
	chk.String(tst, b.Segments(Z)[1].LoCut, PlaneStart)
	chk.String(tst, b.Segments(Z)[1].HiCut, PlaneEnd)
	chk.Float64(tst, "track length", 1e-15, trk.Length(), 2.0)
	chk.Int(tst, "track seg x", trk.Segment(b, X), 0)
	chk.Int(tst, "track seg y", trk.Segment(b, Y), 0)
	chk.Int(tst, "track seg z", trk.Segment(b, Z), 1)

	// zones tile the block
	zones := b.Zones()
	chk.Int(tst, "nzones", len(zones), 6)
	vol := 0.0
	for _, z := range zones {
		io.Pforan("%s : %v → %v\n", z.ID, z.Min, z.Max)
		vol += z.Volume()
	}
	chk.Float64(tst, "volume", 1e-14, vol, b.Volume())
	chk.String(tst, zones[1].ID, "x1y0z0")
}

func Test_block02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("block02. depth partition and regions")

	p, err := BuildSphericalConicalProfile(0.2, 60)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	b, _, err := ScratchLayout(defaultExtents(), 2.0, LayoutOptions{DepthOffset: 0.2})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "nsegs y", len(b.Segments(Y)), 2)
	chk.Float64(tst, "depth plane", 1e-15, b.Segments(Y)[1].A, 0.6)

	reg := NewRegionSet(b, p)
	for _, name := range []string{RegBottom, RegTrack, RegIndenterRP, "edge.x1", "edge.y1", "edge.z2", "zone.x1y1z2"} {
		if !reg.Has(name) {
			tst.Errorf("region %q is missing\n", name)
		}
	}
	if reg.Has(RegFlank) {
		tst.Errorf("spherical indenter must not have flank edges\n")
	}
}

func Test_block03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("block03. invalid planes")

	ext := defaultExtents()
	bad := [][]PartitionPlane{
		{{"a", X, 0}},
		{{"a", X, 0.96}},
		{{"a", Z, 3.5}},
		{{"a", Y, 0.2}, {"a", Y, 0.3}},
		{{"a", Y, 0.2}, {"b", Y, 0.2}},
	}
	for i, planes := range bad {
		_, err := NewBlock(ext, planes...)
		var gerr *GeometryError
		if !errors.As(err, &gerr) {
			tst.Errorf("case %d should have failed with GeometryError. err=%v\n", i, err)
		}
	}
	if _, _, err := ScratchLayout(ext, 3.0, LayoutOptions{}); err == nil {
		tst.Errorf("scratch longer than the block should have failed\n")
	}

	// planes are only checked when the block is built
	planes, trk, err := LayoutPlanes(ext, 2.0, LayoutOptions{DepthOffset: 0.8})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "nplanes", len(planes), 4)
	chk.Float64(tst, "depth plane", 1e-15, planes[3].Offset, 0)
	chk.Float64(tst, "track z0", 1e-15, trk.Z0, 0.5)
	if _, err = NewBlock(ext, planes...); err == nil {
		tst.Errorf("plane on the bottom face should have failed\n")
	}
	if _, _, err = LayoutPlanes(BlockExtents{Max: [3]float64{1, 0, 3}}, 2.0, LayoutOptions{}); err == nil {
		tst.Errorf("degenerate extents should have failed\n")
	}
}
