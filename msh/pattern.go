// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/PeterMollmann/ABAQUS-Scratch-model/geo"

// Line is a partition line on the top face; points are (x,z) pairs
type Line struct {
	P [2]float64 `json:"p"`
	Q [2]float64 `json:"q"`
}

// RoofBlock holds one roof-style partition block: a rectangle split by a slanted line from a
// corner to the centre, a line from the inner edge to the centre and a line from the centre to
// the far side
type RoofBlock struct {
	X1    float64 `json:"x1"`
	X2    float64 `json:"x2"`
	Z1    float64 `json:"z1"`
	Z2    float64 `json:"z2"`
	Flip  bool    `json:"flip"` // orientation reversed along z
	Lines []Line  `json:"lines"`
}

// RoofPattern lays out roof-style partition blocks of size 2·sizeX × 2·sizeZ on the top face,
// beside the track-width plane and along the scratch span. Consecutive blocks alternate their
// orientation so that transition elements do not line up.
func RoofPattern(b *geo.Block, trk *geo.Track, sizeX, sizeZ float64) (blocks []RoofBlock, err error) {
	if !(sizeX > 0 && sizeZ > 0) {
		return nil, zoneErr("roof pattern sizes must be positive. sizeX=%g sizeZ=%g", sizeX, sizeZ)
	}
	t := trk.Segment(b, geo.X)
	if t < 0 {
		return nil, zoneErr("scratch track lies outside the block along x")
	}
	x1 := b.Segments(geo.X)[t].B
	x2 := x1 + 2*sizeX
	if x2 > b.Extents.Max[geo.X]+1e-12 {
		return nil, zoneErr("roof pattern does not fit beside the track: x2=%g > %g", x2, b.Extents.Max[geo.X])
	}
	n := int((trk.Length() / sizeZ) / 2)
	for i := 0; i < n; i++ {
		z1 := trk.Z0 + float64(i)*2*sizeZ
		z2 := z1 + 2*sizeZ
		flip := i%2 == 1
		if flip {
			z1, z2 = z2, z1
		}
		blocks = append(blocks, roofBlock(x1, x2, z1, z2, flip))
	}
	return
}

func roofBlock(x1, x2, z1, z2 float64, flip bool) RoofBlock {
	xm, zm := (x1+x2)/2, (z1+z2)/2
	return RoofBlock{
		X1: x1, X2: x2, Z1: z1, Z2: z2, Flip: flip,
		Lines: []Line{
			{[2]float64{x2, z1}, [2]float64{xm, zm}},
			{[2]float64{x1, zm}, [2]float64{xm, zm}},
			{[2]float64{xm, zm}, [2]float64{xm, z2}},
		},
	}
}
