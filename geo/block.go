// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
)

// Axis defines a coordinate axis. X is across the track, Y is the height and Z is the
// scratch direction
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Axes holds all axes in order
var Axes = []Axis{X, Y, Z}

// String returns "x", "y" or "z"
func (o Axis) String() string {
	switch o {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return io.Sf("axis(%d)", int(o))
}

// BlockExtents holds the axis-aligned box of the substrate
type BlockExtents struct {
	Min [3]float64 `json:"min"` // x1, y1, z1
	Max [3]float64 `json:"max"` // x2, y2, z2
}

// Len returns the length of the block along axis a
func (o BlockExtents) Len(a Axis) float64 { return o.Max[a] - o.Min[a] }

// Check checks that the extents are not degenerate
func (o BlockExtents) Check() error {
	for _, a := range Axes {
		if !(o.Len(a) > 0) {
			return geomErr("block extents along %v are degenerate: [%g,%g]", a, o.Min[a], o.Max[a])
		}
	}
	return nil
}

// Inside tells whether coordinate c lies strictly inside the block along axis a
func (o BlockExtents) Inside(a Axis, c float64) bool { return c > o.Min[a] && c < o.Max[a] }

// PartitionPlane is a plane normal to Axis located at the absolute coordinate Offset
type PartitionPlane struct {
	Name   string  `json:"name"`
	Axis   Axis    `json:"axis"`
	Offset float64 `json:"offset"`
}

// Segment is the interval between two consecutive cuts along one axis
type Segment struct {
	Axis  Axis    `json:"axis"`
	Index int     `json:"index"`
	A     float64 `json:"a"`  // lower coordinate
	B     float64 `json:"b"`  // upper coordinate
	LoCut string  `json:"lo"` // name of plane at A; "min" at block boundary
	HiCut string  `json:"hi"` // name of plane at B; "max" at block boundary
}

// ID returns the stable identifier of the segment; e.g. "x0"
func (o Segment) ID() string { return io.Sf("%v%d", o.Axis, o.Index) }

// Len returns the length of the segment
func (o Segment) Len() float64 { return o.B - o.A }

// Zone is one cell of the partitioned block
type Zone struct {
	ID  string     `json:"id"`  // e.g. "x0y1z2"
	Seg [3]int     `json:"seg"` // segment index along each axis
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// Volume returns the volume of the zone
func (o Zone) Volume() float64 {
	return (o.Max[0] - o.Min[0]) * (o.Max[1] - o.Min[1]) * (o.Max[2] - o.Min[2])
}

// Block holds the substrate extents, its partition planes and the resulting segments
type Block struct {
	Extents BlockExtents     `json:"extents"`
	Planes  []PartitionPlane `json:"planes"`
	Segs    [3][]Segment     `json:"segs"`
}

// NewBlock returns a new partitioned block. Every plane must lie strictly inside the extents
// and planes along the same axis must not coincide.
func NewBlock(ext BlockExtents, planes ...PartitionPlane) (o *Block, err error) {
	if err = ext.Check(); err != nil {
		return nil, err
	}
	o = &Block{Extents: ext}
	names := make(map[string]bool)
	for _, p := range planes {
		if p.Axis < X || p.Axis > Z {
			return nil, geomErr("partition plane %q has invalid axis %d", p.Name, int(p.Axis))
		}
		if names[p.Name] {
			return nil, geomErr("partition plane %q is repeated", p.Name)
		}
		names[p.Name] = true
		if !ext.Inside(p.Axis, p.Offset) {
			return nil, geomErr("partition plane %q at %v=%g is not strictly inside [%g,%g]",
				p.Name, p.Axis, p.Offset, ext.Min[p.Axis], ext.Max[p.Axis])
		}
		o.Planes = append(o.Planes, p)
	}
	for _, a := range Axes {
		var cuts []PartitionPlane
		for _, p := range o.Planes {
			if p.Axis == a {
				cuts = append(cuts, p)
			}
		}
		sort.Slice(cuts, func(i, j int) bool { return cuts[i].Offset < cuts[j].Offset })
		lo, loName := ext.Min[a], "min"
		for _, c := range cuts {
			if math.Abs(c.Offset-lo) < 1e-12 {
				return nil, geomErr("partition plane %q coincides with %q", c.Name, loName)
			}
			o.Segs[a] = append(o.Segs[a], Segment{a, len(o.Segs[a]), lo, c.Offset, loName, c.Name})
			lo, loName = c.Offset, c.Name
		}
		o.Segs[a] = append(o.Segs[a], Segment{a, len(o.Segs[a]), lo, ext.Max[a], loName, "max"})
	}
	return
}

// Segments returns the ordered segments along axis a
func (o *Block) Segments(a Axis) []Segment { return o.Segs[a] }

// Locate returns the index of the segment containing coordinate c along axis a. Points on a cut
// belong to the lower segment, except at the lower block boundary. Returns -1 if outside.
func (o *Block) Locate(a Axis, c float64) int {
	for i, s := range o.Segs[a] {
		if c >= s.A && c <= s.B {
			return i
		}
	}
	return -1
}

// Zones returns all zones; x varies fastest
func (o *Block) Zones() (zones []Zone) {
	for k, sz := range o.Segs[Z] {
		for j, sy := range o.Segs[Y] {
			for i, sx := range o.Segs[X] {
				zones = append(zones, Zone{
					ID:  ZoneID(i, j, k),
					Seg: [3]int{i, j, k},
					Min: [3]float64{sx.A, sy.A, sz.A},
					Max: [3]float64{sx.B, sy.B, sz.B},
				})
			}
		}
	}
	return
}

// Volume returns the volume of the block
func (o *Block) Volume() float64 {
	return o.Extents.Len(X) * o.Extents.Len(Y) * o.Extents.Len(Z)
}

// ZoneID returns the identifier of the zone with segment indices i, j, k
func ZoneID(i, j, k int) string { return io.Sf("x%dy%dz%d", i, j, k) }

// Track holds the scratch path: the centre line x=X0 on the top face y=Y from z=Z0 to z=Z1
type Track struct {
	X0 float64 `json:"x0"`
	Y  float64 `json:"y"`
	Z0 float64 `json:"z0"`
	Z1 float64 `json:"z1"`
}

// Length returns the scratch length
func (o Track) Length() float64 { return o.Z1 - o.Z0 }

// Segment returns the index of the segment along axis a that contains the track
func (o Track) Segment(b *Block, a Axis) int {
	switch a {
	case X:
		return b.Locate(X, o.X0)
	case Y:
		return b.Locate(Y, o.Y)
	}
	return b.Locate(Z, (o.Z0+o.Z1)/2)
}

// LayoutOptions holds options to derive partition planes from the scratch path
type LayoutOptions struct {
	WidthFraction float64 `json:"widthfraction"` // position of track-width plane as a fraction of the block width [default=0.5]
	DepthOffset   float64 `json:"depthoffset"`   // distance of the optional track-depth plane below the top face; 0 => none
}

// names of partition planes created by ScratchLayout
const (
	PlaneWidth = "track-width"
	PlaneStart = "track-start"
	PlaneEnd   = "track-end"
	PlaneDepth = "track-depth"
)

// ScratchLayout partitions the block around a centred scratch path of the given length
// running along z on the top face, starting from the symmetry plane x=x1
func ScratchLayout(ext BlockExtents, length float64, opt LayoutOptions) (b *Block, trk *Track, err error) {
	planes, trk, err := LayoutPlanes(ext, length, opt)
	if err != nil {
		return nil, nil, err
	}
	b, err = NewBlock(ext, planes...)
	if err != nil {
		return nil, nil, err
	}
	return
}

// LayoutPlanes returns the partition planes and the track of ScratchLayout without building
// the block. Planes are not checked against the extents.
func LayoutPlanes(ext BlockExtents, length float64, opt LayoutOptions) (planes []PartitionPlane, trk *Track, err error) {
	if err = ext.Check(); err != nil {
		return
	}
	if !(length > 0) {
		return nil, nil, geomErr("scratch length=%g must be positive", length)
	}
	lz := ext.Len(Z)
	if length >= lz {
		return nil, nil, geomErr("scratch length=%g does not fit in block length %g", length, lz)
	}
	frac := opt.WidthFraction
	if frac == 0 {
		frac = 0.5
	}
	dpoz := (lz - length) / 2
	planes = []PartitionPlane{
		{PlaneWidth, X, ext.Min[X] + frac*ext.Len(X)},
		{PlaneStart, Z, ext.Min[Z] + dpoz},
		{PlaneEnd, Z, ext.Max[Z] - dpoz},
	}
	if opt.DepthOffset > 0 {
		planes = append(planes, PartitionPlane{PlaneDepth, Y, ext.Max[Y] - opt.DepthOffset})
	}
	trk = &Track{X0: ext.Min[X], Y: ext.Max[Y], Z0: ext.Min[Z] + dpoz, Z1: ext.Max[Z] - dpoz}
	return
}
