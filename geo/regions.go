// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "sort"

// RegionKind defines what a named region refers to
type RegionKind int

const (
	KindFace     RegionKind = iota // face of the substrate
	KindBody                       // whole part
	KindNodeSet                    // set of nodes
	KindRefPoint                   // reference point of a rigid part
	KindSurface                    // contact surface
	KindEdge                       // edge region receiving mesh seeds
	KindZone                       // cell of the partitioned block
)

// region names
const (
	RegBottom     = "substrate.bottom"
	RegTop        = "substrate.top"
	RegXmin       = "substrate.xmin"
	RegXmax       = "substrate.xmax"
	RegZmin       = "substrate.zmin"
	RegZmax       = "substrate.zmax"
	RegSubstrate  = "substrate.all"
	RegTrack      = "substrate.track"
	RegIndenterRP = "indenter.rp"
	RegIndenter   = "indenter.surface"
	RegFlank      = "indenter.flank"
)

// Region holds a named region
type Region struct {
	Name string     `json:"name"`
	Kind RegionKind `json:"kind"`
}

// RegionSet maps stable names to regions. Names are assigned when the geometry is built so that
// nothing is ever looked up by coordinates.
type RegionSet struct {
	Items map[string]Region `json:"items"`
}

// NewRegionSet returns the regions of a partitioned block and an indenter profile
func NewRegionSet(b *Block, p *Profile) (o *RegionSet) {
	o = &RegionSet{Items: make(map[string]Region)}
	for _, n := range []string{RegBottom, RegTop, RegXmin, RegXmax, RegZmin, RegZmax} {
		o.add(n, KindFace)
	}
	o.add(RegSubstrate, KindBody)
	o.add(RegTrack, KindNodeSet)
	o.add(RegIndenterRP, KindRefPoint)
	o.add(RegIndenter, KindSurface)
	if p != nil && p.Kind == Pyramidal {
		o.add(RegFlank, KindEdge)
	}
	if b != nil {
		for _, a := range Axes {
			for _, s := range b.Segs[a] {
				o.add(EdgeName(s.ID()), KindEdge)
			}
		}
		for _, z := range b.Zones() {
			o.add("zone."+z.ID, KindZone)
		}
	}
	return
}

// EdgeName returns the region name of the edges parallel to a segment; e.g. "edge.x0"
func EdgeName(segID string) string { return "edge." + segID }

// Has tells whether a region named name exists
func (o *RegionSet) Has(name string) bool {
	_, ok := o.Items[name]
	return ok
}

// Names returns the sorted names of all regions
func (o *RegionSet) Names() (names []string) {
	for n := range o.Items {
		names = append(names, n)
	}
	sort.Strings(names)
	return
}

func (o *RegionSet) add(name string, kind RegionKind) {
	o.Items[name] = Region{name, kind}
}
