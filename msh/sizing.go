// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the mesh-density zoning of the substrate and indenter
package msh

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// RuleKind defines the kind of sizing rule
type RuleKind int

const (
	KindUniform RuleKind = iota // constant element size
	KindBiased                  // geometric grading between Min and Max
)

// End identifies one end of an edge region. End1 is at the lower coordinate
type End int

const (
	End1 End = iota + 1
	End2
)

// Other returns the opposite end
func (o End) Other() End {
	if o == End1 {
		return End2
	}
	return End1
}

// SizingRule holds the element size along an edge region
type SizingRule struct {
	Kind   RuleKind `json:"kind"`
	Size   float64  `json:"size,omitempty"`   // uniform size
	Min    float64  `json:"min,omitempty"`    // biased: size at Toward
	Max    float64  `json:"max,omitempty"`    // biased: size at the other end
	Toward End      `json:"toward,omitempty"` // biased: end where elements are smallest
}

// Uniform returns a constant sizing rule
func Uniform(size float64) SizingRule {
	return SizingRule{Kind: KindUniform, Size: size}
}

// Biased returns a graded sizing rule with the smallest elements at the end toward
func Biased(min, max float64, toward End) SizingRule {
	return SizingRule{Kind: KindBiased, Min: min, Max: max, Toward: toward}
}

// Validate checks the rule
func (o SizingRule) Validate() error {
	switch o.Kind {
	case KindUniform:
		if !(o.Size > 0) {
			return zoneErr("uniform size=%g must be positive", o.Size)
		}
	case KindBiased:
		if !(o.Min > 0) {
			return zoneErr("biased min size=%g must be positive", o.Min)
		}
		if o.Min > o.Max {
			return zoneErr("biased min size=%g exceeds max size=%g", o.Min, o.Max)
		}
		if o.Toward != End1 && o.Toward != End2 {
			return zoneErr("biased rule must point toward End1 or End2; got %d", int(o.Toward))
		}
	default:
		return zoneErr("unknown sizing rule kind %d", int(o.Kind))
	}
	return nil
}

// SizeAt returns the element size at end e
func (o SizingRule) SizeAt(e End) float64 {
	if o.Kind == KindUniform {
		return o.Size
	}
	if e == o.Toward {
		return o.Min
	}
	return o.Max
}

// Ratio returns the ratio between largest and smallest elements
func (o SizingRule) Ratio() float64 {
	if o.Kind == KindUniform {
		return 1
	}
	return o.Max / o.Min
}

// Seeds returns the node positions along an edge of length L, starting at End1
func (o SizingRule) Seeds(L float64) (x []float64) {
	var sizes []float64
	if o.Kind == KindUniform || o.Min == o.Max {
		s := o.SizeAt(End1)
		n := int(math.Ceil(L/s - 1e-9))
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			sizes = append(sizes, L/float64(n))
		}
	} else {
		sizes = graded(o.Min, o.Max, L)
		if o.Toward == End2 {
			for i, j := 0, len(sizes)-1; i < j; i, j = i+1, j-1 {
				sizes[i], sizes[j] = sizes[j], sizes[i]
			}
		}
	}
	x = make([]float64, len(sizes)+1)
	for i, s := range sizes {
		x[i+1] = x[i] + s
	}
	x[len(sizes)] = L
	return
}

// NumElems returns the number of elements along an edge of length L
func (o SizingRule) NumElems(L float64) int { return len(o.Seeds(L)) - 1 }

// String returns a short description of the rule
func (o SizingRule) String() string {
	if o.Kind == KindUniform {
		return io.Sf("Uniform(%g)", o.Size)
	}
	return io.Sf("Biased(%g,%g,end%d)", o.Min, o.Max, int(o.Toward))
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// graded computes element sizes growing geometrically from min to max with the smallest number
// of elements whose total length reaches L; sizes are then scaled to fit L exactly
func graded(min, max, L float64) (sizes []float64) {
	if L <= min {
		return []float64{L}
	}
	var sum float64
	for n := 2; ; n++ {
		q := math.Pow(max/min, 1.0/float64(n-1))
		sizes = sizes[:0]
		sum = 0
		for i := 0; i < n; i++ {
			s := min * math.Pow(q, float64(i))
			sizes = append(sizes, s)
			sum += s
		}
		if sum >= L {
			break
		}
	}
	for i := range sizes {
		sizes[i] *= L / sum
	}
	return
}
