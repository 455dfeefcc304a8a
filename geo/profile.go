// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the parametric geometry of the indenter and the substrate block
package geo

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// FlankLength is the length of the conical flank line drawn from the sphere end point
const FlankLength = 0.5

// ExtrudeDepth is the extrusion depth used to close pyramidal indenters
const ExtrudeDepth = 1.0

// Kind defines the indenter shape
type Kind int

const (
	SphericalConical Kind = iota // Rockwell indenter: spherical tip tangent to a cone
	Pyramidal                    // flat pyramidal indenter extruded with draft
)

// String returns the name of the indenter shape
func (o Kind) String() string {
	switch o {
	case SphericalConical:
		return "spherical-conical"
	case Pyramidal:
		return "pyramidal"
	}
	return io.Sf("kind(%d)", int(o))
}

// Point holds the coordinates of a point in the sketch plane
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GeometryError reports a degenerate indenter or block construction
type GeometryError struct {
	Msg string
}

func (o *GeometryError) Error() string { return "geometry: " + o.Msg }

func geomErr(msg string, prm ...interface{}) error {
	return &GeometryError{io.Sf(msg, prm...)}
}

// Profile holds the cross-section of an indenter
//  Spherical-conical points: tip, tangency midpoint, sphere end, flank end
//  Pyramidal points:         base left, base right, apex (or top right, top left for flat tips)
type Profile struct {
	Kind          Kind    `json:"kind"`          // shape
	Points        []Point `json:"points"`        // ordered control points
	Center        Point   `json:"center"`        // centre of spherical tip
	Radius        float64 `json:"radius"`        // tip radius
	ConeAngle     float64 `json:"coneangle"`     // cone half-angle [deg]
	TangentOffset float64 `json:"tangentoffset"` // height of the sphere-to-cone tangency point
	HalfWidth     float64 `json:"halfwidth"`     // half width of pyramid base
	DraftAngle    float64 `json:"draftangle"`    // normalised (negative) draft angle [deg]
	Revolve       float64 `json:"revolve"`       // revolve angle [deg]; zero for extruded profiles
	Extrude       float64 `json:"extrude"`       // extrusion depth; zero for revolved profiles
}

// BuildSphericalConicalProfile computes the Rockwell profile with tip at the origin and the
// sphere centre at (0,R)
//  Input:
//   R -- tip radius
//   θ -- cone half-angle [deg] in (0,90)
func BuildSphericalConicalProfile(R, θ float64) (o *Profile, err error) {
	if !(θ > 0 && θ < 90) {
		return nil, geomErr("cone angle θ=%g must be in (0°,90°)", θ)
	}
	if !(R > 0) {
		return nil, geomErr("tip radius R=%g must be positive", R)
	}
	o = &Profile{Kind: SphericalConical, Radius: R, ConeAngle: θ, Revolve: 360}
	o.Center = Point{0, R}
	end := o.onSphere(-θ)
	mid := o.onSphere(-θ - (90-θ)/2)
	a := deg2rad(90 - θ)
	flank := Point{end.X + FlankLength*math.Cos(a), end.Y + FlankLength*math.Sin(a)}
	o.Points = []Point{{0, 0}, mid, end, flank}
	o.TangentOffset = end.Y
	return
}

// BuildPyramidalProfile computes the trapezoidal profile of a pyramidal indenter
//  Input:
//   width -- base width
//   draft -- draft angle [deg]; the sign is normalised so the faces taper towards the apex
func BuildPyramidalProfile(width, draft float64) (o *Profile, err error) {
	return BuildTruncatedPyramidalProfile(width, draft, 0)
}

// BuildTruncatedPyramidalProfile is like BuildPyramidalProfile but with a flat tip of width tip
func BuildTruncatedPyramidalProfile(width, draft, tip float64) (o *Profile, err error) {
	if !(width > 0) {
		return nil, geomErr("pyramid width=%g must be positive", width)
	}
	a := -math.Abs(draft)
	if !(a < 0 && a > -90) {
		return nil, geomErr("draft angle=%g must satisfy 0 < |draft| < 90°", draft)
	}
	if tip < 0 || tip >= width {
		return nil, geomErr("tip width=%g must be in [0,%g)", tip, width)
	}
	hw := width / 2
	ht := tip / 2
	h := (hw - ht) * math.Tan(deg2rad(90+a))
	o = &Profile{Kind: Pyramidal, HalfWidth: hw, DraftAngle: a, Extrude: ExtrudeDepth}
	if ht > 0 {
		o.Points = []Point{{-hw, 0}, {hw, 0}, {ht, h}, {-ht, h}}
	} else {
		o.Points = []Point{{-hw, 0}, {hw, 0}, {0, h}}
	}
	return
}

// Height returns the axial height of the profile
func (o *Profile) Height() float64 {
	return o.Points[len(o.Points)-1].Y
}

// ContactRadiusAt returns the half-width of the profile cut at a penetration depth d measured
// from the tip. Used to estimate the width of the scratch track.
func (o *Profile) ContactRadiusAt(d float64) float64 {
	if d <= 0 {
		return 0
	}
	switch o.Kind {
	case SphericalConical:
		if d <= o.TangentOffset {
			R := o.Radius
			return math.Sqrt(2*R*d - d*d)
		}
		end := o.Points[2]
		return end.X + (d-end.Y)*math.Tan(deg2rad(o.ConeAngle))
	}
	h := o.Height()
	ht := 0.0
	if len(o.Points) == 4 {
		ht = o.Points[2].X
	}
	if d >= h {
		return o.HalfWidth
	}
	// pyramid profile measured from the apex
	return ht + (o.HalfWidth-ht)*d/h
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func (o *Profile) onSphere(αdeg float64) Point {
	α := deg2rad(αdeg)
	return Point{o.Radius * math.Cos(α), o.Center.Y + o.Radius*math.Sin(α)}
}

func deg2rad(a float64) float64 { return a * math.Pi / 180 }
