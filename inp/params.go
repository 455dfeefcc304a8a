// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// IndenterData holds the indenter input
type IndenterData struct {
	Type   string  `json:"type"`   // "rockwell" or "pyramid"
	Radius float64 `json:"radius"` // rockwell: tip radius
	Angle  float64 `json:"angle"`  // rockwell: cone half-angle [deg]
	Width  float64 `json:"width"`  // pyramid: base width
	Draft  float64 `json:"draft"`  // pyramid: draft angle [deg]
	Tip    float64 `json:"tip"`    // pyramid: width of flat tip
}

// Profile builds the indenter profile
func (o IndenterData) Profile() (*geo.Profile, error) {
	switch o.Type {
	case "rockwell":
		return geo.BuildSphericalConicalProfile(o.Radius, o.Angle)
	case "pyramid":
		return geo.BuildTruncatedPyramidalProfile(o.Width, o.Draft, o.Tip)
	}
	return nil, chk.Err("indenter type %q is invalid; options are \"rockwell\" and \"pyramid\"", o.Type)
}

// BlockData holds the substrate input
type BlockData struct {
	Min    [3]float64        `json:"min"`    // lower corner
	Max    [3]float64        `json:"max"`    // upper corner
	Layout geo.LayoutOptions `json:"layout"` // partition options
}

// Extents returns the block extents
func (o BlockData) Extents() geo.BlockExtents { return geo.BlockExtents{Min: o.Min, Max: o.Max} }

// MeshData holds the mesh input
type MeshData struct {
	Targets msh.Targets `json:"targets"`
	Options msh.Options `json:"options"`
}

// ModelData holds the parameters of one material model
type ModelData struct {
	Model string     `json:"model"` // name of model in the 'solid' database
	Prms  dbf.Params `json:"prms"`  // parameters
}

// MatData holds the material input
type MatData struct {
	Name   string       `json:"name"`
	Models []*ModelData `json:"models"`
}

// Get returns the model data named model or nil
func (o *MatData) Get(model string) *ModelData {
	for _, m := range o.Models {
		if m.Model == model {
			return m
		}
	}
	return nil
}

// MassScaling holds the mass scaling applied to the first stage
type MassScaling struct {
	Factor          float64 `json:"factor"`          // density factor; 0 or 1 => none
	TargetIncrement float64 `json:"targetincrement"` // target stable increment; 0 => use factor
	StableIncrement float64 `json:"stableincrement"` // estimated stable increment of the finest element (derived)
}

// Params holds the input of one scratch simulation
type Params struct {
	Key         string           `json:"key"`         // simulation key
	Desc        string           `json:"desc"`        // description
	DirOut      string           `json:"dirout"`      // directory for output
	Encoder     string           `json:"encoder"`     // "json" or "gob"
	Indenter    IndenterData     `json:"indenter"`    // indenter
	Block       BlockData        `json:"block"`       // substrate
	Mesh        MeshData         `json:"mesh"`        // mesh targets
	Material    MatData          `json:"material"`    // substrate material
	Friction    float64          `json:"friction"`    // Coulomb friction coefficient
	Schedule    ScheduleConfig   `json:"schedule"`    // loading
	MassScaling MassScaling      `json:"massscaling"` // mass scaling
	Outputs     []*OutputRequest `json:"outputs"`     // output requests; empty => defaults
}

// NewParams returns parameters with default values
func NewParams() (o *Params) {
	o = new(Params)
	o.SetDefault()
	return
}

// SetDefault sets the values of the canonical Rockwell scratch test on steel
func (o *Params) SetDefault() {
	o.Key = "scratch"
	o.DirOut = "/tmp/scratch"
	o.Encoder = "json"
	o.Indenter = IndenterData{Type: "rockwell", Radius: 0.2, Angle: 60, Width: 0.4, Draft: -60}
	o.Block = BlockData{Max: [3]float64{0.96, 0.8, 3.0}, Layout: geo.LayoutOptions{WidthFraction: 0.5, DepthOffset: 0.2}}
	o.Mesh.Targets.SetDefault()
	o.Mesh.Options.SetDefault()
	o.Material = MatData{
		Name: "steel",
		Models: []*ModelData{
			{"elastic", []*dbf.P{{N: "E", V: 200000}, {N: "nu", V: 0.3}, {N: "rho", V: 7.8e-9}}},
			{"powerlaw", []*dbf.P{{N: "sY", V: 600}, {N: "n", V: 0.2}}},
		},
	}
	o.Schedule.SetDefault()
	o.MassScaling.Factor = 1e4
}

// PostProcess checks the encoder and cleans the key
func (o *Params) PostProcess() error {
	if o.Encoder != "gob" && o.Encoder != "json" {
		o.Encoder = "json"
	}
	o.Key = strings.TrimSpace(o.Key)
	if o.Key == "" {
		return chk.Err("simulation key must not be empty")
	}
	o.DirOut = filepath.Clean(o.DirOut)
	return nil
}

// ReadParams reads parameters from a .json, .toml, .yaml or .yml file. Values missing in the
// file keep their defaults.
func ReadParams(path string) (o *Params, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read parameters file %q:\n%v", path, err)
	}
	o = NewParams()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".toml":
		_, err = toml.Decode(string(b), o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("parameters file %q must have extension .json, .toml, .yaml or .yml", path)
	}
	if err != nil {
		return nil, chk.Err("cannot decode parameters file %q:\n%v", path, err)
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// Clone returns a deep copy
func (o *Params) Clone() *Params {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(o); err != nil {
		chk.Panic("cannot clone parameters: %v", err)
	}
	p := new(Params)
	if err := json.NewDecoder(&buf).Decode(p); err != nil {
		chk.Panic("cannot clone parameters: %v", err)
	}
	return p
}

// Set sets the value of a named parameter. Names are "friction", "schedule.depth",
// "schedule.length" or "<model>.<prm>" for material parameters; e.g. "elastic.E", "jc.A"
func (o *Params) Set(name string, value float64) error {
	switch name {
	case "friction":
		o.Friction = value
		return nil
	case "schedule.depth":
		o.Schedule.Depth = value
		return nil
	case "schedule.length":
		o.Schedule.Length = value
		return nil
	}
	parts := strings.SplitN(name, ".", 2)
	if len(parts) != 2 {
		return chk.Err("parameter name %q is invalid", name)
	}
	m := o.Material.Get(parts[0])
	if m == nil {
		return chk.Err("material %q has no model %q", o.Material.Name, parts[0])
	}
	for _, p := range m.Prms {
		if p.N == parts[1] {
			p.V = value
			return nil
		}
	}
	m.Prms = append(m.Prms, &dbf.P{N: parts[1], V: value})
	return nil
}

// Values returns the material parameters as "<model>.<prm>" = value pairs in input order
func (o *Params) Values() (keys []string, vals []float64) {
	for _, m := range o.Material.Models {
		for _, p := range m.Prms {
			keys = append(keys, m.Model+"."+p.N)
			vals = append(vals, p.V)
		}
	}
	keys = append(keys, "friction")
	vals = append(vals, o.Friction)
	return
}
