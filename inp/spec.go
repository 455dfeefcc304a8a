// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/gob"
	"encoding/json"
	goio "io"
	"sort"
	"strings"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/geo"
	"github.com/PeterMollmann/ABAQUS-Scratch-model/msh"
	"github.com/cpmech/gosl/io"
)

// Violation holds one problem found while composing a specification
type Violation struct {
	Field string `json:"field"` // e.g. "friction", "material.powerlaw", "outputs[2]"
	Msg   string `json:"msg"`
}

// Violations collects problems
type Violations []Violation

// Add adds a violation
func (o *Violations) Add(field, msg string, prm ...interface{}) {
	*o = append(*o, Violation{field, io.Sf(msg, prm...)})
}

// SpecificationError aggregates all violations found by Build
type SpecificationError struct {
	Violations Violations
}

func (o *SpecificationError) Error() string {
	l := make([]string, len(o.Violations))
	for i, v := range o.Violations {
		l[i] = io.Sf("  %s: %s", v.Field, v.Msg)
	}
	return io.Sf("specification has %d violation(s):\n%s", len(o.Violations), strings.Join(l, "\n"))
}

// Fields returns the sorted names of all offending fields
func (o *SpecificationError) Fields() (fields []string) {
	seen := make(map[string]bool)
	for _, v := range o.Violations {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	sort.Strings(fields)
	return
}

// Has tells whether field has been reported
func (o *SpecificationError) Has(field string) bool {
	for _, v := range o.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// output request kinds
const (
	HistoryOutput = "history"
	FieldOutput   = "field"
)

// OutputRequest asks the solver to record variables over a region
type OutputRequest struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`   // "history" or "field"
	Region    string   `json:"region"` // region name
	Variables []string `json:"variables"`
}

// DefaultOutputs returns the output requests needed by the result reducer
func DefaultOutputs() []*OutputRequest {
	return []*OutputRequest{
		{"ReactionForces", HistoryOutput, geo.RegIndenterRP, []string{"RF1", "RF2", "RF3"}},
		{"Energy", HistoryOutput, geo.RegSubstrate, []string{"ALLIE", "ALLKE"}},
		{"Field", FieldOutput, geo.RegSubstrate, []string{"S", "MISES", "PEEQ", "U", "RF", "STATUS", "SDEG"}},
		{"TrackProfile", FieldOutput, geo.RegTrack, []string{"COORD", "U"}},
	}
}

// Contact holds the interaction between indenter and substrate
type Contact struct {
	Friction    float64 `json:"friction"`    // Coulomb coefficient
	Formulation string  `json:"formulation"` // tangential behaviour: "penalty"
	Normal      string  `json:"normal"`      // normal behaviour: "hard"
	Master      string  `json:"master"`      // region of the master surface
	Slave       string  `json:"slave"`       // region of the slave surface
}

// ModelSpecification is the complete, solver-independent description of one scratch simulation.
// It is immutable after Build.
type ModelSpecification struct {
	Key         string           `json:"key"`
	Desc        string           `json:"desc"`
	Profile     *geo.Profile     `json:"profile"`
	Block       *geo.Block       `json:"block"`
	Track       *geo.Track       `json:"track"`
	Regions     *geo.RegionSet   `json:"regions"`
	Mesh        *msh.Plan        `json:"mesh"`
	Material    *Material        `json:"material"`
	Contact     Contact          `json:"contact"`
	MassScaling MassScaling      `json:"massscaling"`
	Stages      Schedule         `json:"stages"`
	Functions   FuncsData        `json:"functions"`
	Outputs     []*OutputRequest `json:"outputs"`
	Params      *Params          `json:"params"` // input that produced this specification
}

// Friction returns the friction coefficient
func (o *ModelSpecification) Friction() float64 { return o.Contact.Friction }

// Output returns the output request named name or nil
func (o *ModelSpecification) Output(name string) *OutputRequest {
	for _, r := range o.Outputs {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Encode writes the specification with the given encoder type ("json" or "gob")
func (o *ModelSpecification) Encode(w goio.Writer, enctype string) error {
	return GetEncoder(w, enctype).Encode(o)
}

// DecodeSpec reads a specification written by Encode
func DecodeSpec(r goio.Reader, enctype string) (o *ModelSpecification, err error) {
	o = new(ModelSpecification)
	err = GetDecoder(r, enctype).Decode(o)
	if err != nil {
		return nil, err
	}
	return
}

// GetInfo returns formatted information
func (o *ModelSpecification) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// Provenance returns the parameters that produced this specification, as ordered key/value
// pairs, for the header of the reduced table
func (o *ModelSpecification) Provenance() (keys []string, vals []string) {
	add := func(k, format string, v interface{}) {
		keys = append(keys, k)
		vals = append(vals, io.Sf(format, v))
	}
	add("key", "%s", o.Key)
	add("indenter", "%v", o.Profile.Kind)
	if o.Params != nil {
		ks, vs := o.Params.Values()
		for i, k := range ks {
			add(k, "%g", vs[i])
		}
		add("depth", "%g", o.Params.Schedule.Depth)
		add("length", "%g", o.Params.Schedule.Length)
		add("trackwidth", "%g", 2*o.Profile.ContactRadiusAt(o.Params.Schedule.Depth))
	}
	add("massscaling", "%g", o.MassScaling.Factor)
	add("stages", "%s", strings.Join(o.Stages.Names(), " "))
	add("elements", "%d", o.Mesh.ElementCount())
	return
}
