// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/PeterMollmann/ABAQUS-Scratch-model/mdl/solid"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Material holds the synthesised substrate material
type Material struct {

	// input
	Name string `json:"name"` // name of material

	// derived
	Elastic     *solid.Elastic     `json:"elastic"`               // elasticity and density
	Hardening   solid.Curve        `json:"hardening,omitempty"`   // tabulated hardening (power law)
	JohnsonCook *solid.JohnsonCook `json:"johnsoncook,omitempty"` // closed-form hardening
	Damage      *solid.DamageLaw   `json:"damage,omitempty"`      // damage initiation and evolution
}

// field names used when reporting material violations; model name => field
var matFields = map[string]string{
	"elastic":  "material.elastic",
	"powerlaw": "material.powerlaw",
	"jc":       "material.johnsoncook",
	"jcdamage": "material.damage.initiation",
	"damevol":  "material.damage.evolution",
}

// buildMaterial creates all models listed in the material data and collects every violation
func buildMaterial(mdat *MatData, vs *Violations) (mat *Material) {

	mat = &Material{Name: mdat.Name}
	models := make(map[string]solid.Model)
	for _, m := range mdat.Models {
		field, ok := matFields[m.Model]
		if !ok {
			field = "material." + m.Model
		}
		if _, dup := models[m.Model]; dup {
			vs.Add(field, "model %q is given more than once", m.Model)
			continue
		}
		mdl, err := solid.New(m.Model)
		if err != nil {
			vs.Add(field, "%v", err)
			continue
		}
		prms := m.Prms
		switch m.Model {
		case "powerlaw":
			prms = withElastic(prms, mdat.Get("elastic"), "E")
		case "damevol":
			prms = withElastic(prms, mdat.Get("elastic"), "E", "nu")
		}
		err = mdl.Init(prms)
		if err != nil {
			vs.Add(field, "%v", err)
			continue
		}
		models[m.Model] = mdl
	}

	// elasticity
	if m, ok := models["elastic"]; ok {
		mat.Elastic = m.(*solid.Elastic)
	} else if mdat.Get("elastic") == nil {
		vs.Add("material.elastic", "elastic constants are required")
	}

	// hardening: exactly one representation
	pl, hasPl := models["powerlaw"]
	jc, hasJc := models["jc"]
	if mdat.Get("powerlaw") != nil && mdat.Get("jc") != nil {
		vs.Add("material.powerlaw", "conflicts with material.johnsoncook: only one hardening representation is allowed")
		vs.Add("material.johnsoncook", "conflicts with material.powerlaw: only one hardening representation is allowed")
	} else {
		if hasPl {
			curve, err := pl.(solid.Hardening).Curve()
			if err != nil {
				vs.Add("material.powerlaw", "%v", err)
			}
			mat.Hardening = curve
		}
		if hasJc {
			mat.JohnsonCook = jc.(*solid.JohnsonCook)
		}
		if mdat.Get("powerlaw") == nil && mdat.Get("jc") == nil {
			vs.Add("material.powerlaw", "a hardening law is required: give either powerlaw or jc")
		}
	}

	// damage: initiation and evolution go together
	ini, hasIni := models["jcdamage"]
	evo, hasEvo := models["damevol"]
	if hasIni && hasEvo {
		mat.Damage = &solid.DamageLaw{
			Initiation: ini.(*solid.JohnsonCookDamage),
			Evolution:  evo.(*solid.Evolution),
		}
	}
	if (mdat.Get("jcdamage") == nil) != (mdat.Get("damevol") == nil) {
		vs.Add("material.damage.evolution", "damage needs both jcdamage (initiation) and damevol (evolution)")
	}
	return
}

// String returns a one-line summary of the material
func (o *Material) String() string {
	var l []string
	if o.Elastic != nil {
		l = append(l, io.Sf("E=%g nu=%g rho=%g", o.Elastic.E, o.Elastic.Nu, o.Elastic.Rho))
	}
	if len(o.Hardening) > 0 {
		l = append(l, io.Sf("hardening: %d points from σy=%g", len(o.Hardening), o.Hardening[0].Stress))
	}
	if o.JohnsonCook != nil {
		l = append(l, io.Sf("JC: A=%g B=%g n=%g", o.JohnsonCook.A, o.JohnsonCook.B, o.JohnsonCook.N))
	}
	if o.Damage != nil {
		l = append(l, io.Sf("δf=%g", o.Damage.Evolution.CriticalDisplacement))
	}
	return io.Sf("%s: %s", o.Name, strings.Join(l, "; "))
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// withElastic completes model parameters with the named elastic constants
func withElastic(prms dbf.Params, el *ModelData, names ...string) (res dbf.Params) {
	has := make(map[string]bool)
	for _, p := range prms {
		has[p.N] = true
		res = append(res, p)
	}
	if el == nil {
		return
	}
	for _, p := range el.Prms {
		if utl.StrIndexSmall(names, p.N) >= 0 && !has[p.N] {
			res = append(res, &dbf.P{N: p.N, V: p.V})
		}
	}
	return
}
