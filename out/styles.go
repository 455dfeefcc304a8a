// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// GetDefaultStyles returns the styles of the reaction forces and energies
func GetDefaultStyles() map[string]*plt.A {
	return map[string]*plt.A{
		"RF1":        {C: "r", L: GetTexLabel("RF1", "")},
		"RF2":        {C: "b", L: GetTexLabel("RF2", "")},
		"RF3":        {C: "g", L: GetTexLabel("RF3", "")},
		"IE":         {C: "k", L: GetTexLabel("IE", "")},
		"KE":         {C: "m", Ls: "--", L: GetTexLabel("KE", "")},
		"undeformed": {C: "gray", Ls: ":", L: "undeformed"},
		"deformed":   {C: "b", M: ".", L: "deformed"},
	}
}

// GetTexLabel returns the TeX label of a column key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "time", "Time":
		l += "t"
	case "RF1":
		l += "F_x"
	case "RF2":
		l += "F_n"
	case "RF3":
		l += "F_t"
	case "IE":
		l += "E_{int}"
	case "KE":
		l += "E_{kin}"
	case "x", "x_undeformed":
		l += "x"
	case "y", "y_undeformed":
		l += "y"
	case "z", "z_undeformed":
		l += "z"
	case "y_deformed":
		l += "y+u_y"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
