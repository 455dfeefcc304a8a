// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	"strconv"
	"strings"
)

// WallclockMarker identifies the line of the status log holding the solve duration
const WallclockMarker = "WALLCLOCK TIME"

// ParseWallclock returns the trailing number of the last line of the status log containing
// WallclockMarker; e.g. "WALLCLOCK TIME (SEC) = 1234.5"
func ParseWallclock(log string) (seconds float64, err error) {
	var line string
	found := false
	sc := bufio.NewScanner(strings.NewReader(log))
	for sc.Scan() {
		if strings.Contains(sc.Text(), WallclockMarker) {
			line = sc.Text()
			found = true
		}
	}
	if err = sc.Err(); err != nil {
		return 0, redErr("cannot scan status log: %v", err)
	}
	if !found {
		return 0, redErr("status log has no line with %q; the solver run may be truncated", WallclockMarker)
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '=' || r == ':'
	})
	last := fields[len(fields)-1]
	seconds, err = strconv.ParseFloat(last, 64)
	if err != nil {
		return 0, redErr("cannot parse wall-clock time %q in line %q", last, strings.TrimSpace(line))
	}
	return
}
