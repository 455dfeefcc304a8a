// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"errors"
	goio "io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

const stalog = `
 SUMMARY OF JOB INFORMATION:
      STEP  INCREMENT     TOTAL     STEP      STABLE    CRITICAL
 THE ANALYSIS HAS COMPLETED SUCCESSFULLY
 WALLCLOCK TIME (SEC) =          1234.5
`

func testReducer() *Reducer {
	return &Reducer{
		Stages:       []StageInfo{{"Approach", 0.0001}, {"Scratch", 0.01}},
		ForceRegion:  "indenter.rp",
		Forces:       [3]string{"RF1", "RF2", "RF3"},
		EnergyRegion: "substrate.all",
		Energies:     [2]string{"ALLIE", "ALLKE"},
		NodeSet:      "substrate.track",
		MetaKeys:     []string{"powerlaw.sY", "friction"},
		MetaVals:     []string{"600", "0.1"},
	}
}

// testHandle returns results with stages stored in reverse order
func testHandle() *MemHandle {
	h := NewMemHandle()
	t2 := []float64{0, 0.005, 0.01}
	t1 := []float64{0, 0.00005, 0.0001}
	for _, s := range []struct {
		name string
		t    []float64
		f    float64
	}{{"Scratch", t2, 10}, {"Approach", t1, 1}} {
		h.SetHistory(s.name, "indenter.rp", "RF1", s.t, []float64{0, s.f, 2 * s.f})
		h.SetHistory(s.name, "indenter.rp", "RF2", s.t, []float64{1, 1, 1})
		h.SetHistory(s.name, "indenter.rp", "RF3", s.t, []float64{-1, -1, -1})
		h.SetHistory(s.name, "substrate.all", "ALLIE", s.t, []float64{0, s.f, s.f})
		h.SetHistory(s.name, "substrate.all", "ALLKE", []float64{0, s.t[2]}, []float64{0, 2 * s.f})
	}
	h.NodeSets["substrate.track"] = []Node{
		{1, r3.Vec{X: 0, Y: 5, Z: 2}},
		{2, r3.Vec{X: 3, Y: 5, Z: 1}},
		{3, r3.Vec{X: 0, Y: 3, Z: 2}},
		{2, r3.Vec{X: 3, Y: 5, Z: 1}},
	}
	h.Displacements["substrate.track"] = map[int]r3.Vec{
		1: {X: 0, Y: -0.01, Z: 0},
		2: {X: 0.1, Y: 0, Z: 0},
	}
	return h
}

func Test_reduce01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce01. time shift and node order")

	tab, err := testReducer().Reduce(testHandle(), stalog)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "wallclock", 1e-15, tab.Wallclock, 1234.5)

	// times are strictly increasing; the first sample of Scratch coincides with the last of Approach
	var t, rf1, ke []float64
	var stages []string
	for _, r := range tab.Times {
		t = append(t, r.Time)
		rf1 = append(rf1, r.RF[0])
		ke = append(ke, r.KE)
		stages = append(stages, r.Stage)
	}
	io.Pforan("t = %v\n", t)
	chk.Array(tst, "t", 1e-15, t, []float64{0, 0.00005, 0.0001, 0.0051, 0.0101})
	chk.Array(tst, "RF1", 1e-15, rf1, []float64{0, 1, 2, 10, 20})
	chk.Array(tst, "KE", 1e-12, ke, []float64{0, 1, 2, 10, 20})
	chk.Strings(tst, "stages", stages, []string{"Approach", "Approach", "Approach", "Scratch", "Scratch"})

	// nodes
	var labels []int
	for _, n := range tab.Nodes {
		labels = append(labels, n.Label)
	}
	chk.Ints(tst, "labels", labels, []int{2, 3, 1})
	chk.Float64(tst, "x def of 2", 1e-15, tab.Nodes[0].Xdef.X, 3.1)
	chk.Float64(tst, "y def of 1", 1e-15, tab.Nodes[2].Xdef.Y, 4.99)
	chk.Float64(tst, "y def of 3", 1e-15, tab.Nodes[1].Xdef.Y, 3)
	chk.Int(tst, "nwarnings", len(tab.Warnings), 2)
	chk.String(tst, tab.Warnings[0], `sample of stage "Scratch" at t=0.0001 merged with the previous sample of stage "Approach"`)

	// zipped rows
	chk.Int(tst, "nrows", tab.NumRows(), 5)
	row := tab.Row(4)
	chk.String(tst, row[0], "0.0101")
	chk.String(tst, row[6], "")
	row = tab.Row(0)
	chk.String(tst, row[6], "2")

	var buf bytes.Buffer
	tab.Write(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	io.Pf("%s\n", buf.String())
	chk.String(tst, lines[1], "# powerlaw.sY = 600")
	chk.String(tst, lines[3], "# wallclock = 1234.5")
	chk.String(tst, lines[4], `# warning: sample of stage "Scratch" at t=0.0001 merged with the previous sample of stage "Approach"`)
	chk.String(tst, lines[6], strings.Join(Columns, ","))
	chk.Int(tst, "nlines", len(lines), 7+5)
	chk.String(tst, lines[len(lines)-1], "0.0101,20,1,-1,10,20,,,,,,,")
}

func Test_reduce02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce02. node sorting")

	nodes := SortNodes([]Node{
		{1, r3.Vec{X: 0, Y: 5, Z: 2}},
		{2, r3.Vec{X: 3, Y: 5, Z: 1}},
		{3, r3.Vec{X: 0, Y: 3, Z: 2}},
	})
	var labels []int
	for _, n := range nodes {
		labels = append(labels, n.Label)
	}
	chk.Ints(tst, "labels", labels, []int{2, 3, 1})

	// ties broken by -x, then label
	nodes = SortNodes([]Node{
		{7, r3.Vec{X: 0, Y: 0, Z: 0}},
		{5, r3.Vec{X: 1, Y: 0, Z: 0}},
		{6, r3.Vec{X: 0, Y: 0, Z: 0}},
	})
	labels = labels[:0]
	for _, n := range nodes {
		labels = append(labels, n.Label)
	}
	chk.Ints(tst, "labels", labels, []int{5, 6, 7})
}

func Test_reduce03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce03. missing results")

	var rerr *ReductionError
	check := func(msg string, h Handle, log string) {
		_, err := testReducer().Reduce(h, log)
		if !errors.As(err, &rerr) {
			tst.Errorf("%s: should have failed with ReductionError. err=%v\n", msg, err)
			return
		}
		io.Pforan("%s: %v\n", msg, err)
	}

	h := testHandle()
	delete(h.History["Scratch"], "substrate.all")
	check("energy region", h, stalog)

	h = testHandle()
	delete(h.NodeSets, "substrate.track")
	check("node set", h, stalog)

	h = testHandle()
	delete(h.History["Approach"]["indenter.rp"], "RF2")
	check("variable", h, stalog)

	check("status log", testHandle(), "THE ANALYSIS HAS NOT COMPLETED\n")
	check("status log number", testHandle(), "WALLCLOCK TIME (SEC) = n/a\n")

	// stage results beyond the schedule
	h = testHandle()
	h.SetHistory("Scratch", "indenter.rp", "RF1", []float64{-0.001, 0.005, 0.01}, []float64{0, 10, 20})
	check("overlap", h, stalog)
}

func Test_reduce04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce04. warnings are returned, not printed")

	stdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		tst.Errorf("cannot create pipe: %v\n", err)
		return
	}
	os.Stdout = w
	tab, err := testReducer().Reduce(testHandle(), stalog)
	w.Close()
	os.Stdout = stdout
	printed, _ := goio.ReadAll(r)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "nwarnings", len(tab.Warnings), 2)
	chk.String(tst, string(printed), "")
}

func Test_wallclock01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wallclock01. status log")

	for log, correct := range map[string]float64{
		"WALLCLOCK TIME (SEC) = 12\n":                          12,
		"WALLCLOCK TIME 1.5e3":                                 1500,
		"WALLCLOCK TIME = 3\nWALLCLOCK TIME (SEC) =   7.25\n\n": 7.25,
		" TOTAL CPU TIME 4\n WALLCLOCK TIME: 9":                 9,
	} {
		sec, err := ParseWallclock(log)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			continue
		}
		chk.Float64(tst, "wallclock", 1e-15, sec, correct)
	}
}

func Test_xlsx01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("xlsx01. workbook")

	tab, err := testReducer().Reduce(testHandle(), stalog)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	path := filepath.Join(tst.TempDir(), "out", "scratch_reduced.xlsx")
	if err = tab.WriteXlsx(path); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		tst.Errorf("cannot open workbook: %v\n", err)
		return
	}
	defer f.Close()
	rows, err := f.GetRows(SheetReduced)
	if err != nil {
		tst.Errorf("cannot read rows: %v\n", err)
		return
	}
	chk.Int(tst, "nrows", len(rows), 1+5)
	chk.Strings(tst, "header", rows[0], Columns)
	chk.String(tst, rows[1][6], "2")
	meta, err := f.GetRows(SheetMeta)
	if err != nil {
		tst.Errorf("cannot read metadata: %v\n", err)
		return
	}
	chk.String(tst, meta[1][0], "powerlaw.sY")
	chk.String(tst, meta[1][1], "600")

	if chk.Verbose {
		PlotForces(tab, "/tmp/scratch", "reduce01")
		PlotProfile(tab, "/tmp/scratch", "reduce01")
	}
}
