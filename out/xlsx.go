// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// sheet names
const (
	SheetReduced = "Reduced"
	SheetMeta    = "Meta"
)

// WriteXlsx writes the table to a workbook with the rows in sheet "Reduced" and the header
// block as key/value pairs in sheet "Meta"
func (o *Table) WriteXlsx(path string) (err error) {

	f := excelize.NewFile()
	defer f.Close()
	if err = f.SetSheetName("Sheet1", SheetReduced); err != nil {
		return chk.Err("cannot rename sheet: %v", err)
	}

	// rows
	sw, err := f.NewStreamWriter(SheetReduced)
	if err != nil {
		return chk.Err("cannot create stream writer: %v", err)
	}
	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err = sw.SetRow("A1", header); err != nil {
		return chk.Err("cannot write header: %v", err)
	}
	for i := 0; i < o.NumRows(); i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err = sw.SetRow(cell, o.cells(i)); err != nil {
			return chk.Err("cannot write row %d: %v", i, err)
		}
	}
	if err = sw.Flush(); err != nil {
		return chk.Err("cannot flush rows: %v", err)
	}

	// metadata
	if _, err = f.NewSheet(SheetMeta); err != nil {
		return chk.Err("cannot create sheet: %v", err)
	}
	meta := [][2]interface{}{{"generated", o.Generated.Format(time.RFC3339)}}
	for i, k := range o.MetaKeys {
		meta = append(meta, [2]interface{}{k, o.MetaVals[i]})
	}
	meta = append(meta, [2]interface{}{"wallclock", o.Wallclock})
	for _, w := range o.Warnings {
		meta = append(meta, [2]interface{}{"warning", w})
	}
	for i, kv := range meta {
		for j, v := range kv {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err = f.SetCellValue(SheetMeta, cell, v); err != nil {
				return chk.Err("cannot write metadata: %v", err)
			}
		}
	}

	// save
	if err = os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return chk.Err("cannot create directory for %q: %v", path, err)
	}
	if err = f.SaveAs(path); err != nil {
		return chk.Err("cannot save %q: %v", path, err)
	}
	return
}

// cells returns the numeric cells of zipped row i; missing entries are nil
func (o *Table) cells(i int) (row []interface{}) {
	row = make([]interface{}, len(Columns))
	if i < len(o.Times) {
		r := o.Times[i]
		for k, v := range []float64{r.Time, r.RF[0], r.RF[1], r.RF[2], r.IE, r.KE} {
			row[k] = v
		}
	}
	if i < len(o.Nodes) {
		n := o.Nodes[i]
		row[6] = n.Label
		for k, v := range []float64{n.X.X, n.X.Y, n.X.Z, n.Xdef.X, n.Xdef.Y, n.Xdef.Z} {
			row[7+k] = v
		}
	}
	return
}
