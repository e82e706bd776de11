// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/segpnn/regionmap/maptable"
)

// printTable prints the aggregate mapping rows as an aligned table,
// one row per metric and region.
func printTable(w io.Writer, tab *maptable.Table) {
	tab.Sort()
	metrics := make([]string, len(tab.Aggregate))
	regions := make([]int, len(tab.Aggregate))
	values := make([]float64, len(tab.Aggregate))
	colors := make([]string, len(tab.Aggregate))
	for i, r := range tab.Aggregate {
		metrics[i] = string(r.Metric)
		regions[i] = r.Region
		values[i] = r.Value
		colors[i] = r.Color
	}
	t := new(table.Builder).
		Add("metric", metrics).
		Add("region", regions).
		Add("value", values).
		Add("color", colors).
		Done()
	table.Fprint(w, t)
}
