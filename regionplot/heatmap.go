// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/segpnn/regionmap/maptable"
	"github.com/segpnn/regionmap/pnn"
)

// Heatmap geometry.
const (
	cellSize  = 40
	marginL   = 90
	marginR   = 20
	marginT   = 50
	marginB   = 60
	labelFont = "font-family:sans-serif;font-size:12px"
)

type cellKey struct {
	Region, Group int
}

// heatmapSVG draws the slice-by-region grid for one metric. Each
// present cell is a rectangle filled with the precomputed color from
// its mapping row; cells with no row are left empty, showing the
// background as "no data" rather than a zero-value color.
func heatmapSVG(w io.Writer, metric pnn.Metric, rows []maptable.MatrixRow) {
	groupSet, regionSet := make(map[int]bool), make(map[int]bool)
	byCell := make(map[cellKey]maptable.MatrixRow)
	for _, row := range rows {
		groupSet[row.Group] = true
		regionSet[row.Region] = true
		byCell[cellKey{row.Region, row.Group}] = row
	}
	groups, regions := sortedKeys(groupSet), sortedKeys(regionSet)

	width := marginL + cellSize*len(regions) + marginR
	height := marginT + cellSize*len(groups) + marginB

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")
	canvas.Text(width/2, marginT-20, fmt.Sprintf("%s per slice and region", metric),
		"font-family:sans-serif;font-size:16px;text-anchor:middle")

	// Regions run left to right; slices run bottom-up so slice 1
	// sits at the origin corner.
	for ri, r := range regions {
		for gi, g := range groups {
			row, ok := byCell[cellKey{r, g}]
			if !ok {
				continue
			}
			x := marginL + ri*cellSize
			y := marginT + (len(groups)-1-gi)*cellSize
			canvas.Rect(x, y, cellSize, cellSize, "fill:"+row.Color+";stroke:#ffffff;stroke-width:1")
		}
	}
	canvas.Rect(marginL, marginT, cellSize*len(regions), cellSize*len(groups),
		"fill:none;stroke:#000000;stroke-width:1")

	for ri, r := range regions {
		x := marginL + ri*cellSize + cellSize/2
		canvas.Text(x, marginT+cellSize*len(groups)+20, fmt.Sprintf("region %d", r),
			labelFont+";text-anchor:middle")
	}
	for gi, g := range groups {
		y := marginT + (len(groups)-1-gi)*cellSize + cellSize/2 + 4
		canvas.Text(marginL-8, y, fmt.Sprintf("slice %d", g),
			labelFont+";text-anchor:end")
	}
	canvas.End()
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
