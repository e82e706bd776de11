// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command regionplot renders PNN region figures from the color
// mapping table that regioncal publishes.
//
// regionplot never computes a color itself: the region map takes the
// aggregate-scope rows and the heatmap takes the matrix-scope rows,
// both using the color column verbatim. Regions or cells without a
// row are drawn as explicit "no data", never as a zero-value color.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/segpnn/regionmap/maptable"
	"github.com/segpnn/regionmap/pnn"
)

var (
	flagCSV         = flag.String("csv-file", "region_colors.csv", "read the mapping table from `file`")
	flagSVG         = flag.String("svg-file", "spinalCord_6regions.svg", "paint the shape template from `file`")
	flagOut         = flag.String("o", ".", "write rendered figures to `dir`")
	flagSkipSVG     = flag.Bool("skip-svg", false, "skip the region map rendering")
	flagSkipHeatmap = flag.Bool("skip-heatmap", false, "skip the heatmap rendering")
	flagMetrics     = flag.String("metrics", "", "render only these comma-separated `metrics`")
)

func main() {
	log.SetPrefix("regionplot: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	metrics, err := pnn.ParseMetrics(*flagMetrics)
	if err != nil {
		log.Fatal(err)
	}
	tab, err := maptable.Load(*flagCSV)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}

	if !*flagSkipSVG {
		renderRegionMaps(tab, metrics, *flagSVG, *flagOut)
	}
	if !*flagSkipHeatmap {
		renderHeatmaps(tab, metrics, *flagOut)
	}
}

// aggregateColors returns the per-region colors of metric's
// aggregate rows.
func aggregateColors(tab *maptable.Table, metric pnn.Metric) regionColors {
	colors := make(regionColors)
	for _, row := range tab.Aggregate {
		if row.Metric == metric {
			colors[row.Region] = row.Color
		}
	}
	return colors
}

// matrixRows returns metric's matrix rows.
func matrixRows(tab *maptable.Table, metric pnn.Metric) []maptable.MatrixRow {
	var rows []maptable.MatrixRow
	for _, row := range tab.Matrix {
		if row.Metric == metric {
			rows = append(rows, row)
		}
	}
	return rows
}

func renderRegionMaps(tab *maptable.Table, metrics []pnn.Metric, svgFile, outDir string) {
	if len(tab.Aggregate) == 0 {
		log.Printf("no aggregate rows in the mapping table; skipping region maps")
		return
	}
	tmpl, err := LoadTemplate(svgFile)
	if err != nil {
		// The heatmaps don't need the template, so a bad or
		// missing template only costs the region maps.
		log.Printf("%v; skipping region maps", err)
		return
	}
	for _, metric := range metrics {
		colors := aggregateColors(tab, metric)
		if len(colors) == 0 {
			log.Printf("%s: no aggregate rows; skipping region map", metric)
			continue
		}
		tmpl.Paint(colors)

		svgPath := filepath.Join(outDir, fmt.Sprintf("colored_regions_%s.svg", metric))
		if err := tmpl.WriteFile(svgPath); err != nil {
			log.Fatal(err)
		}
		infoPath := filepath.Join(outDir, fmt.Sprintf("region_info_%s.txt", metric))
		if err := os.WriteFile(infoPath, []byte(tmpl.RegionInfo(colors)), 0666); err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: wrote %s", metric, svgPath)
	}
}

func renderHeatmaps(tab *maptable.Table, metrics []pnn.Metric, outDir string) {
	if len(tab.Matrix) == 0 {
		log.Printf("no matrix rows in the mapping table; skipping heatmaps")
		return
	}
	for _, metric := range metrics {
		rows := matrixRows(tab, metric)
		if len(rows) == 0 {
			log.Printf("%s: no matrix rows; skipping heatmap", metric)
			continue
		}
		path := filepath.Join(outDir, fmt.Sprintf("spinal_data_summary_%s.svg", metric))
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		heatmapSVG(f, metric, rows)
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: wrote %s", metric, path)
	}
}
