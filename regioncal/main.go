// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command regioncal computes the color mapping table for PNN region
// figures.
//
// regioncal reads the per-slice, per-region analysis table produced
// by the upstream preprocessing stage, reduces it to one mean value
// per region (aggregate scope) while retaining each slice value
// (matrix scope), normalizes both against the metric's value range,
// and maps every value to a hex color. All rows are published
// atomically as one CSV that the renderers consume verbatim, so the
// region map and the heatmap can never disagree about a color.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/segpnn/regionmap/colorbar"
	"github.com/segpnn/regionmap/colormap"
	"github.com/segpnn/regionmap/maptable"
	"github.com/segpnn/regionmap/pnn"
)

// tableName is the published mapping table, read back by regionplot.
const tableName = "region_colors.csv"

var (
	flagCSV     = flag.String("csv-file", "dataFrameForBrainRender.csv", "read the analysis table from `file`")
	flagOut     = flag.String("o", ".", "write the mapping table and colorbars to `dir`")
	flagStyle   = flag.String("colormap-style", "scientific", "colormap `style`: scientific, diverging, grayscale, or viridis")
	flagPrint   = flag.Bool("print-friendly", false, "force grayscale palettes regardless of style")
	flagBar     = flag.Bool("save-colorbar", false, "export a colorbar legend per metric")
	flagNoNorm  = flag.Bool("no-normalize", false, "assume values are already in [0,1] instead of normalizing")
	flagMetrics = flag.String("metrics", "", "process only these comma-separated `metrics`")
	flagTable   = flag.Bool("table", false, "print the aggregate mapping as a table")
)

func main() {
	log.SetPrefix("regioncal: ")
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

	style, err := colormap.ParseStyle(*flagStyle)
	if err != nil {
		log.Fatal(err)
	}
	metrics, err := pnn.ParseMetrics(*flagMetrics)
	if err != nil {
		log.Fatal(err)
	}

	records, err := pnn.ParseFile(*flagCSV)
	if errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("analysis table %s does not exist; run the preprocessing stage first", *flagCSV)
	} else if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}

	cfg := calcConfig{
		style:         style,
		printFriendly: *flagPrint,
		normalize:     !*flagNoNorm,
	}

	tab := new(maptable.Table)
	for _, metric := range metrics {
		res, err := buildMetric(records, metric, cfg)
		var rerr *colormap.RangeError
		if errors.As(err, &rerr) {
			log.Printf("%s: %v; skipping", metric, err)
			continue
		} else if err != nil {
			log.Fatal(err)
		}
		tab.Aggregate = append(tab.Aggregate, res.aggregate...)
		tab.Matrix = append(tab.Matrix, res.matrix...)
		log.Printf("%s: %d regions, %d cells, range %g to %g", metric, len(res.aggregate), len(res.matrix), res.rng.Min, res.rng.Max)

		if *flagBar {
			bar := colorbar.Bar{
				Palette: res.palette,
				Range:   res.rng,
				Label:   fmt.Sprintf("%s color scale", metric),
			}
			svgPath := filepath.Join(*flagOut, fmt.Sprintf("colorbar_%s.svg", metric))
			pngPath := filepath.Join(*flagOut, fmt.Sprintf("colorbar_%s.png", metric))
			if err := bar.SaveSVG(svgPath); err != nil {
				log.Fatal(err)
			}
			if err := bar.SavePNG(pngPath); err != nil {
				log.Fatal(err)
			}
			log.Printf("%s: wrote %s, %s", metric, svgPath, pngPath)
		}
	}

	if len(tab.Aggregate) == 0 && len(tab.Matrix) == 0 {
		log.Fatal("no usable values in the analysis table")
	}

	path := filepath.Join(*flagOut, tableName)
	if err := tab.Publish(path); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)

	if *flagTable {
		printTable(os.Stdout, tab)
	}
}
