// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/segpnn/regionmap/colormap"
	"github.com/segpnn/regionmap/maptable"
	"github.com/segpnn/regionmap/pnn"
)

const analysisCSV = `group,region,density,diffuseFluo,energy,intensity
1,1,10,0.5,1.5,0.9
1,2,20,0.6,-0.5,0.8
2,1,12,0.4,2.0,0.7
2,2,18,0.7,0.5,0.6
3,1,11,0.5,1.0,0.9
`

var hexRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func TestPipeline(t *testing.T) {
	records, err := pnn.Parse(strings.NewReader(analysisCSV))
	if err != nil {
		t.Fatal(err)
	}

	tab := new(maptable.Table)
	for _, metric := range pnn.Metrics {
		res, err := buildMetric(records, metric, defaultConfig)
		if err != nil {
			t.Fatalf("%s: %v", metric, err)
		}
		tab.Aggregate = append(tab.Aggregate, res.aggregate...)
		tab.Matrix = append(tab.Matrix, res.matrix...)
	}

	path := filepath.Join(t.TempDir(), "region_colors.csv")
	if err := tab.Publish(path); err != nil {
		t.Fatal(err)
	}
	got, err := maptable.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Two regions per metric, five cells per metric.
	if want := 2 * len(pnn.Metrics); len(got.Aggregate) != want {
		t.Errorf("want %d aggregate rows, got %d", want, len(got.Aggregate))
	}
	if want := 5 * len(pnn.Metrics); len(got.Matrix) != want {
		t.Errorf("want %d matrix rows, got %d", want, len(got.Matrix))
	}
	for _, row := range got.Aggregate {
		if !hexRe.MatchString(row.Color) {
			t.Errorf("aggregate %s/%d: bad color %q", row.Metric, row.Region, row.Color)
		}
	}
	for _, row := range got.Matrix {
		if !hexRe.MatchString(row.Color) {
			t.Errorf("matrix %s/%d/%d: bad color %q", row.Metric, row.Region, row.Group, row.Color)
		}
		rng := colormap.Range{Min: row.VMin, Max: row.VMax}
		if diff := row.Normalized - rng.Norm(row.Value); diff > 1e-12 || diff < -1e-12 {
			t.Errorf("matrix %s/%d/%d: normalized %g does not match value %g in [%g, %g]",
				row.Metric, row.Region, row.Group, row.Normalized, row.Value, row.VMin, row.VMax)
		}
	}
}
