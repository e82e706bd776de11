// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"

	"github.com/segpnn/regionmap/colormap"
	"github.com/segpnn/regionmap/maptable"
	"github.com/segpnn/regionmap/pnn"
)

type calcConfig struct {
	style         colormap.Style
	printFriendly bool

	// normalize selects min/max normalization. When false, values
	// are assumed to already lie in [0, 1] and are only clamped.
	normalize bool
}

// diverging reports whether ranges must be symmetric about zero.
// print-friendly mode degrades the palette to grayscale, which is a
// sequential scale.
func (c calcConfig) diverging() bool {
	return c.style == colormap.StyleDiverging && !c.printFriendly
}

type cellKey struct {
	Region, Group int
}

// metricResult holds everything computed for one metric: the mapping
// rows plus the palette and range that produced them, which the
// colorbar export must reuse as-is.
type metricResult struct {
	aggregate []maptable.AggregateRow
	matrix    []maptable.MatrixRow
	palette   palette.Continuous
	rng       colormap.Range
}

// collect gathers the values of metric in one pass: every raw value,
// the values per region, and the values per (region, group) cell.
func collect(records []*pnn.Record, metric pnn.Metric) (raw []float64, byRegion map[int][]float64, byCell map[cellKey][]float64) {
	byRegion = make(map[int][]float64)
	byCell = make(map[cellKey][]float64)
	for _, rec := range records {
		v, ok := rec.Values[metric]
		if !ok {
			continue
		}
		raw = append(raw, v)
		byRegion[rec.Region] = append(byRegion[rec.Region], v)
		key := cellKey{rec.Region, rec.Group}
		byCell[key] = append(byCell[key], v)
	}
	return
}

// buildMetric computes the aggregate and matrix mapping rows for one
// metric. The normalization range comes from the metric's raw slice
// values and is shared by both scopes; the aggregate mean of a region
// therefore lands at its true position between the extremes of the
// underlying measurements. Returns a *colormap.RangeError (wrapped)
// when the metric has no values at all.
func buildMetric(records []*pnn.Record, metric pnn.Metric, cfg calcConfig) (*metricResult, error) {
	raw, byRegion, byCell := collect(records, metric)

	rng := colormap.Unit
	if cfg.normalize {
		var err error
		rng, err = colormap.New(raw, cfg.diverging())
		if err != nil {
			return nil, err
		}
	}
	pal, err := colormap.Lookup(cfg.style, metric, cfg.printFriendly)
	if err != nil {
		return nil, err
	}

	res := &metricResult{palette: pal, rng: rng}
	for region, vals := range byRegion {
		mean := stats.Mean(vals)
		res.aggregate = append(res.aggregate, maptable.AggregateRow{
			Metric: metric,
			Region: region,
			Value:  mean,
			Color:  colormap.Color(pal, rng, mean),
		})
	}
	for key, vals := range byCell {
		// Duplicate rows for the same slice and region collapse
		// to their mean, as in the upstream grouping.
		v := stats.Mean(vals)
		res.matrix = append(res.matrix, maptable.MatrixRow{
			Metric:     metric,
			Region:     key.Region,
			Group:      key.Group,
			Value:      v,
			Color:      colormap.Color(pal, rng, v),
			Normalized: rng.Norm(v),
			VMin:       rng.Min,
			VMax:       rng.Max,
		})
	}
	return res, nil
}
