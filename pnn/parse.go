// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pnn reads per-slice, per-region perineuronal net (PNN)
// measurement tables.
//
// The analysis table is a CSV produced by the upstream preprocessing
// stage. Each row holds one experimental slice ("group") of one
// anatomical region, with one column per recognized metric.
package pnn

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Metric identifies one of the measured PNN quantities.
type Metric string

const (
	Density     Metric = "density"
	DiffuseFluo Metric = "diffuseFluo"
	Energy      Metric = "energy"
	Intensity   Metric = "intensity"
)

// Metrics lists all recognized metrics in canonical order.
var Metrics = []Metric{Density, DiffuseFluo, Energy, Intensity}

// ParseMetric returns the Metric named by s.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unrecognized metric %q", s)
}

// ParseMetrics parses a comma-separated metric list. An empty string
// means all metrics.
func ParseMetrics(s string) ([]Metric, error) {
	if s == "" {
		return Metrics, nil
	}
	var ms []Metric
	for _, f := range strings.Split(s, ",") {
		m, err := ParseMetric(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// Record is one row of the analysis table: the measurements of a
// single slice of a single region.
type Record struct {
	// Group is the experimental slice number.
	Group int

	// Region is the anatomical region number.
	Region int

	// Values maps each metric to its measured value for this
	// slice and region.
	Values map[Metric]float64
}

// requiredColumns are the columns the analysis table must provide.
var requiredColumns = []string{"group", "region", "density", "diffuseFluo", "energy", "intensity"}

// A ColumnError reports required columns missing from the analysis
// table header.
type ColumnError struct {
	Missing []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("analysis table is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Parse reads an analysis table from r. Rows with non-numeric group,
// region, or metric values are dropped, matching the upstream
// preprocessing contract. It returns a *ColumnError if the header
// lacks a required column.
func Parse(r io.Reader) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ColumnError{Missing: requiredColumns}
	} else if err != nil {
		return nil, err
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ColumnError{Missing: missing}
	}

	records := []*Record{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		group, err1 := strconv.ParseFloat(row[cols["group"]], 64)
		region, err2 := strconv.ParseFloat(row[cols["region"]], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		rec := &Record{
			Group:  int(group),
			Region: int(region),
			Values: make(map[Metric]float64),
		}
		ok := true
		for _, m := range Metrics {
			v, err := strconv.ParseFloat(row[cols[string(m)]], 64)
			// ParseFloat accepts the literals NaN and Inf, but
			// a non-finite measurement is as unusable as a
			// non-numeric one.
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				ok = false
				break
			}
			rec.Values[m] = v
		}
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseFile reads an analysis table from the named file.
func ParseFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
