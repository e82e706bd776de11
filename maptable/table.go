// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maptable reads and writes the persisted color-mapping
// table.
//
// The table is the contract between the calculation stage and the
// renderers: every color a renderer paints comes verbatim from the
// color column here, so identical (metric, region[, group]) keys get
// identical colors wherever they appear. Rows come in two variants,
// tagged by scope: aggregate rows carry one mean value per region,
// matrix rows carry one raw value per slice and region along with the
// normalization range that produced the color.
package maptable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/segpnn/regionmap/pnn"
)

// Scope tags which renderer a row feeds.
type Scope string

const (
	// ScopeAggregate rows color the per-region shape map.
	ScopeAggregate Scope = "aggregate"

	// ScopeMatrix rows fill the slice-by-region value grid.
	ScopeMatrix Scope = "matrix"
)

// Columns is the persisted table schema. group, normalized_value,
// vmin, and vmax are populated only for matrix rows.
var Columns = []string{"metric", "scope", "region", "group", "value", "color", "normalized_value", "vmin", "vmax"}

// An AggregateRow is the mean value and color of one region across
// all slices.
type AggregateRow struct {
	Metric pnn.Metric
	Region int
	Value  float64
	Color  string
}

// A MatrixRow is the value and color of one slice of one region,
// plus its normalized position and the range it was normalized with.
type MatrixRow struct {
	Metric     pnn.Metric
	Region     int
	Group      int
	Value      float64
	Color      string
	Normalized float64
	VMin, VMax float64
}

// A Table holds all mapping rows of one run.
type Table struct {
	Aggregate []AggregateRow
	Matrix    []MatrixRow
}

var hexRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// A FormatError reports a malformed mapping table.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return "mapping table: " + e.Msg
	}
	return fmt.Sprintf("mapping table: line %d: %s", e.Line, e.Msg)
}

// A MissingError reports that the mapping table does not exist yet.
type MissingError struct {
	Path string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("mapping table %s does not exist; run regioncal first to compute it", e.Path)
}

// Sort orders rows by (metric, scope, region, group) ascending so
// that identical inputs always serialize to identical bytes.
func (t *Table) Sort() {
	sort.Slice(t.Aggregate, func(i, j int) bool {
		a, b := t.Aggregate[i], t.Aggregate[j]
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		return a.Region < b.Region
	})
	sort.Slice(t.Matrix, func(i, j int) bool {
		a, b := t.Matrix[i], t.Matrix[j]
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.Group < b.Group
	})
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTo serializes the table to w. Aggregate rows precede matrix
// rows within each metric because "aggregate" sorts before "matrix".
func (t *Table) WriteTo(w io.Writer) error {
	t.Sort()
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	// One merged, ordered stream across both variants.
	i, j := 0, 0
	for i < len(t.Aggregate) || j < len(t.Matrix) {
		if i < len(t.Aggregate) && (j >= len(t.Matrix) || t.Aggregate[i].Metric <= t.Matrix[j].Metric) {
			r := t.Aggregate[i]
			i++
			err := cw.Write([]string{string(r.Metric), string(ScopeAggregate), strconv.Itoa(r.Region), "", ftoa(r.Value), r.Color, "", "", ""})
			if err != nil {
				return err
			}
			continue
		}
		r := t.Matrix[j]
		j++
		err := cw.Write([]string{string(r.Metric), string(ScopeMatrix), strconv.Itoa(r.Region), strconv.Itoa(r.Group), ftoa(r.Value), r.Color, ftoa(r.Normalized), ftoa(r.VMin), ftoa(r.VMax)})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Publish writes the table to path atomically: it serializes to a
// temporary file in the same directory and renames it into place, so
// a reader never observes a partially written table and an
// interrupted run leaves the previous table intact.
func (t *Table) Publish(path string) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".maptable-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if err = t.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	// CreateTemp makes the file 0600; the published table is a
	// normal generated artifact.
	if err = f.Chmod(0644); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Read parses a mapping table from r, validating the schema and the
// color column.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{0, "empty table"}
	} else if err != nil {
		return nil, err
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range Columns {
		if _, ok := cols[name]; !ok {
			return nil, &FormatError{0, fmt.Sprintf("missing column %q", name)}
		}
	}

	tab := new(Table)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		get := func(name string) string { return row[cols[name]] }

		metric, err := pnn.ParseMetric(get("metric"))
		if err != nil {
			return nil, &FormatError{line, err.Error()}
		}
		region, err := strconv.Atoi(get("region"))
		if err != nil {
			return nil, &FormatError{line, fmt.Sprintf("bad region %q", get("region"))}
		}
		value, err := strconv.ParseFloat(get("value"), 64)
		if err != nil {
			return nil, &FormatError{line, fmt.Sprintf("bad value %q", get("value"))}
		}
		color := get("color")
		if !hexRe.MatchString(color) {
			return nil, &FormatError{line, fmt.Sprintf("malformed color %q", color)}
		}

		switch Scope(get("scope")) {
		case ScopeAggregate:
			tab.Aggregate = append(tab.Aggregate, AggregateRow{metric, region, value, color})
		case ScopeMatrix:
			group, err := strconv.Atoi(get("group"))
			if err != nil {
				return nil, &FormatError{line, fmt.Sprintf("bad group %q", get("group"))}
			}
			norm, err := strconv.ParseFloat(get("normalized_value"), 64)
			// The negated interval check also rejects NaN.
			if err != nil || !(norm >= 0 && norm <= 1) {
				return nil, &FormatError{line, fmt.Sprintf("bad normalized_value %q", get("normalized_value"))}
			}
			vmin, err1 := strconv.ParseFloat(get("vmin"), 64)
			vmax, err2 := strconv.ParseFloat(get("vmax"), 64)
			if err1 != nil || err2 != nil {
				return nil, &FormatError{line, "bad vmin/vmax"}
			}
			tab.Matrix = append(tab.Matrix, MatrixRow{metric, region, group, value, color, norm, vmin, vmax})
		default:
			return nil, &FormatError{line, fmt.Sprintf("unknown scope %q", get("scope"))}
		}
	}
	return tab, nil
}

// Load reads the mapping table from the named file. A nonexistent
// file is reported as a *MissingError so callers can point the user
// at the calculation stage.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &MissingError{path}
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	tab, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tab, nil
}
