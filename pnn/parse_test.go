// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnn

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  []*Record
	}{
		{
			"basic",
			`group,region,density,diffuseFluo,energy,intensity
1,3,10,0.5,1.5,0.9`,
			[]*Record{
				{1, 3, map[Metric]float64{Density: 10, DiffuseFluo: 0.5, Energy: 1.5, Intensity: 0.9}},
			},
		},
		{
			"extra columns and reordered header",
			`region,acronym,density,group,diffuseFluo,energy,intensity
2,CC,4,1,0.1,0.2,0.3`,
			[]*Record{
				{1, 2, map[Metric]float64{Density: 4, DiffuseFluo: 0.1, Energy: 0.2, Intensity: 0.3}},
			},
		},
		{
			"non-numeric rows dropped",
			`group,region,density,diffuseFluo,energy,intensity
1,3,10,0.5,1.5,0.9
x,3,10,0.5,1.5,0.9
2,3,10,,1.5,0.9
2,4,1,2,3,4`,
			[]*Record{
				{1, 3, map[Metric]float64{Density: 10, DiffuseFluo: 0.5, Energy: 1.5, Intensity: 0.9}},
				{2, 4, map[Metric]float64{Density: 1, DiffuseFluo: 2, Energy: 3, Intensity: 4}},
			},
		},
		{
			// NaN and Inf parse as floats but would poison every
			// range downstream.
			"non-finite rows dropped",
			`group,region,density,diffuseFluo,energy,intensity
1,3,NaN,0.5,1.5,0.9
2,3,10,0.5,+Inf,0.9
3,3,10,0.5,1.5,0.9`,
			[]*Record{
				{3, 3, map[Metric]float64{Density: 10, DiffuseFluo: 0.5, Energy: 1.5, Intensity: 0.9}},
			},
		},
	} {
		got, err := Parse(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: want %v, got %v", test.name, test.want, got)
		}
	}
}

func TestParseMissingColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("group,region,density\n1,2,3\n"))
	var cerr *ColumnError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ColumnError, got %v", err)
	}
	want := []string{"diffuseFluo", "energy", "intensity"}
	if !reflect.DeepEqual(cerr.Missing, want) {
		t.Errorf("want missing %v, got %v", want, cerr.Missing)
	}
}

func TestParseMetrics(t *testing.T) {
	ms, err := ParseMetrics("")
	if err != nil || !reflect.DeepEqual(ms, Metrics) {
		t.Errorf("empty list: want %v, got %v (err %v)", Metrics, ms, err)
	}
	ms, err = ParseMetrics("energy, density")
	if err != nil || !reflect.DeepEqual(ms, []Metric{Energy, Density}) {
		t.Errorf("want [energy density], got %v (err %v)", ms, err)
	}
	if _, err := ParseMetrics("volume"); err == nil {
		t.Errorf("want error for unrecognized metric")
	}
}
