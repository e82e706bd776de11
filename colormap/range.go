// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "math"

// epsilon keeps degenerate ranges divisible when all values are
// equal.
const epsilon = 1e-9

// A Range is the value interval used to normalize a metric's values
// before palette lookup. It is computed once per metric and scope and
// is constant across every row sharing that key.
type Range struct {
	Min, Max float64
}

// Unit is the fixed range used when normalization is disabled and
// values are assumed to already lie in [0, 1].
var Unit = Range{0, 1}

// A RangeError reports that no values were available to compute a
// normalization range. Callers skip color computation for the
// affected key rather than emit degenerate rows.
type RangeError struct{}

func (*RangeError) Error() string {
	return "no values to compute a normalization range"
}

// New computes the normalization range for vals. For sequential
// scales this is the literal minimum and maximum, with no outlier
// clipping. If diverging is set, the range is forced symmetric about
// zero so that zero stays the fixed midpoint regardless of data skew.
func New(vals []float64, diverging bool) (Range, error) {
	if len(vals) == 0 {
		return Range{}, &RangeError{}
	}
	if diverging {
		m := 0.0
		for _, v := range vals {
			m = math.Max(m, math.Abs(v))
		}
		if m == 0 {
			m = epsilon
		}
		return Range{-m, m}, nil
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if min == max {
		max = min + epsilon
	}
	return Range{min, max}, nil
}

// Norm maps v onto [0, 1], saturating at the boundaries.
func (r Range) Norm(v float64) float64 {
	x := (v - r.Min) / (r.Max - r.Min)
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}
