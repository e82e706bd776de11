// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap turns measurement values into reproducible hex
// colors.
//
// A palette is a palette.Continuous function from a position in [0, 1]
// to a color. A Range normalizes raw metric values onto that interval.
// Both the aggregate and the matrix scope of the mapping table go
// through the same Color path, which is what guarantees that the two
// renderers agree.
package colormap

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/lucasb-eyer/go-colorful"
)

// A Stop is one gradient keypoint. Pos must be in [0, 1].
type Stop struct {
	Col colorful.Color
	Pos float64
}

// A Gradient is a palette.Continuous that interpolates component-wise
// between sorted keypoints, the way the original figure tooling's
// linear segmented colormaps do. Positions outside [0, 1] saturate at
// the end colors.
type Gradient []Stop

var _ palette.Continuous = Gradient{}

// Map returns the gradient color at position x.
func (g Gradient) Map(x float64) color.Color {
	if x <= g[0].Pos {
		return g[0].Col
	}
	for i := 0; i < len(g)-1; i++ {
		c1, c2 := g[i], g[i+1]
		if c1.Pos <= x && x <= c2.Pos {
			t := (x - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Col.BlendRgb(c2.Col, t).Clamped()
		}
	}
	return g[len(g)-1].Col
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func gradient(hexes ...string) Gradient {
	g := make(Gradient, len(hexes))
	for i, h := range hexes {
		g[i] = Stop{mustHex(h), float64(i) / float64(len(hexes)-1)}
	}
	return g
}

// Per-metric sequential gradients. Energy maps white-to-red and
// diffuse fluorescence white-to-blue; every other metric defaults to
// viridis.
var (
	whiteBlue = gradient("#ffffff", "#0000ff")
	whiteRed  = gradient("#ffffff", "#ff0000")
)

// blueWhiteRed is the diverging gradient. Position 0.5 is exactly
// white, so a symmetric range puts zero on the neutral midpoint.
var blueWhiteRed = gradient("#0000ff", "#ffffff", "#ff0000")

// grayscale is the print-friendly gradient.
var grayscale = gradient("#ffffff", "#000000")

// viridis approximates matplotlib's viridis with evenly spaced
// control points.
var viridis = gradient(
	"#440154", "#482374", "#404387", "#345e8d", "#29788e",
	"#20908c", "#22a784", "#44be70", "#79d151", "#bdde26",
	"#fde725",
)

// Hex formats c as a 6-digit "#rrggbb" string.
func Hex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// Color maps value v through pal after normalizing it with r. This is
// the single computation path for every mapping row; values outside
// the range saturate at the boundary colors.
func Color(pal palette.Continuous, r Range, v float64) string {
	return Hex(pal.Map(r.Norm(v)))
}
