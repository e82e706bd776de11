// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorbar

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/segpnn/regionmap/colormap"
	"github.com/segpnn/regionmap/pnn"
)

func testBar(t *testing.T) Bar {
	t.Helper()
	pal, err := colormap.Lookup(colormap.StyleScientific, pnn.Energy, false)
	if err != nil {
		t.Fatal(err)
	}
	return Bar{Palette: pal, Range: colormap.Range{Min: 0, Max: 3}, Label: "energy color scale"}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	testBar(t).SVG(&buf)
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an SVG document:\n%s", out)
	}
	for _, want := range []string{"energy color scale", ">0<", ">1.5<", ">3<", "fill:#ff0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := testBar(t).PNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != barWidth || b.Dy() != barHeight {
		t.Errorf("bounds %v, want %dx%d", b, barWidth, barHeight)
	}
	// The right end of a white-to-red ramp is saturated red.
	r, g, _, _ := img.At(rampX+rampW-1, rampY+rampH/2).RGBA()
	if r < 0xf000 || g > 0x2000 {
		t.Errorf("ramp end color (r=%#x, g=%#x) is not red", r, g)
	}
}
