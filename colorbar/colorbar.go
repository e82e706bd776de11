// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorbar renders standalone legend artifacts for a palette
// and normalization range.
//
// A colorbar must show exactly the palette function and range that
// produced the mapping rows, so callers pass those in rather than
// recomputing them here.
package colorbar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/aclements/go-gg/palette"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/segpnn/regionmap/colormap"
)

// A Bar describes one legend: the palette and range a metric's
// mapping rows were computed with, plus a human-readable label.
type Bar struct {
	Palette palette.Continuous
	Range   colormap.Range
	Label   string
}

// Legend geometry, shared by the SVG and PNG renderings.
const (
	barWidth  = 400
	barHeight = 90
	rampX     = 20
	rampY     = 24
	rampW     = 360
	rampH     = 28
)

func tickLabel(v float64) string {
	return fmt.Sprintf("%.3g", v)
}

// ticks are drawn at vmin, the midpoint, and vmax, like the original
// figure legends.
func (b Bar) ticks() []float64 {
	return []float64{b.Range.Min, (b.Range.Min + b.Range.Max) / 2, b.Range.Max}
}

// SVG writes the legend as an SVG document.
func (b Bar) SVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(barWidth, barHeight)
	canvas.Rect(0, 0, barWidth, barHeight, "fill:#ffffff")
	canvas.Text(barWidth/2, rampY-8, b.Label, "font-family:sans-serif;font-size:12px;text-anchor:middle")

	// One 1px column per ramp position.
	for i := 0; i < rampW; i++ {
		pos := (float64(i) + 0.5) / rampW
		canvas.Rect(rampX+i, rampY, 1, rampH, "fill:"+colormap.Hex(b.Palette.Map(pos)))
	}
	canvas.Rect(rampX, rampY, rampW, rampH, "fill:none;stroke:#000000;stroke-width:1")

	for i, v := range b.ticks() {
		x := rampX + i*rampW/2
		canvas.Line(x, rampY+rampH, x, rampY+rampH+5, "stroke:#000000;stroke-width:1")
		canvas.Text(x, rampY+rampH+18, tickLabel(v), "font-family:sans-serif;font-size:10px;text-anchor:middle")
	}
	canvas.End()
}

// PNG writes the legend as a PNG image.
func (b Bar) PNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, barWidth, barHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i := 0; i < rampW; i++ {
		pos := (float64(i) + 0.5) / rampW
		c := b.Palette.Map(pos)
		for y := rampY; y < rampY+rampH; y++ {
			img.Set(rampX+i, y, c)
		}
	}
	// Ramp border.
	for x := rampX - 1; x <= rampX+rampW; x++ {
		img.Set(x, rampY-1, color.Black)
		img.Set(x, rampY+rampH, color.Black)
	}
	for y := rampY - 1; y <= rampY+rampH; y++ {
		img.Set(rampX-1, y, color.Black)
		img.Set(rampX+rampW, y, color.Black)
	}

	drawCentered(img, barWidth/2, rampY-8, b.Label)
	for i, v := range b.ticks() {
		x := rampX + i*rampW/2
		for y := rampY + rampH; y < rampY+rampH+5; y++ {
			img.Set(x, y, color.Black)
		}
		drawCentered(img, x, rampY+rampH+18, tickLabel(v))
	}
	return png.Encode(w, img)
}

func drawCentered(img draw.Image, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(s)
	d.Dot = fixed.P(x, y).Sub(fixed.Point26_6{X: width / 2})
	d.DrawString(s)
}

// SaveSVG writes the legend SVG to the named file.
func (b Bar) SaveSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	b.SVG(f)
	return f.Close()
}

// SavePNG writes the legend PNG to the named file.
func (b Bar) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.PNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
