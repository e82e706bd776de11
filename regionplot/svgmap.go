// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// A Filler maps a region id to its fill color. It is the only
// boundary between the mapping table and the SVG document format.
type Filler interface {
	Fill(region int) (color string, ok bool)
}

// regionColors is a table-backed Filler.
type regionColors map[int]string

func (m regionColors) Fill(region int) (string, bool) {
	c, ok := m[region]
	return c, ok
}

// noDataFill is painted on template regions that have no mapping
// row. It is a deliberate, visible "no data" marker rather than a
// color any value could map to.
const noDataFill = "#d9d9d9"

// A Template is a shape template whose paintable elements are
// addressed by region id. Region ids follow document order of the
// path elements and then the polygon elements, starting at 1, the
// same addressing the anatomical templates are drawn with.
type Template struct {
	doc      *etree.Document
	elements []*etree.Element
}

// LoadTemplate parses the SVG shape template at path.
func LoadTemplate(path string) (*Template, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	var elements []*etree.Element
	for _, tag := range []string{"path", "polygon"} {
		elements = append(elements, doc.FindElements("//"+tag)...)
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%s: no paintable path or polygon elements", path)
	}
	return &Template{doc, elements}, nil
}

// Regions returns the number of paintable regions.
func (t *Template) Regions() int {
	return len(t.elements)
}

// Paint replaces each element's fill with the color f gives for its
// region, leaving geometry and all other attributes alone. Elements
// without a color get the explicit no-data fill. Stroke attributes
// are defaulted when the template omits them so region outlines stay
// visible.
func (t *Template) Paint(f Filler) {
	for i, el := range t.elements {
		fill, ok := f.Fill(i + 1)
		if !ok {
			fill = noDataFill
		}
		el.CreateAttr("fill", fill)
		if el.SelectAttr("stroke") == nil {
			el.CreateAttr("stroke", "#000000")
		}
		if el.SelectAttr("stroke-width") == nil {
			el.CreateAttr("stroke-width", "1")
		}
	}
}

// WriteFile writes the painted document to path.
func (t *Template) WriteFile(path string) error {
	return t.doc.WriteToFile(path)
}

// RegionInfo returns a plain-text summary of each region's element
// and applied fill, written alongside the rendered map.
func (t *Template) RegionInfo(f Filler) string {
	var b strings.Builder
	fmt.Fprintf(&b, "region\telement\tid\tfill\n")
	for i, el := range t.elements {
		fill, ok := f.Fill(i + 1)
		if !ok {
			fill = noDataFill + " (no data)"
		}
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s\n", i+1, el.Tag, el.SelectAttrValue("id", "-"), fill)
	}
	return b.String()
}
