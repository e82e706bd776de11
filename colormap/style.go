// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"

	"github.com/aclements/go-gg/palette"

	"github.com/segpnn/regionmap/pnn"
)

// A Style selects a palette family for the whole run.
type Style string

const (
	// StyleScientific is the default: white-to-red for energy,
	// white-to-blue for diffuse fluorescence, and viridis for the
	// remaining metrics.
	StyleScientific Style = "scientific"

	// StyleDiverging is a blue-white-red gradient with zero at the
	// midpoint. Ranges computed for this style are symmetric about
	// zero.
	StyleDiverging Style = "diverging"

	// StyleGrayscale maps all metrics to a white-black ramp.
	StyleGrayscale Style = "grayscale"

	// StyleViridis forces the viridis gradient for all metrics.
	StyleViridis Style = "viridis"
)

// An UnknownStyleError reports a style name that is not registered.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown colormap style %q (styles: scientific, diverging, grayscale, viridis)", e.Name)
}

// ParseStyle returns the Style named by s.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleScientific, StyleDiverging, StyleGrayscale, StyleViridis:
		return Style(s), nil
	}
	return "", &UnknownStyleError{s}
}

// Lookup returns the palette for style applied to metric. If
// printFriendly is set it overrides style with grayscale for every
// metric.
func Lookup(style Style, metric pnn.Metric, printFriendly bool) (palette.Continuous, error) {
	if printFriendly {
		return grayscale, nil
	}
	switch style {
	case StyleScientific:
		switch metric {
		case pnn.DiffuseFluo:
			return whiteBlue, nil
		case pnn.Energy:
			return whiteRed, nil
		}
		return viridis, nil
	case StyleDiverging:
		return blueWhiteRed, nil
	case StyleGrayscale:
		return grayscale, nil
	case StyleViridis:
		return viridis, nil
	}
	return nil, &UnknownStyleError{string(style)}
}
