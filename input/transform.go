// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "github.com/gogpu/eink"

// Transform maps raw device axes onto display pixels.
//
// RawX and RawY are the maximum raw values of the device's X and Y axes.
// With Swap set the raw X axis drives display Y and the raw Y axis drives
// display X. InvertX and InvertY flip the display axes after swapping.
type Transform struct {
	RawX, RawY       int32
	Width, Height    int
	Swap             bool
	InvertX, InvertY bool
}

// DigitizerTransform is the pen digitizer mounting of the reference
// tablet: a 20967×15725 sensor turned a quarter against the panel.
func DigitizerTransform(width, height int) Transform {
	return Transform{RawX: 20967, RawY: 15725, Width: width, Height: height, Swap: true, InvertX: true}
}

// TouchTransform is the multitouch mounting of the reference tablet: a
// 767×1023 sensor turned half a turn against the panel.
func TouchTransform(width, height int) Transform {
	return Transform{RawX: 767, RawY: 1023, Width: width, Height: height, InvertX: true, InvertY: true}
}

// Apply converts a raw position. A zero raw range maps to 0 on that axis.
func (t Transform) Apply(x, y int32) eink.Point {
	fx, fy := float64(x), float64(y)
	rx, ry := float64(t.RawX), float64(t.RawY)
	if t.Swap {
		fx, fy = fy, fx
		rx, ry = ry, rx
	}
	if t.InvertX {
		fx = rx - fx
	}
	if t.InvertY {
		fy = ry - fy
	}
	var p eink.Point
	if rx > 0 {
		p.X = fx * float64(t.Width) / rx
	}
	if ry > 0 {
		p.Y = fy * float64(t.Height) / ry
	}
	return p
}
