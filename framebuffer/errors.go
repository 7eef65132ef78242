// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framebuffer

import (
	"errors"
	"fmt"
)

// Sentinel errors for framebuffer package.
var (
	// ErrRegionOutOfBounds is returned when a region is invalid or extends
	// past the visible display.
	ErrRegionOutOfBounds = errors.New("framebuffer: region out of bounds")

	// ErrClosed is returned by operations on a closed surface.
	ErrClosed = errors.New("framebuffer: surface closed")

	// ErrBadGeometry is returned when a geometry is unusable or does not
	// fit the backing memory.
	ErrBadGeometry = errors.New("framebuffer: bad geometry")

	// ErrUnsupported is returned by Open on systems without fbdev.
	ErrUnsupported = errors.New("framebuffer: device access not supported on this platform")
)

// DeviceError reports a failed system call on the framebuffer device.
type DeviceError struct {
	Op   string // "open", "ioctl FBIOGET_FSCREENINFO", "mmap", ...
	Path string
	Err  error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("framebuffer: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// RegionSizeError is returned by RestoreRegion when the data length does
// not match the region.
type RegionSizeError struct {
	Want, Got int
}

func (e *RegionSizeError) Error() string {
	return fmt.Sprintf("framebuffer: region needs %d bytes, got %d", e.Want, e.Got)
}
