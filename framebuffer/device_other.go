// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !linux

package framebuffer

import "github.com/gogpu/eink/internal/mxcfb"

type device struct{}

// Open is only implemented on Linux. Use New or NewMemory elsewhere.
func Open(path string) (*Surface, error) {
	return nil, &DeviceError{Op: "open", Path: path, Err: ErrUnsupported}
}

func (*device) sendUpdate(*mxcfb.UpdateData) error { return ErrUnsupported }

func (*device) waitForUpdate(*mxcfb.UpdateMarkerData) error { return ErrUnsupported }

func (*device) close([]byte) error { return nil }
