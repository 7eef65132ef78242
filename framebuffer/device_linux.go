// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package framebuffer

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/internal/mxcfb"
)

type device struct {
	fd   int
	path string
}

// Open opens the framebuffer device at path, reads its geometry once and
// maps its memory shared and read-write.
func Open(path string) (*Surface, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &DeviceError{Op: "open", Path: path, Err: err}
	}
	fail := func(op string, err error) (*Surface, error) {
		_ = unix.Close(fd)
		return nil, &DeviceError{Op: op, Path: path, Err: err}
	}

	var fix mxcfb.FixScreenInfo
	if err := ioctl(fd, mxcfb.FBIOGET_FSCREENINFO, unsafe.Pointer(&fix)); err != nil {
		return fail("ioctl FBIOGET_FSCREENINFO", err)
	}
	var v mxcfb.VarScreenInfo
	if err := ioctl(fd, mxcfb.FBIOGET_VSCREENINFO, unsafe.Pointer(&v)); err != nil {
		return fail("ioctl FBIOGET_VSCREENINFO", err)
	}

	size := int(fix.SmemLen)
	if size == 0 {
		size = int(fix.LineLength) * int(v.YResVirtual)
	}
	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fail("mmap", err)
	}

	g := Geometry{
		Name:         fix.Name(),
		Width:        int(v.XRes),
		Height:       int(v.YRes),
		Stride:       int(fix.LineLength),
		BitsPerPixel: int(v.BitsPerPixel),
	}
	s, err := New(mem, g)
	if err != nil {
		_ = unix.Munmap(mem)
		_ = unix.Close(fd)
		return nil, err
	}
	s.dev = &device{fd: fd, path: path}

	eink.Logger().Info("framebuffer: opened",
		"path", path, "id", g.Name,
		"width", g.Width, "height", g.Height,
		"stride", g.Stride, "bpp", g.BitsPerPixel,
		"mapped", size)
	return s, nil
}

func (d *device) sendUpdate(u *mxcfb.UpdateData) error {
	if err := ioctl(d.fd, mxcfb.MXCFB_SEND_UPDATE, unsafe.Pointer(u)); err != nil {
		return &DeviceError{Op: "ioctl MXCFB_SEND_UPDATE", Path: d.path, Err: err}
	}
	return nil
}

func (d *device) waitForUpdate(m *mxcfb.UpdateMarkerData) error {
	if err := ioctl(d.fd, mxcfb.MXCFB_WAIT_FOR_UPDATE_COMPLETE, unsafe.Pointer(m)); err != nil {
		return &DeviceError{Op: "ioctl MXCFB_WAIT_FOR_UPDATE_COMPLETE", Path: d.path, Err: err}
	}
	return nil
}

func (d *device) close(mem []byte) error {
	err := unix.Munmap(mem)
	if cerr := unix.Close(d.fd); err == nil {
		err = cerr
	}
	if err != nil {
		return &DeviceError{Op: "close", Path: d.path, Err: err}
	}
	return nil
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
