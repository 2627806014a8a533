// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package surface

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gogpu/rawfb"
)

// ioctl requests from <linux/fb.h>.
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

const fbdevSupported = true

// OpenFramebuffer opens the fbdev node at path (DefaultDevice if empty),
// reads its geometry and maps its memory for reading and writing.
func OpenFramebuffer(path string) (*Framebuffer, error) {
	if path == "" {
		path = DefaultDevice
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("surface: open %s: %w", path, err)
	}

	fb, err := mapFramebuffer(path, fd)
	if err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	rawfb.LoggerFor("surface").Info("framebuffer mapped",
		"device", path,
		"id", fb.id,
		"width", fb.width,
		"height", fb.height,
		"stride", fb.stride,
		"bytes_per_pixel", fb.bpp,
		"mapped", len(fb.mem))
	return fb, nil
}

func mapFramebuffer(path string, fd int) (*Framebuffer, error) {
	var fix fixScreenInfo
	if err := ioctl(fd, fbioGetFScreenInfo, unsafe.Pointer(&fix)); err != nil {
		return nil, fmt.Errorf("surface: read fixed screen info of %s: %w", path, err)
	}
	var v varScreenInfo
	if err := ioctl(fd, fbioGetVScreenInfo, unsafe.Pointer(&v)); err != nil {
		return nil, fmt.Errorf("surface: read variable screen info of %s: %w", path, err)
	}

	fb, err := newFramebuffer(path, fd, &fix, &v)
	if err != nil {
		return nil, err
	}

	mem, err := unix.Mmap(fd, 0, int(fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("surface: mmap %s: %w", path, err)
	}
	fb.mem = mem
	return fb, nil
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Close unmaps the device memory and closes the device.
func (f *Framebuffer) Close() error {
	if f.mem == nil && f.fd < 0 {
		return nil
	}
	var errs []error
	if f.mem != nil {
		if err := unix.Munmap(f.mem); err != nil {
			errs = append(errs, fmt.Errorf("surface: munmap %s: %w", f.path, err))
		}
		f.mem = nil
	}
	if f.fd >= 0 {
		if err := unix.Close(f.fd); err != nil {
			errs = append(errs, fmt.Errorf("surface: close %s: %w", f.path, err))
		}
		f.fd = -1
	}
	return errors.Join(errs...)
}
