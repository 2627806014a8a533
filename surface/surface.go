// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"strconv"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/rawfb"
)

// DefaultDevice is the framebuffer device node opened when Options.Device is empty.
const DefaultDevice = "/dev/fb0"

// Device is a surface rawfb can flush frames to.
//
// Devices are NOT thread-safe. A frame loop owns its device exclusively.
type Device interface {
	rawfb.Surface

	// Format describes the pixel layout of Pix.
	// 32-bit devices report gputypes.TextureFormatBGRA8Unorm.
	Format() gputypes.TextureFormat

	// Close releases the device memory.
	// After Close, the device must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Options configures device creation.
type Options struct {
	// Width and Height size in-memory devices. Hardware devices report
	// their own geometry and ignore them.
	Width  int
	Height int

	// Device is the framebuffer node for the fbdev backend.
	// Defaults to DefaultDevice.
	Device string
}

// Errors.
var (
	// ErrUnsupported is returned when a backend cannot run on this platform.
	ErrUnsupported = errors.New("surface: unsupported on this platform")

	// ErrInvalidSize is returned for non-positive device dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// PixelFormatError reports a device pixel depth that cannot hold B, G, R, A bytes.
type PixelFormatError struct {
	BitsPerPixel int
}

func (e *PixelFormatError) Error() string {
	return "surface: unsupported pixel depth: " + strconv.Itoa(e.BitsPerPixel) + " bits"
}

// formatFor maps a pixel size in bytes to its texture format.
func formatFor(bytesPerPixel int) gputypes.TextureFormat {
	if bytesPerPixel == 4 {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatUndefined
}
