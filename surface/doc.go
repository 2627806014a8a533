// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides device surfaces that rawfb frames are flushed to.
//
// A Device is the byte-level target of [rawfb.FlushToSurface]: a block of
// memory with a row stride and a pixel size, receiving B, G, R, A bytes per
// pixel. The package ships two implementations:
//
//   - Framebuffer: the Linux fbdev device (/dev/fb0) mapped into memory
//   - Memory: a plain byte slice, for tests and headless rendering
//
// # Registry
//
// Backends are selected through a registry, the same way third-party
// backends are plugged in:
//
//	surface.Register("spi", 50, spiFactory, spiAvailable)
//
//	// Best available backend (fbdev first, memory last):
//	dev, err := surface.Open(surface.Options{Width: 1366, Height: 768})
//
//	// A specific backend:
//	dev, err := surface.OpenByName("fbdev", surface.Options{Device: "/dev/fb1"})
//
// # Snapshots
//
// [Snapshot] decodes any Device back into an *image.RGBA, which
// [SaveSnapshot] writes as PNG or BMP, optionally scaled up.
package surface
