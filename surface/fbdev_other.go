// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !linux

package surface

const fbdevSupported = false

// OpenFramebuffer always fails: fbdev exists only on Linux.
func OpenFramebuffer(string) (*Framebuffer, error) {
	return nil, ErrUnsupported
}

// Close is a no-op on platforms without fbdev.
func (f *Framebuffer) Close() error {
	return nil
}
