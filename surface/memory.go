// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gputypes"

// Memory is a Device backed by an ordinary byte slice.
//
// It lays pixels out exactly like a 32-bit framebuffer, so frames flushed to
// it can be inspected byte for byte or turned into images with Snapshot.
type Memory struct {
	width  int
	height int
	stride int
	bpp    int
	pix    []byte
	closed bool
}

// NewMemory creates a packed 32-bit surface: 4 bytes per pixel and no row padding.
func NewMemory(width, height int) (*Memory, error) {
	return NewMemoryWithStride(width, height, width*4, 4)
}

// NewMemoryWithStride creates a surface with explicit row stride and pixel
// size in bytes. The stride must hold at least width pixels.
func NewMemoryWithStride(width, height, stride, bytesPerPixel int) (*Memory, error) {
	if width <= 0 || height <= 0 || bytesPerPixel <= 0 || stride < width*bytesPerPixel {
		return nil, ErrInvalidSize
	}
	if bytesPerPixel < 3 {
		return nil, &PixelFormatError{BitsPerPixel: bytesPerPixel * 8}
	}
	return &Memory{
		width:  width,
		height: height,
		stride: stride,
		bpp:    bytesPerPixel,
		// One spare pixel so the alpha byte of the last 24-bit pixel fits.
		pix: make([]byte, stride*height+4),
	}, nil
}

// Width returns the surface width in pixels.
func (m *Memory) Width() int {
	return m.width
}

// Height returns the surface height in pixels.
func (m *Memory) Height() int {
	return m.height
}

// Stride returns the number of bytes per row.
func (m *Memory) Stride() int {
	return m.stride
}

// BytesPerPixel returns the pixel size in bytes.
func (m *Memory) BytesPerPixel() int {
	return m.bpp
}

// Pix returns the backing memory, or nil after Close.
func (m *Memory) Pix() []byte {
	if m.closed {
		return nil
	}
	return m.pix
}

// Format returns BGRA8Unorm for 4-byte pixels and Undefined otherwise.
func (m *Memory) Format() gputypes.TextureFormat {
	return formatFor(m.bpp)
}

// Close drops the backing memory.
func (m *Memory) Close() error {
	m.closed = true
	m.pix = nil
	return nil
}
