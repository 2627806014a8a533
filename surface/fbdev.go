// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gputypes"

// fixScreenInfo mirrors struct fb_fix_screeninfo from <linux/fb.h>.
type fixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// bitfield mirrors struct fb_bitfield.
type bitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo from <linux/fb.h>.
type varScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync                     uint32
	VMode                    uint32
	Rotate                   uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// Framebuffer is a Linux fbdev device mapped into memory.
//
// Writes to Pix go straight to the display. There is no vsync handshake, so
// a frame flushed while the display scans out may tear.
type Framebuffer struct {
	path   string
	fd     int
	mem    []byte
	width  int
	height int
	stride int
	bpp    int
	id     string
}

// newFramebuffer validates the screen info read from the device.
func newFramebuffer(path string, fd int, fix *fixScreenInfo, v *varScreenInfo) (*Framebuffer, error) {
	bits := int(v.BitsPerPixel)
	if bits != 24 && bits != 32 {
		return nil, &PixelFormatError{BitsPerPixel: bits}
	}
	if v.XRes == 0 || v.YRes == 0 || fix.LineLength == 0 || fix.SmemLen == 0 {
		return nil, ErrInvalidSize
	}
	return &Framebuffer{
		path:   path,
		fd:     fd,
		width:  int(v.XRes),
		height: int(v.YRes),
		stride: int(fix.LineLength),
		bpp:    bits / 8,
		id:     cString(fix.ID[:]),
	}, nil
}

// Width returns the visible width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the visible height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Stride returns the line length in bytes.
func (f *Framebuffer) Stride() int {
	return f.stride
}

// BytesPerPixel returns bits_per_pixel / 8.
func (f *Framebuffer) BytesPerPixel() int {
	return f.bpp
}

// Pix returns the mapped device memory, or nil after Close.
func (f *Framebuffer) Pix() []byte {
	return f.mem
}

// Format returns BGRA8Unorm for 32-bit devices.
func (f *Framebuffer) Format() gputypes.TextureFormat {
	return formatFor(f.bpp)
}

// ID returns the driver identification string.
func (f *Framebuffer) ID() string {
	return f.id
}

// cString returns the bytes of b up to the first NUL.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
