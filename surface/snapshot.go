// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/gogpu/rawfb"
)

// Snapshot decodes the visible pixels of s, stored as B, G, R bytes at
// x*BytesPerPixel + y*Stride, into a new opaque RGBA image.
func Snapshot(s rawfb.Surface) *image.RGBA {
	w, h := s.Width(), s.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	pix, bpp, stride := s.Pix(), s.BytesPerPixel(), s.Stride()

	for y := range h {
		for x := range w {
			off := x*bpp + y*stride
			if off < 0 || off+3 > len(pix) {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = pix[off+2]
			img.Pix[i+1] = pix[off+1]
			img.Pix[i+2] = pix[off+0]
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// keeping pixel edges sharp. Factors below 2 return an unscaled copy.
func Scale(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	factor = max(factor, 1)
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	if factor == 1 {
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// UnknownFormatError reports a snapshot path with an unsupported extension.
type UnknownFormatError struct {
	Ext string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("surface: unknown snapshot format %q (want .png or .bmp)", e.Ext)
}

// Encode writes img to w in the format named by ext (".png" or ".bmp").
func Encode(w io.Writer, img image.Image, ext string) error {
	enc, err := encoderFor(ext)
	if err != nil {
		return err
	}
	return enc(w, img)
}

func encoderFor(ext string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, &UnknownFormatError{Ext: ext}
	}
}

// SaveSnapshot writes img, scaled by scale, to path. The file extension
// selects the format.
func SaveSnapshot(path string, img image.Image, scale int) (err error) {
	enc, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("surface: create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("surface: close snapshot: %w", cerr)
		}
	}()

	if scale > 1 {
		img = Scale(img, scale)
	}
	if err := enc(f, img); err != nil {
		return fmt.Errorf("surface: encode snapshot: %w", err)
	}
	return nil
}
