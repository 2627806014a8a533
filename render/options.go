// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/rawfb"

// FrameHook is called after each frame has been flushed to the surface.
// frame counts from zero. An error is logged and the loop continues.
type FrameHook func(frame int, dev rawfb.Surface) error

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.New(dev, cfg,
//	    render.WithBackground(rawfb.Gray(20)),
//	    render.WithBorder(rawfb.White),
//	)
type Option func(*options)

type options struct {
	background  rawfb.RGB
	border      rawfb.RGB
	drawBorder  bool
	canvasColor rawfb.RGB
	center      *rawfb.Point
	hook        FrameHook
}

// defaultOptions matches the look of the stock scene: a dark grey frame and
// a mid grey border around a black canvas.
func defaultOptions() options {
	return options{
		background:  rawfb.Gray(33),
		border:      rawfb.Gray(99),
		drawBorder:  true,
		canvasColor: rawfb.Black,
	}
}

// WithBackground sets the color the composition frame is cleared to.
func WithBackground(c rawfb.RGB) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithBorder sets the color of the one pixel border around the canvas.
func WithBorder(c rawfb.RGB) Option {
	return func(o *options) {
		o.border = c
		o.drawBorder = true
	}
}

// WithoutBorder disables the canvas border.
func WithoutBorder() Option {
	return func(o *options) {
		o.drawBorder = false
	}
}

// WithCanvasColor sets the color the canvas is cleared to before drawing.
func WithCanvasColor(c rawfb.RGB) Option {
	return func(o *options) {
		o.canvasColor = c
	}
}

// WithCanvasCenter places the canvas center at p on the surface instead of
// the surface center.
func WithCanvasCenter(p rawfb.Point) Option {
	return func(o *options) {
		o.center = &p
	}
}

// WithFrameHook installs a hook called after every flushed frame.
func WithFrameHook(h FrameHook) Option {
	return func(o *options) {
		o.hook = h
	}
}
