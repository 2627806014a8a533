// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/rawfb"
	"github.com/gogpu/rawfb/scene"
)

// Errors returned by New.
var (
	// ErrNilSurface is returned when New is called without a surface.
	ErrNilSurface = errors.New("render: nil surface")

	// ErrInvalidCanvas is returned when the scene has no drawable area.
	ErrInvalidCanvas = errors.New("render: invalid canvas size")
)

// Renderer composes scene frames and flushes them to a device surface.
type Renderer struct {
	dev    rawfb.Surface
	cfg    scene.Config
	opts   options
	center rawfb.Point

	// frame is the composition frame, the size of dev.
	frame *rawfb.Pixmap

	// canvas holds the scene, the size of cfg.
	canvas *rawfb.Pixmap

	log *slog.Logger
}

// Stats summarizes a Run.
type Stats struct {
	Frames  int
	Elapsed time.Duration

	// Final is the state after the last rendered frame was advanced.
	Final scene.State
}

// FPS returns the mean frame rate, or 0 when no time has passed.
func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// New creates a renderer drawing the scene described by cfg onto dev.
//
// The canvas is centered on dev unless WithCanvasCenter says otherwise. A
// canvas larger than dev is clipped at the surface edges.
func New(dev rawfb.Surface, cfg scene.Config, opts ...Option) (*Renderer, error) {
	if dev == nil {
		return nil, ErrNilSurface
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, cfg.Width, cfg.Height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		dev:    dev,
		cfg:    cfg,
		opts:   o,
		center: rawfb.Pt(dev.Width()/2, dev.Height()/2),
		frame:  rawfb.NewPixmap(dev.Width(), dev.Height()),
		canvas: rawfb.NewPixmap(cfg.Width, cfg.Height),
		log:    rawfb.LoggerFor("render"),
	}
	if o.center != nil {
		r.center = *o.center
	}

	r.log.Debug("renderer ready",
		slog.Int("surface_width", dev.Width()),
		slog.Int("surface_height", dev.Height()),
		slog.Int("stride", dev.Stride()),
		slog.Int("bytes_per_pixel", dev.BytesPerPixel()),
		slog.Int("canvas_width", cfg.Width),
		slog.Int("canvas_height", cfg.Height),
		slog.Int("center_x", r.center.X),
		slog.Int("center_y", r.center.Y))
	return r, nil
}

// Canvas returns the canvas pixmap holding the most recently drawn scene.
func (r *Renderer) Canvas() *rawfb.Pixmap {
	return r.canvas
}

// Frame returns the composition frame most recently flushed.
func (r *Renderer) Frame() *rawfb.Pixmap {
	return r.frame
}

// RenderFrame draws s and flushes one full frame to the surface.
func (r *Renderer) RenderFrame(s scene.State) {
	r.frame.Clear(r.opts.background)

	r.canvas.Clear(r.opts.canvasColor)
	scene.Draw(r.canvas, r.cfg, s)

	rawfb.Overlay(r.frame, r.canvas, r.center, rawfb.OverlayOptions{
		Border:      r.opts.drawBorder,
		BorderColor: r.opts.border,
	})
	rawfb.FlushToSurface(r.frame, r.dev)
}

// Run renders frames starting from s until cont returns false or ctx is
// done. A nil cont runs until ctx is done.
//
// cont is asked before every frame with the number of frames rendered so
// far. Run returns ctx.Err() when the context ends the loop and nil when
// cont does; Stats is valid in both cases.
func (r *Renderer) Run(ctx context.Context, s scene.State, cont func(frame int) bool) (Stats, error) {
	start := time.Now()
	stats := Stats{Final: s}

	r.log.Info("frame loop started",
		slog.Int("canvas_width", r.cfg.Width),
		slog.Int("canvas_height", r.cfg.Height))

	var err error
	for cont == nil || cont(stats.Frames) {
		if err = ctx.Err(); err != nil {
			break
		}

		r.RenderFrame(s)
		if r.opts.hook != nil {
			if herr := r.opts.hook(stats.Frames, r.dev); herr != nil {
				r.log.Warn("frame hook failed",
					slog.Int("frame", stats.Frames),
					slog.String("error", herr.Error()))
			}
		}

		s = scene.Advance(r.cfg, s)
		stats.Frames++
		stats.Final = s
	}

	stats.Elapsed = time.Since(start)
	r.log.Info("frame loop stopped",
		slog.Int("frames", stats.Frames),
		slog.Duration("elapsed", stats.Elapsed),
		slog.Float64("fps", stats.FPS()))
	return stats, err
}
