// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render runs the frame loop that puts the scene on a device.
//
// Every frame goes through the same pipeline:
//
//  1. clear the composition frame to the background color
//  2. clear the canvas and draw the scene on it
//  3. overlay the canvas, with its border, centered on the frame
//  4. flush the frame to the device surface
//
// The composition frame has the size of the surface and the canvas has the
// size of the scene. Both are owned by the [Renderer] and reused for every
// frame, so the loop does not allocate.
//
// # Example
//
//	dev, err := surface.Open(surface.Options{Device: "/dev/fb0"})
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//
//	cfg := scene.DefaultConfig()
//	r, err := render.New(dev, cfg)
//	if err != nil {
//	    return err
//	}
//	stats, err := r.Run(ctx, scene.NewState(cfg), nil)
//
// Thread Safety: a Renderer must be used from a single goroutine.
package render
