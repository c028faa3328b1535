// seehuhn.de/go/lightly - rounded window corners for compositors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster computes anti-aliased pixel coverage for filled paths.
//
// The corner masks of the effect are built from the coverage values
// delivered by a [Rasterizer]: a pixel fully inside the shape has coverage
// 1, a pixel fully outside has coverage 0, and pixels on the boundary get
// the exact fraction of their area covered by the shape.
package raster

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer converts closed paths to per-pixel coverage values.
// Create one instance and reuse it; internal buffers grow as needed but
// never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it. Must be positive.
	Flatness float64

	// smallPathThreshold is the maximal bounding box area (in pixels) for
	// which 2D accumulation buffers are used. Larger paths are processed
	// one scanline at a time using an active edge list.
	smallPathThreshold int

	cover       []float32 // signed cover change per pixel; reused as output
	area        []float32 // area contribution within the pixel
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	bboxFirst bool
	devXMin   float64
	devXMax   float64
	devYMin   float64
	devYMax   float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, the
// identity transformation and the default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowHasEdges = r.rowHasEdges[:0]
}

// FillNonZero fills the path using the nonzero winding rule. The emit
// callback receives coverage row-by-row; its slice argument is valid only
// during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule. The emit callback
// receives coverage row-by-row; its slice argument is valid only during
// the call.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillEvenOdd, emit)
}

// Coverage fills the path with the nonzero rule and returns the coverage
// of every pixel inside the clip rectangle, in row-major order.
// The returned slice is newly allocated.
func (r *Rasterizer) Coverage(p *path.Data) []float32 {
	bounds := ClipBounds(r.Clip)
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]float32, w*h)
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := out[(y-bounds.Min.Y)*w+xMin-bounds.Min.X:]
		copy(row, coverage)
	})
	return out
}

// ClipBounds converts an integer-aligned clip rectangle to image bounds.
func ClipBounds(clip rect.Rect) image.Rectangle {
	return image.Rect(int(clip.LLx), int(clip.LLy), int(clip.URx), int(clip.URy))
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectPathEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  Callers which need accurate coverage, like the corner masks,
	// set a smaller value.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the bounding box area (in pixels) below which
	// 2D accumulation buffers are used.
	smallPathThreshold = 65536
)
