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

// Package region implements immutable sets of integer pixels.
//
// A [Region] is stored as a list of y-bands.  Within a band all rectangles
// share the same vertical extent, are sorted by x and do not touch.
// Vertically adjacent bands with identical x-intervals are merged.  This
// canonical form makes two regions with the same pixels compare equal.
package region

import (
	"image"
	"slices"
)

// Region is an immutable set of pixels.  The zero value is the empty
// region.  All operations return new regions and leave their operands
// unchanged, so a Region can be shared freely.
type Region struct {
	rects []image.Rectangle
}

// interval is a half-open range [lo, hi) of x coordinates.
type interval struct {
	lo, hi int
}

// FromRect returns the region covering r.
func FromRect(r image.Rectangle) Region {
	if r.Empty() {
		return Region{}
	}
	return Region{rects: []image.Rectangle{r.Canon()}}
}

// FromRects returns the union of the given rectangles.
func FromRects(rects ...image.Rectangle) Region {
	var res Region
	for _, r := range rects {
		res = res.Union(FromRect(r))
	}
	return res
}

// FromAlpha returns the pixels of img whose alpha value is at least
// threshold.  The region uses the coordinates of img.
func FromAlpha(img *image.Alpha, threshold uint8) Region {
	b := img.Bounds()
	var bld builder
	var row []interval
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row = row[:0]
		start := -1
		for x := b.Min.X; x < b.Max.X; x++ {
			in := img.Pix[img.PixOffset(x, y)] >= threshold
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				row = append(row, interval{start, x})
				start = -1
			}
		}
		if start >= 0 {
			row = append(row, interval{start, b.Max.X})
		}
		bld.addBand(y, y+1, row)
	}
	return bld.region()
}

// Empty reports whether the region contains no pixels.
func (r Region) Empty() bool {
	return len(r.rects) == 0
}

// Rects returns the rectangles making up the region, in canonical order.
func (r Region) Rects() []image.Rectangle {
	return slices.Clone(r.rects)
}

// Bounds returns the smallest rectangle containing the region.
func (r Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, rect := range r.rects {
		b = b.Union(rect)
	}
	return b
}

// Area returns the number of pixels in the region.
func (r Region) Area() int {
	n := 0
	for _, rect := range r.rects {
		n += rect.Dx() * rect.Dy()
	}
	return n
}

// Contains reports whether the pixel p is part of the region.
func (r Region) Contains(p image.Point) bool {
	for _, rect := range r.rects {
		if p.In(rect) {
			return true
		}
	}
	return false
}

// Equal reports whether r and o contain the same pixels.
func (r Region) Equal(o Region) bool {
	return slices.Equal(r.rects, o.rects)
}

// Translate returns a copy of r moved by (dx, dy).
func (r Region) Translate(dx, dy int) Region {
	if len(r.rects) == 0 {
		return r
	}
	d := image.Pt(dx, dy)
	res := make([]image.Rectangle, len(r.rects))
	for i, rect := range r.rects {
		res[i] = rect.Add(d)
	}
	return Region{rects: res}
}

// Intersects reports whether r and o have at least one pixel in common.
func (r Region) Intersects(o Region) bool {
	if !r.Bounds().Overlaps(o.Bounds()) {
		return false
	}
	for _, a := range r.rects {
		for _, b := range o.rects {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}

// Union returns the pixels which are in r or in o.
func (r Region) Union(o Region) Region {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	return combine(r, o, func(a, b bool) bool { return a || b })
}

// Intersect returns the pixels which are in both r and o.
func (r Region) Intersect(o Region) Region {
	if r.Empty() || o.Empty() {
		return Region{}
	}
	return combine(r, o, func(a, b bool) bool { return a && b })
}

// Subtract returns the pixels of r which are not in o.
func (r Region) Subtract(o Region) Region {
	if r.Empty() || o.Empty() || !r.Bounds().Overlaps(o.Bounds()) {
		return r
	}
	return combine(r, o, func(a, b bool) bool { return a && !b })
}

// combine applies a pixel-wise boolean operation to two regions.
func combine(a, b Region, op func(inA, inB bool) bool) Region {
	ys := make([]int, 0, 2*(len(a.rects)+len(b.rects)))
	for _, rect := range a.rects {
		ys = append(ys, rect.Min.Y, rect.Max.Y)
	}
	for _, rect := range b.rects {
		ys = append(ys, rect.Min.Y, rect.Max.Y)
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	var bld builder
	var ia, ib, xs []int
	var out []interval
	for k := 0; k+1 < len(ys); k++ {
		y0, y1 := ys[k], ys[k+1]
		ia = a.bandEdges(ia[:0], y0, y1)
		ib = b.bandEdges(ib[:0], y0, y1)

		xs = append(append(xs[:0], ia...), ib...)
		slices.Sort(xs)
		xs = slices.Compact(xs)

		out = out[:0]
		for j := 0; j+1 < len(xs); j++ {
			x0, x1 := xs[j], xs[j+1]
			if !op(inside(ia, x0), inside(ib, x0)) {
				continue
			}
			if n := len(out); n > 0 && out[n-1].hi == x0 {
				out[n-1].hi = x1
			} else {
				out = append(out, interval{x0, x1})
			}
		}
		bld.addBand(y0, y1, out)
	}
	return bld.region()
}

// bandEdges appends the sorted x boundaries of the rectangles covering the
// band [y0, y1) to dst.  Because the region is banded, every rectangle
// either covers the whole band or misses it.
func (r Region) bandEdges(dst []int, y0, y1 int) []int {
	for _, rect := range r.rects {
		if rect.Min.Y <= y0 && y1 <= rect.Max.Y {
			dst = append(dst, rect.Min.X, rect.Max.X)
		}
	}
	return dst
}

// inside reports whether x lies in one of the intervals given by the
// sorted boundary list edges.
func inside(edges []int, x int) bool {
	for i := 0; i+1 < len(edges); i += 2 {
		if edges[i] <= x && x < edges[i+1] {
			return true
		}
	}
	return false
}

// builder assembles a canonical region from bands given top to bottom.
type builder struct {
	rects     []image.Rectangle
	lastStart int // index of the first rectangle of the previous band
	lastY1    int
	hasLast   bool
}

func (b *builder) addBand(y0, y1 int, row []interval) {
	if len(row) == 0 {
		b.hasLast = false
		return
	}
	if b.hasLast && b.lastY1 == y0 && b.sameAsLast(row) {
		for i := b.lastStart; i < len(b.rects); i++ {
			b.rects[i].Max.Y = y1
		}
		b.lastY1 = y1
		return
	}
	b.lastStart = len(b.rects)
	for _, iv := range row {
		b.rects = append(b.rects, image.Rect(iv.lo, y0, iv.hi, y1))
	}
	b.lastY1 = y1
	b.hasLast = true
}

func (b *builder) sameAsLast(row []interval) bool {
	last := b.rects[b.lastStart:]
	if len(last) != len(row) {
		return false
	}
	for i, iv := range row {
		if last[i].Min.X != iv.lo || last[i].Max.X != iv.hi {
			return false
		}
	}
	return true
}

func (b *builder) region() Region {
	return Region{rects: b.rects}
}
