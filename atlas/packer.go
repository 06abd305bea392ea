// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

// Packer places rectangles in two dimensional atlas space.
type Packer interface {
	// Add places r, filling in its X and Y. It returns false when no space
	// remains; exhaustion is an ordinary outcome, not an error.
	Add(r *Rect) bool

	// Reset forgets every placement.
	Reset()
}

// ShelfPacker implements shelf-based rectangle packing.
//
// Rectangles are placed left to right on horizontal shelves. A shelf is as
// tall as the tallest rectangle placed on it; when no shelf has room a new one
// is opened below the last. Glyphs of one strike have similar heights, which
// keeps the wasted space per shelf small.
type ShelfPacker struct {
	width   int
	height  int
	shelves []shelf

	usedArea int
}

type shelf struct {
	y      int // top edge
	height int // tallest item so far
	x      int // next free column
}

// NewShelfPacker creates a packer for a width x height surface.
func NewShelfPacker(width, height int) *ShelfPacker {
	return &ShelfPacker{
		width:   width,
		height:  height,
		shelves: make([]shelf, 0, 16),
	}
}

// Add places r on the first shelf that can hold it.
func (p *ShelfPacker) Add(r *Rect) bool {
	w, h := r.Width, r.Height
	if w < 0 || h < 0 || w > p.width || h > p.height {
		return false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+w > p.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow, and only into free space below.
			if i != len(p.shelves)-1 || s.y+h > p.height {
				continue
			}
			s.height = h
		}
		r.X, r.Y = s.x, s.y
		s.x += w
		p.usedArea += w * h
		return true
	}

	y := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		y = last.y + last.height
	}
	if y+h > p.height {
		return false
	}
	p.shelves = append(p.shelves, shelf{y: y, height: h, x: w})
	r.X, r.Y = 0, y
	p.usedArea += w * h
	return true
}

// Reset clears all placements, keeping the shelf storage.
func (p *ShelfPacker) Reset() {
	p.shelves = p.shelves[:0]
	p.usedArea = 0
}

// Utilization returns the fraction of the surface covered by placements (0.0 to 1.0).
func (p *ShelfPacker) Utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}

// ShelfCount returns the number of open shelves.
func (p *ShelfPacker) ShelfCount() int {
	return len(p.shelves)
}

// CanFit reports whether a w x h rectangle could be placed without changing state.
func (p *ShelfPacker) CanFit(w, h int) bool {
	if w < 0 || h < 0 || w > p.width || h > p.height {
		return false
	}
	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+w > p.width {
			continue
		}
		if h <= s.height {
			return true
		}
		if i == len(p.shelves)-1 && s.y+h <= p.height {
			return true
		}
	}
	y := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		y = last.y + last.height
	}
	return y+h <= p.height
}
