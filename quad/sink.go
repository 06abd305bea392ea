// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package quad

import "github.com/gogpu/gputypes"

// Quad is a screen-aligned rectangle with atlas texture coordinates.
type Quad struct {
	X1, Y1, X2, Y2 float32 // device space corners
	U1, V1, U2, V2 float32 // normalized atlas coordinates
}

// LCDQuad is a Quad with a second coordinate set normalized to the
// destination surface, used by the LCD compositing shader to read the
// destination pixels under each sample.
type LCDQuad struct {
	Quad
	DstU1, DstV1, DstU2, DstV2 float32
}

// VertexSink receives quads from a Renderer.
type VertexSink interface {
	// SetPerVertexColor sets the color of subsequently added quads.
	SetPerVertexColor(c gputypes.Color)
	AddQuad(q Quad)
	AddLCDQuad(q LCDQuad)
}

// Vertex is one corner of a batched quad.
type Vertex struct {
	X, Y       float32
	U, V       float32
	DstU, DstV float32
	Color      gputypes.Color
}

// VerticesPerQuad is the number of vertices a quad expands to: two triangles.
const VerticesPerQuad = 6

// Batch accumulates quads as triangle vertices until flushed.
type Batch struct {
	vertices     []Vertex
	color        gputypes.Color
	colorChanges int
}

var _ VertexSink = (*Batch)(nil)

// NewBatch creates a batch with room for capacity quads. The initial color
// is opaque white.
func NewBatch(capacity int) *Batch {
	return &Batch{
		vertices: make([]Vertex, 0, capacity*VerticesPerQuad),
		color:    gputypes.ColorWhite,
	}
}

// SetPerVertexColor sets the color of subsequently added quads.
func (b *Batch) SetPerVertexColor(c gputypes.Color) {
	b.color = c
	b.colorChanges++
}

// Color returns the color applied to new quads.
func (b *Batch) Color() gputypes.Color { return b.color }

// ColorChanges returns how many times the color was set since the batch was created.
func (b *Batch) ColorChanges() int { return b.colorChanges }

// AddQuad appends a greyscale quad.
func (b *Batch) AddQuad(q Quad) {
	b.add(q, 0, 0, 0, 0)
}

// AddLCDQuad appends an LCD quad with destination coordinates.
func (b *Batch) AddLCDQuad(q LCDQuad) {
	b.add(q.Quad, q.DstU1, q.DstV1, q.DstU2, q.DstV2)
}

func (b *Batch) add(q Quad, du1, dv1, du2, dv2 float32) {
	c := b.color
	tl := Vertex{X: q.X1, Y: q.Y1, U: q.U1, V: q.V1, DstU: du1, DstV: dv1, Color: c}
	tr := Vertex{X: q.X2, Y: q.Y1, U: q.U2, V: q.V1, DstU: du2, DstV: dv1, Color: c}
	bl := Vertex{X: q.X1, Y: q.Y2, U: q.U1, V: q.V2, DstU: du1, DstV: dv2, Color: c}
	br := Vertex{X: q.X2, Y: q.Y2, U: q.U2, V: q.V2, DstU: du2, DstV: dv2, Color: c}
	b.vertices = append(b.vertices, tl, tr, bl, tr, br, bl)
}

// Len returns the number of buffered vertices.
func (b *Batch) Len() int { return len(b.vertices) }

// Quads returns the number of buffered quads.
func (b *Batch) Quads() int { return len(b.vertices) / VerticesPerQuad }

// Vertices returns the buffered vertices. The slice is reused after Flush.
func (b *Batch) Vertices() []Vertex { return b.vertices }

// Flush passes the buffered vertices to fn, if any, and empties the batch.
// fn must not retain the slice.
func (b *Batch) Flush(fn func([]Vertex)) {
	if len(b.vertices) == 0 {
		return
	}
	if fn != nil {
		fn(b.vertices)
	}
	b.vertices = b.vertices[:0]
}

// Reset discards buffered vertices without flushing.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
}
