// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package quad

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/naga"
)

//go:embed shaders/glyph_grey.wgsl
var greyShaderSource string

//go:embed shaders/glyph_lcd.wgsl
var lcdShaderSource string

// Vertex strides in bytes. Greyscale vertices are position, uv and color;
// LCD vertices add the destination uv before the color.
const (
	GreyVertexStride = (2 + 2 + 4) * 4
	LCDVertexStride  = (2 + 2 + 2 + 4) * 4
)

// ShaderSource returns the WGSL source of the glyph pipeline for mode.
func ShaderSource(mode atlas.Mode) string {
	if mode == atlas.ModeLCD {
		return lcdShaderSource
	}
	return greyShaderSource
}

// CompileShader compiles the glyph pipeline for mode to SPIR-V words.
func CompileShader(mode atlas.Mode) ([]uint32, error) {
	spirv, err := naga.Compile(ShaderSource(mode))
	if err != nil {
		return nil, fmt.Errorf("quad: compile %v glyph shader: %w", mode, err)
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}

// EncodeVertices packs vertices into the vertex buffer layout of the glyph
// pipeline for mode.
func EncodeVertices(vs []Vertex, mode atlas.Mode) []byte {
	stride := GreyVertexStride
	if mode == atlas.ModeLCD {
		stride = LCDVertexStride
	}
	buf := make([]byte, 0, len(vs)*stride)
	put := func(f float32) {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for i := range vs {
		v := &vs[i]
		put(v.X)
		put(v.Y)
		put(v.U)
		put(v.V)
		if mode == atlas.ModeLCD {
			put(v.DstU)
			put(v.DstV)
		}
		put(float32(v.Color.R))
		put(float32(v.Color.G))
		put(float32(v.Color.B))
		put(float32(v.Color.A))
	}
	return buf
}
