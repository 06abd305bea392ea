// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/quad"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		mode    atlas.Mode
		stride  int
		preview bool
	}{
		{"grey", atlas.ModeGrey, quad.GreyVertexStride, true},
		{"lcd", atlas.ModeLCD, quad.LCDVertexStride, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			d := demo{
				text:     "Hello atlas",
				font:     goregular.TTF,
				size:     16,
				mode:     tt.mode,
				subPixel: true,
				atlasDim: 256,
				atlasOut: filepath.Join(dir, "atlas.png"),
				preview:  filepath.Join(dir, "text.png"),
			}
			res, err := run(d)
			if err != nil {
				if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
					t.Skipf("shader compiler: %v", err)
				}
				t.Fatalf("run() error = %v", err)
			}

			if res.draw.Quads != 10 || res.draw.Whitespace != 1 {
				t.Errorf("draw stats = %+v, want 10 quads 1 whitespace", res.draw)
			}
			if res.spirvWords == 0 {
				t.Error("no SPIR-V words compiled")
			}
			if want := res.draw.Quads * quad.VerticesPerQuad * tt.stride; res.vertexBytes != want {
				t.Errorf("vertexBytes = %d, want %d", res.vertexBytes, want)
			}

			f, err := os.Open(d.atlasOut)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("atlas png: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
				t.Errorf("atlas bounds = %v, want 256x256", b)
			}

			_, err = os.Stat(d.preview)
			if exists := err == nil; exists != tt.preview {
				t.Errorf("preview written = %v, want %v", exists, tt.preview)
			}
		})
	}
}
