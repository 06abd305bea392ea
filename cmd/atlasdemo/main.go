// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command atlasdemo shapes a string, draws it through a glyph cache and
// writes the resulting atlas texture and a CPU preview as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/glyphatlas/quad"
	"github.com/gogpu/glyphatlas/raster"
	"github.com/gogpu/glyphatlas/shape"
)

// demo holds the command line settings.
type demo struct {
	text     string
	font     []byte
	size     float64
	mode     atlas.Mode
	subPixel bool
	atlasDim int
	atlasOut string
	preview  string
}

// result summarizes a demo run.
type result struct {
	draw        quad.Stats
	cache       cache.Stats
	cached      int
	resets      uint64
	spirvWords  int
	vertexBytes int
}

func main() {
	var (
		text     = flag.String("text", "The quick brown fox jumps over the lazy dog", "text to draw")
		fontPath = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular)")
		size     = flag.Float64("size", 24, "font size in pixels per em")
		lcd      = flag.Bool("lcd", false, "render LCD subpixel masks")
		subPixel = flag.Bool("subpixel", true, "position glyphs at quarter pixels")
		atlasDim = flag.Int("atlas-size", 256, "atlas width and height")
		atlasOut = flag.String("atlas", "atlas.png", "atlas output file")
		preview  = flag.String("output", "text.png", "preview output file (greyscale only)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	d := demo{
		text:     *text,
		font:     goregular.TTF,
		size:     *size,
		mode:     atlas.ModeGrey,
		subPixel: *subPixel,
		atlasDim: *atlasDim,
		atlasOut: *atlasOut,
		preview:  *preview,
	}
	if *fontPath != "" {
		b, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		d.font = b
	}
	if *lcd {
		d.mode = atlas.ModeLCD
	}

	res, err := run(d)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Drew %d quads (%d whitespace, %d skipped), %d glyphs cached, hit rate %.2f, %d atlas resets\n",
		res.draw.Quads, res.draw.Whitespace, res.draw.Skipped, res.cached, res.cache.HitRate(), res.resets)
	log.Printf("%v pipeline: %d SPIR-V words, %d vertex bytes flushed\n", d.mode, res.spirvWords, res.vertexBytes)
	log.Printf("Atlas saved to %s (%dx%d)\n", d.atlasOut, d.atlasDim, d.atlasDim)
}

// run shapes and draws d.text, encoding every flushed batch for the glyph
// pipeline, and writes the atlas and (for greyscale) a preview image.
func run(d demo) (result, error) {
	var res result

	fnt, err := raster.ParseFont(d.font)
	if err != nil {
		return res, fmt.Errorf("parse font: %w", err)
	}
	strike, err := raster.NewStrike(fnt, raster.StrikeConfig{Size: d.size, Mode: d.mode, SubPixel: d.subPixel})
	if err != nil {
		return res, fmt.Errorf("create strike: %w", err)
	}
	shaper, err := shape.NewShaper(d.font)
	if err != nil {
		return res, fmt.Errorf("create shaper: %w", err)
	}

	reg, err := atlas.NewRegistry(atlas.MemoryFactory, atlas.Config{
		Width:  d.atlasDim,
		Height: d.atlasDim,
		Format: gputypes.TextureFormatR8Unorm,
	})
	if err != nil {
		return res, fmt.Errorf("atlas configuration: %w", err)
	}

	glyphs, err := shaper.Shape(d.text, d.size)
	if err != nil {
		return res, fmt.Errorf("shape text: %w", err)
	}

	w := int(glyphs.Advance) + 20
	h := int(d.size*2) + 20
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	spirv, err := quad.CompileShader(d.mode)
	if err != nil {
		return res, err
	}
	res.spirvWords = len(spirv)

	var tex *atlas.MemoryTexture
	ctx, err := glyphatlas.NewContext(reg, glyphatlas.ContextOptions{
		Flush: func(m atlas.Mode, vs []quad.Vertex) {
			res.vertexBytes += len(quad.EncodeVertices(vs, m))
			if m == atlas.ModeGrey {
				composite(canvas, tex, vs)
			}
		},
	})
	if err != nil {
		return res, err
	}
	defer ctx.Close()

	gc, err := ctx.NewCache(strike)
	if err != nil {
		return res, err
	}
	tex = gc.Allocator().Texture().(*atlas.MemoryTexture)

	black := gputypes.ColorBlack
	red := gputypes.ColorRed
	res.draw, err = ctx.DrawText(gc, glyphs, 10, 10+d.size, quad.Options{
		Start:      0,
		End:        3,
		RangeColor: &red,
		TextColor:  &black,
	})
	if err != nil {
		return res, err
	}
	ctx.Flush()

	res.cache = gc.Stats()
	res.cached = gc.Len()
	res.resets = gc.Allocator().Resets()

	if err := savePNG(d.atlasOut, tex.Image()); err != nil {
		return res, fmt.Errorf("save atlas: %w", err)
	}
	if d.mode == atlas.ModeGrey {
		if err := savePNG(d.preview, canvas); err != nil {
			return res, fmt.Errorf("save preview: %w", err)
		}
	}
	return res, nil
}

// composite draws greyscale quads onto dst by masking a solid color with
// atlas coverage.
func composite(dst *image.RGBA, tex *atlas.MemoryTexture, vs []quad.Vertex) {
	cov := tex.Image()
	tw, th := float32(tex.Width()), float32(tex.Height())
	for i := 0; i+quad.VerticesPerQuad <= len(vs); i += quad.VerticesPerQuad {
		tl, br := vs[i], vs[i+4]
		r := image.Rect(int(tl.X), int(tl.Y), int(br.X), int(br.Y))
		sp := image.Pt(int(tl.U*tw+0.5), int(tl.V*th+0.5))
		c := tl.Color
		src := image.NewUniform(color.NRGBA{
			R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255), A: uint8(c.A * 255),
		})
		draw.DrawMask(dst, r, src, image.Point{}, cov, sp, draw.Over)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
