// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package framebuffer implements the rasterizer's output-merger
// target: a fixed-size color (RGBA byte) plus depth (float32)
// buffer, and the blit that copies a color or depth plane out to an
// imagef.Image for display or texture reuse.
package framebuffer

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/imagef"
	"github.com/gviegas/raster/linear"
)

const prefix = "framebuffer: "

// Framebuffer is a fixed-size color+depth render target. Dimensions
// are immutable after creation; there is no reallocation.
type Framebuffer struct {
	Width, Height int
	// Color is laid out RGBA, 4 bytes per pixel, row-major.
	Color []byte
	// Depth is one float32 per pixel, row-major. Smaller is closer;
	// the valid range after NDC remap is [0, 1].
	Depth []float32
}

// New creates a Framebuffer cleared to opaque black color and depth
// 1 (the far plane).
//
// width and height must be at least 1; violating this is a contract
// error.
func New(width, height int) *Framebuffer {
	if width < 1 || height < 1 {
		panic(prefix + "width/height must be >= 1")
	}
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]byte, width*height*4),
		Depth:  make([]float32, width*height),
	}
	fb.ClearColor(linear.V4{0, 0, 0, 1})
	fb.ClearDepth(1)
	return fb
}

// ClearColor writes the sRGB-encoded byte quadruple of color to
// every pixel.
func (fb *Framebuffer) ClearColor(color linear.V4) {
	r := byteOf(color[0])
	g := byteOf(color[1])
	b := byteOf(color[2])
	a := byteOf(color[3])
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i+0] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
}

// ClearDepth writes depth to every cell of the depth buffer.
func (fb *Framebuffer) ClearDepth(depth float32) {
	for i := range fb.Depth {
		fb.Depth[i] = depth
	}
}

func byteOf(f float32) byte {
	f = math32.Max(0, math32.Min(1, f))
	return byte(f*255 + 0.5)
}

// BlitOrder selects the channel order used when copying the color
// plane out to an image for the windowing backend.
type BlitOrder int

const (
	// RGB keeps red in the first channel.
	RGB BlitOrder = iota
	// BGR swaps red and blue, matching backends (e.g. Windows GDI)
	// that expect blue-first pixel data.
	BGR
)

// Blit copies the color plane into a freshly allocated 4-channel LDR
// imagef.Image, flipping vertically (framebuffer row 0 is the
// bottom row in most windowing conventions) and reordering channels
// per order.
func (fb *Framebuffer) Blit(order BlitOrder) *imagef.Image {
	img := imagef.NewLDR(fb.Width, fb.Height, 4)
	for y := 0; y < fb.Height; y++ {
		srcRow := (fb.Height - 1 - y) * fb.Width * 4
		dstRow := y * fb.Width * 4
		for x := 0; x < fb.Width; x++ {
			si := srcRow + x*4
			di := dstRow + x*4
			r, g, b, a := fb.Color[si], fb.Color[si+1], fb.Color[si+2], fb.Color[si+3]
			if order == BGR {
				r, b = b, r
			}
			img.LDRPix[di+0] = r
			img.LDRPix[di+1] = g
			img.LDRPix[di+2] = b
			img.LDRPix[di+3] = a
		}
	}
	return img
}

// BlitDepth copies the depth plane into a freshly allocated
// single-channel HDR imagef.Image, flipping vertically like Blit.
func (fb *Framebuffer) BlitDepth() *imagef.Image {
	img := imagef.NewHDR(fb.Width, fb.Height, 1)
	for y := 0; y < fb.Height; y++ {
		srcRow := (fb.Height - 1 - y) * fb.Width
		dstRow := y * fb.Width
		copy(img.HDRPix[dstRow:dstRow+fb.Width], fb.Depth[srcRow:srcRow+fb.Width])
	}
	return img
}
