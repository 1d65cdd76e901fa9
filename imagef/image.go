// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package imagef implements the pixel-buffer substrate the
// rasterizer's textures and framebuffer blits are built on: an LDR
// (byte) or HDR (float) 2D image, format conversion, flips, resize
// and a TGA subset codec.
package imagef

import (
	"github.com/chewxy/math32"
)

const prefix = "imagef: "

// Format identifies an Image's element format.
type Format int

const (
	// LDR stores one unsigned byte per channel.
	LDR Format = iota
	// HDR stores one 32-bit float per channel.
	HDR
)

// Image is a dense 2D pixel buffer in one of two element formats.
// Exactly one of LDRPix/HDRPix is populated, matching Format.
type Image struct {
	Width    int
	Height   int
	Channels int
	Format   Format
	LDRPix   []byte
	HDRPix   []float32
}

// NewLDR creates a zeroed LDR image.
//
// width and height must be at least 1, and channels must be one of
// 1, 2, 3 or 4; violating this is a contract error.
func NewLDR(width, height, channels int) *Image {
	checkDims(width, height, channels)
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Format:   LDR,
		LDRPix:   make([]byte, width*height*channels),
	}
}

// NewHDR creates a zeroed HDR image.
//
// width and height must be at least 1, and channels must be one of
// 1, 2, 3 or 4; violating this is a contract error.
func NewHDR(width, height, channels int) *Image {
	checkDims(width, height, channels)
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Format:   HDR,
		HDRPix:   make([]float32, width*height*channels),
	}
}

func checkDims(width, height, channels int) {
	if width < 1 || height < 1 {
		panic(prefix + "width/height must be >= 1")
	}
	switch channels {
	case 1, 2, 3, 4:
	default:
		panic(prefix + "unsupported channel count")
	}
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	c := *img
	if img.LDRPix != nil {
		c.LDRPix = append([]byte(nil), img.LDRPix...)
	}
	if img.HDRPix != nil {
		c.HDRPix = append([]float32(nil), img.HDRPix...)
	}
	return &c
}

// FlipH flips img horizontally, in place.
func (img *Image) FlipH() {
	w, h, c := img.Width, img.Height, img.Channels
	half := w / 2
	for y := 0; y < h; y++ {
		for x := 0; x < half; x++ {
			img.swapPixels(y*w+x, y*w+(w-1-x), c)
		}
	}
}

// FlipV flips img vertically, in place.
func (img *Image) FlipV() {
	w, h, c := img.Width, img.Height, img.Channels
	half := h / 2
	for y := 0; y < half; y++ {
		for x := 0; x < w; x++ {
			img.swapPixels(y*w+x, (h-1-y)*w+x, c)
		}
	}
}

func (img *Image) swapPixels(a, b, c int) {
	switch img.Format {
	case LDR:
		for k := 0; k < c; k++ {
			ia, ib := a*c+k, b*c+k
			img.LDRPix[ia], img.LDRPix[ib] = img.LDRPix[ib], img.LDRPix[ia]
		}
	case HDR:
		for k := 0; k < c; k++ {
			ia, ib := a*c+k, b*c+k
			img.HDRPix[ia], img.HDRPix[ib] = img.HDRPix[ib], img.HDRPix[ia]
		}
	}
}

// ToHDR converts an LDR image to HDR by dividing by 255.
func (img *Image) ToHDR() *Image {
	if img.Format != LDR {
		panic(prefix + "ToHDR requires an LDR image")
	}
	out := NewHDR(img.Width, img.Height, img.Channels)
	for i, b := range img.LDRPix {
		out.HDRPix[i] = float32(b) / 255
	}
	return out
}

// ToLDR converts an HDR image to LDR, saturating and rounding
// (x*255 + 0.5).
func (img *Image) ToLDR() *Image {
	if img.Format != HDR {
		panic(prefix + "ToLDR requires an HDR image")
	}
	out := NewLDR(img.Width, img.Height, img.Channels)
	for i, f := range img.HDRPix {
		out.LDRPix[i] = floatToByte(f)
	}
	return out
}

func floatToByte(f float32) byte {
	f = math32.Max(0, math32.Min(1, f))
	return byte(f*255 + 0.5)
}

// gamma is the exponent used by the sRGB<->linear approximation
// (pow 2.2 both ways).
const gamma = 2.2

// SRGBToLinear converts img's RGB channels (alpha, if present, is
// preserved) from sRGB to linear space, in place. Works on either
// format.
func (img *Image) SRGBToLinear() { img.gammaConvert(gamma) }

// LinearToSRGB converts img's RGB channels from linear to sRGB
// space, in place.
func (img *Image) LinearToSRGB() { img.gammaConvert(1 / gamma) }

func (img *Image) gammaConvert(exp float32) {
	c := img.Channels
	rgb := c
	if c == 4 || c == 2 {
		rgb = c - 1
	}
	switch img.Format {
	case LDR:
		n := len(img.LDRPix) / c
		for i := 0; i < n; i++ {
			base := i * c
			for k := 0; k < rgb; k++ {
				f := float32(img.LDRPix[base+k]) / 255
				img.LDRPix[base+k] = floatToByte(math32.Pow(f, exp))
			}
		}
	case HDR:
		n := len(img.HDRPix) / c
		for i := 0; i < n; i++ {
			base := i * c
			for k := 0; k < rgb; k++ {
				img.HDRPix[base+k] = math32.Pow(img.HDRPix[base+k], exp)
			}
		}
	}
}
