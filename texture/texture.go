// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package texture implements nearest-sample 2D and cube texture
// lookup over an imagef.Image, the sampling primitive the shader
// library's fragment functions call.
package texture

import (
	"io"

	"github.com/chewxy/math32"

	"github.com/gviegas/raster/imagef"
	"github.com/gviegas/raster/linear"
)

const prefix = "texture: "

// Wrap selects how out-of-[0,1] texture coordinates are handled.
type Wrap int

const (
	// Repeat wraps coordinates: u ← u - ⌊u⌋.
	Repeat Wrap = iota
	// Clamp saturates coordinates to [0, 1].
	Clamp
)

// Texture is a sampled image, always 4-channel, in either the LDR
// or HDR format of its backing imagef.Image.
type Texture struct {
	img  *imagef.Image
	Wrap Wrap
}

// New wraps img as a Texture. img must have 4 channels.
func New(img *imagef.Image) *Texture {
	if img.Channels != 4 {
		panic(prefix + "Texture requires a 4-channel image")
	}
	return &Texture{img: img, Wrap: Repeat}
}

// Load decodes a TGA file into a 4-channel Texture.
//
// If srgb is true, the RGB channels are converted from sRGB to
// linear space after decoding (alpha is left untouched).
func Load(r io.Reader, srgb bool) *Texture {
	img := imagef.LoadTGA(r)
	if img.Channels != 4 {
		widened := imagef.NewLDR(img.Width, img.Height, 4)
		for i := 0; i < img.Width*img.Height; i++ {
			switch img.Channels {
			case 1:
				v := img.LDRPix[i]
				widened.LDRPix[i*4+0] = v
				widened.LDRPix[i*4+1] = v
				widened.LDRPix[i*4+2] = v
				widened.LDRPix[i*4+3] = 255
			case 3:
				copy(widened.LDRPix[i*4:i*4+3], img.LDRPix[i*3:i*3+3])
				widened.LDRPix[i*4+3] = 255
			}
		}
		img = widened
	}
	if srgb {
		img.SRGBToLinear()
	}
	return New(img)
}

// Width returns the texture's width in texels.
func (t *Texture) Width() int { return t.img.Width }

// Height returns the texture's height in texels.
func (t *Texture) Height() int { return t.img.Height }

// Image returns the backing image.
func (t *Texture) Image() *imagef.Image { return t.img }

// wrapCoord applies t's wrap mode to a single coordinate.
func (t *Texture) wrapCoord(u float32) float32 {
	switch t.Wrap {
	case Clamp:
		return linear.Saturate(u)
	default: // Repeat
		return u - math32.Floor(u)
	}
}

// Sample performs a nearest lookup at texture coordinates (u, v),
// with (0,0) at the near corner and (1,1) at the far corner.
func (t *Texture) Sample(u, v float32) linear.V4 {
	u = t.wrapCoord(u)
	v = t.wrapCoord(v)
	col := int(u * float32(t.img.Width-1))
	row := int(v * float32(t.img.Height-1))
	col = clampi(col, 0, t.img.Width-1)
	row = clampi(row, 0, t.img.Height-1)
	i := (row*t.img.Width + col) * 4
	if t.img.Format == imagef.HDR {
		return linear.V4{t.img.HDRPix[i], t.img.HDRPix[i+1], t.img.HDRPix[i+2], t.img.HDRPix[i+3]}
	}
	return linear.V4{
		float32(t.img.LDRPix[i]) / 255,
		float32(t.img.LDRPix[i+1]) / 255,
		float32(t.img.LDRPix[i+2]) / 255,
		float32(t.img.LDRPix[i+3]) / 255,
	}
}

func clampi(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
