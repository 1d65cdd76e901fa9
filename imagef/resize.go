// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package imagef

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
)

// Resize returns a freshly allocated image containing img scaled to
// width x height using bilinear interpolation with clamped source
// indices. The source image is not mutated.
func (img *Image) Resize(width, height int) *Image {
	checkDims(width, height, img.Channels)
	if img.Format == LDR && img.Channels == 4 {
		return resizeRGBA(img, width, height)
	}
	return resizeGeneric(img, width, height)
}

// resizeRGBA delegates 4-channel LDR resizing to bild's bilinear
// image scaler over a stdlib image.RGBA adapter.
func resizeRGBA(img *Image, width, height int) *Image {
	src := &image.RGBA{
		Pix:    img.LDRPix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	dst := transform.Resize(src, width, height, transform.Linear)
	out := NewLDR(width, height, 4)
	if dst.Stride == width*4 {
		copy(out.LDRPix, dst.Pix)
	} else {
		for y := 0; y < height; y++ {
			copy(out.LDRPix[y*width*4:(y+1)*width*4], dst.Pix[y*dst.Stride:y*dst.Stride+width*4])
		}
	}
	return out
}

// resizeGeneric implements bilinear resize with clamped source
// indices directly over the LDR/HDR element formats bild's
// image.Image-based API cannot represent (HDR floats, or a channel
// count other than 4).
func resizeGeneric(img *Image, width, height int) *Image {
	c := img.Channels
	sample := func(x, y, k int) float32 {
		x = clampInt(x, 0, img.Width-1)
		y = clampInt(y, 0, img.Height-1)
		i := (y*img.Width+x)*c + k
		if img.Format == HDR {
			return img.HDRPix[i]
		}
		return float32(img.LDRPix[i]) / 255
	}
	var out *Image
	if img.Format == HDR {
		out = NewHDR(width, height, c)
	} else {
		out = NewLDR(width, height, c)
	}
	sx := float32(img.Width) / float32(width)
	sy := float32(img.Height) / float32(height)
	for y := 0; y < height; y++ {
		fy := (float32(y)+0.5)*sy - 0.5
		y0 := int(math32.Floor(fy))
		ty := fy - float32(y0)
		for x := 0; x < width; x++ {
			fx := (float32(x)+0.5)*sx - 0.5
			x0 := int(math32.Floor(fx))
			tx := fx - float32(x0)
			base := (y*width + x) * c
			for k := 0; k < c; k++ {
				v00 := sample(x0, y0, k)
				v10 := sample(x0+1, y0, k)
				v01 := sample(x0, y0+1, k)
				v11 := sample(x0+1, y0+1, k)
				top := v00 + (v10-v00)*tx
				bot := v01 + (v11-v01)*tx
				v := top + (bot-top)*ty
				if img.Format == HDR {
					out.HDRPix[base+k] = v
				} else {
					out.LDRPix[base+k] = floatToByte(v)
				}
			}
		}
	}
	return out
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
