// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"github.com/gviegas/raster/framebuffer"
	"github.com/gviegas/raster/imagef"
)

// FromColor copies fb's color plane into a freshly allocated LDR
// Texture of the same dimensions. Row order is preserved (unlike
// Framebuffer.Blit, which flips for display).
func FromColor(fb *framebuffer.Framebuffer) *Texture {
	img := imagef.NewLDR(fb.Width, fb.Height, 4)
	copy(img.LDRPix, fb.Color)
	return New(img)
}

// FromDepth replicates fb's depth plane into the RGB channels of a
// freshly allocated HDR Texture, with alpha 1. This is the shadow-map
// path: render the scene from the light into fb, then sample the
// resulting texture's first channel during the shaded pass.
func FromDepth(fb *framebuffer.Framebuffer) *Texture {
	img := imagef.NewHDR(fb.Width, fb.Height, 4)
	for i, d := range fb.Depth {
		img.HDRPix[i*4+0] = d
		img.HDRPix[i*4+1] = d
		img.HDRPix[i*4+2] = d
		img.HDRPix[i*4+3] = 1
	}
	return New(img)
}
