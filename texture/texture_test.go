// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"testing"

	"github.com/gviegas/raster/framebuffer"
	"github.com/gviegas/raster/imagef"
	"github.com/gviegas/raster/linear"
)

func solidTexture(r, g, b, a byte) *Texture {
	img := imagef.NewLDR(2, 2, 4)
	for i := 0; i < 4; i++ {
		img.LDRPix[i*4+0] = r
		img.LDRPix[i*4+1] = g
		img.LDRPix[i*4+2] = b
		img.LDRPix[i*4+3] = a
	}
	return New(img)
}

func TestSampleRepeatWraps(t *testing.T) {
	tex := solidTexture(10, 20, 30, 255)
	tex.Wrap = Repeat
	c := tex.Sample(1.5, -0.5)
	if c[0] != 10.0/255 {
		t.Fatalf("Sample with Repeat wrap\nhave %v\nwant %v", c[0], 10.0/255)
	}
}

func TestSampleClampSaturates(t *testing.T) {
	tex := solidTexture(10, 20, 30, 255)
	tex.Wrap = Clamp
	c := tex.Sample(2.0, -1.0)
	if c[2] != 30.0/255 {
		t.Fatalf("Sample with Clamp wrap\nhave %v\nwant %v", c[2], 30.0/255)
	}
}

// TestCubeFaceSelection checks that the six axis directions map to
// faces 0..5 with (u,v) = (0.5, 0.5).
func TestCubeFaceSelection(t *testing.T) {
	cases := []struct {
		dir  linear.V3
		face int
	}{
		{linear.V3{1, 0, 0}, FacePosX},
		{linear.V3{-1, 0, 0}, FaceNegX},
		{linear.V3{0, 1, 0}, FacePosY},
		{linear.V3{0, -1, 0}, FaceNegY},
		{linear.V3{0, 0, 1}, FacePosZ},
		{linear.V3{0, 0, -1}, FaceNegZ},
	}
	for _, c := range cases {
		face, u, v := faceUV(c.dir)
		if face != c.face {
			t.Fatalf("faceUV(%v) face\nhave %v\nwant %v", c.dir, face, c.face)
		}
		if u != 0.5 || v != 0.5 {
			t.Fatalf("faceUV(%v) uv\nhave (%v, %v)\nwant (0.5, 0.5)", c.dir, u, v)
		}
	}
}

func TestCubemapSamplesSelectedFace(t *testing.T) {
	faces := [6]*Texture{
		solidTexture(255, 0, 0, 255),   // +X
		solidTexture(0, 255, 0, 255),   // -X
		solidTexture(0, 0, 255, 255),   // +Y
		solidTexture(255, 255, 0, 255), // -Y
		solidTexture(255, 0, 255, 255), // +Z
		solidTexture(0, 255, 255, 255), // -Z
	}
	cube := NewCubemap(faces)
	c := cube.Sample(linear.V3{1, 0, 0})
	if c[0] != 1 || c[1] != 0 || c[2] != 0 {
		t.Fatalf("Cubemap.Sample(+X)\nhave %v\nwant red", c)
	}
}

func TestFromColor(t *testing.T) {
	fb := framebuffer.New(2, 2)
	fb.ClearColor(linear.V4{1, 0, 0, 1})
	tex := FromColor(fb)
	c := tex.Sample(0.5, 0.5)
	if c[0] != 1 || c[1] != 0 || c[2] != 0 || c[3] != 1 {
		t.Fatalf("FromColor sample\nhave %v\nwant [1 0 0 1]", c)
	}
}

func TestFromDepth(t *testing.T) {
	fb := framebuffer.New(2, 2)
	fb.ClearDepth(0.25)
	tex := FromDepth(fb)
	c := tex.Sample(0.5, 0.5)
	if c[0] != 0.25 || c[1] != 0.25 || c[2] != 0.25 || c[3] != 1 {
		t.Fatalf("FromDepth sample\nhave %v\nwant [0.25 0.25 0.25 1]", c)
	}
}
