// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cache

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

type stringOpener map[string]string

func (o stringOpener) Open(path string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(o[path])), nil
}

const triangleMesh = `
v -1 -1 0
v 1 -1 0
v 0 1 0
vt 0 0
vt 1 0
vt 0.5 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestMeshIsMemoizedByPath(t *testing.T) {
	c := New()
	open := stringOpener{"tri.mesh": triangleMesh}

	a := c.Mesh("tri.mesh", open)
	b := c.Mesh("tri.mesh", open)
	if a != b {
		t.Fatal("Mesh did not return the same pointer for a repeated path")
	}
	if meshes, _ := c.Len(); meshes != 1 {
		t.Fatalf("Len meshes\nhave %v\nwant 1", meshes)
	}
}

func TestTextureKeyIncludesSRGBFlag(t *testing.T) {
	c := New()
	tga := makeSolidTGA(2, 2, 200, 100, 50)
	open := stringOpener{"solid.tga": tga}

	linear := c.Texture("solid.tga", false, open)
	srgb := c.Texture("solid.tga", true, open)
	if linear == srgb {
		t.Fatal("Texture should produce distinct entries for different srgb flags")
	}
	if _, textures := c.Len(); textures != 2 {
		t.Fatalf("Len textures\nhave %v\nwant 2", textures)
	}
}

// makeSolidTGA builds a minimal uncompressed 24-bit TGA of a solid
// color, for tests that only need the cache's file-boundary plumbing
// exercised, not a realistic image.
func makeSolidTGA(w, h int, r, g, b byte) string {
	var buf bytes.Buffer
	hdr := make([]byte, 18)
	hdr[2] = 2 // uncompressed true-color
	hdr[12] = byte(w)
	hdr[13] = byte(w >> 8)
	hdr[14] = byte(h)
	hdr[15] = byte(h >> 8)
	hdr[16] = 24
	hdr[17] = 1 << 5 // top-down
	buf.Write(hdr)
	for i := 0; i < w*h; i++ {
		buf.WriteByte(b)
		buf.WriteByte(g)
		buf.WriteByte(r)
	}
	return buf.String()
}
