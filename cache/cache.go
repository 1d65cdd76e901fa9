// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package cache implements a minimal shared-resource cache for
// meshes and textures. Meshes are keyed by path; textures are keyed
// by (path, srgb) so the same file loaded with different color-space
// treatment yields distinct entries.
//
// Resource lifetimes lean on the garbage collector: the cache hands
// out plain pointers and the last reference going away frees the
// resource, with no explicit release call. Callers instantiate a
// Cache explicitly rather than relying on a process-global, which
// also makes it trivial to exercise in tests.
package cache

import (
	"io"
	"sync"

	"github.com/gviegas/raster/mesh"
	"github.com/gviegas/raster/texture"
)

// Opener abstracts the asset-loader boundary: the cache itself
// never opens files, it only memoizes what a caller-supplied opener
// produces.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

type meshKey string

type texKey struct {
	path string
	srgb bool
}

// Cache memoizes decoded meshes and textures by path (meshes) or by
// (path, srgb) (textures, since the sRGB-to-linear conversion is
// baked into the decoded pixels).
type Cache struct {
	mu       sync.Mutex
	meshes   map[meshKey]*mesh.Mesh
	textures map[texKey]*texture.Texture
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		meshes:   make(map[meshKey]*mesh.Mesh),
		textures: make(map[texKey]*texture.Texture),
	}
}

// Mesh returns the Mesh previously loaded from path, loading and
// memoizing it via open on first request.
func (c *Cache) Mesh(path string, open Opener) *mesh.Mesh {
	k := meshKey(path)
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.meshes[k]; ok {
		return m
	}
	r, err := open.Open(path)
	if err != nil {
		panic(prefix + "Mesh: " + err.Error())
	}
	defer r.Close()
	m := mesh.Load(r)
	c.meshes[k] = m
	return m
}

// Texture returns the Texture previously loaded from path with the
// given srgb conversion, loading and memoizing it via open on first
// request.
func (c *Cache) Texture(path string, srgb bool, open Opener) *texture.Texture {
	k := texKey{path, srgb}
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.textures[k]; ok {
		return t
	}
	r, err := open.Open(path)
	if err != nil {
		panic(prefix + "Texture: " + err.Error())
	}
	defer r.Close()
	t := texture.Load(r, srgb)
	c.textures[k] = t
	return t
}

// Len reports the number of distinct mesh and texture entries
// currently memoized.
func (c *Cache) Len() (meshes, textures int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.meshes), len(c.textures)
}

const prefix = "cache: "
