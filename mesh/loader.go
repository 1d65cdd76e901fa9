// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gviegas/raster/linear"
)

// Load parses the line-oriented triangle mesh text format:
// v/vt/vn/f lines plus the optional "# ext.tangent|joint|weight"
// extension lines.
//
// Malformed input (out-of-range indices, a face without exactly
// three corners) is a contract violation and panics.
func Load(r io.Reader) *Mesh {
	var positions []linear.V3
	var texcoords []linear.V2
	var normals []linear.V3
	var tangents []linear.V4
	var joints []linear.V4
	var weights []linear.V4
	var faces [][3]faceCorner

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			positions = append(positions, parseV3(fields[1:]))
		case "vt":
			texcoords = append(texcoords, parseV2(fields[1:]))
		case "vn":
			normals = append(normals, parseV3(fields[1:]))
		case "f":
			if len(fields) != 4 {
				panic(prefix + "face must have exactly three corners")
			}
			var f [3]faceCorner
			for i, tok := range fields[1:4] {
				f[i] = parseFaceCorner(tok)
			}
			faces = append(faces, f)
		case "#":
			if len(fields) >= 2 {
				switch fields[1] {
				case "ext.tangent":
					tangents = append(tangents, parseV4(fields[2:]))
				case "ext.joint":
					joints = append(joints, parseV4(fields[2:]))
				case "ext.weight":
					weights = append(weights, parseV4(fields[2:]))
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		panic(prefix + "Load: " + err.Error())
	}
	if len(faces) == 0 {
		panic(prefix + "mesh has no faces")
	}
	if len(tangents) != 0 && len(tangents) != len(positions) {
		panic(prefix + "ext.tangent count must match position count")
	}
	if len(joints) != 0 && len(joints) != len(positions) {
		panic(prefix + "ext.joint count must match position count")
	}
	if len(weights) != 0 && len(weights) != len(positions) {
		panic(prefix + "ext.weight count must match position count")
	}

	vertices := make([]Vertex, 0, len(faces)*3)
	for _, f := range faces {
		for _, c := range f {
			if c.p < 1 || c.p > len(positions) {
				panic(prefix + "position index out of range")
			}
			if c.t < 1 || c.t > len(texcoords) {
				panic(prefix + "texcoord index out of range")
			}
			if c.n < 1 || c.n > len(normals) {
				panic(prefix + "normal index out of range")
			}
			v := Vertex{
				Position: positions[c.p-1],
				TexCoord: texcoords[c.t-1],
				Normal:   normals[c.n-1],
				Tangent:  defaultTangent,
				Joints:   defaultJoints,
				Weights:  defaultWeights,
			}
			if tangents != nil {
				v.Tangent = tangents[c.p-1]
			}
			if joints != nil {
				v.Joints = joints[c.p-1]
			}
			if weights != nil {
				v.Weights = weights[c.p-1]
			}
			vertices = append(vertices, v)
		}
	}
	return New(vertices)
}

// faceCorner holds the 1-based position/texcoord/normal indices of
// a single "f p/t/n" corner.
type faceCorner struct{ p, t, n int }

func parseFaceCorner(tok string) faceCorner {
	var c faceCorner
	if _, err := fmt.Sscanf(tok, "%d/%d/%d", &c.p, &c.t, &c.n); err != nil {
		panic(prefix + "malformed face corner: " + tok)
	}
	return c
}

func parseV2(fields []string) linear.V2 {
	var v linear.V2
	for i := range v {
		fmt.Sscanf(fields[i], "%f", &v[i])
	}
	return v
}

func parseV3(fields []string) linear.V3 {
	var v linear.V3
	for i := range v {
		fmt.Sscanf(fields[i], "%f", &v[i])
	}
	return v
}

func parseV4(fields []string) linear.V4 {
	var v linear.V4
	for i := range v {
		fmt.Sscanf(fields[i], "%f", &v[i])
	}
	return v
}
