// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package skin

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gviegas/raster/linear"
)

// Load parses the section-oriented skeleton text format.
//
// Malformed input (joint count mismatch, out-of-order joint block,
// bad parent index) is a contract violation and panics.
func Load(r io.Reader) *Skeleton {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)

	nextLine := func() string {
		for s.Scan() {
			l := strings.TrimSpace(s.Text())
			if l != "" {
				return l
			}
		}
		panic(prefix + "Load: unexpected end of file")
	}

	var n int
	if _, err := fmt.Sscanf(nextLine(), "joint-size: %d", &n); err != nil {
		panic(prefix + "Load: missing joint-size")
	}
	var minT, maxT float32
	if _, err := fmt.Sscanf(nextLine(), "time-range: [%f, %f]", &minT, &maxT); err != nil {
		panic(prefix + "Load: missing time-range")
	}

	joints := make([]Joint, n)
	for k := 0; k < n; k++ {
		var ord int
		if _, err := fmt.Sscanf(nextLine(), "joint %d:", &ord); err != nil || ord != k {
			panic(prefix + "Load: joint block out of order")
		}
		var parent int
		if _, err := fmt.Sscanf(nextLine(), "parent-index: %d", &parent); err != nil {
			panic(prefix + "Load: missing parent-index")
		}
		if nextLine() != "inverse-bind:" {
			panic(prefix + "Load: expected inverse-bind:")
		}
		var ibm linear.M4
		for row := 0; row < 4; row++ {
			var a, b, c, d float32
			if _, err := fmt.Sscanf(nextLine(), "%f %f %f %f", &a, &b, &c, &d); err != nil {
				panic(prefix + "Load: malformed inverse-bind row")
			}
			// inverse-bind is read row-major from the file; M4 is
			// column-major, so transpose on the way in.
			ibm[0][row] = a
			ibm[1][row] = b
			ibm[2][row] = c
			ibm[3][row] = d
		}

		j := Joint{Parent: parent, InverseBind: ibm}
		j.Translation.Keys = readV3Track(nextLine, s)
		j.Rotation.Keys = readQTrack(nextLine, s)
		j.Scale.Keys = readV3Track(nextLine, s)
		joints[k] = j
	}

	sk, err := New(joints, minT, maxT)
	if err != nil {
		panic(prefix + "Load: " + err.Error())
	}
	return sk
}

func readV3Track(nextLine func() string, s *bufio.Scanner) []Keyframe[linear.V3] {
	var m int
	header := nextLine()
	var label string
	if _, err := fmt.Sscanf(header, "%s %d:", &label, &m); err != nil {
		panic(prefix + "Load: malformed track header: " + header)
	}
	keys := make([]Keyframe[linear.V3], m)
	for i := 0; i < m; i++ {
		var t, x, y, z float32
		line := nextLine()
		if _, err := fmt.Sscanf(line, "time: %f, value: [%f, %f, %f]", &t, &x, &y, &z); err != nil {
			panic(prefix + "Load: malformed keyframe: " + line)
		}
		keys[i] = Keyframe[linear.V3]{Time: t, Value: linear.V3{x, y, z}}
	}
	return keys
}

func readQTrack(nextLine func() string, s *bufio.Scanner) []Keyframe[linear.Q] {
	var m int
	header := nextLine()
	var label string
	if _, err := fmt.Sscanf(header, "%s %d:", &label, &m); err != nil {
		panic(prefix + "Load: malformed track header: " + header)
	}
	keys := make([]Keyframe[linear.Q], m)
	for i := 0; i < m; i++ {
		var t, x, y, z, w float32
		line := nextLine()
		if _, err := fmt.Sscanf(line, "time: %f, value: [%f, %f, %f, %f]", &t, &x, &y, &z, &w); err != nil {
			panic(prefix + "Load: malformed keyframe: " + line)
		}
		keys[i] = Keyframe[linear.Q]{Time: t, Value: linear.Q{V: linear.V3{x, y, z}, R: w}}
	}
	return keys
}
