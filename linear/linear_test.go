// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"
)

func TestV(t *testing.T) {
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u := AddV3(v, w); u != (V3{1, 1, 6}) {
		t.Fatalf("AddV3\nhave %v\nwant [1 1 6]", u)
	}
	if u := SubV3(v, w); u != (V3{1, 3, 2}) {
		t.Fatalf("SubV3\nhave %v\nwant [1 3 2]", u)
	}
	if u := ScaleV3(-1, v); u != (V3{-1, -2, -4}) {
		t.Fatalf("ScaleV3\nhave %v\nwant [-1 -2 -4]", u)
	}
	if u := ScaleV3(2, w); u != (V3{0, -2, 4}) {
		t.Fatalf("ScaleV3\nhave %v\nwant [0 -2 4]", u)
	}
	if d := DotV3(v, w); d != 6 {
		t.Fatalf("DotV3\nhave %v\nwant 6\n", d)
	}
	if d := DotV3(v, v); d != 21 {
		t.Fatalf("DotV3\nhave %v\nwant 21\n", d)
	}
	if l := LenV3(v); l != float32(math.Sqrt(21)) {
		t.Fatalf("LenV3\nhave %v\nwant %v\n", l, math.Sqrt(21))
	}
	if l := LenV3(w); l != float32(math.Sqrt(5)) {
		t.Fatalf("LenV3\nhave %v\nwant %v\n", l, math.Sqrt(5))
	}

	v = V3{0, 0, -2}
	w = V3{0, 4, 0}

	if v = NormV3(v); v != (V3{0, 0, -1}) {
		t.Fatalf("NormV3\nhave %v\nwant [0 0 -1]", v)
	}
	if w = NormV3(w); w != (V3{0, 1, 0}) {
		t.Fatalf("NormV3\nhave %v\nwant [0 1 0]", w)
	}
	if u := Cross(v, w); u != (V3{1, 0, 0}) {
		t.Fatalf("Cross\nhave %v\nwant [1 0 0]", u)
	}
	if u := Cross(w, v); u != (V3{-1, 0, 0}) {
		t.Fatalf("Cross\nhave %v\nwant [-1 0 0]", u)
	}
}

func TestLerpV3(t *testing.T) {
	a := V3{0, 0, 0}
	b := V3{10, -10, 4}
	if u := LerpV3(a, b, 0); u != a {
		t.Fatalf("LerpV3\nhave %v\nwant %v", u, a)
	}
	if u := LerpV3(a, b, 1); u != b {
		t.Fatalf("LerpV3\nhave %v\nwant %v", u, b)
	}
	if u := LerpV3(a, b, 0.5); u != (V3{5, -5, 2}) {
		t.Fatalf("LerpV3\nhave %v\nwant [5 -5 2]", u)
	}
}

func TestMulM4(t *testing.T) {
	i := IdentityM4()
	m := Translation(V3{1, 2, 3})
	if u := MulM4(i, m); u != m {
		t.Fatalf("MulM4\nhave %v\nwant %v", u, m)
	}
	if u := MulM4(m, i); u != m {
		t.Fatalf("MulM4\nhave %v\nwant %v", u, m)
	}
}

func TestMulV4(t *testing.T) {
	m := Translation(V3{1, 2, 3})
	v := V4{0, 0, 0, 1}
	if u := MulV4(m, v); u != (V4{1, 2, 3, 1}) {
		t.Fatalf("MulV4\nhave %v\nwant [1 2 3 1]", u)
	}
}

func TestInvertM4(t *testing.T) {
	m := FromTRS(V3{3, -1, 2}, FromAxisAngle(V3{0, 1, 0}, 1.2), V3{2, 2, 2})
	inv := InvertM4(m)
	id := MulM4(m, inv)
	want := IdentityM4()
	for i := range id {
		for j := range id[i] {
			if d := id[i][j] - want[i][j]; d > 1e-4 || d < -1e-4 {
				t.Fatalf("InvertM4\nhave %v\nwant %v", id, want)
			}
		}
	}
}

func TestSlerp(t *testing.T) {
	a := IdentityQ()
	b := FromAxisAngle(V3{0, 1, 0}, math.Pi/2)
	if q := Slerp(a, b, 0); q != a {
		t.Fatalf("Slerp\nhave %v\nwant %v", q, a)
	}
	q := Slerp(a, b, 1)
	if d := DotQ(q, b); d < 0.999 {
		t.Fatalf("Slerp\nhave %v\nwant ~%v", q, b)
	}
}

func TestSlerpShortArc(t *testing.T) {
	a := IdentityQ()
	b := NegQ(IdentityQ())
	q := Slerp(a, b, 0.5)
	if DotQ(q, a) < 0 {
		t.Fatalf("Slerp took the long arc: %v", q)
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(V3{0, 0, 5}, V3{0, 0, 0}, V3{0, 1, 0})
	v := MulV4(m, V4{0, 0, 5, 1})
	if d := v[2] - 0; d > 1e-4 || d < -1e-4 {
		t.Fatalf("LookAt: eye did not map to z=0, got %v", v)
	}
}
