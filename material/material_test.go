// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package material

import "testing"

func TestZeroValueModelsAreOpaque(t *testing.T) {
	var m PBRMetalRough
	if m.AlphaMode != AlphaOpaque {
		t.Fatalf("AlphaMode\nhave %v\nwant AlphaOpaque", m.AlphaMode)
	}
	if m.DoubleSided {
		t.Fatal("DoubleSided should default to false")
	}
}

func TestTexRefDefaultsToUVSet0(t *testing.T) {
	var r TexRef
	if r.UVSet != UVSet0 {
		t.Fatalf("UVSet\nhave %v\nwant %v", r.UVSet, UVSet0)
	}
}
