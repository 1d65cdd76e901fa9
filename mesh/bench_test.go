// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package mesh

import (
	"strings"
	"testing"
)

func BenchmarkLoad(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Load(strings.NewReader(triangleSrc))
	}
}
