// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package imagef

import (
	"bytes"
	"testing"
)

// TestSRGBRoundTrip checks that sRGB->linear->sRGB of any LDR byte
// returns the same byte (±1).
func TestSRGBRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		img := NewLDR(1, 1, 3)
		img.LDRPix[0] = byte(v)
		img.LDRPix[1] = byte(v)
		img.LDRPix[2] = byte(v)
		img.SRGBToLinear()
		img.LinearToSRGB()
		got := int(img.LDRPix[0])
		if d := got - v; d < -1 || d > 1 {
			t.Fatalf("round trip of %d\nhave %d\nwant within ±1", v, got)
		}
	}
}

// TestTGARoundTrip checks that saving a loaded top-down,
// uncompressed, non-mirrored TGA reproduces the same bytes.
func TestTGARoundTrip(t *testing.T) {
	src := makeTGA(3, 2, false)

	img := LoadTGA(bytes.NewReader(src))
	var out bytes.Buffer
	if err := SaveTGA(&out, img); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, out.Bytes()) {
		t.Fatalf("TGA round trip differs\nhave %v\nwant %v", out.Bytes(), src)
	}
}

// TestTGARLEDecodesToSameImageAsUncompressed checks that the RLE and
// uncompressed encodings of the same pixel data decode identically.
func TestTGARLEDecodesToSameImageAsUncompressed(t *testing.T) {
	raw := makeTGA(4, 1, false)
	rle := makeTGA(4, 1, true)

	imgRaw := LoadTGA(bytes.NewReader(raw))
	imgRLE := LoadTGA(bytes.NewReader(rle))
	if !bytes.Equal(imgRaw.LDRPix, imgRLE.LDRPix) {
		t.Fatalf("RLE decode differs from uncompressed\nhave %v\nwant %v", imgRLE.LDRPix, imgRaw.LDRPix)
	}
}

// makeTGA builds an uncompressed or RLE-encoded, top-down, 24-bit TGA
// with a simple repeating BGR pattern (distinct per pixel, to
// exercise more than one RLE packet).
func makeTGA(w, h int, rle bool) []byte {
	var buf bytes.Buffer
	hdr := make([]byte, tgaHeaderSize)
	if rle {
		hdr[2] = tgaRLETrueColor
	} else {
		hdr[2] = tgaTrueColor
	}
	hdr[12] = byte(w)
	hdr[13] = byte(w >> 8)
	hdr[14] = byte(h)
	hdr[15] = byte(h >> 8)
	hdr[16] = 24
	hdr[17] = 0x20 // top-down
	buf.Write(hdr)

	n := w * h
	pixels := make([][3]byte, n)
	for i := range pixels {
		pixels[i] = [3]byte{byte(i * 7), byte(i * 13), byte(i * 29)}
	}
	if !rle {
		for _, p := range pixels {
			buf.Write(p[:])
		}
	} else {
		i := 0
		for i < n {
			buf.WriteByte(0) // raw packet of 1 pixel
			buf.Write(pixels[i][:])
			i++
		}
	}
	return buf.Bytes()
}
