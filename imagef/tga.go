// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package imagef

import (
	"encoding/binary"
	"fmt"
	"io"
)

// TGA image-type values used by this subset.
const (
	tgaTrueColor    = 2
	tgaGrayscale    = 3
	tgaRLETrueColor = 10
	tgaRLEGrayscale = 11
)

// tgaHeaderSize is the fixed 18-byte TGA header length.
const tgaHeaderSize = 18

// LoadTGA decodes the 18-byte-header TGA subset described in the
// external interface contract: image types 2/3/10/11, pixel depths
// 8/24/32, ID length must be 0.
//
// Malformed input is a contract violation and panics, matching the
// loader's fail-fast policy for asset problems.
func LoadTGA(r io.Reader) *Image {
	hdr := make([]byte, tgaHeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		panic(prefix + "LoadTGA: " + err.Error())
	}
	idLen := hdr[0]
	if idLen != 0 {
		panic(prefix + "LoadTGA: ID length must be 0")
	}
	imgType := hdr[2]
	width := int(binary.LittleEndian.Uint16(hdr[12:14]))
	height := int(binary.LittleEndian.Uint16(hdr[14:16]))
	depth := hdr[16]
	descriptor := hdr[17]

	var channels int
	switch depth {
	case 8:
		channels = 1
	case 24:
		channels = 3
	case 32:
		channels = 4
	default:
		panic(fmt.Sprintf("%sLoadTGA: unsupported pixel depth %d", prefix, depth))
	}

	rle := false
	switch imgType {
	case tgaTrueColor, tgaGrayscale:
	case tgaRLETrueColor, tgaRLEGrayscale:
		rle = true
	default:
		panic(fmt.Sprintf("%sLoadTGA: unsupported image type %d", prefix, imgType))
	}

	n := width * height
	raw := make([]byte, n*channels)
	if rle {
		decodeRLE(r, raw, channels)
	} else if _, err := io.ReadFull(r, raw); err != nil {
		panic(prefix + "LoadTGA: " + err.Error())
	}

	img := NewLDR(width, height, channels)
	// TGA stores true-color pixels as B,G,R[,A]; normalize to R,G,B[,A].
	if channels >= 3 {
		for i := 0; i < n; i++ {
			b := raw[i*channels : i*channels+channels]
			img.LDRPix[i*channels+0] = b[2]
			img.LDRPix[i*channels+1] = b[1]
			img.LDRPix[i*channels+2] = b[0]
			if channels == 4 {
				img.LDRPix[i*channels+3] = b[3]
			}
		}
	} else {
		copy(img.LDRPix, raw)
	}

	// Bit 5 set means top-down origin (matches the TGA spec); bit 4
	// set means right-to-left. Normalize to top-down, left-to-right.
	topDown := descriptor&0x20 != 0
	rightToLeft := descriptor&0x10 != 0
	if !topDown {
		img.FlipV()
	}
	if rightToLeft {
		img.FlipH()
	}
	return img
}

// decodeRLE decodes TGA run-length packets into dst, which must be
// sized width*height*channels bytes.
func decodeRLE(r io.Reader, dst []byte, channels int) {
	var pixel [4]byte
	out := 0
	for out < len(dst) {
		var packet [1]byte
		if _, err := io.ReadFull(r, packet[:]); err != nil {
			panic(prefix + "LoadTGA: " + err.Error())
		}
		count := int(packet[0]&0x7f) + 1
		if packet[0]&0x80 != 0 {
			if _, err := io.ReadFull(r, pixel[:channels]); err != nil {
				panic(prefix + "LoadTGA: " + err.Error())
			}
			for i := 0; i < count; i++ {
				copy(dst[out:out+channels], pixel[:channels])
				out += channels
			}
		} else {
			n := count * channels
			if _, err := io.ReadFull(r, dst[out:out+n]); err != nil {
				panic(prefix + "LoadTGA: " + err.Error())
			}
			out += n
		}
	}
}

// SaveTGA encodes img as an uncompressed, top-down TGA file. img
// must be an LDR image with 1, 3 or 4 channels (image type 3 or 2
// respectively).
func SaveTGA(w io.Writer, img *Image) error {
	if img.Format != LDR {
		panic(prefix + "SaveTGA: image must be LDR")
	}
	var imgType byte
	switch img.Channels {
	case 1:
		imgType = tgaGrayscale
	case 3, 4:
		imgType = tgaTrueColor
	default:
		panic(prefix + "SaveTGA: unsupported channel count")
	}
	depth := byte(img.Channels * 8)

	hdr := make([]byte, tgaHeaderSize)
	hdr[2] = imgType
	binary.LittleEndian.PutUint16(hdr[12:14], uint16(img.Width))
	binary.LittleEndian.PutUint16(hdr[14:16], uint16(img.Height))
	hdr[16] = depth
	hdr[17] = 0x20 // top-down
	if _, err := w.Write(hdr); err != nil {
		return err
	}

	n := img.Width * img.Height
	c := img.Channels
	row := make([]byte, n*c)
	if c >= 3 {
		for i := 0; i < n; i++ {
			row[i*c+0] = img.LDRPix[i*c+2]
			row[i*c+1] = img.LDRPix[i*c+1]
			row[i*c+2] = img.LDRPix[i*c+0]
			if c == 4 {
				row[i*c+3] = img.LDRPix[i*c+3]
			}
		}
	} else {
		copy(row, img.LDRPix)
	}
	_, err := w.Write(row)
	return err
}
