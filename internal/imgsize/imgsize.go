// Package imgsize reads image dimensions from PNG file headers.
//
// The probe reads only the fixed-size prefix of the file (signature plus
// IHDR chunk), never the pixel data, so it is safe to run on arbitrary
// user-supplied paths. A file that is not a PNG reports 0x0 rather than
// an error: callers use the zero dimensions as the "not a PNG" signal.
package imgsize

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

// pngSignature is the fixed 8-byte PNG file signature (RFC 2083 §3.1).
var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// headerLen covers the signature (8), IHDR chunk length and type (8),
// and the width/height fields of IHDR (8).
const headerLen = 24

// PNG returns the pixel dimensions recorded in the IHDR chunk of the file
// at path. It returns (0, 0) when the file cannot be read, is too short,
// or is not a PNG.
func PNG(path string) (width, height int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	var buf [headerLen]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, 0
	}

	if !bytes.Equal(buf[:8], pngSignature) {
		return 0, 0
	}
	// IHDR must be the first chunk in a valid PNG
	if string(buf[12:16]) != "IHDR" {
		return 0, 0
	}

	w := binary.BigEndian.Uint32(buf[16:20])
	h := binary.BigEndian.Uint32(buf[20:24])
	return int(w), int(h)
}
