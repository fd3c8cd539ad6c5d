// ico.go generates Windows ICO favicons. The container holds multiple
// resolutions so browsers can pick the closest match; each embedded
// image is PNG-encoded, which every ICO consumer that matters has
// accepted since Vista.
//
// Layout is ICONDIR, then one ICONDIRENTRY per image, then the image
// payloads. All container fields are little-endian.

package generate

import (
	"bytes"
	"encoding/binary"

	"github.com/jamestiotio/iconforge/internal/catalog"
)

// icoSizes are the candidate resolutions embedded in an ICO, largest
// capped by the target dimension.
var icoSizes = []int{16, 32, 48, 64}

type icoGenerator struct{}

func init() {
	Register(icoGenerator{})
}

func (icoGenerator) Name() string { return "ico" }

func (icoGenerator) Generate(job *Job, src *Source, target catalog.Target) ([]byte, error) {
	var sizes []int
	for _, s := range icoSizes {
		if s <= target.Width {
			sizes = append(sizes, s)
		}
	}
	if len(sizes) == 0 {
		sizes = []int{target.Width}
	}

	images := make([][]byte, len(sizes))
	for i, s := range sizes {
		data, err := encodePNG(scaleInto(src.Icon, s, s, job.Padding), job.Quality)
		if err != nil {
			return nil, err
		}
		images[i] = data
	}

	var buf bytes.Buffer

	// ICONDIR: reserved, type 1 (icon), image count.
	binary.Write(&buf, binary.LittleEndian, uint16(0))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(len(sizes)))

	const dirSize, entrySize = 6, 16
	offset := dirSize + entrySize*len(sizes)

	for i, s := range sizes {
		// A zero width or height byte denotes 256.
		dim := byte(s)
		if s >= 256 {
			dim = 0
		}

		buf.WriteByte(dim) // width
		buf.WriteByte(dim) // height
		buf.WriteByte(0)   // palette size (none)
		buf.WriteByte(0)   // reserved
		binary.Write(&buf, binary.LittleEndian, uint16(1))  // colour planes
		binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(&buf, binary.LittleEndian, uint32(len(images[i])))
		binary.Write(&buf, binary.LittleEndian, uint32(offset))

		offset += len(images[i])
	}

	for _, img := range images {
		buf.Write(img)
	}
	return buf.Bytes(), nil
}
