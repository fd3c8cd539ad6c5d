// icns.go generates Apple ICNS icon bundles for the Electron targets.
// The container is the magic "icns", a big-endian total length, then a
// sequence of typed chunks. PNG payloads are valid for all the OSTypes
// used here, so no legacy raster encodings are needed.

package generate

import (
	"bytes"
	"encoding/binary"

	"github.com/jamestiotio/iconforge/internal/catalog"
)

// icnsTypes maps embedded resolutions to their icns OSType codes.
var icnsTypes = []struct {
	code string
	size int
}{
	{"icp4", 16},
	{"icp5", 32},
	{"ic07", 128},
	{"ic08", 256},
	{"ic09", 512},
}

type icnsGenerator struct{}

func init() {
	Register(icnsGenerator{})
}

func (icnsGenerator) Name() string { return "icns" }

func (icnsGenerator) Generate(job *Job, src *Source, target catalog.Target) ([]byte, error) {
	var chunks bytes.Buffer
	for _, t := range icnsTypes {
		if t.size > target.Width {
			continue
		}

		data, err := encodePNG(scaleInto(src.Icon, t.size, t.size, job.Padding), job.Quality)
		if err != nil {
			return nil, err
		}

		chunks.WriteString(t.code)
		// Chunk length includes the 8-byte type and length header.
		binary.Write(&chunks, binary.BigEndian, uint32(len(data)+8))
		chunks.Write(data)
	}

	var buf bytes.Buffer
	buf.WriteString("icns")
	binary.Write(&buf, binary.BigEndian, uint32(chunks.Len()+8))
	buf.Write(chunks.Bytes())
	return buf.Bytes(), nil
}
