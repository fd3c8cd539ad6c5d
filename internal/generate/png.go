// png.go generates the plain PNG icon targets. The source icon is
// aspect-fit into the target dimensions with the job's padding applied;
// transparency outside the icon is preserved.

package generate

import "github.com/jamestiotio/iconforge/internal/catalog"

type pngGenerator struct{}

func init() {
	Register(pngGenerator{})
}

func (pngGenerator) Name() string { return "png" }

func (pngGenerator) Generate(job *Job, src *Source, target catalog.Target) ([]byte, error) {
	img := scaleInto(src.Icon, target.Width, target.Height, job.Padding)
	return encodePNG(img, job.Quality)
}
