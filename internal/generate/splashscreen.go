// splashscreen.go generates the mobile splashscreen targets. The canvas
// is either a solid fill of the splashscreen colour or the background
// image scaled to cover it; the icon sits centred on top, sized as a
// percentage of the canvas's shorter edge. A zero ratio suppresses the
// icon entirely, leaving just the backdrop.

package generate

import (
	"image"
	"image/draw"

	"github.com/jamestiotio/iconforge/internal/catalog"
)

type splashscreenGenerator struct{}

func init() {
	Register(splashscreenGenerator{})
}

func (splashscreenGenerator) Name() string { return "splashscreen" }

func (splashscreenGenerator) Generate(job *Job, src *Source, target catalog.Target) ([]byte, error) {
	w, h := target.Width, target.Height

	var canvas *image.NRGBA
	if src.Background != nil {
		canvas = scaleCover(src.Background, w, h)
	} else {
		colour, err := parseColour(job.SplashscreenColor)
		if err != nil {
			return nil, err
		}
		canvas = image.NewNRGBA(image.Rect(0, 0, w, h))
		fill(canvas, colour)
	}

	if job.SplashscreenIconRatio > 0 {
		side := int(float64(min(w, h)) * job.SplashscreenIconRatio / 100)
		if side > 0 {
			icon := scaleInto(src.Icon, side, side, [2]int{0, 0})
			x0 := (w - side) / 2
			y0 := (h - side) / 2
			draw.Draw(canvas, image.Rect(x0, y0, x0+side, y0+side), icon, image.Point{}, draw.Over)
		}
	}

	return encodePNG(canvas, job.Quality)
}
