// image.go holds the raster helpers shared by the generators: colour
// parsing, scaling, padding and PNG encoding. Scaling uses Catmull-Rom
// resampling, which holds up well for both the large splashscreen
// upscales and the tiny favicon downscales.

package generate

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/crypto/blake2b"
	xdraw "golang.org/x/image/draw"
)

// parseColour converts a normalised "#rgb" or "#rrggbb" value into an
// opaque colour. Inputs reach this point already validated, so malformed
// values indicate a pipeline bug and surface as errors rather than a
// fallback colour.
func parseColour(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("malformed colour %q", s)
	}

	b, err := hex.DecodeString(h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed colour %q", s)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
}

// scaleInto renders src aspect-fit and centred within the w by h canvas,
// inset by the horizontal and vertical padding. The content box is
// clamped to at least one pixel so extreme padding degrades gracefully
// instead of producing an empty image.
func scaleInto(src image.Image, w, h int, padding [2]int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))

	boxW := max(w-2*padding[0], 1)
	boxH := max(h-2*padding[1], 1)

	sb := src.Bounds()
	fitW, fitH := fitInside(sb.Dx(), sb.Dy(), boxW, boxH)

	x0 := (w - fitW) / 2
	y0 := (h - fitH) / 2
	dst := image.Rect(x0, y0, x0+fitW, y0+fitH)

	xdraw.CatmullRom.Scale(canvas, dst, src, sb, xdraw.Over, nil)
	return canvas
}

// scaleCover fills the w by h canvas with src scaled to cover it,
// cropping the overflow evenly on both sides.
func scaleCover(src image.Image, w, h int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))

	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return canvas
	}

	// Scale up whichever axis falls short, then centre the overflow.
	coverW := w
	coverH := sh * w / sw
	if coverH < h {
		coverH = h
		coverW = sw * h / sh
	}

	x0 := (w - coverW) / 2
	y0 := (h - coverH) / 2
	dst := image.Rect(x0, y0, x0+coverW, y0+coverH)

	xdraw.CatmullRom.Scale(canvas, dst, src, sb, xdraw.Over, nil)
	return canvas
}

// fitInside scales sw by sh to the largest size fitting within bw by bh
// while preserving aspect ratio. Results are clamped to at least one
// pixel per axis.
func fitInside(sw, sh, bw, bh int) (int, int) {
	if sw == 0 || sh == 0 {
		return 1, 1
	}

	w := bw
	h := sh * bw / sw
	if h > bh {
		h = bh
		w = sw * bh / sh
	}
	return max(w, 1), max(h, 1)
}

// fill paints the whole image with a single colour.
func fill(img *image.NRGBA, c color.NRGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// compression maps the 1..12 quality scale onto the encoder's three
// useful levels. Lower quality favours speed, higher favours size.
func compression(quality int) png.CompressionLevel {
	switch {
	case quality <= 4:
		return png.BestSpeed
	case quality <= 8:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

func encodePNG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: compression(quality)}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// digest returns a short content fingerprint for manifest entries.
func digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
