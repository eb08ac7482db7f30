package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/joseph-ayodele/claims-extract/internal/common"
)

// PreparedPage is one page of a source document, normalized for the vision
// model: RGB, longest edge capped, JPEG-encoded, base64.
type PreparedPage struct {
	Index  int // zero-based page index within the document
	B64    string
	MIME   string
	Width  int
	Height int
}

// Options controls page normalization.
type Options struct {
	MaxEdge     int // longest-edge cap in pixels, 0 disables resizing
	JPEGQuality int // 1..100
}

func (o Options) withDefaults() Options {
	if o.MaxEdge == 0 {
		o.MaxEdge = 2048
	}
	if o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		o.JPEGQuality = 85
	}
	return o
}

// preparePage decodes raw image bytes and normalizes them into a PreparedPage.
func preparePage(r io.Reader, index int, opts Options, logger *slog.Logger) (PreparedPage, error) {
	opts = opts.withDefaults()

	decoded, format, err := image.Decode(r)
	if err != nil {
		return PreparedPage{}, common.NewAppError("DECODE_ERROR",
			fmt.Sprintf("decode page %d image: %v", index, err), common.ErrDecode)
	}

	img := flattenToRGB(decoded)
	img = capLongestEdge(img, opts.MaxEdge)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: opts.JPEGQuality}); err != nil {
		return PreparedPage{}, common.NewAppError("DECODE_ERROR",
			fmt.Sprintf("encode page %d image: %v", index, err), common.ErrDecode)
	}

	bounds := img.Bounds()
	if logger != nil {
		logger.Debug("imaging.prepare.ok",
			"page", index,
			"source_format", format,
			"width", bounds.Dx(),
			"height", bounds.Dy(),
			"jpeg_bytes", buf.Len(),
		)
	}
	return PreparedPage{
		Index:  index,
		B64:    base64.StdEncoding.EncodeToString(buf.Bytes()),
		MIME:   "image/jpeg",
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// flattenToRGB composites the image onto a white background so transparent
// scan regions do not come out black after JPEG encoding.
func flattenToRGB(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.Draw(out, out.Bounds(), img, bounds.Min, xdraw.Over)
	return out
}

// capLongestEdge downscales so the longest edge is at most maxEdge pixels,
// preserving aspect ratio. Images already within bounds pass through.
func capLongestEdge(img *image.RGBA, maxEdge int) *image.RGBA {
	if maxEdge <= 0 {
		return img
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxEdge {
		return img
	}
	scale := float64(maxEdge) / float64(longest)
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return out
}
