package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Processor downscales uploaded blog images so oversized originals never
// reach storage. Images at or below maxWidth pass through re-encoded.
type Processor struct {
	maxWidth int
	quality  int // JPEG quality (1-100)
}

func NewProcessor(maxWidth, quality int) *Processor {
	if maxWidth <= 0 {
		maxWidth = 1600
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		maxWidth: maxWidth,
		quality:  quality,
	}
}

// Downscale decodes the image, shrinks it to the processor's max width when
// needed (aspect ratio preserved), and re-encodes it in its original format.
// Only JPEG and PNG are accepted.
func (p *Processor) Downscale(reader io.Reader) (io.Reader, string, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if width := bounds.Dx(); width > p.maxWidth {
		height := bounds.Dy() * p.maxWidth / width
		dst := image.NewRGBA(image.Rect(0, 0, p.maxWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", format)
	}

	return &buf, format, nil
}

// IsValidImage reports whether the reader holds a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
