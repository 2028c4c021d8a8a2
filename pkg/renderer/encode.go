package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// WritePNG encodes a rendered frame as PNG
func WritePNG(w io.Writer, img *image.RGBA) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteWebP encodes a rendered frame as lossless WebP
func WriteWebP(w io.Writer, img *image.RGBA) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return nil
}

// Encode writes a frame in the named format, "png" or "webp".
func Encode(w io.Writer, img *image.RGBA, format string) error {
	switch format {
	case "png":
		return WritePNG(w, img)
	case "webp":
		return WriteWebP(w, img)
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}
