package renderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/halverson/go-sphere-tracer/pkg/scene"
)

func TestEncode_PNGRoundTrip(t *testing.T) {
	img := New(scene.NewDefaultScene()).RenderImage(8, 6)

	var buf bytes.Buffer
	if err := Encode(&buf, img, "png"); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestEncode_WebP(t *testing.T) {
	img := New(scene.NewDefaultScene()).RenderImage(8, 6)

	var buf bytes.Buffer
	if err := Encode(&buf, img, "webp"); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	// RIFF container magic
	if buf.Len() < 12 || !bytes.Equal(buf.Bytes()[:4], []byte("RIFF")) {
		t.Error("Expected a RIFF/WebP container")
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	img := New(scene.NewScene()).RenderImage(2, 2)

	var buf bytes.Buffer
	if err := Encode(&buf, img, "gif"); err == nil {
		t.Error("Expected error for unknown format")
	}
}
