package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"

	"github.com/halverson/go-sphere-tracer/pkg/renderer"
	"github.com/halverson/go-sphere-tracer/pkg/scene"
)

const (
	moveStep      = 0.2
	intensityStep = 0.1
	screenshotDim = 1024
)

// game re-renders the scene every frame. Between frames the keyboard
// edits the light in place; the renderer picks up the new state at the
// start of the next pass.
type game struct {
	renderer *renderer.Renderer
	light    *scene.Light
	frame    *ebiten.Image
	width    int
	height   int
	workers  int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.light.Position.X -= moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.light.Position.X += moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.light.Position.Y += moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.light.Position.Y -= moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		g.light.Position.Z += moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		g.light.Position.Z -= moveStep
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.light.Intensity += dy * intensityStep
		if g.light.Intensity < 0 {
			g.light.Intensity = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveScreenshot(); err != nil {
			log.Printf("screenshot: %v", err)
		}
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	buf := g.renderer.RenderParallel(g.width, g.height, g.workers)
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	g.frame.WritePixels(buf)
	screen.DrawImage(g.frame, nil)

	ebiten.SetWindowTitle(fmt.Sprintf("sphere-tracer  light=(%.1f, %.1f, %.1f)  intensity=%.1f",
		g.light.Position.X, g.light.Position.Y, g.light.Position.Z, g.light.Intensity))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// saveScreenshot renders the current view, upscales it to screenshotDim
// with CatmullRom filtering, and writes a timestamped PNG.
func (g *game) saveScreenshot() error {
	src := g.renderer.RenderImage(g.width, g.height)

	scale := screenshotDim / g.width
	if scale < 1 {
		scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.width*scale, g.height*scale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	name := fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405"))
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := renderer.WritePNG(file, dst); err != nil {
		return err
	}
	log.Printf("saved %s", name)
	return nil
}

func main() {
	width := flag.Int("width", 320, "Render width")
	height := flag.Int("height", 240, "Render height")
	workers := flag.Int("workers", 0, "Worker goroutines per frame (default: NumCPU)")
	flag.Parse()

	s := scene.NewDefaultScene()
	g := &game{
		renderer: renderer.New(s),
		light:    s.Lights()[0],
		width:    *width,
		height:   *height,
		workers:  *workers,
	}

	ebiten.SetWindowSize(*width*2, *height*2)
	ebiten.SetWindowTitle("sphere-tracer")
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
