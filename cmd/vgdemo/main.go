// Command vgdemo renders a sample scene with the vg rendering core and
// saves it as a PNG.
package main

import (
	"flag"
	"log"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/raster"
	"github.com/gogpu/vg/text"
)

func main() {
	var (
		width  = flag.Float64("width", 800, "surface width in pixels")
		height = flag.Float64("height", 600, "surface height in pixels")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	shaper := text.NewShaper()
	if err := shaper.LoadFont(vg.WeightNormal, goregular.TTF); err != nil {
		log.Fatalf("load font: %v", err)
	}

	frame := raster.NewFrame(
		raster.WithShaper(shaper),
		raster.WithBackground(vg.RGB(245, 245, 250)),
	)
	frame.Resize(vg.Pt(*width, *height))
	frame.SetViewport(vg.Rect{Size: vg.Pt(*width, *height)})

	buildScene(frame)

	img, err := frame.Image()
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := img.(*raster.Image).SavePNG(*output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("demo saved to %s (%gx%g)", *output, *width, *height)
}

func buildScene(frame vg.Frame) {
	// Card with a soft drop shadow.
	card := vg.RoundedRectangle(320, 200, 24).
		Fill(vg.Fill{Content: vg.Solid{Color: vg.White}}).
		Shadow(vg.NewShadow(vg.RGBA(0, 0, 0, 90)).WithOffset(vg.Pt(8, 10)).WithBlur(6)).
		Finalize()
	frame.Add(vg.NewContent(card).WithTransform(vg.Translate(60, 80)))

	// Gradient-filled circle.
	sun := vg.Circle(70).
		Fill(vg.Fill{Content: vg.NewRadialGradient(vg.Pt(70, 70), 10, vg.Pt(70, 70), 70).
			AddStop(0, vg.RGB(255, 220, 120)).
			AddStop(1, vg.RGB(240, 120, 40))}).
		Finalize()
	frame.Add(vg.NewContent(sun).WithTransform(vg.Translate(480, 60)))

	// Stroked open curve across the bottom.
	wave := vg.NewGeometry().
		MoveTo(vg.Pt(0, 0)).
		BezierTo(vg.Pt(200, 0), vg.Pt(60, -80), vg.Pt(140, 80)).
		BezierTo(vg.Pt(400, 0), vg.Pt(260, -80), vg.Pt(340, 80)).
		Done().
		Stroke(vg.NewStroke(vg.Solid{Color: vg.RGB(40, 90, 200)}, 5).
			CapRound().
			JoinRound().
			Finalize()).
		Finalize()
	frame.Add(vg.NewContent(wave).WithTransform(vg.Translate(100, 460)))

	// Linear-gradient bar.
	bar := vg.Rectangle(500, 24).
		Fill(vg.Fill{Content: vg.NewLinearGradient(vg.Pt(0, 0), vg.Pt(500, 0)).
			AddStop(0, vg.Red).
			AddStop(0.5, vg.RGB(200, 60, 200)).
			AddStop(1, vg.Blue)}).
		Finalize()
	frame.Add(vg.NewContent(bar).WithTransform(vg.Translate(60, 330)))

	// Title text.
	title := vg.NewText("vg rendering core").
		WithSize(32).
		WithColor(vg.RGB(30, 30, 60))
	frame.Add(vg.NewContent(title).WithTransform(vg.Translate(80, 110)))
}
