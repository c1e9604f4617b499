// Command inkdemo drives a scripted annotation session and prints the
// resulting render batch statistics.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gogpu/ink"
	wgpubackend "github.com/gogpu/ink/backend/wgpu"
	"github.com/gogpu/ink/geom"
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/render"
)

func main() {
	var (
		width  = flag.Int("width", 800, "viewport width")
		height = flag.Int("height", 600, "viewport height")
		useGPU = flag.Bool("gpu", false, "open a GPU device and pack the batch")
	)
	flag.Parse()

	now := time.Now()
	clock := func() time.Time { return now }

	eng := ink.New(
		ink.WithViewport(float64(*width), float64(*height)),
		ink.WithColor(geom.RGB(0.9, 0.2, 0.2)),
		ink.WithClock(clock),
	)

	drawStroke(eng, geom.Pt(100, 100), geom.Pt(200, 150), geom.Pt(300, 120))

	drawRectangle(eng, geom.Pt(350, 200), geom.Pt(500, 320))

	typeText(eng, geom.Pt(120, 400), "سلام دنیا")

	log.Printf("actions recorded: %d", eng.ActionCount())

	batch := eng.Frame()
	log.Printf("batch: %d vertices, %d text requests", len(batch.Vertices), len(batch.Texts))
	for i, tr := range batch.Texts {
		log.Printf("  text[%d]: %q at (%.0f, %.0f) rtl=%v", i, tr.Text, tr.Position.X, tr.Position.Y, tr.RTL)
	}

	if eng.Undo() {
		log.Printf("undo: actions now %d", eng.ActionCount())
	}

	presenter, err := wgpubackend.NewPresenter(
		render.NullDeviceHandle{},
		render.DefaultFrameDescriptor(uint32(*width), uint32(*height)),
	)
	if err != nil {
		log.Fatalf("presenter: %v", err)
	}
	defer presenter.Close()

	if err := presenter.Submit(batch); err != nil {
		log.Fatalf("submit: %v", err)
	}
	log.Printf("staged vertex buffer: %d bytes (stride %d), %d text requests",
		len(presenter.VertexData()), wgpubackend.VertexStride, len(presenter.Texts()))
	presenter.MarkPresented()

	if *useGPU {
		runGPU()
	}
}

// drawStroke presses the left button, moves through the points, and releases.
func drawStroke(eng *ink.Engine, points ...geom.Point) {
	if len(points) == 0 {
		return
	}
	eng.Pointer(input.PointerEvent{Position: points[0], Button: input.ButtonLeft, Pressed: true})
	for _, p := range points[1:] {
		eng.PointerMove(p)
	}
	eng.Pointer(input.PointerEvent{Position: points[len(points)-1], Button: input.ButtonLeft, Pressed: false})
}

// drawRectangle holds the shape modifier while dragging between corners.
func drawRectangle(eng *ink.Engine, first, last geom.Point) {
	eng.Key(input.KeyEvent{Code: input.CodeChar, Rune: 's', Pressed: true})
	eng.Pointer(input.PointerEvent{Position: first, Button: input.ButtonLeft, Pressed: true})
	eng.PointerMove(last)
	eng.Pointer(input.PointerEvent{Position: last, Button: input.ButtonLeft, Pressed: false})
	eng.Key(input.KeyEvent{Code: input.CodeChar, Rune: 's', Pressed: false})
}

// typeText right-clicks to open an editor, types, and commits.
func typeText(eng *ink.Engine, at geom.Point, text string) {
	eng.Pointer(input.PointerEvent{Position: at, Button: input.ButtonRight, Pressed: true})
	for _, r := range text {
		eng.Key(input.KeyEvent{Code: input.CodeChar, Rune: r, Text: string(r), Pressed: true})
		eng.Key(input.KeyEvent{Code: input.CodeChar, Rune: r, Text: string(r), Pressed: false})
	}
	eng.Key(input.KeyEvent{Code: input.CodeEnter, Pressed: true})
}

// runGPU opens a real device to report the selected adapter.
func runGPU() {
	dev := wgpubackend.NewDevice()
	if err := dev.Open(); err != nil {
		log.Printf("gpu unavailable: %v", err)
		return
	}
	defer dev.Close()

	if info := dev.Info(); info != nil {
		log.Printf("gpu: %s", info)
	}
}
