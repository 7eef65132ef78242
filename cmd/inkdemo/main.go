// Command inkdemo is a small drawing program for the e-ink tablet.
//
// The pen draws inside the canvas region; the rubber end erases. Fingers
// stamp shapes. The buttons save (left) and restore (right) the canvas,
// deep-clear the screen (middle), cycle the touch shape (wakeup) and quit
// (power).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/appctx"
	"github.com/gogpu/eink/config"
	"github.com/gogpu/eink/input"
	"github.com/gogpu/eink/stroke"
)

type touchMode int

const (
	touchCircles touchMode = iota
	touchDiamonds
	touchFillDiamonds
	touchBezier
	touchModeCount
)

func (m touchMode) String() string {
	return [...]string{"circles", "diamonds", "filled diamonds", "bezier"}[m]
}

type demo struct {
	tracker   stroke.Tracker
	erasing   bool
	checkered int
	touch     touchMode
	headerH   int
}

func main() {
	var (
		cfgPath   = flag.String("config", "", "TOML configuration file")
		checkered = flag.Int("checkered", 0, "draw through a checkerboard of this cell size (0 for solid)")
	)
	flag.Parse()

	if err := run(*cfgPath, *checkered); err != nil {
		fmt.Fprintln(os.Stderr, "inkdemo:", err)
		os.Exit(1)
	}
}

func run(cfgPath string, checkered int) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	eink.SetLogger(log)

	d := &demo{checkered: checkered, headerH: 120}
	app, err := appctx.Open(cfg, appctx.Handlers{
		Digitizer: d.onPen,
		Touch:     d.onTouch,
		Buttons:   d.onButton,
	})
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.Clear(true); err != nil {
		return err
	}
	d.drawHeader(app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Info("inkdemo: ready", "canvas", app.CanvasRegion())
	if err := app.Dispatch(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (d *demo) drawHeader(app *appctx.Context) {
	s := app.Surface()
	w, _ := s.Bounds().Size()
	header := eink.RectOfSize(0, 0, w, d.headerH)
	eink.FillRect(s, header, eink.White)
	eink.DrawText(s, nil, eink.Pt(40, 70), "inkdemo", 48, eink.Black, false)
	eink.DrawText(s, nil, eink.Pt(40, 105), "touch: "+d.touch.String(), 24, eink.Gray(0x40), false)
	eink.DrawLine(s, eink.IntPoint{X: 0, Y: d.headerH - 1}, eink.IntPoint{X: w - 1, Y: d.headerH - 1}, 2, eink.Black)
	if _, err := app.Flush(header, appctx.Refresh); err != nil {
		eink.Logger().Warn("inkdemo: header refresh", "err", err)
	}
}

func (d *demo) onPen(app *appctx.Context, ev input.Event) {
	switch e := ev.(type) {
	case input.InstrumentChangeEvent:
		if e.Tool == input.ToolRubber {
			d.erasing = e.State
		} else if e.Tool == input.ToolPen && e.State {
			d.erasing = false
		}
	case input.DrawEvent:
		if !app.CanvasRegion().ContainsPoint(e.Position.Int()) {
			d.tracker.Reset()
			return
		}
	}

	col := eink.Black
	d.tracker.Multiplier = stroke.DefaultMultiplier
	if d.erasing {
		col = eink.White
		d.tracker.Multiplier = 3 * stroke.DefaultMultiplier
	}
	segs := d.tracker.Handle(ev)
	if len(segs) == 0 {
		return
	}

	s := app.Surface()
	var c eink.Canvas = eink.Mask(eink.Mask(s, eink.NonNegative), eink.InRect(app.CanvasRegion()))
	if d.checkered > 0 && !d.erasing {
		c = eink.Mask(c, eink.Checkered(d.checkered))
	}
	dirty := eink.InvalidRect
	for _, seg := range segs {
		dirty = dirty.Merge(stroke.Render(c, seg, stroke.DefaultSamples, col))
	}
	if _, err := app.FlushInk(dirty); err != nil {
		eink.Logger().Warn("inkdemo: ink refresh", "err", err)
	}
}

func (d *demo) onTouch(app *appctx.Context, ev input.Event) {
	e, ok := ev.(input.TouchEvent)
	if !ok {
		return
	}
	p := e.Position.Int()
	if !app.CanvasRegion().ContainsPoint(p) {
		return
	}

	s := app.Surface()
	var dirty eink.Rect
	switch d.touch {
	case touchCircles:
		dirty = eink.DrawCircle(s, p, 20, eink.Black)
	case touchDiamonds, touchFillDiamonds:
		pts := []eink.IntPoint{
			{X: p.X - 10, Y: p.Y},
			{X: p.X, Y: p.Y + 20},
			{X: p.X + 10, Y: p.Y},
			{X: p.X, Y: p.Y - 20},
		}
		dirty = eink.DrawPolygon(s, pts, d.touch == touchFillDiamonds, eink.Black)
	case touchBezier:
		dirty = drawFlourish(s, e.Position)
	}
	if _, err := app.FlushInk(dirty); err != nil {
		eink.Logger().Warn("inkdemo: touch refresh", "err", err)
	}
}

// drawFlourish draws a looping variable-width curve around pos.
func drawFlourish(c eink.Canvas, pos eink.Point) eink.Rect {
	pts := []eink.BezierPoint{
		{Pos: eink.Pt(-40, 0), Width: 2.5},
		{Pos: eink.Pt(40, -60), Width: 5.5},
		{Pos: eink.Pt(0, 0), Width: 3.5},
		{Pos: eink.Pt(-40, 60), Width: 6.5},
		{Pos: eink.Pt(-10, 50), Width: 5},
		{Pos: eink.Pt(10, 45), Width: 4.5},
		{Pos: eink.Pt(30, 55), Width: 3.5},
		{Pos: eink.Pt(50, 65), Width: 3},
		{Pos: eink.Pt(70, 40), Width: 0},
	}
	for i := range pts {
		pts[i].Pos = pts[i].Pos.Add(pos)
	}
	dirty := eink.InvalidRect
	for i := 0; i+2 < len(pts); i += 2 {
		dirty = dirty.Merge(eink.DrawDynamicBezier(c, pts[i], pts[i+1], pts[i+2], 100, eink.Black))
	}
	return dirty
}

func (d *demo) onButton(app *appctx.Context, ev input.Event) {
	e, ok := ev.(input.ButtonPressEvent)
	if !ok {
		return
	}
	// Palm rejection: the pen hand rests on the buttons while writing.
	if app.PenInRange() {
		return
	}
	log := eink.Logger()
	switch e.Button {
	case input.ButtonLeft:
		if app.SaveCanvas() {
			log.Info("inkdemo: canvas saved")
		}
	case input.ButtonRight:
		if app.RestoreCanvas() {
			log.Info("inkdemo: canvas restored")
		}
	case input.ButtonMiddle:
		if err := app.Clear(true); err != nil {
			log.Warn("inkdemo: clear", "err", err)
		}
		d.tracker.Reset()
		d.drawHeader(app)
	case input.ButtonWakeup:
		d.touch = (d.touch + 1) % touchModeCount
		d.drawHeader(app)
	case input.ButtonPower:
		app.Stop()
	}
}
