package eink

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

func TestDrawLineHorizontal(t *testing.T) {
	var log pixelLog
	r := DrawLine(&log, IPt(0, 0), IPt(10, 0), 1, Black)

	want := make([]IntPoint, 0, 11)
	for x := 0; x <= 10; x++ {
		want = append(want, IPt(x, 0))
	}
	if !slices.Equal(log.writes, want) {
		t.Errorf("pixels = %v, want %v", log.writes, want)
	}
	if r != (Rect{Top: 0, Left: 0, Width: 10, Height: 0}) {
		t.Errorf("rect = %v, want {0 0 10 0}", r)
	}
}

func TestDrawLineWideStamp(t *testing.T) {
	var log pixelLog
	r := DrawLine(&log, IPt(20, 20), IPt(30, 20), 4, Black)

	for p := range log.last {
		if !r.ContainsPoint(p) {
			t.Errorf("pixel %v outside returned rect %v", p, r)
		}
	}
	// Square stamps of side 4 centred on y=20 cover rows 18..21.
	for y := 18; y <= 21; y++ {
		if _, ok := log.last[IPt(25, y)]; !ok {
			t.Errorf("row %d not covered at x=25", y)
		}
	}
	if want := RectFromExtents(20, 20, 30, 20).Expand(2); r != want {
		t.Errorf("rect = %v, want %v", r, want)
	}
}

func TestDrawCircleRects(t *testing.T) {
	var log pixelLog
	want := RectFromExtents(40, 40, 60, 60)
	if r := DrawCircle(&log, IPt(50, 50), 10, Black); r != want {
		t.Errorf("DrawCircle rect = %v, want %v", r, want)
	}
	if r := FillCircle(&log, IPt(50, 50), 10, Black); r != want {
		t.Errorf("FillCircle rect = %v, want %v", r, want)
	}
	if _, ok := log.last[IPt(50, 50)]; !ok {
		t.Error("FillCircle left the centre unpainted")
	}
	if r := FillCircle(&log, IPt(5, 5), 0, Black); r.IsValid() {
		t.Errorf("zero radius rect = %v, want invalid", r)
	}
}

func TestFillPolygonSharedEdge(t *testing.T) {
	var log pixelLog
	a := []IntPoint{{100, 100}, {100, 101}, {102, 100}}
	b := []IntPoint{{100, 101}, {102, 100}, {102, 101}}
	FillPolygon(&log, a, Black)
	FillPolygon(&log, b, Black)
	if want := []IntPoint{{100, 100}, {101, 100}}; !slices.Equal(log.writes, want) {
		t.Errorf("pixels = %v, want %v", log.writes, want)
	}
}

func TestDrawPolygonDegenerate(t *testing.T) {
	var log pixelLog
	tests := [][]IntPoint{
		nil,
		{{1, 1}},
		{{0, 5}, {10, 5}, {20, 5}},
	}
	for _, pts := range tests {
		if r := DrawPolygon(&log, pts, true, Black); r.IsValid() {
			t.Errorf("DrawPolygon(%v) = %v, want invalid", pts, r)
		}
	}
	if len(log.writes) != 0 {
		t.Errorf("degenerate polygons wrote %v", log.writes)
	}
}

func TestStrokePolygonCoversVertices(t *testing.T) {
	var log pixelLog
	pts := []IntPoint{{10, 10}, {20, 10}, {20, 20}}
	r := StrokePolygon(&log, pts, 1, Black)
	for _, p := range pts {
		if _, ok := log.last[p]; !ok {
			t.Errorf("vertex %v not painted", p)
		}
	}
	if r != RectFromExtents(10, 10, 20, 20) {
		t.Errorf("rect = %v", r)
	}
}

func TestDrawBezierStraightBand(t *testing.T) {
	var log pixelLog
	r := DrawBezier(&log, Pt(100, 300), Pt(150, 300), Pt(200, 300), 8, 10, Black)
	if !r.IsValid() || len(log.writes) == 0 {
		t.Fatal("straight stroke drew nothing")
	}
	for p := range log.last {
		if p.Y < 300-5 || p.Y > 300+5 {
			t.Errorf("pixel %v outside the stroke band", p)
		}
		if !r.ContainsPoint(p) {
			t.Errorf("pixel %v outside returned rect %v", p, r)
		}
	}
}

func TestDrawDynamicBezierDegenerate(t *testing.T) {
	var log pixelLog
	p := BezierPoint{Pos: Pt(3, 3)}
	if r := DrawDynamicBezier(&log, p, p, p, 10, Black); r.IsValid() {
		t.Errorf("degenerate stroke rect = %v, want invalid", r)
	}
}

func TestFillAndDrawRect(t *testing.T) {
	var log pixelLog
	r := RectOfSize(2, 3, 4, 5)
	if got := FillRect(&log, r, Black); got != r {
		t.Errorf("FillRect = %v, want %v", got, r)
	}
	if len(log.last) != 20 {
		t.Errorf("FillRect painted %d pixels, want 20", len(log.last))
	}

	log = pixelLog{}
	DrawRect(&log, RectOfSize(0, 0, 5, 5), 1, Black)
	if len(log.last) != 16 {
		t.Errorf("DrawRect border has %d pixels, want 16", len(log.last))
	}
	if _, ok := log.last[IPt(2, 2)]; ok {
		t.Error("DrawRect painted the interior")
	}
}

func TestDrawImage(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 8, 7))
	img.SetGray(5, 5, color.Gray{Y: 0xff})
	var log pixelLog
	r := DrawImage(&log, img, IPt(100, 200))
	if r != RectOfSize(100, 200, 3, 2) {
		t.Errorf("rect = %v", r)
	}
	if len(log.last) != 6 {
		t.Errorf("DrawImage wrote %d pixels, want 6", len(log.last))
	}
	if l := log.last[IPt(100, 200)].Luma(); l != 0xff {
		t.Errorf("pixel (100,200) luma = %d, want 255", l)
	}
	if l := log.last[IPt(101, 200)].Luma(); l != 0 {
		t.Errorf("pixel (101,200) luma = %d, want 0", l)
	}
}

func TestDrawTextDryRunMatches(t *testing.T) {
	var log pixelLog
	dry := DrawText(&log, nil, Pt(50, 100), "Ink 42", 36, Black, true)
	if len(log.writes) != 0 {
		t.Fatalf("dry run wrote %d pixels", len(log.writes))
	}
	if !dry.IsValid() {
		t.Fatal("dry run rect is invalid")
	}

	drawn := DrawText(&log, nil, Pt(50, 100), "Ink 42", 36, Black, false)
	if drawn != dry {
		t.Errorf("drawn rect %v != dry rect %v", drawn, dry)
	}
	if len(log.writes) == 0 {
		t.Fatal("real draw wrote nothing")
	}
	for p, c := range log.last {
		if !drawn.ContainsPoint(p) {
			t.Errorf("pixel %v outside rect %v", p, drawn)
		}
		if c.IsWhite() {
			t.Errorf("pixel %v written as white; zero coverage must be skipped", p)
		}
	}
}
