package graphics

import "testing"

type countingCanvas struct {
	rects, texts, saves, restores int
	dx, dy                        float64
}

func (c *countingCanvas) Save() { c.saves++ }
func (c *countingCanvas) Restore() { c.restores++ }
func (c *countingCanvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}
func (c *countingCanvas) DrawRect(Rect, Paint) { c.rects++ }
func (c *countingCanvas) DrawText(string, Offset, TextStyle) { c.texts++ }
func (c *countingCanvas) MeasureText(string, TextStyle) Size { return Size{} }
func (c *countingCanvas) Size() Size { return Size{} }

func TestDisplayListReplay(t *testing.T) {
	rec := &PictureRecorder{}
	canvas := rec.BeginRecording(Size{Width: 100, Height: 100})
	canvas.Save()
	canvas.Translate(4, 2)
	canvas.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorRed))
	canvas.DrawText("hi", Offset{}, DefaultTextStyle())
	canvas.Restore()
	dl := rec.EndRecording()

	if dl.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", dl.Len())
	}

	target := &countingCanvas{}
	dl.Paint(target)
	if target.rects != 1 || target.texts != 1 || target.saves != 1 || target.restores != 1 {
		t.Errorf("replay counts = %+v", target)
	}
	if target.dx != 4 || target.dy != 2 {
		t.Errorf("translate = (%v, %v), want (4, 2)", target.dx, target.dy)
	}
}

func TestRecorderIgnoresOpsOutsideRecording(t *testing.T) {
	rec := &PictureRecorder{}
	canvas := rec.BeginRecording(Size{})
	rec.EndRecording()
	canvas.DrawRect(Rect{}, DefaultPaint())
	if dl := rec.EndRecording(); dl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", dl.Len())
	}
}

func TestMeasureTextDefaultFace(t *testing.T) {
	got := MeasureText(nil, "hello", DefaultTextStyle())
	want := Size{Width: 35, Height: 13}
	if got != want {
		t.Errorf("MeasureText = %v, want %v", got, want)
	}

	doubled := MeasureText(nil, "hello", TextStyle{FontSize: 26})
	if doubled.Width != 70 || doubled.Height != 26 {
		t.Errorf("MeasureText at 26pt = %v, want {70 26}", doubled)
	}
}
