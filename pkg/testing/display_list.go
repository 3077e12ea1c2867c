package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/compose/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params,omitempty,flow"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color))
	if paint.Style == graphics.PaintStyleStroke {
		params["stroke"] = round2(paint.StrokeWidth)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawText(text string, position graphics.Offset, style graphics.TextStyle) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"color", serializeColor(style.Color),
			"size", round2(style.FontSize),
		),
	})
}

func (c *serializingCanvas) MeasureText(text string, style graphics.TextStyle) graphics.Size {
	return graphics.MeasureText(nil, text, style)
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) []float64 {
	return []float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func serializeColor(c graphics.Color) string {
	return c.String()
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. The YAML
// encoder writes map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[fmt.Sprint(kvs[i])] = kvs[i+1]
	}
	return m
}
