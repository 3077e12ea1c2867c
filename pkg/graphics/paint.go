package graphics

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke draws the outline only.
	PaintStyleStroke
)

func (s PaintStyle) String() string {
	switch s {
	case PaintStyleStroke:
		return "stroke"
	default:
		return "fill"
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// DefaultPaint returns a basic opaque black fill paint.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack, Style: PaintStyleFill}
}

// FillPaint returns a fill paint of the given color.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}
