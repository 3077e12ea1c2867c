package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 13

// TextStyle describes how text is drawn and measured.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// DefaultTextStyle returns black text at the default size.
func DefaultTextStyle() TextStyle {
	return TextStyle{Color: ColorBlack, FontSize: defaultFontSize}
}

// MeasureText measures a single line of text with the given face, scaled
// from the face's nominal height to style.FontSize. A nil face uses the
// built-in 7x13 bitmap face.
func MeasureText(face font.Face, text string, style TextStyle) Size {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	nominal := fixedToFloat(metrics.Height)
	if nominal <= 0 {
		nominal = defaultFontSize
	}
	scale := 1.0
	if style.FontSize > 0 {
		scale = style.FontSize / nominal
	}
	width := fixedToFloat(font.MeasureString(face, text))
	return Size{Width: width * scale, Height: nominal * scale}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
