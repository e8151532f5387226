package chart

import (
	"bytes"
	"errors"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrEmptyTable = errors.New("chart: nothing to plot")

var (
	colorWhite     = drawing.ColorWhite
	colorText      = drawing.Color{R: 51, G: 51, B: 51, A: 255}
	colorAxis      = drawing.Color{R: 120, G: 120, B: 120, A: 255}
	colorGridLine  = drawing.Color{R: 225, G: 225, B: 225, A: 255}
	colorCellLine  = drawing.ColorWhite
	titleFontSize  = 14.0
	labelFontSize  = 10.0
	legendFontSize = 9.0
)

// canvas wraps a go-chart raster renderer for charts whose layout go-chart
// cannot express (annotated grids, stacked horizontal bars).
type canvas struct {
	r gochart.Renderer
	w int
	h int
}

func newCanvas(w, h int) (*canvas, error) {
	r, err := gochart.PNG(w, h)
	if err != nil {
		return nil, fmt.Errorf("chart: create renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("chart: load font: %w", err)
	}
	r.SetFont(font)

	c := &canvas{r: r, w: w, h: h}
	c.fillRect(0, 0, w, h, colorWhite)
	return c, nil
}

func (c *canvas) fillRect(left, top, right, bottom int, color drawing.Color) {
	c.r.SetFillColor(color)
	c.r.SetStrokeWidth(0)
	c.r.MoveTo(left, top)
	c.r.LineTo(right, top)
	c.r.LineTo(right, bottom)
	c.r.LineTo(left, bottom)
	c.r.Close()
	c.r.Fill()
}

func (c *canvas) line(x0, y0, x1, y1 int, color drawing.Color, width float64) {
	c.r.SetStrokeColor(color)
	c.r.SetStrokeWidth(width)
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y1)
	c.r.Stroke()
}

func (c *canvas) measure(text string, size float64) gochart.Box {
	c.r.SetFontSize(size)
	return c.r.MeasureText(text)
}

// text draws with (x, y) as the top-left corner of the text box.
func (c *canvas) text(text string, x, y int, size float64, color drawing.Color) {
	c.r.SetFontSize(size)
	c.r.SetFontColor(color)
	b := c.r.MeasureText(text)
	c.r.Text(text, x, y+b.Height())
}

// centered draws text centred on (cx, cy).
func (c *canvas) centered(text string, cx, cy int, size float64, color drawing.Color) {
	b := c.measure(text, size)
	c.text(text, cx-b.Width()/2, cy-b.Height()/2, size, color)
}

// rightAligned draws text ending at x, vertically centred on cy.
func (c *canvas) rightAligned(text string, x, cy int, size float64, color drawing.Color) {
	b := c.measure(text, size)
	c.text(text, x-b.Width(), cy-b.Height()/2, size, color)
}

func (c *canvas) title(text string) {
	c.centered(text, c.w/2, 24, titleFontSize, colorText)
}

func (c *canvas) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.r.Save(&buf); err != nil {
		return nil, fmt.Errorf("chart: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
