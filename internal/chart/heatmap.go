package chart

import (
	"math"
	"strconv"

	"go-paygap/internal/pivot"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ylGnBu is the yellow-green-blue sequential ramp, light to dark.
var ylGnBu = []drawing.Color{
	drawing.ColorFromHex("ffffd9"),
	drawing.ColorFromHex("edf8b1"),
	drawing.ColorFromHex("c7e9b4"),
	drawing.ColorFromHex("7fcdbb"),
	drawing.ColorFromHex("41b6c4"),
	drawing.ColorFromHex("1d91c0"),
	drawing.ColorFromHex("225ea8"),
	drawing.ColorFromHex("253494"),
	drawing.ColorFromHex("081d58"),
}

const (
	heatCellW       = 84
	heatCellH       = 30
	heatTop         = 56
	heatColorBarW   = 18
	heatColorBarGap = 24
	heatTickRoom    = 70
	heatLabelPad    = 10
)

// Heatmap renders a pivot table as an annotated colour grid. Row labels
// join the index values with "-"; each populated cell carries its value
// with one decimal. Missing cells stay blank.
func Heatmap(t pivot.Table, title string) ([]byte, error) {
	if t.Empty() {
		return nil, ErrEmptyTable
	}
	lo, hi, ok := t.Range()
	if !ok {
		return nil, ErrEmptyTable
	}

	probe, err := newCanvas(1, 1)
	if err != nil {
		return nil, err
	}
	rowLabelW := 0
	for i := range t.Rows {
		rowLabelW = max(rowLabelW, probe.measure(t.RowLabel(i, "-"), labelFontSize).Width())
	}
	colLabelW := 0
	for _, c := range t.Columns {
		colLabelW = max(colLabelW, probe.measure(c, labelFontSize).Width())
	}
	rotate := colLabelW > heatCellW-6
	colLabelRoom := 28
	if rotate {
		colLabelRoom = int(float64(colLabelW)*math.Sqrt2/2) + 24
	}

	gridLeft := rowLabelW + 2*heatLabelPad
	gridRight := gridLeft + len(t.Columns)*heatCellW
	gridBottom := heatTop + len(t.Rows)*heatCellH
	width := max(gridRight+heatColorBarGap+heatColorBarW+heatTickRoom, probe.measure(title, titleFontSize).Width()+40)
	height := gridBottom + colLabelRoom + 24

	c, err := newCanvas(width, height)
	if err != nil {
		return nil, err
	}
	c.title(title)

	for i := range t.Rows {
		top := heatTop + i*heatCellH
		c.rightAligned(t.RowLabel(i, "-"), gridLeft-heatLabelPad, top+heatCellH/2, labelFontSize, colorText)
		for j := range t.Columns {
			if !t.Has(i, j) {
				continue
			}
			left := gridLeft + j*heatCellW
			v := t.Cells[i][j]
			fill := rampColor(ylGnBu, normalize(v, lo, hi))
			c.fillRect(left, top, left+heatCellW, top+heatCellH, fill)
			c.centered(strconv.FormatFloat(v, 'f', 1, 64), left+heatCellW/2, top+heatCellH/2, legendFontSize, annotationColor(fill))
		}
	}

	// cell separators
	for j := 0; j <= len(t.Columns); j++ {
		x := gridLeft + j*heatCellW
		c.line(x, heatTop, x, gridBottom, colorCellLine, 1)
	}
	for i := 0; i <= len(t.Rows); i++ {
		y := heatTop + i*heatCellH
		c.line(gridLeft, y, gridRight, y, colorCellLine, 1)
	}

	for j, label := range t.Columns {
		cx := gridLeft + j*heatCellW + heatCellW/2
		if !rotate {
			c.centered(label, cx, gridBottom+14, labelFontSize, colorText)
			continue
		}
		c.r.SetTextRotation(math.Pi / 4)
		c.text(label, cx, gridBottom+6, labelFontSize, colorText)
		c.r.ClearTextRotation()
	}

	drawColorBar(c, gridRight+heatColorBarGap, heatTop, gridBottom, lo, hi)

	return c.bytes()
}

func drawColorBar(c *canvas, left, top, bottom int, lo, hi float64) {
	span := bottom - top
	for y := 0; y < span; y++ {
		// top of the bar is the high end
		frac := 1 - float64(y)/float64(max(span-1, 1))
		c.fillRect(left, top+y, left+heatColorBarW, top+y+1, rampColor(ylGnBu, frac))
	}
	c.line(left, top, left+heatColorBarW, top, colorAxis, 0.5)
	c.line(left, bottom, left+heatColorBarW, bottom, colorAxis, 0.5)

	ticks := niceTicks(lo, hi, 5)
	for _, tk := range ticks {
		if tk.Value < lo || tk.Value > hi {
			continue
		}
		y := bottom - int(normalize(tk.Value, lo, hi)*float64(span))
		c.line(left+heatColorBarW, y, left+heatColorBarW+4, y, colorAxis, 1)
		b := c.measure(tk.Label, legendFontSize)
		c.text(tk.Label, left+heatColorBarW+7, y-b.Height()/2, legendFontSize, colorText)
	}
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// rampColor samples a piecewise-linear colour ramp at t in [0, 1].
func rampColor(ramp []drawing.Color, t float64) drawing.Color {
	switch {
	case t <= 0 || math.IsNaN(t):
		return ramp[0]
	case t >= 1:
		return ramp[len(ramp)-1]
	}
	pos := t * float64(len(ramp)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := ramp[i], ramp[i+1]
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// annotationColor keeps cell text readable on dark fills.
func annotationColor(fill drawing.Color) drawing.Color {
	luma := 0.299*float64(fill.R) + 0.587*float64(fill.G) + 0.114*float64(fill.B)
	if luma < 128 {
		return colorWhite
	}
	return colorText
}
