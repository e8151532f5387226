package chart

import (
	"math"

	"go-paygap/internal/pivot"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

type segment struct {
	field pivot.Field
	color drawing.Color
}

// width is the group's mean for the segment; a mean over no values draws nothing.
func (s segment) width(g pivot.Group) float64 {
	v := g.Mean(s.field)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

var paymentSegments = []segment{
	{pivot.BasePay, drawing.ColorFromHex("66CDAA")},
	{pivot.Bonus, drawing.ColorFromHex("B0E0E6")},
}

const (
	barWidth      = 760
	barSlotH      = 90
	barPlotTop    = 56
	barLegendRoom = 150
	barAxisRoom   = 56
	barLegendName = "Payment Type"
	barAxisName   = "Amount (in thousands)"
	barGroupName  = "Gender"
)

// StackedBar draws one horizontal bar per group with its mean BasePay and
// Bonus stacked end to end. Groups are laid out bottom-up in slice order.
func StackedBar(groups []pivot.Group, title string) ([]byte, error) {
	if len(groups) == 0 {
		return nil, ErrEmptyTable
	}

	total := 0.0
	for _, g := range groups {
		sum := 0.0
		for _, s := range paymentSegments {
			sum += s.width(g)
		}
		total = max(total, sum)
	}

	probe, err := newCanvas(1, 1)
	if err != nil {
		return nil, err
	}
	labelW := probe.measure(barGroupName, labelFontSize).Width()
	for _, g := range groups {
		labelW = max(labelW, probe.measure(g.Key, labelFontSize).Width())
	}

	plotLeft := labelW + 30
	plotRight := barWidth - barLegendRoom
	plotBottom := barPlotTop + len(groups)*barSlotH
	height := plotBottom + barAxisRoom

	c, err := newCanvas(barWidth, height)
	if err != nil {
		return nil, err
	}
	c.title(title)

	ticks := niceTicks(0, total, 6)
	xMax := ticks[len(ticks)-1].Value
	px := func(v float64) int {
		return plotLeft + int(v/xMax*float64(plotRight-plotLeft))
	}

	for _, tk := range ticks {
		x := px(tk.Value)
		c.line(x, barPlotTop, x, plotBottom, colorGridLine, 1)
		c.line(x, plotBottom, x, plotBottom+4, colorAxis, 1)
		c.centered(tk.Label, x, plotBottom+14, legendFontSize, colorText)
	}
	c.line(plotLeft, barPlotTop, plotLeft, plotBottom, colorAxis, 1)
	c.line(plotLeft, plotBottom, plotRight, plotBottom, colorAxis, 1)

	for i, g := range groups {
		slotTop := plotBottom - (i+1)*barSlotH
		top, bottom := slotTop+barSlotH/4, slotTop+3*barSlotH/4
		start := 0.0
		for _, s := range paymentSegments {
			v := s.width(g)
			if v > 0 {
				c.fillRect(px(start), top, px(start+v), bottom, s.color)
			}
			start += v
		}
		c.rightAligned(g.Key, plotLeft-8, slotTop+barSlotH/2, labelFontSize, colorText)
	}

	c.centered(barAxisName, (plotLeft+plotRight)/2, plotBottom+36, labelFontSize, colorText)
	c.text(barGroupName, plotLeft-8-c.measure(barGroupName, labelFontSize).Width(), barPlotTop-18, labelFontSize, colorText)

	drawSegmentLegend(c, plotRight+20, barPlotTop)

	return c.bytes()
}

func drawSegmentLegend(c *canvas, left, top int) {
	c.text(barLegendName, left, top, labelFontSize, colorText)
	for i, s := range paymentSegments {
		y := top + 22 + i*20
		c.fillRect(left, y, left+18, y+12, s.color)
		c.text(string(s.field), left+26, y, legendFontSize, colorText)
	}
}
