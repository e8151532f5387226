package chart

import (
	"bytes"
	"fmt"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	maleColor      = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	femaleColor    = drawing.Color{R: 255, G: 0, B: 255, A: 255}
	connectorColor = drawing.Color{R: 128, G: 128, B: 128, A: 153}
)

const (
	dumbbellWidth  = 900
	dumbbellRowH   = 42
	dumbbellDot    = 6
	dumbbellLegend = "Gender"
)

// DumbbellRow is one group's mean pay per gender. A gender with no
// records in the group is left unset.
type DumbbellRow struct {
	Label     string
	Male      float64
	Female    float64
	HasMale   bool
	HasFemale bool
}

// Dumbbell renders one row per group with the male and female means as
// dots joined by a connector. The first row is drawn at the top.
func Dumbbell(rows []DumbbellRow, title, axis string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	var maleX, maleY, femaleX, femaleY []float64
	var series []gochart.Series

	n := len(rows)
	for i, row := range rows {
		y := float64(n - 1 - i)
		if row.HasMale {
			maleX, maleY = append(maleX, row.Male), append(maleY, y)
			lo, hi = math.Min(lo, row.Male), math.Max(hi, row.Male)
		}
		if row.HasFemale {
			femaleX, femaleY = append(femaleX, row.Female), append(femaleY, y)
			lo, hi = math.Min(lo, row.Female), math.Max(hi, row.Female)
		}
		if row.HasMale && row.HasFemale {
			series = append(series, gochart.ContinuousSeries{
				XValues: []float64{row.Male, row.Female},
				YValues: []float64{y, y},
				Style: gochart.Style{
					StrokeColor: connectorColor,
					StrokeWidth: 2,
				},
			})
		}
	}
	if math.IsInf(lo, 1) {
		return nil, ErrEmptyTable
	}

	// dots are drawn after the connectors so they sit on top
	if len(maleX) > 0 {
		series = append(series, dotSeries("Male", maleX, maleY, maleColor))
	}
	if len(femaleX) > 0 {
		series = append(series, dotSeries("Female", femaleX, femaleY, femaleColor))
	}

	pad := (hi - lo) * 0.08
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.05, 1000)
	}
	ticks := niceTicks(lo-pad, hi+pad, 6)
	xMin, xMax := ticks[0].Value, ticks[len(ticks)-1].Value

	labelW := 0
	probe, err := newCanvas(1, 1)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		labelW = max(labelW, probe.measure(row.Label, labelFontSize).Width())
	}

	graph := gochart.Chart{
		Title:  title,
		Width:  dumbbellWidth,
		Height: 140 + n*dumbbellRowH,
		TitleStyle: gochart.Style{
			FontSize: titleFontSize,
		},
		Background: gochart.Style{
			Padding: gochart.Box{Top: 60, Left: labelW + 28, Right: 150, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:  axis,
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: xMin, Max: xMax},
			GridMajorStyle: gochart.Style{
				StrokeColor: colorGridLine,
				StrokeWidth: 1,
			},
			GridLines: gridLines(ticks),
		},
		YAxis: gochart.YAxis{
			Style: gochart.Style{Hidden: true},
			Range: &gochart.ContinuousRange{Min: -0.6, Max: float64(n) - 0.4},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{
		rowLabels(rows, -0.6, float64(n)-0.4),
		genderLegend(len(maleX) > 0, len(femaleX) > 0),
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: render dumbbell: %w", err)
	}
	return buf.Bytes(), nil
}

func dotSeries(name string, xs, ys []float64, color drawing.Color) gochart.ContinuousSeries {
	return gochart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeColor: drawing.ColorTransparent,
			StrokeWidth: 1,
			DotColor:    color,
			DotWidth:    dumbbellDot,
		},
	}
}

func gridLines(ticks []gochart.Tick) []gochart.GridLine {
	lines := make([]gochart.GridLine, 0, len(ticks))
	for _, t := range ticks {
		lines = append(lines, gochart.GridLine{Value: t.Value})
	}
	return lines
}

// rowLabels writes each row's label left of the plot area. The y axis is
// hidden, so the mapping from row index to pixel is done here.
func rowLabels(rows []DumbbellRow, yMin, yMax float64) gochart.Renderable {
	return func(r gochart.Renderer, box gochart.Box, defaults gochart.Style) {
		r.SetFontSize(labelFontSize)
		r.SetFontColor(colorText)
		n := len(rows)
		for i, row := range rows {
			y := float64(n - 1 - i)
			py := box.Bottom - int((y-yMin)/(yMax-yMin)*float64(box.Height()))
			tb := r.MeasureText(row.Label)
			r.Text(row.Label, box.Left-tb.Width()-10, py+tb.Height()/2)
		}
	}
}

// genderLegend is drawn by hand because the connector series have no
// names and go-chart's legend would still list them.
func genderLegend(male, female bool) gochart.Renderable {
	type entry struct {
		label string
		color drawing.Color
	}
	var entries []entry
	if male {
		entries = append(entries, entry{"Male", maleColor})
	}
	if female {
		entries = append(entries, entry{"Female", femaleColor})
	}

	return func(r gochart.Renderer, box gochart.Box, defaults gochart.Style) {
		left := box.Right + 20
		top := box.Top

		r.SetFontSize(legendFontSize + 1)
		r.SetFontColor(colorText)
		hb := r.MeasureText(dumbbellLegend)
		r.Text(dumbbellLegend, left, top+hb.Height())

		r.SetFontSize(legendFontSize)
		for i, e := range entries {
			cy := top + hb.Height() + 14 + i*20
			r.SetFillColor(e.color)
			r.SetStrokeColor(e.color)
			r.SetStrokeWidth(1)
			r.Circle(dumbbellDot, left+dumbbellDot, cy)
			r.FillStroke()

			tb := r.MeasureText(e.label)
			r.Text(e.label, left+2*dumbbellDot+8, cy+tb.Height()/2)
		}
	}
}
