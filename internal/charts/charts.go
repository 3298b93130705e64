// Package charts renders the dashboard's bar and pie charts to inline SVG.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("no data to chart")

const (
	defaultWidth  = 720
	defaultHeight = 400
)

// Point is one bar or slice
type Point struct {
	Label string
	Value float64
}

// labelReplacer drops markup characters so labels cannot break out of the SVG text nodes
var labelReplacer = strings.NewReplacer("<", " ", ">", " ", "&", " ")

// Bar renders a vertical bar chart with the y axis anchored at zero
func Bar(title, xLabel, yLabel string, points []Point) (template.HTML, error) {
	if len(points) == 0 {
		return "", ErrNoData
	}

	maxValue := 0.0
	bars := make([]chart.Value, len(points))
	for i, p := range points {
		bars[i] = chart.Value{Label: labelReplacer.Replace(p.Label), Value: p.Value}
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	barWidth := (defaultWidth - 120) / (2 * len(points))
	if barWidth > 80 {
		barWidth = 80
	}
	if barWidth < 4 {
		barWidth = 4
	}

	graph := chart.BarChart{
		Title:        title,
		Width:        defaultWidth,
		Height:       defaultHeight,
		BarWidth:     barWidth,
		Background:   chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24}},
		XAxis:        chart.Style{TextRotationDegrees: rotationFor(len(points))},
		YAxis:        chart.YAxis{Name: yLabel, Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1}},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	return render(xLabel, graph.Render)
}

// Pie renders a pie chart of the share each point contributes to the total
func Pie(title string, points []Point) (template.HTML, error) {
	values := make([]chart.Value, 0, len(points))
	total := 0.0
	for _, p := range points {
		if p.Value <= 0 {
			continue
		}
		total += p.Value
		values = append(values, chart.Value{Value: p.Value})
	}
	if len(values) == 0 {
		return "", ErrNoData
	}

	i := 0
	for _, p := range points {
		if p.Value <= 0 {
			continue
		}
		values[i].Label = fmt.Sprintf("%s (%.1f%%)", labelReplacer.Replace(p.Label), 100*p.Value/total)
		i++
	}

	graph := chart.PieChart{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		Values:     values,
	}

	return render("", graph.Render)
}

// render runs a go-chart renderer into SVG, with an optional caption under the chart
func render(caption string, fn func(chart.RendererProvider, io.Writer) error) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fn(chart.SVG, &buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if caption != "" {
		buf.WriteString(`<div class="chart-caption">`)
		buf.WriteString(template.HTMLEscapeString(caption))
		buf.WriteString(`</div>`)
	}
	return template.HTML(buf.String()), nil
}

func rotationFor(n int) float64 {
	if n > 6 {
		return 45
	}
	return 0
}
