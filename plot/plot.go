// Package plot renders decoded channels and groups as self-contained HTML
// line charts.
//
// A channel plots value over its time axis, or over the sample index when no
// time axis was resolved. A group plots every data channel against the shared
// time axis on one chart.
package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/strainstack/catread/channel"
)

const (
	chartWidth  = "1100px"
	chartHeight = "600px"
)

// Channel renders one data channel as an HTML line chart. timeAxis may be
// nil; the x-axis then falls back to the sample index.
func Channel(w io.Writer, timeAxis, c *channel.Channel) error {
	line := newLine(c.Name, xAxisName(timeAxis), c.Unit)
	line.SetXAxis(xValues(timeAxis, c.Len()))
	line.AddSeries(c.Name, lineData(c.Samples))

	return line.Render(w)
}

// Group renders a group as one chart: the time axis against every data
// channel on shared axes.
func Group(w io.Writer, g *channel.Group) error {
	line := newLine(g.Name(), xAxisName(g.Time), "")
	line.SetXAxis(xValues(g.Time, g.Len()))
	for _, c := range g.Data {
		line.AddSeries(c.Name, lineData(c.Samples))
	}

	return line.Render(w)
}

func newLine(title, xName, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	return line
}

func xAxisName(timeAxis *channel.Channel) string {
	if timeAxis == nil {
		return "Sample"
	}
	if timeAxis.Unit != "" {
		return fmt.Sprintf("%s [%s]", timeAxis.Name, timeAxis.Unit)
	}

	return timeAxis.Name
}

func xValues(timeAxis *channel.Channel, n int) []string {
	xs := make([]string, n)
	for i := range xs {
		if timeAxis != nil && i < timeAxis.Len() {
			xs[i] = fmt.Sprintf("%g", timeAxis.Samples[i])
		} else {
			xs[i] = fmt.Sprintf("%d", i)
		}
	}

	return xs
}

func lineData(samples []float64) []opts.LineData {
	data := make([]opts.LineData, len(samples))
	for i, v := range samples {
		data[i] = opts.LineData{Value: v}
	}

	return data
}
