package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart renders the traces as an interactive HTML line chart. All traces
// must share the sampling steps of the first one.
func Chart(w io.Writer, title string, traces ...*Trace) error {
	if len(traces) == 0 || len(traces[0].Samples) == 0 {
		return ErrEmptyTrace
	}
	steps := make([]string, len(traces[0].Samples))
	for i, s := range traces[0].Samples {
		steps[i] = strconv.Itoa(s.Step)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "probe Ez per time step",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	line.SetXAxis(steps)
	for _, t := range traces {
		if len(t.Samples) != len(steps) {
			return fmt.Errorf("report: trace %s has %d samples, expected %d", t.Name, len(t.Samples), len(steps))
		}
		items := make([]opts.LineData, len(t.Samples))
		for i, s := range t.Samples {
			items[i].Value = s.Value
		}
		line.AddSeries(t.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
