package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyTrace is returned when plotting a trace without samples.
var ErrEmptyTrace = errors.New("report: empty trace")

var palette = []color.Color{
	color.RGBA{R: 200, G: 60, B: 40, A: 255},
	color.RGBA{R: 40, G: 110, B: 200, A: 255},
	color.RGBA{R: 40, G: 160, B: 80, A: 255},
	color.RGBA{R: 150, G: 80, B: 180, A: 255},
}

// Plot builds a line plot of the traces against time in nanoseconds.
func Plot(title string, traces ...*Trace) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t (ns)"
	p.Y.Label.Text = "Ez (V/m)"
	p.Add(plotter.NewGrid())

	for i, t := range traces {
		if len(t.Samples) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTrace, t.Name)
		}
		pts := make(plotter.XYs, len(t.Samples))
		for j, s := range t.Samples {
			pts[j].X = s.Time * 1e9
			pts[j].Y = s.Value
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(t.Name, line)
	}
	p.Legend.Top = true
	return p, nil
}

// SavePlot writes the plot of traces to path. The image format follows the
// file extension (png, svg, pdf...).
func SavePlot(path, title string, traces ...*Trace) error {
	p, err := Plot(title, traces...)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
