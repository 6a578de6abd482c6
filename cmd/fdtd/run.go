package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fdtd2d/internal/core"
	"fdtd2d/internal/report"
	"fdtd2d/internal/run"
)

type runFlags struct {
	scene    string
	sets     []string
	steps    int
	every    int
	text     string
	csv      string
	trace    string
	plot     string
	chart    string
	frames   string
	gain     float64
	scale    float64
	progress time.Duration
	quiet    bool
}

func newRunCmd(logger *log.Logger) *cobra.Command {
	f := runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scene to completion",
		Example: `  fdtd run --text foo.txt
  fdtd run --scene slit --set aperture=10 --frames out/ --every 50
  fdtd run --scene scatter --set seed=7 --plot probe.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseSets(f.sets)
			if err != nil {
				return err
			}
			scene, err := core.NewScene(f.scene, cfg)
			if err != nil {
				return err
			}
			sinks, err := f.sinks()
			if err != nil {
				return err
			}
			opts := run.Options{Steps: f.steps, Every: f.every, Logger: logger, Progress: f.progress, Buffer: 4}
			if f.quiet {
				opts.Logger = log.New(io.Discard, "", 0)
			}
			if len(sinks) == 0 {
				opts.Every = 0
			}

			res, runErr := run.Run(cmd.Context(), scene, sinks, opts)
			if err := sinks.Close(); err != nil && runErr == nil {
				runErr = err
			}
			if runErr != nil {
				return runErr
			}
			if err := f.writeTrace(res.Trace); err != nil {
				return err
			}

			st := res.Trace.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps, t=%.4g ns, probe (%d,%d) peak=%.6g at step %d, rms=%.6g, final=%.6g (%s)\n",
				res.Scene, res.Steps, res.Time*1e9, res.Trace.Probe.X, res.Trace.Probe.Y,
				st.Peak, st.PeakAt, st.RMS, st.Final, res.Elapsed.Round(time.Millisecond))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.scene, "scene", "dielectric", "scene to run")
	fl.StringArrayVar(&f.sets, "set", nil, "scene parameter in key=value form (repeatable)")
	fl.IntVar(&f.steps, "steps", 0, "override the scene step count")
	fl.IntVar(&f.every, "every", 500, "snapshot interval in steps")
	fl.StringVar(&f.text, "text", "", "write field dumps in plain text to this file")
	fl.StringVar(&f.csv, "csv", "", "write field dumps as CSV to this file")
	fl.StringVar(&f.trace, "trace", "", "write the probe trace as CSV to this file")
	fl.StringVar(&f.plot, "plot", "", "plot the probe trace to this image (png, svg, pdf)")
	fl.StringVar(&f.chart, "chart", "", "write an interactive HTML chart of the probe trace")
	fl.StringVar(&f.frames, "frames", "", "write PNG frames of Ez into this directory")
	fl.Float64Var(&f.gain, "gain", 1, "frame colour gain relative to each frame's peak")
	fl.Float64Var(&f.scale, "scale", 0, "fixed frame colour scale in V/m (0 rescales per frame)")
	fl.DurationVar(&f.progress, "progress", 2*time.Second, "minimum interval between progress lines")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress logging")
	return cmd
}

func (f *runFlags) sinks() (report.Multi, error) {
	var sinks report.Multi
	fail := func(err error) (report.Multi, error) {
		sinks.Close()
		return nil, err
	}
	if f.text != "" {
		file, err := os.Create(f.text)
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, report.NewTextSink(file))
	}
	if f.csv != "" {
		file, err := os.Create(f.csv)
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, report.NewCSVSink(file))
	}
	if f.frames != "" {
		fs, err := report.NewFrameSink(f.frames, f.scene, f.scale, f.gain)
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, fs)
	}
	return sinks, nil
}

func (f *runFlags) writeTrace(tr *report.Trace) error {
	if f.trace != "" {
		if err := writeFile(f.trace, tr.WriteCSV); err != nil {
			return err
		}
	}
	if f.plot != "" {
		if err := report.SavePlot(f.plot, f.scene, tr); err != nil {
			return err
		}
	}
	if f.chart != "" {
		return writeFile(f.chart, func(w io.Writer) error { return report.Chart(w, f.scene, tr) })
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
