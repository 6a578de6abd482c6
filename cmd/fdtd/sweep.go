package main

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"fdtd2d/internal/report"
	"fdtd2d/internal/run"
)

func newSweepCmd(logger *log.Logger) *cobra.Command {
	var (
		scene   string
		sets    []string
		key     string
		values  []string
		workers int
		steps   int
		plot    string
		chart   string
	)
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Run one scene over a list of parameter values in parallel",
		Example: `  fdtd sweep --scene dielectric --key epsr --values 1,2,3,4 --plot epsr.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" || len(values) == 0 {
				return fmt.Errorf("sweep needs --key and --values")
			}
			base, err := parseSets(sets)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweeping %s over %d values of %s (%d workers)\n", scene, len(values), key, workers)

			start := time.Now()
			results, err := run.Sweep(cmd.Context(), scene, base, key, values, workers,
				run.Options{Steps: steps, Logger: log.New(io.Discard, "", 0)})
			if err != nil {
				return err
			}

			var traces []*report.Trace
			for _, r := range results {
				if r.Err != nil {
					logger.Printf("%s=%s: %v", key, r.Value, r.Err)
					continue
				}
				st := r.Result.Trace.Stats()
				fmt.Fprintf(out, "%s=%-8s peak=%.6g at step %d rms=%.6g final=%.6g (%s)\n",
					key, r.Value, st.Peak, st.PeakAt, st.RMS, st.Final, r.Result.Elapsed.Round(time.Millisecond))
				tr := r.Result.Trace
				tr.Name = fmt.Sprintf("%s=%s", key, r.Value)
				traces = append(traces, tr)
			}
			fmt.Fprintf(out, "elapsed %s\n", time.Since(start).Round(time.Millisecond))

			if len(traces) == 0 {
				return fmt.Errorf("every run failed")
			}
			if plot != "" {
				if err := report.SavePlot(plot, scene+" sweep", traces...); err != nil {
					return err
				}
			}
			if chart != "" {
				return writeFile(chart, func(w io.Writer) error { return report.Chart(w, scene+" sweep", traces...) })
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&scene, "scene", "dielectric", "scene to sweep")
	fl.StringArrayVar(&sets, "set", nil, "fixed scene parameter in key=value form (repeatable)")
	fl.StringVar(&key, "key", "", "parameter to sweep")
	fl.StringSliceVar(&values, "values", nil, "comma separated values for --key")
	fl.IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent runs")
	fl.IntVar(&steps, "steps", 0, "override the scene step count")
	fl.StringVar(&plot, "plot", "", "overlay the probe traces in this image")
	fl.StringVar(&chart, "chart", "", "write an interactive HTML chart of the probe traces")
	return cmd
}
