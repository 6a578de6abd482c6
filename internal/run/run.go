// Package run drives a scene's solver to completion, streaming snapshots to
// report sinks from a separate goroutine.
package run

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"fdtd2d/internal/core"
	"fdtd2d/internal/report"
	"fdtd2d/pkg/fdtd"
)

// Options tunes a run. The zero value runs the scene's own step count
// without snapshots or logging.
type Options struct {
	// Steps overrides the scene's step count when positive.
	Steps int
	// Every emits a snapshot to the sink after each multiple of Every steps.
	Every int
	// Buffer is the number of snapshots that may queue ahead of the sink.
	Buffer int

	Logger *log.Logger
	// Progress is the minimum interval between progress lines.
	Progress time.Duration
}

// Result summarises a finished run.
type Result struct {
	Scene   string
	Steps   int
	Time    float64
	Elapsed time.Duration
	// Trace holds the probe value after every step.
	Trace *report.Trace
	Final fdtd.Snapshot
}

// Run builds scene and advances it, checking ctx between steps. Snapshots
// are copied on the stepping goroutine and written to sink (which may be
// nil) on another; the run fails with the first sink error.
func Run(ctx context.Context, scene core.Scene, sink report.Sink, opts Options) (Result, error) {
	solver, err := scene.Build()
	if err != nil {
		return Result{}, fmt.Errorf("build %s: %w", scene.Name(), err)
	}
	steps := scene.Steps()
	if opts.Steps > 0 {
		steps = opts.Steps
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	progress := rate.Sometimes{Interval: opts.Progress}
	if opts.Progress <= 0 {
		progress = rate.Sometimes{Every: max(steps/10, 1)}
	}

	probe := scene.Probe()
	trace := report.NewTrace(scene.Name(), probe)
	snaps := make(chan fdtd.Snapshot, max(opts.Buffer, 1))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for snap := range snaps {
			if sink == nil {
				continue
			}
			if err := sink.Write(snap); err != nil {
				return fmt.Errorf("write step %d: %w", snap.Step, err)
			}
		}
		return nil
	})

	start := time.Now()
	res := Result{Scene: scene.Name(), Trace: trace}
	g.Go(func() error {
		defer close(snaps)
		for i := 0; i < steps; i++ {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := solver.Step(); err != nil {
				return err
			}
			v, err := solver.At(fdtd.Ez, probe.X, probe.Y)
			if err != nil {
				return err
			}
			trace.Add(solver.StepCount(), solver.Time(), v)
			progress.Do(func() {
				logger.Printf("%s: step %d/%d t=%.4g ns probe=%.6g", scene.Name(), solver.StepCount(), steps, solver.Time()*1e9, v)
			})
			if opts.Every <= 0 || solver.StepCount()%opts.Every != 0 {
				continue
			}
			snap, err := solver.Snapshot(probe)
			if err != nil {
				return err
			}
			select {
			case snaps <- snap:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	err = g.Wait()
	res.Steps = solver.StepCount()
	res.Time = solver.Time()
	res.Elapsed = time.Since(start)
	if final, serr := solver.Snapshot(probe); serr == nil {
		res.Final = final
	}
	if err != nil {
		return res, err
	}
	logger.Printf("%s: %d steps in %s", scene.Name(), res.Steps, res.Elapsed.Round(time.Millisecond))
	return res, nil
}
