package run

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fdtd2d/internal/core"
)

// SweepResult is the outcome for one swept value.
type SweepResult struct {
	Value  string
	Result Result
	Err    error
}

// Sweep runs the named scene once per value of key, each on its own grid,
// with at most workers runs in flight. Results keep the order of values. A
// failed run is reported in its SweepResult; only cancellation of ctx aborts
// the sweep.
func Sweep(ctx context.Context, name string, base map[string]string, key string, values []string, workers int, opts Options) ([]SweepResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]SweepResult, len(values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range values {
		cfg := make(map[string]string, len(base)+1)
		for k, bv := range base {
			cfg[k] = bv
		}
		cfg[key] = v
		g.Go(func() error {
			results[i].Value = v
			scene, err := core.NewScene(name, cfg)
			if err != nil {
				results[i].Err = err
				return nil
			}
			res, err := Run(gctx, scene, nil, opts)
			results[i].Result = res
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			results[i].Err = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
