package run

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"fdtd2d/internal/core"
	_ "fdtd2d/internal/scenes/dielectric"
	"fdtd2d/pkg/fdtd"
)

var small = map[string]string{
	"w": "30", "h": "30", "steps": "40",
	"block": "8", "block_x": "18", "block_y": "15",
	"src_x": "6", "src_y": "15", "probe_x": "8", "probe_y": "15",
}

func smallScene(t *testing.T) core.Scene {
	t.Helper()
	sc, err := core.NewScene("dielectric", small)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

type recordingSink struct {
	steps  []int
	closed bool
	err    error
}

func (r *recordingSink) Write(s fdtd.Snapshot) error {
	if r.err != nil {
		return r.err
	}
	r.steps = append(r.steps, s.Step)
	return nil
}

func (r *recordingSink) Close() error { r.closed = true; return nil }

func TestRunStreamsSnapshotsAndTrace(t *testing.T) {
	var logs bytes.Buffer
	sink := &recordingSink{}
	res, err := Run(context.Background(), smallScene(t), sink, Options{
		Every:  10,
		Logger: log.New(&logs, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := sink.steps; len(got) != 4 || got[0] != 10 || got[3] != 40 {
		t.Fatalf("sink saw steps %v", got)
	}
	if sink.closed {
		t.Fatal("Run must leave closing the sink to the caller")
	}
	if res.Steps != 40 || len(res.Trace.Samples) != 40 || res.Final.Step != 40 {
		t.Fatalf("unexpected result steps=%d trace=%d final=%d", res.Steps, len(res.Trace.Samples), res.Final.Step)
	}
	if res.Final.Probe.Value != res.Trace.Samples[39].Value {
		t.Fatal("final probe does not match the last trace sample")
	}
	if res.Trace.Stats().Peak == 0 {
		t.Fatal("probe never saw the pulse")
	}
	if !strings.Contains(logs.String(), "dielectric: step 1/40") || !strings.Contains(logs.String(), "40 steps in") {
		t.Fatalf("unexpected log output:\n%s", logs.String())
	}
}

func TestRunStepsOverride(t *testing.T) {
	res, err := Run(context.Background(), smallScene(t), nil, Options{Steps: 7})
	if err != nil {
		t.Fatal(err)
	}
	if res.Steps != 7 {
		t.Fatalf("ran %d steps, expected 7", res.Steps)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, smallScene(t), nil, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Steps != 0 {
		t.Fatalf("cancelled run stepped %d times", res.Steps)
	}
}

func TestRunStopsOnSinkError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := Run(context.Background(), smallScene(t), &recordingSink{err: boom}, Options{Every: 5})
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestRunReportsBuildError(t *testing.T) {
	cfg := map[string]string{"w": "20", "h": "20", "src_x": "50"}
	sc, err := core.NewScene("dielectric", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Run(context.Background(), sc, nil, Options{}); !errors.Is(err, fdtd.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestSweepKeepsOrder(t *testing.T) {
	values := []string{"1", "3", "6"}
	results, err := Sweep(context.Background(), "dielectric", small, "epsr", values, 2, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(values) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Value != values[i] || r.Err != nil || r.Result.Steps != 40 {
			t.Fatalf("result %d = %+v", i, r)
		}
	}
	if results[0].Result.Trace.Stats() == results[2].Result.Trace.Stats() {
		t.Fatal("block permittivity had no effect on the probe")
	}

	bad, err := Sweep(context.Background(), "no-such-scene", nil, "epsr", []string{"2"}, 1, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if bad[0].Err == nil {
		t.Fatal("unknown scene not reported")
	}
}
