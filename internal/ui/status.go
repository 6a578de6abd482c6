package ui

import "fmt"

// Status is the live run state shown on the HUD.
type Status struct {
	Step   int
	Steps  int
	Time   float64
	Probe  float64
	Peak   float64
	Rate   int
	Gain   float64
	Paused bool
}

// Lines formats the status for display.
func (s Status) Lines() []string {
	state := "running"
	switch {
	case s.Paused:
		state = "paused"
	case s.Steps > 0 && s.Step >= s.Steps:
		state = "done"
	}
	return []string{
		fmt.Sprintf("step %d/%d (%s)", s.Step, s.Steps, state),
		fmt.Sprintf("t = %.4f ns", s.Time*1e9),
		fmt.Sprintf("probe = %+.4e", s.Probe),
		fmt.Sprintf("peak = %.4e", s.Peak),
		fmt.Sprintf("%d steps/s  gain x%g", s.Rate, s.Gain),
	}
}
