package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value a scene was built with.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of values exposed by a scene.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Map flattens the snapshot into the key/value form scene factories accept.
func (s ParameterSnapshot) Map() map[string]string {
	m := map[string]string{}
	for _, g := range s.Groups {
		for _, p := range g.Params {
			m[p.Key] = p.Value
		}
	}
	return m
}

func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// FDTDGroup reports the solver-level settings shared by every scene.
func FDTDGroup(nx0, ny0 int, dx, dt float64, layers, steps int) ParameterGroup {
	return ParameterGroup{
		Name: "Grid",
		Params: []Parameter{
			IntParam("w", "Interior width", nx0),
			IntParam("h", "Interior height", ny0),
			FloatParam("dx", "Cell size (m)", dx),
			FloatParam("dt", "Time step (s)", dt),
			IntParam("pml", "PML layers", layers),
			IntParam("steps", "Steps", steps),
		},
	}
}
