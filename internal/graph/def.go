// Package graph provides operator metadata for the gradient core: the
// declarative operator definition record, arity schemas, the gradient
// wiring that splices backward operators into a graph, and the registry
// that executes wired operators against named tensors.
package graph

// OperatorDef is the declarative description of one operator invocation:
// an operator type, ordered input/output tensor names and configuration
// arguments. It carries no tensor data.
type OperatorDef struct {
	Type    string     // Operator type (e.g. "SpatialBN", "SpatialBNGradient")
	Name    string     // Instance name (optional)
	Inputs  []string   // Input tensor names
	Outputs []string   // Output tensor names
	Args    []Argument // Configuration arguments
}

// Argument is a named configuration value attached to an operator.
type Argument struct {
	Name   string    // Argument name
	I      int64     // INT value
	F      float32   // FLOAT value
	S      string    // STRING value
	Ints   []int64   // INTS array
	Floats []float32 // FLOATS array
}

// HasArg reports whether the definition carries an argument with the
// given name.
func (d *OperatorDef) HasArg(name string) bool {
	for i := range d.Args {
		if d.Args[i].Name == name {
			return true
		}
	}
	return false
}

// GetArgInt returns an integer argument or the default value.
func (d *OperatorDef) GetArgInt(name string, defaultVal int64) int64 {
	for i := range d.Args {
		if d.Args[i].Name == name {
			return d.Args[i].I
		}
	}
	return defaultVal
}

// GetArgFloat returns a float argument or the default value.
func (d *OperatorDef) GetArgFloat(name string, defaultVal float32) float32 {
	for i := range d.Args {
		if d.Args[i].Name == name {
			return d.Args[i].F
		}
	}
	return defaultVal
}

// GetArgString returns a string argument or the default value.
func (d *OperatorDef) GetArgString(name, defaultVal string) string {
	for i := range d.Args {
		if d.Args[i].Name == name {
			return d.Args[i].S
		}
	}
	return defaultVal
}

// GradientName returns the conventional name of the gradient tensor for
// a forward tensor name.
func GradientName(name string) string {
	return name + "_grad"
}
