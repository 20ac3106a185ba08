package graph

import "github.com/pkg/errors"

// Schema declares the allowed arity of an operator type, so definition
// mistakes are caught at graph-construction time rather than when
// tensor data flows.
type Schema struct {
	NumInputs  []int // Allowed input counts
	NumOutputs []int // Allowed output counts
}

var schemas = map[string]Schema{
	// X, scale, bias, mean, var -> Y (inference)
	// X, scale, bias, mean, var -> Y, saved_mean, saved_var, running_mean, running_var (training)
	"SpatialBN": {NumInputs: []int{5}, NumOutputs: []int{1, 5}},
	// X, scale, dY, mean, inv_std -> dX, dScale, dBias
	"SpatialBNGradient": {NumInputs: []int{5}, NumOutputs: []int{3}},
}

// RegisterSchema declares the arity of an operator type.
func RegisterSchema(opType string, schema Schema) {
	schemas[opType] = schema
}

// GetSchema returns the schema for an operator type.
func GetSchema(opType string) (Schema, bool) {
	s, ok := schemas[opType]
	return s, ok
}

// Verify checks a definition's input/output counts against the
// registered schema for its type.
func Verify(def *OperatorDef) error {
	s, ok := schemas[def.Type]
	if !ok {
		return errors.Errorf("no schema registered for operator %q", def.Type)
	}
	if !containsInt(s.NumInputs, len(def.Inputs)) {
		return errors.Errorf("%s: %d inputs, want one of %v", def.Type, len(def.Inputs), s.NumInputs)
	}
	if !containsInt(s.NumOutputs, len(def.Outputs)) {
		return errors.Errorf("%s: %d outputs, want one of %v", def.Type, len(def.Outputs), s.NumOutputs)
	}
	return nil
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
