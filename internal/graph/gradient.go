package graph

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// GradientMaker synthesizes the backward operator definitions for one
// forward operator definition.
type GradientMaker func(def *OperatorDef) ([]OperatorDef, error)

var gradientMakers = map[string]GradientMaker{}

// RegisterGradient associates a gradient maker with a forward operator
// type.
func RegisterGradient(opType string, maker GradientMaker) {
	gradientMakers[opType] = maker
}

// GetGradientDefs synthesizes the backward operators for a forward
// definition. This is a pure metadata decision made once per
// graph-construction pass; no tensor data is touched.
func GetGradientDefs(def *OperatorDef) ([]OperatorDef, error) {
	maker, ok := gradientMakers[def.Type]
	if !ok {
		return nil, errors.Errorf("no gradient registered for operator %q", def.Type)
	}
	grads, err := maker(def)
	if err != nil {
		return nil, errors.Wrapf(err, "gradient for %s operator %q", def.Type, def.Name)
	}
	if klog.V(2).Enabled() {
		for i := range grads {
			klog.Infof("gradient for %s %q: %s inputs=%v outputs=%v",
				def.Type, def.Name, grads[i].Type, grads[i].Inputs, grads[i].Outputs)
		}
	}
	return grads, nil
}

func init() {
	RegisterGradient("SpatialBN", spatialBNGradientDefs)
}

// spatialBNGradientDefs wires the SpatialBNGradient operator for a
// forward SpatialBN definition.
//
// Training and inference forward passes expose different tensors as the
// statistics used for this batch: a training forward computes them and
// saves them as outputs 3 and 4, an inference forward consumes running
// estimates as inputs 3 and 4. The backward operator must be pointed at
// whichever source produced the forward activations.
func spatialBNGradientDefs(def *OperatorDef) ([]OperatorDef, error) {
	isTest := def.GetArgInt("is_test", 0) != 0

	var gradInputs []string
	if isTest {
		// Inference forward: X, scale, bias, running_mean, running_var -> Y.
		// The statistics were supplied externally, so the backward reads
		// them from the forward inputs.
		if len(def.Inputs) != 5 {
			return nil, errors.Errorf("inference mode needs 5 inputs, got %d", len(def.Inputs))
		}
		if len(def.Outputs) != 1 {
			return nil, errors.Errorf("inference mode needs 1 output, got %d", len(def.Outputs))
		}
		gradInputs = []string{
			def.Inputs[0], def.Inputs[1], GradientName(def.Outputs[0]),
			def.Inputs[3], def.Inputs[4],
		}
	} else {
		// Training forward: the statistics for this exact batch were
		// computed and saved as outputs 3 and 4.
		if len(def.Inputs) != 5 {
			return nil, errors.Errorf("training mode needs 5 inputs, got %d", len(def.Inputs))
		}
		if len(def.Outputs) != 5 {
			return nil, errors.Errorf("training mode needs 5 outputs, got %d", len(def.Outputs))
		}
		gradInputs = []string{
			def.Inputs[0], def.Inputs[1], GradientName(def.Outputs[0]),
			def.Outputs[3], def.Outputs[4],
		}
	}

	return []OperatorDef{{
		Type:   "SpatialBNGradient",
		Inputs: gradInputs,
		Outputs: []string{
			GradientName(def.Inputs[0]),
			GradientName(def.Inputs[1]),
			GradientName(def.Inputs[2]),
		},
		// The backward operator runs with the forward configuration
		// (notably the storage order).
		Args: append([]Argument(nil), def.Args...),
	}}, nil
}
