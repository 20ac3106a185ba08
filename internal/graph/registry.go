package graph

import (
	"github.com/pkg/errors"

	"github.com/fnet123/caffe2/internal/tensor"
)

// OpHandler executes an operator definition and returns output tensors,
// one per declared output name.
type OpHandler func(ctx *Context, def *OperatorDef, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error)

// Context provides backend and other execution context for operators.
type Context struct {
	Backend tensor.Backend
}

// Registry maps operator types to handler functions. It is the seam
// between the declarative operator definitions and the kernels that
// implement them; sequencing of invocations is the executor's concern.
type Registry struct {
	handlers map[string]OpHandler
}

// NewRegistry creates a registry with the built-in operators.
func NewRegistry() *Registry {
	r := &Registry{
		handlers: make(map[string]OpHandler),
	}
	r.Register("SpatialBNGradient", spatialBNGradientHandler)
	return r
}

// Register adds a custom operator handler.
func (r *Registry) Register(opType string, handler OpHandler) {
	r.handlers[opType] = handler
}

// Get returns the handler for an operator type.
func (r *Registry) Get(opType string) (OpHandler, bool) {
	h, ok := r.handlers[opType]
	return h, ok
}

// Execute runs an operator after verifying its definition against the
// registered schema.
func (r *Registry) Execute(ctx *Context, def *OperatorDef, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	handler, ok := r.handlers[def.Type]
	if !ok {
		return nil, errors.Errorf("unsupported operator: %s", def.Type)
	}
	if err := Verify(def); err != nil {
		return nil, err
	}
	if len(inputs) != len(def.Inputs) {
		return nil, errors.Errorf("%s: %d input tensors for %d declared inputs", def.Type, len(inputs), len(def.Inputs))
	}
	return handler(ctx, def, inputs)
}

// spatialBNGradientHandler dispatches the SpatialBNGradient kernel.
//
// Inputs: X, scale, dY, mean, inv_std. Outputs: dX, dScale, dBias.
// The order argument selects the layout; it defaults to NCHW as in the
// forward operator.
func spatialBNGradientHandler(ctx *Context, def *OperatorDef, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	layout, err := tensor.ParseLayout(def.GetArgString("order", "NCHW"))
	if err != nil {
		return nil, err
	}

	x, scale, dy, mean, invStd := inputs[0], inputs[1], inputs[2], inputs[3], inputs[4]
	dX, dScale, dBias, err := ctx.Backend.SpatialBNGradient(x, dy, scale, mean, invStd, layout)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{dX, dScale, dBias}, nil
}
