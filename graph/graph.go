// Copyright 2026 The caffe2-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for operator metadata: operator
// definitions, gradient wiring and the operator execution registry.
//
// A graph executor uses this package in two phases. At construction
// time, GetGradientDefs translates each forward operator definition
// into the backward operator definitions to splice into the graph. At
// execution time, a Registry dispatches each definition to its kernel
// with the named tensors the executor supplies.
//
// Example:
//
//	forward := &graph.OperatorDef{
//	    Type:    "SpatialBN",
//	    Inputs:  []string{"X", "scale", "bias", "mean", "var"},
//	    Outputs: []string{"Y", "saved_mean", "saved_var", "mean", "var"},
//	}
//	grads, err := graph.GetGradientDefs(forward)
package graph

import (
	"github.com/fnet123/caffe2/internal/graph"
)

// OperatorDef is the declarative description of one operator invocation.
type OperatorDef = graph.OperatorDef

// Argument is a named configuration value attached to an operator.
type Argument = graph.Argument

// Schema declares the allowed arity of an operator type.
type Schema = graph.Schema

// GradientMaker synthesizes backward operator definitions.
type GradientMaker = graph.GradientMaker

// Registry maps operator types to handler functions.
type Registry = graph.Registry

// Context provides execution context for operators.
type Context = graph.Context

// OpHandler executes an operator definition.
type OpHandler = graph.OpHandler

// NewRegistry creates a registry with the built-in operators.
func NewRegistry() *Registry {
	return graph.NewRegistry()
}

// GetGradientDefs synthesizes the backward operators for a forward
// definition.
func GetGradientDefs(def *OperatorDef) ([]OperatorDef, error) {
	return graph.GetGradientDefs(def)
}

// RegisterGradient associates a gradient maker with an operator type.
func RegisterGradient(opType string, maker GradientMaker) {
	graph.RegisterGradient(opType, maker)
}

// RegisterSchema declares the arity of an operator type.
func RegisterSchema(opType string, schema Schema) {
	graph.RegisterSchema(opType, schema)
}

// Verify checks a definition against its registered schema.
func Verify(def *OperatorDef) error {
	return graph.Verify(def)
}

// GradientName returns the conventional gradient tensor name for a
// forward tensor name.
func GradientName(name string) string {
	return graph.GradientName(name)
}
