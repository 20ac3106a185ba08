// Copyright 2026 The caffe2-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the single-threaded pure Go CPU backend.
//
// The CPU backend is the reference implementation of the gradient
// kernels: synchronous, non-suspending, no internal parallelism. Each
// invocation runs to completion and owns exclusive write access to its
// output tensors; parallel and GPU variants are separate backends
// reusing the same math.
//
// Example:
//
//	backend := cpu.New()
//	dX, dScale, dBias, err := backend.SpatialBNGradient(x, dy, scale, mean, invStd, tensor.NCHW)
package cpu

import (
	internalcpu "github.com/fnet123/caffe2/internal/backend/cpu"
	"github.com/fnet123/caffe2/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
