// Copyright 2026 The caffe2-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor types used by the
// spatial batch normalization gradient core.
//
// The package defines the core types shared by kernels and operator
// metadata:
//   - RawTensor: dense row-major tensor with runtime type information
//   - Shape, DataType, Device, Layout: core type definitions
//   - Backend: interface for device-specific kernel implementations
//
// Example:
//
//	x, err := tensor.NewRaw(tensor.Shape{2, 3, 4, 4}, tensor.Float32, tensor.CPU)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := x.AsFloat32()
package tensor

import (
	"github.com/fnet123/caffe2/internal/tensor"
)

// Type aliases for public API

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the compute device for tensor operations.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Layout describes the physical memory order of a 4-D feature map.
type Layout = tensor.Layout

// Layout constants.
const (
	NCHW Layout = tensor.NCHW
	NHWC Layout = tensor.NHWC
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// Backend is the interface compute backends implement.
type Backend = tensor.Backend

// NewRaw creates a new RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// ParseLayout converts a layout name ("NCHW" or "NHWC") to a Layout.
func ParseLayout(s string) (Layout, error) {
	return tensor.ParseLayout(s)
}
