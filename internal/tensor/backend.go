package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for gradient kernels.
//
// Implementations:
//   - CPU: single-threaded pure Go reference path
//   - Accelerated variants (parallel CPU, GPU) are separate backends
//     reusing the same math behind this interface.
type Backend interface {
	// SpatialBNGradient computes the backward pass of spatial batch
	// normalization for a 4-D feature map under the given layout.
	//
	// Inputs: x [N,C,H,W] or [N,H,W,C], dy with the same shape as x,
	// and per-channel scale, mean and invStd vectors of length C.
	// Returns dX (shaped like x), dScale and dBias (length C).
	SpatialBNGradient(x, dy, scale, mean, invStd *RawTensor, layout Layout) (dX, dScale, dBias *RawTensor, err error)

	// Metadata
	Name() string
	Device() Device
}
