package cpu

import (
	"github.com/pkg/errors"

	"github.com/fnet123/caffe2/internal/tensor"
)

// SpatialBNGradient computes gradients w.r.t. input, scale and bias for
// spatial batch normalization.
//
// Per channel c, reducing over all batch indices and spatial positions
// (M = N*H*W):
//
//	dBias[c]  = sum(dY)
//	dScale[c] = sum((X - mean[c]) * invStd[c] * dY)
//	dX = scale[c]*invStd[c]/M * (M*dY - dBias[c] - (X - mean[c])*invStd[c]*dScale[c])
//
// The computation is two sequential passes: the per-channel reductions
// must be complete before any dX element can be written, because every
// dX element depends on the channel-wide totals.
//
// mean and invStd are the statistics the forward pass used for this
// batch: saved statistics in training mode, running estimates in
// inference mode. Selecting the right source is the gradient wiring's
// job (see internal/graph), not the kernel's.
func (cpu *CPUBackend) SpatialBNGradient(x, dy, scale, mean, invStd *tensor.RawTensor, layout tensor.Layout) (dX, dScale, dBias *tensor.RawTensor, err error) {
	xShape := x.Shape()
	if len(xShape) != 4 {
		return nil, nil, nil, errors.Errorf("SpatialBNGradient: X must be 4-dimensional, got shape %v", xShape)
	}
	if !dy.Shape().Equal(xShape) {
		return nil, nil, nil, errors.Errorf("SpatialBNGradient: dY shape %v does not match X shape %v", dy.Shape(), xShape)
	}

	n := xShape[0]
	c := layout.Channels(xShape)
	h, w := layout.Spatial(xShape)

	for _, arg := range []struct {
		name string
		t    *tensor.RawTensor
	}{{"scale", scale}, {"mean", mean}, {"inv_std", invStd}} {
		s := arg.t.Shape()
		if len(s) != 1 || s[0] != c {
			return nil, nil, nil, errors.Errorf("SpatialBNGradient: %s shape %v, want [%d]", arg.name, s, c)
		}
	}

	dX = mustNewRaw(xShape, x.DType(), cpu.device)
	dScale = mustNewRaw(tensor.Shape{c}, x.DType(), cpu.device)
	dBias = mustNewRaw(tensor.Shape{c}, x.DType(), cpu.device)

	switch layout {
	case tensor.NCHW:
		spatialBNGradientNCHW(
			dX.AsFloat32(), dScale.AsFloat32(), dBias.AsFloat32(),
			x.AsFloat32(), dy.AsFloat32(),
			scale.AsFloat32(), mean.AsFloat32(), invStd.AsFloat32(),
			n, c, h, w,
		)
	case tensor.NHWC:
		spatialBNGradientNHWC(
			dX.AsFloat32(), dScale.AsFloat32(), dBias.AsFloat32(),
			x.AsFloat32(), dy.AsFloat32(),
			scale.AsFloat32(), mean.AsFloat32(), invStd.AsFloat32(),
			n, c, h, w,
		)
	default:
		panic("SpatialBNGradient: unknown storage order: " + layout.String())
	}

	return dX, dScale, dBias, nil
}

// mustNewRaw allocates an output tensor. Shapes are validated before
// any allocation happens, so failure here is an internal error.
func mustNewRaw(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	t, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic("SpatialBNGradient: failed to create output tensor: " + err.Error())
	}
	return t
}

// spatialBNGradientNCHW computes the gradient in channel-major order.
//
// For a fixed (n, c) pair the H*W spatial plane is contiguous, so both
// passes walk the combined N*C index and process one plane slice at a
// time with scalar per-channel arithmetic.
func spatialBNGradientNCHW(
	dxData, dScale, dBias,
	xData, dyData,
	scale, mean, invStd []float32,
	n, c, h, w int,
) {
	hw := h * w
	m := float32(n * hw)

	// Pass 1: per-channel reductions.
	for nc := 0; nc < n*c; nc++ {
		ch := nc % c
		xPlane := xData[nc*hw : (nc+1)*hw]
		dyPlane := dyData[nc*hw : (nc+1)*hw]

		var db, ds float32
		for i := 0; i < hw; i++ {
			db += dyPlane[i]
			ds += (xPlane[i] - mean[ch]) * invStd[ch] * dyPlane[i]
		}
		dBias[ch] += db
		dScale[ch] += ds
	}

	// Pass 2: per-element input gradient from the finalized totals.
	for nc := 0; nc < n*c; nc++ {
		ch := nc % c
		xPlane := xData[nc*hw : (nc+1)*hw]
		dyPlane := dyData[nc*hw : (nc+1)*hw]
		dxPlane := dxData[nc*hw : (nc+1)*hw]

		f := scale[ch] * invStd[ch] / m
		for i := 0; i < hw; i++ {
			dxPlane[i] = f * (m*dyPlane[i] - dBias[ch] -
				(xPlane[i]-mean[ch])*invStd[ch]*dScale[ch])
		}
	}
}

// spatialBNGradientNHWC computes the gradient in channel-minor order.
//
// For a fixed spatial/batch position the C channel values are
// contiguous, so both passes walk the combined N*H*W index and process
// one length-C vector at a time with elementwise per-channel arithmetic.
func spatialBNGradientNHWC(
	dxData, dScale, dBias,
	xData, dyData,
	scale, mean, invStd []float32,
	n, c, h, w int,
) {
	nhw := n * h * w
	m := float32(nhw)

	// Pass 1: per-channel reductions, one C-vector contribution per position.
	for pos := 0; pos < nhw; pos++ {
		xVec := xData[pos*c : (pos+1)*c]
		dyVec := dyData[pos*c : (pos+1)*c]

		for ch := 0; ch < c; ch++ {
			dBias[ch] += dyVec[ch]
			dScale[ch] += (xVec[ch] - mean[ch]) * invStd[ch] * dyVec[ch]
		}
	}

	// Pass 2: per-element input gradient from the finalized totals.
	for pos := 0; pos < nhw; pos++ {
		xVec := xData[pos*c : (pos+1)*c]
		dyVec := dyData[pos*c : (pos+1)*c]
		dxVec := dxData[pos*c : (pos+1)*c]

		for ch := 0; ch < c; ch++ {
			dxVec[ch] = scale[ch] * invStd[ch] / m * (m*dyVec[ch] - dBias[ch] -
				(xVec[ch]-mean[ch])*invStd[ch]*dScale[ch])
		}
	}
}
