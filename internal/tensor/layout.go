package tensor

import "github.com/pkg/errors"

// Layout describes the physical memory order of a 4-D feature map.
type Layout int

// Supported feature map layouts.
const (
	// NCHW is the channel-major layout: for a fixed (batch, channel)
	// pair, the H*W spatial plane is contiguous in memory.
	NCHW Layout = iota
	// NHWC is the channel-minor layout: for a fixed spatial position,
	// the C channel values are contiguous in memory.
	NHWC
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case NCHW:
		return "NCHW"
	case NHWC:
		return "NHWC"
	default:
		return "Unknown"
	}
}

// ParseLayout converts a layout name ("NCHW" or "NHWC") to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "NCHW":
		return NCHW, nil
	case "NHWC":
		return NHWC, nil
	default:
		return 0, errors.Errorf("unknown storage order: %q", s)
	}
}

// Channels returns the channel count of a 4-D shape under this layout.
// The channel axis is dimension 1 for NCHW and dimension 3 for NHWC.
func (l Layout) Channels(s Shape) int {
	switch l {
	case NCHW:
		return s[1]
	case NHWC:
		return s[3]
	default:
		panic("unknown storage order: " + l.String())
	}
}

// Spatial returns the (H, W) extents of a 4-D shape under this layout.
func (l Layout) Spatial(s Shape) (h, w int) {
	switch l {
	case NCHW:
		return s[2], s[3]
	case NHWC:
		return s[1], s[2]
	default:
		panic("unknown storage order: " + l.String())
	}
}
