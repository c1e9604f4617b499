package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (window/GPU layer) implements DeviceHandle and passes it to a
// presenter; ink receives the device, it never creates one. This keeps GPU
// resources shared between the whiteboard and the rest of the application.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// interface an ink-local name while staying compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// FrameDescriptor describes the surface a batch will be presented to.
type FrameDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width and Height are the surface size in device pixels.
	Width  uint32
	Height uint32

	// Format is the surface pixel format.
	Format gputypes.TextureFormat
}

// DefaultFrameDescriptor returns a descriptor for the common case.
func DefaultFrameDescriptor(width, height uint32) FrameDescriptor {
	return FrameDescriptor{
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// NullDeviceHandle is a DeviceHandle with nil implementations, for hosts
// that consume batches on the CPU (tests, headless tools).
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
