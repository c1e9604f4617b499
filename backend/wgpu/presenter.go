package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ink/render"
)

var (
	// ErrNilDevice is returned when a nil device handle is passed.
	ErrNilDevice = errors.New("wgpu: nil device handle")

	// ErrPresenterClosed is returned when a closed presenter is used.
	ErrPresenterClosed = errors.New("wgpu: presenter closed")

	// ErrInvalidDimensions is returned for non-positive surface sizes.
	ErrInvalidDimensions = errors.New("wgpu: invalid dimensions")
)

// Presenter stages render batches for a surface owned by the host.
//
// The host implements render.DeviceHandle and keeps ownership of the window
// surface. When the handle also exposes direct HAL access, the presenter
// creates a LinePipeline on the shared device and stages batches through it;
// otherwise (NullDeviceHandle, headless tools) it packs vertex data on the
// CPU. Presenter is NOT safe for concurrent use; feed it from the event-loop
// goroutine that owns the engine.
type Presenter struct {
	handle   render.DeviceHandle
	frame    render.FrameDescriptor
	pipeline *LinePipeline

	vertexData []byte
	texts      []render.TextRequest
	dirty      bool
	closed     bool
}

// NewPresenter creates a presenter for the given device and surface.
// A handle with HAL access that fails pipeline creation is an error; a
// handle without HAL access falls back to CPU staging.
func NewPresenter(handle render.DeviceHandle, frame render.FrameDescriptor) (*Presenter, error) {
	if handle == nil {
		return nil, ErrNilDevice
	}
	if frame.Width == 0 || frame.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, frame.Width, frame.Height)
	}

	p := &Presenter{handle: handle, frame: frame}
	if device, queue, ok := halFromHandle(handle); ok {
		pipeline, err := NewLinePipeline(device, queue)
		if err != nil {
			return nil, err
		}
		p.pipeline = pipeline
	}
	return p, nil
}

// halFromHandle probes the host's device handle for direct HAL access.
// GPU-backed hosts expose HalDevice/HalQueue alongside the gpucontext
// interface; CPU-only handles do not.
func halFromHandle(handle render.DeviceHandle) (hal.Device, hal.Queue, bool) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := handle.(halProvider)
	if !ok {
		return nil, nil, false
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, false
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, false
	}
	return device, queue, true
}

// Submit stages a batch for the next present. Vertices go to the line
// pipeline when one exists, otherwise into the CPU-side buffer; text
// requests are retained for the host's text renderer either way.
func (p *Presenter) Submit(batch render.Batch) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if p.pipeline != nil {
		p.pipeline.Upload(batch)
	} else {
		p.vertexData = PackVertices(batch.Vertices)
	}
	p.texts = batch.Texts
	p.dirty = true
	return nil
}

// Dirty reports whether a submitted batch awaits presentation.
func (p *Presenter) Dirty() bool {
	return p.dirty
}

// MarkPresented clears the dirty flag after the host has drawn the staged
// data.
func (p *Presenter) MarkPresented() {
	p.dirty = false
}

// VertexData returns the staged vertex buffer contents.
func (p *Presenter) VertexData() []byte {
	if p.pipeline != nil {
		return p.pipeline.VertexData()
	}
	return p.vertexData
}

// Texts returns the staged text requests.
func (p *Presenter) Texts() []render.TextRequest {
	return p.texts
}

// Frame returns the current surface descriptor.
func (p *Presenter) Frame() render.FrameDescriptor {
	return p.frame
}

// Device returns the host's device handle.
func (p *Presenter) Device() render.DeviceHandle {
	return p.handle
}

// Pipeline returns the line pipeline, or nil when the presenter runs on
// CPU staging.
func (p *Presenter) Pipeline() *LinePipeline {
	return p.pipeline
}

// Resize updates the surface descriptor. The next submitted batch renders
// at the new size.
func (p *Presenter) Resize(width, height uint32) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	p.frame.Width = width
	p.frame.Height = height
	return nil
}

// Close releases the staged data and the pipeline's GPU resources. The
// presenter cannot be reused.
func (p *Presenter) Close() {
	if p.pipeline != nil {
		p.pipeline.Destroy()
		p.pipeline = nil
	}
	p.vertexData = nil
	p.texts = nil
	p.dirty = false
	p.closed = true
}
