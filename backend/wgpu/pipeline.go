package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ink/render"
)

// StubPipelineID is a placeholder for the wgpu render pipeline handle.
// It will be replaced with core.RenderPipelineID once render pipelines
// are exposed through the core API.
type StubPipelineID uint64

// InvalidPipelineID represents an invalid/uninitialized pipeline.
const InvalidPipelineID StubPipelineID = 0

// LinePipeline draws stroke and shape vertices as a line list.
//
// The pipeline compiles the embedded WGSL shader to SPIR-V and creates
// the HAL shader module up front. Render pipeline assembly uses stub
// identifiers until the core API grows render pipeline support; vertex
// data is packed and staged so the draw path is exercised end to end.
type LinePipeline struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	shaderModule hal.ShaderModule
	spirvCode    []uint32

	pipeline StubPipelineID

	// Staged vertex data for the next draw.
	vertexData  []byte
	vertexCount int

	initialized bool
}

// NewLinePipeline creates the line-list pipeline on the given device.
// Returns an error if shader compilation or module creation fails.
func NewLinePipeline(device hal.Device, queue hal.Queue) (*LinePipeline, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	p := &LinePipeline{
		device: device,
		queue:  queue,
	}

	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}

	return p, nil
}

func (p *LinePipeline) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	spirvCode, err := CompileShaderToSPIRV(lineShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile line shader: %w", err)
	}
	p.spirvCode = spirvCode

	module, err := CreateShaderModule(p.device, "line_shader", spirvCode)
	if err != nil {
		return fmt.Errorf("wgpu: failed to create line shader module: %w", err)
	}
	p.shaderModule = module

	// TODO: assemble the render pipeline through core once
	// core.CreateRenderPipeline lands. Until then the pipeline handle
	// is a stub; vertex layout is Float32x2 position + Float32x4 color
	// with LineList topology.
	p.pipeline = StubPipelineID(1)

	p.initialized = true
	return nil
}

// Upload stages the batch vertices for the next draw.
// Text requests are ignored here; they are handled by the text layer.
func (p *LinePipeline) Upload(batch render.Batch) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.vertexData = PackVertices(batch.Vertices)
	p.vertexCount = len(batch.Vertices)
}

// VertexCount returns the number of vertices staged for drawing.
func (p *LinePipeline) VertexCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vertexCount
}

// VertexData returns the packed vertex buffer contents.
func (p *LinePipeline) VertexData() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vertexData
}

// SPIRVCode returns the compiled shader words. Useful for verification.
func (p *LinePipeline) SPIRVCode() []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spirvCode
}

// Destroy releases GPU resources held by the pipeline.
func (p *LinePipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shaderModule != nil && p.device != nil {
		p.device.DestroyShaderModule(p.shaderModule)
		p.shaderModule = nil
	}
	p.pipeline = InvalidPipelineID
	p.vertexData = nil
	p.vertexCount = 0
	p.initialized = false
}
