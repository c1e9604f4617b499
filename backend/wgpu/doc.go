// Package wgpu presents annotation batches on the GPU using gogpu/wgpu.
//
// The package has two layers:
//
//   - Device: instance, adapter, device, and queue bootstrap via wgpu/core.
//   - LinePipeline: the line-list pipeline that draws stroke and shape
//     vertices. Shaders are written in WGSL, compiled to SPIR-V with
//     gogpu/naga, and loaded through the HAL shader module API.
//
// Text requests are not handled here; they are resolved by the text
// measurement layer and rasterized by the host application.
package wgpu
