package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/ink/geom"
)

// VertexStride is the byte size of one packed vertex:
// position as Float32x2 followed by color as Float32x4.
const VertexStride = 24

// PackVertices serializes vertices into the GPU vertex buffer layout.
// Floats are encoded little-endian, matching SPIR-V and the vertex
// attribute formats declared by the line pipeline.
func PackVertices(vertices []geom.Vertex) []byte {
	buf := make([]byte, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		buf = appendFloat32(buf, float32(v.Position.X))
		buf = appendFloat32(buf, float32(v.Position.Y))
		buf = appendFloat32(buf, float32(v.Color.R))
		buf = appendFloat32(buf, float32(v.Color.G))
		buf = appendFloat32(buf, float32(v.Color.B))
		buf = appendFloat32(buf, float32(v.Color.A))
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}
