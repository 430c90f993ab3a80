package vat

import (
	"fmt"

	"github.com/vatforge/vatbake/pkg/math"
)

// SampleRowV is the fixed v coordinate of every atlas UV. The actual row
// (frame) is selected by the shader at runtime, so the baked coordinate
// only has to land inside the texture.
const SampleRowV = float32(128.0 / 255.0)

// AtlasUVs assigns every vertex a coordinate inside the horizontal chunk
// atlas. The integer part of u is the chunk number; the fraction places
// the vertex on its column's pixel center inside that chunk.
func AtlasUVs(vertexCount, chunkWidth int) (UVAssignment, error) {
	if vertexCount < 1 {
		return nil, fmt.Errorf("%w: got %d vertices", ErrEmptyFrame, vertexCount)
	}
	if chunkWidth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadChunkWidth, chunkWidth)
	}

	chunks := vertexCount / chunkWidth
	remainder := vertexCount % chunkWidth

	uvs := make(UVAssignment, vertexCount)
	for idx := range uvs {
		chunkNumber := idx / chunkWidth
		indexInChunk := idx % chunkWidth
		width := chunkWidth
		if chunkNumber >= chunks {
			width = remainder
		}
		uvs[idx] = math.Vec2{X: atlasU(chunkNumber, indexInChunk, width), Y: SampleRowV}
	}
	return uvs, nil
}

// atlasU places a column on its pixel center inside the padded chunk
// image. The 1.5 texel offset skips the guard column plus the half-texel
// center-sampling margin.
func atlasU(chunkNumber, indexInChunk, width int) float32 {
	if width == 1 {
		// Single-column chunk: the interpolation denominator vanishes.
		return float32(chunkNumber) + 0.5
	}
	offset := 1.5 / float32(width)
	scale := 1 - 2*offset
	return float32(chunkNumber) + scale*float32(indexInChunk)/float32(width-1) + offset
}
