// Package vat encodes per-frame vertex animation into vertex animation
// textures: offsets and normals are quantized to 16 bits, split across
// high-byte and low-byte image planes, and laid out in fixed-width padded
// chunks together with the atlas UVs a shader needs to sample them.
package vat

import "github.com/vatforge/vatbake/pkg/math"

// VertexSample is one vertex at one frame.
type VertexSample struct {
	Position math.Vec3
	Normal   math.Vec3
}

// FrameBuffer holds every vertex of one frame. The slice index is the
// vertex ID and must address the same vertex in every frame of a sequence.
type FrameBuffer []VertexSample

// AnimationSequence is an ordered list of frames. Frame 0 is the rest
// frame used as the offset baseline.
type AnimationSequence []FrameBuffer

// FrameCount returns the number of frames.
func (s AnimationSequence) FrameCount() int { return len(s) }

// VertexCount returns the vertex count of the rest frame, or 0 for an
// empty sequence.
func (s AnimationSequence) VertexCount() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// ChannelPlane is a flat RGBA float buffer in [0,1] covering vertexCount
// columns by frameCount rows. The vertex varies fastest within a row and
// rows are stored in reversed frame order (last frame first); the UV
// layout and the consuming shader depend on exactly this order.
type ChannelPlane []float32

// BytePlanes holds the 16-bit split of a ChannelPlane. High and Low carry
// one byte each, re-expressed as [0,1] floats for 8-bit image storage.
type BytePlanes struct {
	High ChannelPlane
	Low  ChannelPlane
}

// ImageChunk is one encodable image: an RGBA float pixel buffer plus its
// dimensions and a deterministic name ("{plane}_part{i}").
type ImageChunk struct {
	Name   string
	Width  int
	Height int
	Pixels []float32
}

// UVAssignment maps vertex ID to the (u, v) coordinate written onto the
// exported mesh's secondary UV channel.
type UVAssignment []math.Vec2

// Config carries the tunables of a bake.
type Config struct {
	// ChunkWidth is the texel width of one atlas chunk.
	ChunkWidth int
	// MaxVertices and MaxFrames are validation ceilings checked before
	// any encoding work happens. Zero disables the ceiling.
	MaxVertices int
	MaxFrames   int
	// MinImageSize is the smallest width/height the target texture
	// pipeline accepts; smaller chunks are upscaled on write.
	MinImageSize int
	// Padding is the RGBA color of the guard columns added around each
	// chunk row for safe bilinear sampling.
	Padding [4]float32
}

// DefaultConfig returns the baking defaults.
func DefaultConfig() Config {
	return Config{
		ChunkWidth:   128,
		MaxVertices:  2048,
		MaxFrames:    1024,
		MinImageSize: 32,
		Padding:      [4]float32{127.0 / 255.0, 127.0 / 255.0, 127.0 / 255.0, 1},
	}
}
