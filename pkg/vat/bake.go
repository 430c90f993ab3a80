package vat

import (
	"fmt"
	"sync"
)

// PlaneKind names the data stored in an encoded plane.
type PlaneKind string

// Plane kinds.
const (
	KindPosition PlaneKind = "position"
	KindNormal   PlaneKind = "normal"
)

// ByteHalf names which half of the 16-bit split a plane carries.
type ByteHalf string

// Byte halves.
const (
	ByteHigh ByteHalf = "high"
	ByteLow  ByteHalf = "low"
)

// EncodedPlane is the chunk sequence of one (kind, byte half) texture.
type EncodedPlane struct {
	Kind   PlaneKind
	Byte   ByteHalf
	Chunks []ImageChunk
}

// BakeResult carries everything the persistence host needs: the four
// encoded texture planes, the per-vertex atlas UVs, and the scale factor
// that must be stored as asset metadata so a shader can de-normalize
// offsets.
type BakeResult struct {
	Name        string
	VertexCount int
	FrameCount  int
	ScaleFactor float32
	UVs         UVAssignment
	Textures    []EncodedPlane
}

// Bake runs the full encoding pipeline over a sequence: validation,
// offset normalization, 16-bit byte splitting, UV generation, and chunked
// image layout. The four (kind, byte half) chunk builds only share the
// read-only normalized planes, so they run concurrently.
func Bake(seq AnimationSequence, name string, cfg Config) (*BakeResult, error) {
	if err := Validate(seq, cfg); err != nil {
		return nil, err
	}
	vertexCount := seq.VertexCount()
	frameCount := seq.FrameCount()

	offsets, normals, scale := NormalizeOffsets(seq)

	uvs, err := AtlasUVs(vertexCount, cfg.ChunkWidth)
	if err != nil {
		return nil, err
	}

	position := SplitBytes(offsets)
	normal := SplitBytes(normals)

	passes := []struct {
		kind  PlaneKind
		half  ByteHalf
		plane ChannelPlane
	}{
		{KindPosition, ByteHigh, position.High},
		{KindPosition, ByteLow, position.Low},
		{KindNormal, ByteHigh, normal.High},
		{KindNormal, ByteLow, normal.Low},
	}

	planes := make([]EncodedPlane, len(passes))
	var wg sync.WaitGroup
	for i, pass := range passes {
		i, pass := i, pass
		wg.Add(1)
		go func() {
			defer wg.Done()
			planeName := fmt.Sprintf("%s_%s_%s", name, pass.kind, pass.half)
			planes[i] = EncodedPlane{
				Kind:   pass.kind,
				Byte:   pass.half,
				Chunks: BuildChunks(pass.plane, planeName, vertexCount, frameCount, cfg),
			}
		}()
	}
	wg.Wait()

	return &BakeResult{
		Name:        name,
		VertexCount: vertexCount,
		FrameCount:  frameCount,
		ScaleFactor: scale,
		UVs:         uvs,
		Textures:    planes,
	}, nil
}
