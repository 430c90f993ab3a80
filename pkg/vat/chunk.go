package vat

import "fmt"

// BuildChunks slices a byte plane of logical size width x height into
// fixed-width image chunks. Every chunk row gets one guard pixel of the
// padding color on each side, so an emitted chunk image is w+2 texels
// wide. The chunk logical widths always sum to exactly the plane width.
//
// Chunks are named "{name}_part{i}" so multiple chunks from one plane
// stay identifiable and orderable on disk.
func BuildChunks(plane ChannelPlane, name string, width, height int, cfg Config) []ImageChunk {
	chunkCount := width / cfg.ChunkWidth
	remainder := width % cfg.ChunkWidth

	total := chunkCount
	if remainder > 0 {
		total++
	}

	chunks := make([]ImageChunk, 0, total)
	for i := 0; i < total; i++ {
		w := cfg.ChunkWidth
		if i == chunkCount {
			w = remainder
		}

		pixels := make([]float32, 0, (w+2)*height*4)
		for y := 0; y < height; y++ {
			start := (y*width + i*cfg.ChunkWidth) * 4
			pixels = append(pixels, cfg.Padding[:]...)
			pixels = append(pixels, plane[start:start+w*4]...)
			pixels = append(pixels, cfg.Padding[:]...)
		}

		chunks = append(chunks, ImageChunk{
			Name:   fmt.Sprintf("%s_part%d", name, i),
			Width:  w + 2,
			Height: height,
			Pixels: pixels,
		})
	}
	return chunks
}
