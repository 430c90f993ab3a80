// Package writer persists bake output: chunk textures as PNG files plus a
// yaml metadata sidecar describing them.
package writer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"github.com/vatforge/vatbake/internal/logger"
	"github.com/vatforge/vatbake/pkg/vat"
)

// Metadata is the yaml sidecar stored next to the baked textures. It
// carries the scale factor a consuming shader needs to de-normalize
// offsets, the atlas UVs for the exported mesh's secondary UV channel,
// and the texture file inventory.
type Metadata struct {
	Name        string       `yaml:"name"`
	ScaleFactor float32      `yaml:"scale_factor"`
	VertexCount int          `yaml:"vertex_count"`
	FrameCount  int          `yaml:"frame_count"`
	ChunkWidth  int          `yaml:"chunk_width"`
	Textures    []Texture    `yaml:"textures"`
	UVs         [][2]float32 `yaml:"uvs,flow"`
}

// Texture lists the chunk files of one encoded plane.
type Texture struct {
	Kind  string   `yaml:"kind"`
	Byte  string   `yaml:"byte"`
	Files []string `yaml:"files"`
}

// WriteBake writes every chunk of every encoded plane as a PNG into dir,
// followed by the "{name}_vat.yaml" metadata sidecar. It returns the
// paths of all written files.
func WriteBake(dir string, result *vat.BakeResult, cfg vat.Config) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string
	meta := Metadata{
		Name:        result.Name,
		ScaleFactor: result.ScaleFactor,
		VertexCount: result.VertexCount,
		FrameCount:  result.FrameCount,
		ChunkWidth:  cfg.ChunkWidth,
		UVs:         make([][2]float32, len(result.UVs)),
	}
	for i, uv := range result.UVs {
		meta.UVs[i] = [2]float32{uv.X, uv.Y}
	}

	for _, plane := range result.Textures {
		tex := Texture{Kind: string(plane.Kind), Byte: string(plane.Byte)}
		for _, chunk := range plane.Chunks {
			path, err := WriteChunkPNG(dir, chunk, cfg.MinImageSize)
			if err != nil {
				return written, err
			}
			tex.Files = append(tex.Files, filepath.Base(path))
			written = append(written, path)
		}
		meta.Textures = append(meta.Textures, tex)
		logger.Debug("plane written",
			zap.String("kind", string(plane.Kind)),
			zap.String("byte", string(plane.Byte)),
			zap.Int("chunks", len(plane.Chunks)))
	}

	metaPath := filepath.Join(dir, result.Name+"_vat.yaml")
	data, err := yaml.Marshal(&meta)
	if err != nil {
		return written, fmt.Errorf("encoding metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, data, 0644); err != nil {
		return written, fmt.Errorf("writing metadata: %w", err)
	}
	written = append(written, metaPath)

	logger.Info("bake written",
		zap.String("name", result.Name),
		zap.String("dir", dir),
		zap.Int("files", len(written)))
	return written, nil
}

// WriteChunkPNG converts a chunk's float pixel buffer to 8-bit NRGBA and
// writes "{chunk.Name}.png" into dir. Chunks smaller than minSize in
// either dimension are upscaled to the minimum with nearest-neighbor
// sampling, which keeps the encoded texel values exact. Returns the path
// of the written file.
func WriteChunkPNG(dir string, chunk vat.ImageChunk, minSize int) (string, error) {
	img := chunkImage(chunk)

	if minSize > 0 && (chunk.Width < minSize || chunk.Height < minSize) {
		w := chunk.Width
		if w < minSize {
			w = minSize
		}
		h := chunk.Height
		if h < minSize {
			h = minSize
		}
		scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = scaled
	}

	path := filepath.Join(dir, chunk.Name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	return path, nil
}

// chunkImage converts an ImageChunk float buffer into an 8-bit NRGBA
// image. Values are clamped to [0,1] and rounded to the nearest of the
// 256 levels.
func chunkImage(c vat.ImageChunk) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i := 0; i < c.Width*c.Height*4; i++ {
		v := c.Pixels[i]
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		img.Pix[i] = uint8(v*255 + 0.5)
	}
	return img
}
