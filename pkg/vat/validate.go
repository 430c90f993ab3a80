package vat

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptySequence     = errors.New("animation sequence has no frames")
	ErrEmptyFrame        = errors.New("animation sequence has no vertices")
	ErrInconsistentFrame = errors.New("frame vertex count differs from rest frame")
	ErrTooManyVertices   = errors.New("vertex count exceeds limit")
	ErrTooManyFrames     = errors.New("frame count exceeds limit")
	ErrBadChunkWidth     = errors.New("chunk width must be positive")
)

// Validate checks the structural preconditions of a bake. It runs before
// any encoding work so malformed or oversized input fails cheap.
func Validate(seq AnimationSequence, cfg Config) error {
	if cfg.ChunkWidth < 1 {
		return fmt.Errorf("%w: got %d", ErrBadChunkWidth, cfg.ChunkWidth)
	}
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	vertexCount := len(seq[0])
	if vertexCount == 0 {
		return ErrEmptyFrame
	}
	for i, frame := range seq {
		if len(frame) != vertexCount {
			return fmt.Errorf("%w: frame %d has %d vertices, want %d",
				ErrInconsistentFrame, i, len(frame), vertexCount)
		}
	}
	if cfg.MaxVertices > 0 && vertexCount > cfg.MaxVertices {
		return fmt.Errorf("%w: %d > %d", ErrTooManyVertices, vertexCount, cfg.MaxVertices)
	}
	if cfg.MaxFrames > 0 && len(seq) > cfg.MaxFrames {
		return fmt.Errorf("%w: %d > %d", ErrTooManyFrames, len(seq), cfg.MaxFrames)
	}
	return nil
}
