package vat

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/vatforge/vatbake/pkg/math"
)

// VANM format errors.
var (
	ErrInvalidVANMMagic       = errors.New("invalid VANM magic: expected 'VANM'")
	ErrUnsupportedVANMVersion = errors.New("unsupported VANM version")
	ErrTruncatedVANMData      = errors.New("truncated VANM data")
)

// VANMVersion represents the VANM file version.
type VANMVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v VANMVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

const (
	vanmMagic = "VANM"

	// vanmRecordSize is one (px py pz nx ny nz) float32 record in bytes.
	vanmRecordSize = 6 * 4
)

// ParseSequence parses a VANM animation interchange file from raw bytes.
//
// Layout, all little endian:
//
//	"VANM" | version minor u8 | version major u8 |
//	frame count u32 | vertex count u32 |
//	frameCount*vertexCount records of (px py pz nx ny nz) float32
//
// The sampling host writes positions in world space with a stable vertex
// order across frames.
func ParseSequence(data []byte) (AnimationSequence, error) {
	if len(data) < 6 {
		return nil, ErrTruncatedVANMData
	}
	if string(data[:4]) != vanmMagic {
		return nil, ErrInvalidVANMMagic
	}

	// Version is stored as minor, major
	version := VANMVersion{Major: data[5], Minor: data[4]}
	if version.Major != 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVANMVersion, version)
	}

	r := bytes.NewReader(data[6:])

	var frameCount, vertexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &frameCount); err != nil {
		return nil, fmt.Errorf("%w: reading frame count", ErrTruncatedVANMData)
	}
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, fmt.Errorf("%w: reading vertex count", ErrTruncatedVANMData)
	}

	if frameCount == 0 {
		return nil, fmt.Errorf("%w: zero frame count", ErrEmptySequence)
	}
	if vertexCount == 0 {
		return nil, fmt.Errorf("%w: zero vertex count", ErrEmptyFrame)
	}

	// The counts come from an untrusted header; verify the payload is
	// actually there before allocating anything sized by them. Compare
	// record counts rather than byte counts so the arithmetic cannot
	// overflow even with both counts maxed out.
	records := uint64(frameCount) * uint64(vertexCount)
	if records > uint64(r.Len())/vanmRecordSize {
		return nil, fmt.Errorf("%w: %d frames x %d vertices exceed the %d payload bytes present",
			ErrTruncatedVANMData, frameCount, vertexCount, r.Len())
	}

	seq := make(AnimationSequence, 0, frameCount)
	rec := make([]float32, 6)
	for f := uint32(0); f < frameCount; f++ {
		frame := make(FrameBuffer, 0, vertexCount)
		for i := uint32(0); i < vertexCount; i++ {
			if err := binary.Read(r, binary.LittleEndian, rec); err != nil {
				return nil, fmt.Errorf("%w: frame %d vertex %d", ErrTruncatedVANMData, f, i)
			}
			frame = append(frame, VertexSample{
				Position: math.Vec3{X: rec[0], Y: rec[1], Z: rec[2]},
				Normal:   math.Vec3{X: rec[3], Y: rec[4], Z: rec[5]},
			})
		}
		seq = append(seq, frame)
	}
	return seq, nil
}

// ParseSequenceFile parses a VANM file from disk.
func ParseSequenceFile(path string) (AnimationSequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading VANM file: %w", err)
	}
	return ParseSequence(data)
}

// EncodeSequence serializes a sequence to VANM version 1.0.
func EncodeSequence(seq AnimationSequence) ([]byte, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	vertexCount := seq.VertexCount()
	if vertexCount == 0 {
		return nil, ErrEmptyFrame
	}

	buf := new(bytes.Buffer)
	buf.WriteString(vanmMagic)
	buf.WriteByte(0) // minor
	buf.WriteByte(1) // major
	binary.Write(buf, binary.LittleEndian, uint32(len(seq)))
	binary.Write(buf, binary.LittleEndian, uint32(vertexCount))

	for i, frame := range seq {
		if len(frame) != vertexCount {
			return nil, fmt.Errorf("%w: frame %d has %d vertices, want %d",
				ErrInconsistentFrame, i, len(frame), vertexCount)
		}
		for _, s := range frame {
			binary.Write(buf, binary.LittleEndian, []float32{
				s.Position.X, s.Position.Y, s.Position.Z,
				s.Normal.X, s.Normal.Y, s.Normal.Z,
			})
		}
	}
	return buf.Bytes(), nil
}
