package vat

// NormalizeOffsets converts a sequence into the position-offset and normal
// channel planes plus the scale factor a shader needs to undo the offset
// normalization.
//
// Offsets are measured against frame 0, divided by the largest offset
// magnitude in the whole sequence, and remapped from [-1,1] to [0,1]. The
// Y axis is sign-flipped; this matches the coordinate convention the data
// was sampled in and the shader decoding it. Normals are assumed unit
// length by the sampling stage and remapped to [0,1] directly.
//
// Rows are written in reversed frame order, last frame first.
//
// An empty sequence yields empty planes and the fallback scale of 1.
func NormalizeOffsets(seq AnimationSequence) (offsets, normals ChannelPlane, scale float32) {
	if len(seq) == 0 {
		return nil, nil, 1
	}
	rest := seq[0]
	frameCount := len(seq)
	vertexCount := len(rest)

	scale = maxOffsetLength(seq)

	offsets = make(ChannelPlane, 0, frameCount*vertexCount*4)
	normals = make(ChannelPlane, 0, frameCount*vertexCount*4)
	for f := frameCount - 1; f >= 0; f-- {
		for i, s := range seq[f] {
			off := s.Position.Sub(rest[i].Position).Scale(1 / scale)
			offsets = append(offsets,
				(off.X+1)*0.5,
				(-off.Y+1)*0.5,
				(off.Z+1)*0.5,
				1,
			)
			n := s.Normal
			normals = append(normals,
				(n.X+1)*0.5,
				(n.Y+1)*0.5,
				(n.Z+1)*0.5,
				1,
			)
		}
	}
	return offsets, normals, scale
}

// MaxOffset returns the largest offset magnitude from the rest frame
// across the whole sequence. Zero means the mesh never moves (or the
// sequence is empty).
func MaxOffset(seq AnimationSequence) float32 {
	if len(seq) == 0 {
		return 0
	}
	rest := seq[0]
	var max float32
	for _, frame := range seq {
		for i, s := range frame {
			if l := s.Position.Distance(rest[i].Position); l > max {
				max = l
			}
		}
	}
	return max
}

// maxOffsetLength returns the scale factor: the largest offset magnitude,
// or 1 when the mesh never moves so the normalization stays defined.
func maxOffsetLength(seq AnimationSequence) float32 {
	if max := MaxOffset(seq); max > 0 {
		return max
	}
	return 1
}
