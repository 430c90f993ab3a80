package vat

import (
	"math"
	"testing"
)

func TestSplitBytesRoundTrip(t *testing.T) {
	const n = 2048
	plane := make(ChannelPlane, n+1)
	for i := range plane {
		plane[i] = float32(i) / n
	}

	bp := SplitBytes(plane)

	for i, v := range plane {
		high := math.Round(float64(bp.High[i]) * 255)
		low := math.Round(float64(bp.Low[i]) * 255)
		got := (high*256 + low) / 65535

		if diff := math.Abs(got - float64(v)); diff > 1.0/65535 {
			t.Fatalf("value %v round-trips to %v (error %v, limit %v)",
				v, got, diff, 1.0/65535)
		}
	}
}

func TestSplitBytesEndpoints(t *testing.T) {
	bp := SplitBytes(ChannelPlane{0, 1})

	if bp.High[0] != 0 || bp.Low[0] != 0 {
		t.Errorf("0 splits to (%v, %v), want (0, 0)", bp.High[0], bp.Low[0])
	}
	if bp.High[1] != 1 || bp.Low[1] != 1 {
		t.Errorf("1 splits to (%v, %v), want (1, 1)", bp.High[1], bp.Low[1])
	}
}

func TestSplitBytesClampsOutOfRange(t *testing.T) {
	bp := SplitBytes(ChannelPlane{-0.5, 1.5})

	if bp.High[0] != 0 || bp.Low[0] != 0 {
		t.Errorf("negative input splits to (%v, %v), want (0, 0)", bp.High[0], bp.Low[0])
	}
	if bp.High[1] != 1 || bp.Low[1] != 1 {
		t.Errorf("input above 1 splits to (%v, %v), want (1, 1)", bp.High[1], bp.Low[1])
	}
}

func TestSplitBytesKnownValue(t *testing.T) {
	// 0.5 * 65535 = 32767 = 0x7FFF -> high 0x7F, low 0xFF.
	bp := SplitBytes(ChannelPlane{0.5})

	if got, want := bp.High[0], float32(0x7F)/255; got != want {
		t.Errorf("high = %v, want %v", got, want)
	}
	if got, want := bp.Low[0], float32(0xFF)/255; got != want {
		t.Errorf("low = %v, want %v", got, want)
	}
}
