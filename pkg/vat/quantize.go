package vat

// SplitBytes quantizes each [0,1] plane value to 16 bits and splits it
// into separate high-byte and low-byte planes, each re-expressed as a
// [0,1] float ready for 8-bit image storage. Two texture samples per
// channel in the consuming shader buy 16-bit precision on an 8-bit
// format.
func SplitBytes(plane ChannelPlane) BytePlanes {
	high := make(ChannelPlane, len(plane))
	low := make(ChannelPlane, len(plane))
	for i, v := range plane {
		// Inputs are in [0,1] by construction; clamp anyway.
		iv := int(float64(v) * 65535)
		if iv < 0 {
			iv = 0
		} else if iv > 65535 {
			iv = 65535
		}
		high[i] = float32((iv>>8)&0xFF) / 255
		low[i] = float32(iv&0xFF) / 255
	}
	return BytePlanes{High: high, Low: low}
}
