package lwj

import "math/bits"

const mixRotation = 4

// BlockMix walks the pairs (i, i+1) from mixFirst up to mixLast, each step
// seeing the output of the previous one. Undoing it has to walk back down.
const (
	mixFirst = 0
	mixLast  = BlockSize - 2
)

// interleave spreads the bits of upper and lower into alternating positions,
// most significant first: u7 l7 u6 l6 ... u0 l0.
func interleave(upper, lower byte) uint16 {
	var w uint16
	for i := 7; i >= 0; i-- {
		w = w<<2 | uint16(upper>>i&1)<<1 | uint16(lower>>i&1)
	}
	return w
}

func deinterleave(w uint16) (upper, lower byte) {
	for i := 0; i < 8; i++ {
		upper |= byte(w>>(2*i+1)&1) << i
		lower |= byte(w>>(2*i)&1) << i
	}
	return
}

func mixPair(upper, lower byte) (byte, byte) {
	w := bits.RotateLeft16(interleave(upper, lower), mixRotation)
	return byte(w >> 8), byte(w)
}

func unmixPair(upper, lower byte) (byte, byte) {
	w := bits.RotateLeft16(uint16(upper)<<8|uint16(lower), -mixRotation)
	return deinterleave(w)
}

func mixBlock(b block) block {
	for i := mixFirst; i <= mixLast; i++ {
		b[i], b[i+1] = mixPair(b[i], b[i+1])
	}
	return b
}

func unmixBlock(b block) block {
	for i := mixLast; i >= mixFirst; i-- {
		b[i], b[i+1] = unmixPair(b[i], b[i+1])
	}
	return b
}
