package lwj

const (
	columnShift = BlockSize / 2
	rowWidth    = 4
	rowShift    = 2
)

// rotateColumns moves every byte half a block along; it is its own inverse.
func rotateColumns(in block) (out block) {
	for i := range out {
		out[i] = in[(i+columnShift)%BlockSize]
	}
	return
}

func unrotateColumns(in block) (out block) {
	for i := range in {
		out[(i+columnShift)%BlockSize] = in[i]
	}
	return
}

// rotateRows views the block as a 4x4 row-major matrix and rotates every row
// left by two.
func rotateRows(in block) (out block) {
	for r := 0; r < BlockSize; r += rowWidth {
		for c := 0; c < rowWidth; c++ {
			out[r+c] = in[r+(c+rowShift)%rowWidth]
		}
	}
	return
}

func unrotateRows(in block) (out block) {
	for r := 0; r < BlockSize; r += rowWidth {
		for c := 0; c < rowWidth; c++ {
			out[r+(c+rowShift)%rowWidth] = in[r+c]
		}
	}
	return
}

func swapBytes(b block) block {
	for _, p := range lwjSwapPairs {
		b[p[0]], b[p[1]] = b[p[1]], b[p[0]]
	}
	return b
}

func xorBlock(b block, k *block) block {
	for i := range b {
		b[i] ^= k[i]
	}
	return b
}
