package lwj

const (
	BlockSize = 16
	KeySize   = 16
	Rounds    = 16
)

type block [BlockSize]byte

var lwjSBox = [256]byte{
	0x5f, 0xc7, 0x41, 0xc0, 0x4c, 0x80, 0x81, 0x2b, 0x56, 0x32, 0x01, 0x90, 0xcd, 0x69, 0x98, 0x45,
	0xac, 0x3c, 0xaa, 0xc3, 0xcc, 0xe2, 0x21, 0x4e, 0x9b, 0x6f, 0x1c, 0x99, 0xff, 0x1f, 0x44, 0x2e,
	0x59, 0xcb, 0x78, 0x15, 0x55, 0xd1, 0x49, 0xaf, 0x57, 0x1b, 0x0b, 0x4a, 0x42, 0xee, 0x52, 0x73,
	0x37, 0x29, 0x10, 0x28, 0xf6, 0x7d, 0x33, 0xfc, 0x31, 0x74, 0x3e, 0x0c, 0x88, 0x11, 0x5c, 0x43,
	0xb2, 0x38, 0x97, 0xf4, 0xf0, 0x85, 0xe4, 0x1e, 0x64, 0xd0, 0x6d, 0x58, 0x92, 0x08, 0x91, 0x3f,
	0x60, 0x6a, 0x36, 0x8b, 0x16, 0xcf, 0x5a, 0xe0, 0x84, 0xa8, 0xdd, 0xd2, 0xa4, 0xa7, 0xe6, 0xa9,
	0x6e, 0x89, 0x9c, 0xc8, 0x20, 0xa3, 0x50, 0x3b, 0x23, 0xca, 0x34, 0xc1, 0x66, 0xd7, 0xf9, 0x9e,
	0x62, 0x18, 0x26, 0xb9, 0x7c, 0xfb, 0xd6, 0x4b, 0xdf, 0x5d, 0xec, 0x12, 0x76, 0xc9, 0x48, 0x6c,
	0xab, 0xb7, 0x70, 0x8f, 0xe1, 0x79, 0x27, 0x71, 0x2f, 0x19, 0xc5, 0xd3, 0x07, 0xe3, 0xf2, 0x40,
	0x06, 0x3a, 0xa1, 0xef, 0x14, 0x94, 0x7e, 0xbe, 0x25, 0x8d, 0xde, 0x77, 0xed, 0xe5, 0xb0, 0xe8,
	0x0e, 0x54, 0xd4, 0xb4, 0xa2, 0x35, 0x17, 0xe7, 0x2c, 0x68, 0x9f, 0x04, 0x7a, 0x7b, 0x0f, 0xc2,
	0x09, 0xae, 0x51, 0x83, 0xbb, 0x6b, 0xa5, 0x9a, 0x87, 0x65, 0x4f, 0x8c, 0x03, 0xc4, 0x9d, 0xb6,
	0xdc, 0xc6, 0x13, 0x95, 0xf7, 0x1d, 0x00, 0x2d, 0x8e, 0xeb, 0x47, 0xf1, 0xa0, 0xdb, 0xb8, 0xbc,
	0x46, 0xd5, 0x5b, 0x05, 0xa6, 0x30, 0x4d, 0xb5, 0x02, 0x53, 0x61, 0xda, 0x3d, 0x2a, 0xf3, 0xfd,
	0x0a, 0xce, 0xfe, 0x72, 0x82, 0xea, 0xbd, 0x7f, 0xf8, 0xf5, 0x39, 0x8a, 0xad, 0x63, 0x96, 0xe9,
	0xbf, 0x1a, 0xba, 0xb3, 0xd9, 0x0d, 0x24, 0x86, 0x22, 0xfa, 0x93, 0xb1, 0x5e, 0x67, 0xd8, 0x75,
}

// lwjMask is XORed into the state in the middle of every permutation.
var lwjMask = block{
	0x9f, 0xde, 0x08, 0x2e, 0x54, 0x91, 0xff, 0x9f,
	0x7c, 0xe1, 0x4d, 0x6d, 0x2c, 0x38, 0xe9, 0x54,
}

// lwjSwapPairs are disjoint, so swapping all of them is an involution.
var lwjSwapPairs = [8][2]int{
	{0, 6}, {3, 10}, {5, 12}, {9, 15},
	{1, 7}, {2, 4}, {8, 14}, {11, 13},
}

// substitution holds an S-box together with its inverse.
type substitution struct {
	forward [256]byte
	inverse [256]byte
}

func newSubstitution(table *[256]byte) (*substitution, error) {
	var seen [256]bool
	s := &substitution{forward: *table}
	for i, v := range table {
		// keep the first preimage, as a front-to-back scan would
		if !seen[v] {
			s.inverse[v] = byte(i)
		}
		seen[v] = true
	}
	for v, ok := range seen {
		if !ok {
			return nil, &CorruptTableError{Value: byte(v)}
		}
	}
	return s, nil
}

func mustSubstitution(table *[256]byte) *substitution {
	s, err := newSubstitution(table)
	if err != nil {
		panic(err)
	}
	return s
}

var lwjSub = mustSubstitution(&lwjSBox)

func (s *substitution) substituteByte(b byte) byte {
	return s.forward[b]
}

func (s *substitution) inverseSubstituteByte(b byte) byte {
	return s.inverse[b]
}

func (s *substitution) substitute(b block) block {
	for i := range b {
		b[i] = s.substituteByte(b[i])
	}
	return b
}

func (s *substitution) invert(b block) block {
	for i := range b {
		b[i] = s.inverseSubstituteByte(b[i])
	}
	return b
}
