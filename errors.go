package lwj

import "strconv"

// InvalidBlockSizeError is returned when a block, key or ciphertext does not
// have the length the cipher requires. Kind is "block", "key" or
// "ciphertext".
type InvalidBlockSizeError struct {
	Kind string
	Size int
}

func (e *InvalidBlockSizeError) Error() string {
	return "lwj: invalid " + e.Kind + " size " + strconv.Itoa(e.Size)
}

// CorruptTableError is returned when a substitution table is not a bijection
// and Value has no preimage.
type CorruptTableError struct {
	Value byte
}

func (e *CorruptTableError) Error() string {
	return "lwj: substitution table has no preimage for 0x" + strconv.FormatUint(uint64(e.Value), 16)
}
