package lwj

import "crypto/cipher"

// Key is an LWJ key ready for use as a cipher.Block. The zero value is the
// all-zero key. A Key is never written to after SetKey, so it can be shared
// between goroutines.
type Key struct {
	round block
}

var _ cipher.Block = (*Key)(nil)

// NewKey returns a Key for a 16-byte key.
func NewKey(key []byte) (*Key, error) {
	k, err := toBlock(key, "key")
	if err != nil {
		return nil, err
	}
	var res Key
	res.SetKey(k)
	return &res, nil
}

// SetKey installs key. There is no schedule: every round uses key as is.
func (key *Key) SetKey(k [KeySize]byte) {
	key.round = k
}

func (key *Key) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block of src into dst. dst and src may overlap
// entirely.
func (key *Key) Encrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := encryptBlock(block(src[:BlockSize]), &key.round)
	copy(dst, out[:])
}

func (key *Key) Decrypt(dst, src []byte) {
	checkBlocks(dst, src)
	out := decryptBlock(block(src[:BlockSize]), &key.round)
	copy(dst, out[:])
}

func checkBlocks(dst, src []byte) {
	if len(src) < BlockSize {
		panic("lwj: input not full block")
	}
	if len(dst) < BlockSize {
		panic("lwj: output not full block")
	}
}
