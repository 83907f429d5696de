// Package lwj implements the LWJ 128-bit block cipher: 16 rounds of key XOR,
// a fixed S-box and a fixed byte and bit permutation network.
//
// LWJ is not a secure cipher. Every round uses the key unchanged, the tables
// are fixed, and blocks are encrypted independently with no chaining and no
// authentication, so equal plaintext blocks give equal ciphertext blocks.
package lwj

func permute(b block) block {
	b = rotateColumns(b)
	b = swapBytes(b)
	b = mixBlock(b)
	b = xorBlock(b, &lwjMask)
	b = rotateRows(b)
	b = swapBytes(b)
	return mixBlock(b)
}

func unpermute(b block) block {
	b = unmixBlock(b)
	b = swapBytes(b)
	b = unrotateRows(b)
	b = xorBlock(b, &lwjMask)
	b = unmixBlock(b)
	b = swapBytes(b)
	return unrotateColumns(b)
}

// encryptBlock runs the rounds with the same round key every time.
func encryptBlock(b block, key *block) block {
	for r := 0; r < Rounds; r++ {
		b = xorBlock(b, key)
		b = lwjSub.substitute(b)
		b = permute(b)
	}
	return xorBlock(b, key)
}

func decryptBlock(b block, key *block) block {
	b = xorBlock(b, key)
	for r := 0; r < Rounds; r++ {
		b = unpermute(b)
		b = lwjSub.invert(b)
		b = xorBlock(b, key)
	}
	return b
}

func toBlock(p []byte, kind string) (b block, err error) {
	if len(p) != BlockSize {
		return b, &InvalidBlockSizeError{Kind: kind, Size: len(p)}
	}
	copy(b[:], p)
	return b, nil
}

// Encrypt encrypts a single 16-byte block under a 16-byte key and returns the
// ciphertext in a new slice. Inputs of any other length are rejected with an
// *InvalidBlockSizeError; padding is left to the caller.
func Encrypt(src, key []byte) ([]byte, error) {
	return crypt(src, key, encryptBlock)
}

// Decrypt is the inverse of Encrypt.
func Decrypt(src, key []byte) ([]byte, error) {
	return crypt(src, key, decryptBlock)
}

func crypt(src, key []byte, fn func(block, *block) block) ([]byte, error) {
	b, err := toBlock(src, "block")
	if err != nil {
		return nil, err
	}
	k, err := toBlock(key, "key")
	if err != nil {
		return nil, err
	}
	out := fn(b, &k)
	return out[:], nil
}
