package lwj

import (
	"crypto/cipher"
	"io"
)

// Reader decrypts ciphertext read from an underlying reader. The plaintext
// comes out padded to whole blocks; wrap the Reader in an io.LimitReader to
// cut it back to the original length.
type Reader struct {
	src      io.Reader
	key      cipher.Block
	buffered int
	cache    [BlockSize]byte
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for len(p) > 0 {
		if r.buffered > 0 {
			took := copy(p, r.cache[BlockSize-r.buffered:])
			r.buffered -= took
			n += took
			p = p[took:]
			continue
		}
		if len(p) >= BlockSize {
			var got int
			got, err = r.readAligned(p)
			n += got
			p = p[got:]
			if err != nil {
				return
			}
			continue
		}
		if _, err = io.ReadFull(r.src, r.cache[:]); err != nil {
			return
		}
		r.key.Decrypt(r.cache[:], r.cache[:])
		took := copy(p, r.cache[:])
		r.buffered = BlockSize - took
		n += took
		p = p[took:]
	}
	return
}

// readAligned decrypts as many whole blocks as fit in p directly in place.
func (r *Reader) readAligned(p []byte) (int, error) {
	size := len(p) - len(p)%BlockSize
	got, err := io.ReadFull(r.src, p[:size])
	if got < size {
		size = got - got%BlockSize
	}
	for i := 0; i < size; i += BlockSize {
		r.key.Decrypt(p[i:], p[i:])
	}
	// whole blocks followed by end of input is a clean EOF
	if size > 0 && err == io.ErrUnexpectedEOF && got == size {
		err = io.EOF
	}
	return size, err
}

func NewReader(r io.Reader, key cipher.Block) *Reader {
	return &Reader{
		src: r,
		key: key,
	}
}
