package lwj

import (
	"crypto/cipher"
	"io"
)

// writerCacheBlocks is how many blocks the Writer encrypts per downstream
// Write on the aligned path.
const writerCacheBlocks = 128

// Writer encrypts everything written to it block by block and passes the
// ciphertext on to an underlying writer. A trailing partial block is held
// back until Flush, which zero-pads it.
type Writer struct {
	dst     io.Writer
	key     cipher.Block
	pending int
	cache   [BlockSize * writerCacheBlocks]byte
}

func (w *Writer) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		if w.pending > 0 || len(p) < BlockSize {
			var took int
			took, err = w.fill(p)
			if err != nil {
				return n, err
			}
			n += took
			p = p[took:]
			continue
		}

		// aligned run straight from p
		size := len(p) - len(p)%BlockSize
		if size > len(w.cache) {
			size = len(w.cache)
		}
		copy(w.cache[:size], p[:size])
		w.encrypt(size)
		var wrote int
		wrote, err = w.dst.Write(w.cache[:size])
		if wrote < size {
			size = wrote - wrote%BlockSize
		}
		p = p[size:]
		n += size
		if err != nil {
			return
		}
	}
	return
}

// fill tops up the pending block from p and emits it once complete. On a
// failed emit the bytes taken from p are not counted as written.
func (w *Writer) fill(p []byte) (int, error) {
	took := BlockSize - w.pending
	if took > len(p) {
		took = len(p)
	}
	copy(w.cache[w.pending:], p[:took])
	w.pending += took
	if w.pending < BlockSize {
		return took, nil
	}
	w.pending = 0
	w.encrypt(BlockSize)
	if _, err := w.dst.Write(w.cache[:BlockSize]); err != nil {
		return 0, err
	}
	return took, nil
}

func (w *Writer) encrypt(size int) {
	for i := 0; i < size; i += BlockSize {
		w.key.Encrypt(w.cache[i:], w.cache[i:])
	}
}

// Flush zero-pads and writes the pending partial block, if there is one.
// The reader of the ciphertext is responsible for dropping the padding.
func (w *Writer) Flush() error {
	if w.pending == 0 {
		return nil
	}
	for i := w.pending; i < BlockSize; i++ {
		w.cache[i] = 0
	}
	w.pending = 0
	w.encrypt(BlockSize)
	_, err := w.dst.Write(w.cache[:BlockSize])
	return err
}

func NewWriter(w io.Writer, key cipher.Block) *Writer {
	return &Writer{
		dst: w,
		key: key,
	}
}
