package lwj

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const defaultChunkBlocks = 256

// Batch encrypts and decrypts whole buffers. Blocks are independent of each
// other, so chunks of them are handed to a bounded pool of goroutines.
type Batch struct {
	key         *Key
	workers     int
	chunkBlocks int
}

type BatchOption func(*Batch)

// WithWorkers bounds the number of goroutines working at once. Values below
// one are ignored.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithChunkBlocks sets how many consecutive blocks one goroutine handles.
func WithChunkBlocks(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.chunkBlocks = n
		}
	}
}

func NewBatch(key []byte, opts ...BatchOption) (*Batch, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	b := &Batch{
		key:         k,
		workers:     runtime.GOMAXPROCS(0),
		chunkBlocks: defaultChunkBlocks,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Encrypt encrypts src, zero-padding the last block. The result is always a
// whole number of blocks; keep len(src) around to undo the padding.
func (b *Batch) Encrypt(ctx context.Context, src []byte) ([]byte, error) {
	blocks := (len(src) + BlockSize - 1) / BlockSize
	dst := make([]byte, blocks*BlockSize)
	copy(dst, src)
	if err := b.run(ctx, dst, b.key.Encrypt); err != nil {
		return nil, err
	}
	return dst, nil
}

// Decrypt decrypts src and truncates the plaintext to length, which must lie
// inside the final block.
func (b *Batch) Decrypt(ctx context.Context, src []byte, length int) ([]byte, error) {
	if len(src)%BlockSize != 0 {
		return nil, &InvalidBlockSizeError{Kind: "ciphertext", Size: len(src)}
	}
	if length < 0 || length > len(src) || len(src)-length >= BlockSize {
		return nil, fmt.Errorf("lwj: plaintext length %d does not fit %d bytes of ciphertext", length, len(src))
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	if err := b.run(ctx, dst, b.key.Decrypt); err != nil {
		return nil, err
	}
	return dst[:length], nil
}

// run applies fn to every block of buf in place.
func (b *Batch) run(ctx context.Context, buf []byte, fn func(dst, src []byte)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	chunk := b.chunkBlocks * BlockSize
	start := 0
	for ; start < len(buf); start += chunk {
		if gctx.Err() != nil {
			break
		}
		end := start + chunk
		if end > len(buf) {
			end = len(buf)
		}
		part := buf[start:end]
		g.Go(func() error {
			for i := 0; i < len(part); i += BlockSize {
				if err := gctx.Err(); err != nil {
					return err
				}
				fn(part[i:], part[i:])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if start < len(buf) {
		return ctx.Err()
	}
	return nil
}
