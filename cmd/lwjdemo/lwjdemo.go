// Command lwjdemo encrypts and decrypts a generated A..Z text with the LWJ
// cipher and reports how long each direction took.
package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	lwj "github.com/moe-lee/Modern-cryptography-design-and-implementation"
)

const referenceKey = "1fa23b4c55607d8e9faabdced1e2f304"

func main() {
	log := slog.New(slog.Default().Handler())

	size := flag.Int("size", 1_000_000, "the number of plaintext bytes to generate")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "the number of goroutines used in batch mode")
	keyHex := flag.String("key", referenceKey, "the 16-byte key, hex encoded")
	mode := flag.String("mode", "batch", "how to drive the cipher: batch or stream")
	flag.Parse()

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(2)
	}

	plaintext := alphabet(*size)

	var run func(key, plaintext []byte) (ciphertext, decrypted []byte, encDur, decDur time.Duration, err error)
	switch *mode {
	case "batch":
		run = func(key, plaintext []byte) ([]byte, []byte, time.Duration, time.Duration, error) {
			return runBatch(context.Background(), key, plaintext, *workers)
		}
	case "stream":
		run = runStream
	default:
		log.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}

	ciphertext, decrypted, encDur, decDur, err := run(key, plaintext)
	if err != nil {
		log.Error("round trip failed", "err", err)
		os.Exit(1)
	}

	log.Info("encrypted", "mode", *mode, "bytes", len(plaintext), "blocks", len(ciphertext)/lwj.BlockSize,
		"elapsed", encDur, "MB/s", throughput(len(plaintext), encDur))
	log.Info("decrypted", "mode", *mode, "bytes", len(decrypted),
		"elapsed", decDur, "MB/s", throughput(len(decrypted), decDur))

	if !bytes.Equal(plaintext, decrypted) {
		log.Error("decrypted text does not match the original")
		os.Exit(1)
	}
	log.Info("decrypted text matches the original")
}

// alphabet returns n bytes of ABC...XYZABC...
func alphabet(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = 'A' + byte(i%26)
	}
	return p
}

func runBatch(ctx context.Context, key, plaintext []byte, workers int) ([]byte, []byte, time.Duration, time.Duration, error) {
	b, err := lwj.NewBatch(key, lwj.WithWorkers(workers))
	if err != nil {
		return nil, nil, 0, 0, err
	}

	start := time.Now()
	ciphertext, err := b.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	encDur := time.Since(start)

	start = time.Now()
	decrypted, err := b.Decrypt(ctx, ciphertext, len(plaintext))
	if err != nil {
		return nil, nil, 0, 0, err
	}
	return ciphertext, decrypted, encDur, time.Since(start), nil
}

func runStream(key, plaintext []byte) ([]byte, []byte, time.Duration, time.Duration, error) {
	k, err := lwj.NewKey(key)
	if err != nil {
		return nil, nil, 0, 0, err
	}

	start := time.Now()
	var ciphertext bytes.Buffer
	w := lwj.NewWriter(&ciphertext, k)
	if _, err := w.Write(plaintext); err != nil {
		return nil, nil, 0, 0, fmt.Errorf("write: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, nil, 0, 0, fmt.Errorf("flush: %w", err)
	}
	encDur := time.Since(start)

	start = time.Now()
	r := io.LimitReader(lwj.NewReader(bytes.NewReader(ciphertext.Bytes()), k), int64(len(plaintext)))
	decrypted, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, 0, 0, fmt.Errorf("read: %w", err)
	}
	return ciphertext.Bytes(), decrypted, encDur, time.Since(start), nil
}

func throughput(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds() / 1e6
}
