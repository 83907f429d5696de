package lwj

import (
	"bytes"
	"context"
	"io"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add(make([]byte, BlockSize), testKey)
	f.Add(bytes.Repeat([]byte{0xff}, BlockSize), bytes.Repeat([]byte{0xff}, KeySize))
	f.Add([]byte("ABCDEFGHIJKLMNOP"), []byte("YELLOW SUBMARINE"))
	f.Add([]byte("short"), testKey)
	f.Fuzz(func(t *testing.T, plaintext, key []byte) {
		ciphertext, err := Encrypt(plaintext, key)
		if len(plaintext) != BlockSize || len(key) != KeySize {
			if err == nil {
				t.Fatalf("Encrypt accepted a %d-byte block with a %d-byte key", len(plaintext), len(key))
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		res, err := Decrypt(ciphertext, key)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(res, plaintext) {
			t.Errorf("Decrypt(Encrypt(%x)) = %x", plaintext, res)
		}
	})
}

// FuzzStreamTranscript pushes a message through a Writer and a Reader in
// randomly sized pieces and checks both against the batch driver.
func FuzzStreamTranscript(f *testing.F) {
	f.Add([]byte("lwj stream transcript seed"))
	f.Add(alphabet(1024))
	f.Add(bytes.Repeat([]byte{0x10, 0x01, 0xff}, 200))

	key := testStreamKey(f)
	batch, err := NewBatch(testKey, WithChunkBlocks(2))
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		message, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		var ciphertext bytes.Buffer
		w := NewWriter(&ciphertext, key)
		for rest := message; len(rest) > 0; {
			n, err := tp.GetByte()
			if err != nil {
				n = byte(len(rest))
			}
			size := int(n)%(len(rest)) + 1
			if _, err := w.Write(rest[:size]); err != nil {
				t.Fatal(err)
			}
			rest = rest[size:]
		}
		if err := w.Flush(); err != nil {
			t.Fatal(err)
		}

		want, err := batch.Encrypt(context.Background(), message)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(ciphertext.Bytes(), want) {
			t.Fatalf("Writer and Batch disagree: %x != %x", ciphertext.Bytes(), want)
		}

		r := io.LimitReader(NewReader(bytes.NewReader(want), key), int64(len(message)))
		var plaintext []byte
		for {
			n, err := tp.GetByte()
			if err != nil {
				n = BlockSize
			}
			buf := make([]byte, int(n)%64+1)
			got, err := r.Read(buf)
			plaintext = append(plaintext, buf[:got]...)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatal(err)
			}
		}
		if !bytes.Equal(plaintext, message) {
			t.Fatalf("Reader returned %x, want %x", plaintext, message)
		}
	})
}
