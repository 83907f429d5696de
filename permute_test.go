package lwj

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func counting() (b block) {
	for i := range b {
		b[i] = byte(i)
	}
	return
}

func randomBlocks(n int) []block {
	rng := rand.New(rand.NewSource(7))
	res := make([]block, n)
	for i := range res {
		rng.Read(res[i][:])
	}
	return append(res, block{}, counting())
}

func TestPermutation(t *testing.T) {
	t.Run("Columns", func(t *testing.T) {
		out := rotateColumns(counting())
		require.Equal(t, "08090a0b0c0d0e0f0001020304050607", hex.EncodeToString(out[:]))
		for _, b := range randomBlocks(64) {
			require.Equal(t, b, rotateColumns(rotateColumns(b)))
			require.Equal(t, b, unrotateColumns(rotateColumns(b)))
			require.Equal(t, rotateColumns(b), unrotateColumns(b))
		}
	})
	t.Run("Rows", func(t *testing.T) {
		out := rotateRows(counting())
		require.Equal(t, "02030001060704050a0b08090e0f0c0d", hex.EncodeToString(out[:]))
		for _, b := range randomBlocks(64) {
			require.Equal(t, b, unrotateRows(rotateRows(b)))
			require.Equal(t, b, rotateRows(unrotateRows(b)))
		}
	})
	t.Run("Swap", func(t *testing.T) {
		out := swapBytes(counting())
		require.Equal(t, "0607040a020c00010e0f030d050b0809", hex.EncodeToString(out[:]))
		for _, b := range randomBlocks(64) {
			require.Equal(t, b, swapBytes(swapBytes(b)))
		}
	})
	t.Run("SwapPairsDisjoint", func(t *testing.T) {
		var used [BlockSize]bool
		for _, p := range lwjSwapPairs {
			for _, i := range p {
				require.False(t, used[i])
				used[i] = true
			}
		}
	})
	t.Run("Mask", func(t *testing.T) {
		for _, b := range randomBlocks(64) {
			require.Equal(t, b, xorBlock(xorBlock(b, &lwjMask), &lwjMask))
		}
	})
	t.Run("Pipeline", func(t *testing.T) {
		out := permute(counting())
		require.Equal(t, "3bf277b8c62ac40110542bd3836f8029", hex.EncodeToString(out[:]))
		for _, b := range randomBlocks(256) {
			require.Equal(t, b, unpermute(permute(b)))
		}
	})
}
