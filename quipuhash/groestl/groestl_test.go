package groestl

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Vector from the Grøstl submission package.
func TestGroestlEmptyVector(t *testing.T) {
	require := require.New(t)

	d := New(256)
	require.Equal(
		"1a52d11d550039be16107f9c58db9ebcc417f16f736adb2502567119f0083467",
		hex.EncodeToString(d.Sum(nil)))
}

func TestGroestlWidths(t *testing.T) {
	require := require.New(t)

	message := []byte("La ciudad y los perros")
	seen := map[string]int{}
	for _, width := range []int{224, 256, 384, 512} {
		d := New(width)
		d.Write(message)
		out := d.Sum(nil)
		require.Equal(width/8, len(out))
		key := hex.EncodeToString(out)
		if prev, exists := seen[key]; exists {
			t.Fatalf("widths %d and %d collided", prev, width)
		}
		seen[key] = width
	}
}

func TestGroestlChunkedWrites(t *testing.T) {
	require := require.New(t)

	message := bytes.Repeat([]byte("historia de Mayta "), 31)
	for _, width := range []int{256, 512} {
		whole := New(width)
		whole.Write(message)

		chunked := New(width)
		for ii := 0; ii < len(message); ii += 13 {
			end := ii + 13
			if end > len(message) {
				end = len(message)
			}
			chunked.Write(message[ii:end])
		}
		require.Equal(whole.Sum(nil), chunked.Sum(nil), "width %d", width)
	}
}

func TestGroestlPaddingBoundaries(t *testing.T) {
	require := require.New(t)

	// Lengths straddling the 9-byte padding minimum for both block sizes.
	for _, width := range []int{256, 512} {
		blockLen := New(width).BlockSize()
		seen := map[string]int{}
		for _, length := range []int{0, 1, blockLen - 9, blockLen - 8, blockLen - 1, blockLen, blockLen + 1, 2 * blockLen} {
			message := make([]byte, length)
			for ii := range message {
				message[ii] = byte(length + ii)
			}
			d := New(width)
			d.Write(message)
			out := d.Sum(nil)
			key := hex.EncodeToString(out)
			if prev, exists := seen[key]; exists {
				t.Fatalf("width %d: lengths %d and %d collided", width, prev, length)
			}
			seen[key] = length
		}
		require.True(len(seen) == 8)
	}
}

func TestGroestlReset(t *testing.T) {
	require := require.New(t)

	d := New(256)
	empty := d.Sum(nil)

	d.Reset()
	d.Write([]byte("elogio de la madrastra"))
	d.Reset()
	require.Equal(empty, d.Sum(nil))
}
