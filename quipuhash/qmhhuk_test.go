package quipuhash

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func qmhHukSum(t *testing.T, bitLen int, message []byte) []byte {
	dig, err := newQmhHukDigest(bitLen)
	require.NoError(t, err)
	out, err := dig.Compute(NewSliceSource(message))
	require.NoError(t, err)
	return out
}

func TestQmhHukPaddingBoundaries(t *testing.T) {
	require := require.New(t)

	// Lengths that exercise the single-block padding, the exact fit before
	// the length fields, and the φ carry block, for both block sizes.
	lengths := []int{0, 1, 53, 54, 55, 63, 64, 65, 117, 118, 119, 127, 128, 129, 200}
	for _, bitLen := range []int{224, 256, 384, 512} {
		seen := map[string]int{}
		for _, length := range lengths {
			message := make([]byte, length)
			for ii := range message {
				message[ii] = byte(ii)
			}
			out := qmhHukSum(t, bitLen, message)
			require.Equal(bitLen/8, len(out))
			key := fmt.Sprintf("%x", out)
			if prev, exists := seen[key]; exists {
				t.Fatalf("width %d: lengths %d and %d collided", bitLen, prev, length)
			}
			seen[key] = length
		}
	}
}

// The output-width marker in the padding domain-separates the widths, so the
// 224-bit digest must not be a truncation of the 256-bit digest.
func TestQmhHukWidthsAreDomainSeparated(t *testing.T) {
	require := require.New(t)

	message := []byte("Pantaleón y las visitadoras")
	out224 := qmhHukSum(t, 224, message)
	out256 := qmhHukSum(t, 256, message)
	require.NotEqual(out224, out256[:28])

	out384 := qmhHukSum(t, 384, message)
	out512 := qmhHukSum(t, 512, message)
	require.NotEqual(out384, out512[:48])
}

func TestQmhHukDistribution(t *testing.T) {
	const iterations = 20000

	r := rand.New(rand.NewSource(1830))
	dig, err := newQmhHukDigest(256)
	require.NoError(t, err)

	sums := [32]uint64{}
	for i := 0; i < iterations; i++ {
		out, err := dig.Compute(NewSliceSource([]byte(fmt.Sprintf("%b", r.Uint64()))))
		require.NoError(t, err)
		for j, b := range out {
			sums[j] += uint64(b)
		}
	}

	for _, total := range sums {
		spread := int(total/iterations) - 127
		if spread > 2 || spread < -2 {
			t.Fatalf("TestQmhHukDistribution: Non-random distribution! - %v", sums)
		}
	}
}
