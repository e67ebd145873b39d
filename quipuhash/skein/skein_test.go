package skein

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// The configuration UBI must reproduce the tabulated Skein-512 IVs; this
// pins the Threefish key schedule, the tweak encoding and the UBI
// feed-forward in one check.
func TestConfigIvDerivation(t *testing.T) {
	require := require.New(t)

	iv256 := [8]uint64{
		0xCCD044A12FDB3E13, 0xE83590301A79A9EB, 0x55AEA0614F816E6F, 0x2A2767A4AE9B94DB,
		0xEC06025E74DD7683, 0xE7A436CDC4746251, 0xC36FBAF9393AD185, 0x3EEDBA1833EDFC13,
	}
	require.Equal(iv256, New(256).iv)

	iv512 := [8]uint64{
		0x4903ADFF749C51CE, 0x0D95DE399746DF03, 0x8FD1934127C79BCE, 0x9A255629FF352CB1,
		0x5DB62599DF6CA7B0, 0xEABE394CA9D5C3F4, 0x991112C71A75B523, 0xAE18A40B660FCC33,
	}
	require.Equal(iv512, New(512).iv)
}

// Vectors from the Skein 1.3 submission package.
func TestSkeinEmptyVectors(t *testing.T) {
	require := require.New(t)

	require.Equal(
		"c8877087da56e072870daa843f176e9453115929094c3a40c463a196c29bf7ba",
		hex.EncodeToString(New(256).Sum(nil)))

	require.Equal(
		"bc5b4c50925519c290cc634277ae3d6257212395cba733bbad37a4af0fa06af4"+
			"1fca7903d06564fea7a2d3730dbdb80c1f85562dfcc070334ea4d1d9e72cba7a",
		hex.EncodeToString(New(512).Sum(nil)))
}

func TestSkeinWidths(t *testing.T) {
	require := require.New(t)

	message := []byte("la guerra del fin del mundo")
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

func TestSkeinChunkedWrites(t *testing.T) {
	require := require.New(t)

	message := bytes.Repeat([]byte("travesuras de la niña mala "), 17)
	whole := New(256)
	whole.Write(message)

	chunked := New(256)
	for ii := 0; ii < len(message); ii += 9 {
		end := ii + 9
		if end > len(message) {
			end = len(message)
		}
		chunked.Write(message[ii:end])
	}
	require.Equal(whole.Sum(nil), chunked.Sum(nil))
}

// Sum must not disturb the running state: writing more after a Sum behaves
// as if the Sum never happened.
func TestSkeinSumIsNonDestructive(t *testing.T) {
	require := require.New(t)

	d := New(256)
	d.Write([]byte("lituma "))
	mid := d.Sum(nil)
	d.Write([]byte("en los andes"))
	full := d.Sum(nil)

	reference := New(256)
	reference.Write([]byte("lituma en los andes"))
	require.Equal(reference.Sum(nil), full)
	require.NotEqual(mid, full)
}

func TestSkeinBlockBoundaries(t *testing.T) {
	require := require.New(t)

	seen := map[string]int{}
	for _, length := range []int{0, 1, 63, 64, 65, 127, 128, 129} {
		message := make([]byte, length)
		for ii := range message {
			message[ii] = byte(ii * 3)
		}
		d := New(256)
		d.Write(message)
		key := hex.EncodeToString(d.Sum(nil))
		if prev, exists := seen[key]; exists {
			t.Fatalf("lengths %d and %d collided", prev, length)
		}
		seen[key] = length
	}
	require.True(len(seen) == 8)
}
