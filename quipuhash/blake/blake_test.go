package blake

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Vectors from the BLAKE submission document.
func TestBlakeVectors(t *testing.T) {
	require := require.New(t)

	d256 := New256(256)
	require.Equal(
		"716f6e863f744b9ac22c97ec7b76ea5f5908bc5b2f67c61510bfc4751384ea7a",
		hex.EncodeToString(d256.Sum(nil)))

	d256.Reset()
	d256.Write([]byte{0x00})
	require.Equal(
		"0ce8d4ef4dd7cd8d62dfded9d4edb0a774ae6a41929a74da23109e8f11139c87",
		hex.EncodeToString(d256.Sum(nil)))

	d224 := New256(224)
	d224.Write([]byte{0x00})
	require.Equal(
		"4504cb0314fb2a4f7a692e696e487912fe3f2468fe312c73a5278ec5",
		hex.EncodeToString(d224.Sum(nil)))

	d512 := New512(512)
	d512.Write([]byte{0x00})
	require.Equal(
		"97961587f6d970faba6d2478045de6d1fabd09b61ae50932054d52bc29d31be4"+
			"ff9102b9f69e2bbdb83be13d4b9c06091e5fa0b48bd081b634058be0ec49beb3",
		hex.EncodeToString(d512.Sum(nil)))

	d384 := New512(384)
	d384.Write([]byte{0x00})
	require.Equal(
		"10281f67e135e90ae8e882251a355510a719367ad70227b137343e1bc122015c"+
			"29391e8545b5272d13a7c2879da3d807",
		hex.EncodeToString(d384.Sum(nil)))
}

func TestBlakeChunkedWrites(t *testing.T) {
	require := require.New(t)

	message := bytes.Repeat([]byte("La tía Julia y el Escribidor. "), 23)

	whole := New256(256)
	whole.Write(message)

	chunked := New256(256)
	for ii := 0; ii < len(message); ii += 7 {
		end := ii + 7
		if end > len(message) {
			end = len(message)
		}
		chunked.Write(message[ii:end])
	}
	require.Equal(whole.Sum(nil), chunked.Sum(nil))

	whole512 := New512(512)
	whole512.Write(message)

	chunked512 := New512(512)
	for ii := 0; ii < len(message); ii += 19 {
		end := ii + 19
		if end > len(message) {
			end = len(message)
		}
		chunked512.Write(message[ii:end])
	}
	require.Equal(whole512.Sum(nil), chunked512.Sum(nil))
}

func TestBlakeResetRestoresInitialState(t *testing.T) {
	require := require.New(t)

	d := New256(256)
	empty := d.Sum(nil)

	d.Reset()
	d.Write([]byte("some message"))
	d.Reset()
	require.Equal(empty, d.Sum(nil))
}

func TestBlakeSizes(t *testing.T) {
	require := require.New(t)

	require.Equal(28, New256(224).Size())
	require.Equal(32, New256(256).Size())
	require.Equal(48, New512(384).Size())
	require.Equal(64, New512(512).Size())
	require.Equal(64, New256(256).BlockSize())
	require.Equal(128, New512(512).BlockSize())
}
