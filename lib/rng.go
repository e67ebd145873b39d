package lib

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

// seededNonceSource yields a deterministic uniform byte stream from a
// 32-byte seed. It exists for test harnesses and reproducible searches;
// production code keeps the crypto/rand default.
type seededNonceSource struct {
	cipher *chacha20.Cipher
}

// NewSeededNonceSource builds a deterministic io.Reader over the ChaCha20
// keystream of the given seed.
func NewSeededNonceSource(seed [32]byte) (io.Reader, error) {
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, errors.Wrapf(err, "NewSeededNonceSource: ")
	}
	return &seededNonceSource{cipher: cipher}, nil
}

func (src *seededNonceSource) Read(dst []byte) (int, error) {
	for ii := range dst {
		dst[ii] = 0
	}
	src.cipher.XORKeyStream(dst, dst)
	return len(dst), nil
}
