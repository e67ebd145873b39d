package quipuhash

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/pkg/errors"
)

// shaDigest shells the SHA-1/SHA-2 family over trusted implementations. The
// 256 width rides the SIMD-accelerated engine; SHA-224, the wide variants and
// SHA-1 use the platform implementation.
type shaDigest struct {
	outputBits int
}

func newShaDigest(bitLen int) (*shaDigest, error) {
	dig := &shaDigest{}
	if err := dig.Configure(bitLen); err != nil {
		return nil, err
	}
	return dig, nil
}

func (dig *shaDigest) Configure(bitLen int) error {
	switch bitLen {
	case 160, 224, 256, 384, 512:
		dig.outputBits = bitLen
		return nil
	}
	return errors.Wrapf(ErrorInvalidConfig,
		"shaDigest.Configure: unsupported bit length %d", bitLen)
}

func (dig *shaDigest) OutputBits() int {
	return dig.outputBits
}

func (dig *shaDigest) Compute(src MessageSource) ([]byte, error) {
	var hasher hash.Hash
	switch dig.outputBits {
	case 160:
		hasher = sha1.New()
	case 224:
		hasher = sha256.New224()
	case 256:
		hasher = sha256simd.New()
	case 384:
		hasher = sha512.New384()
	case 512:
		hasher = sha512.New()
	}

	buf := make([]byte, 32*1024)
	for {
		numRead, err := readFull(src, buf)
		if err != nil {
			return nil, errors.Wrapf(ErrorIoFailure,
				"shaDigest.Compute: reading message source: %v", err)
		}
		if numRead > 0 {
			hasher.Write(buf[:numRead])
		}
		if numRead < len(buf) {
			break
		}
	}

	return hasher.Sum(nil), nil
}
