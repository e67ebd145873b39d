// Package quipuhash implements the digest engine backing the Quipu protocol:
// a closed family of byte-oriented message digests (SHA-1/SHA-2, the QmhHuk
// SHA-2 variant, and the BLAKE, Grøstl, JH and Skein SHA-3 finalists), each
// configurable at 224-, 256-, 384- and 512-bit output widths and computed
// over a streaming MessageSource.
package quipuhash

import (
	"github.com/pkg/errors"
)

// HashError identifies a structured failure produced by this package. The
// value is stable and safe to match with errors.Is.
type HashError string

func (e HashError) Error() string {
	return string(e)
}

const (
	// ErrorInvalidConfig is returned when a digest is configured with a bit
	// length the algorithm does not support.
	ErrorInvalidConfig HashError = "ErrorInvalidConfig"

	// ErrorIoFailure is returned when the message source fails with anything
	// other than a clean EOF.
	ErrorIoFailure HashError = "ErrorIoFailure"
)

// Algorithm tags one of the twenty-four digests the engine provides. The numeric
// ordering is stable and part of the external contract; never reorder.
type Algorithm uint8

const (
	AlgorithmSha1 Algorithm = iota
	AlgorithmSha256
	AlgorithmSha384
	AlgorithmSha512
	AlgorithmBlake224
	AlgorithmBlake256
	AlgorithmBlake384
	AlgorithmBlake512
	AlgorithmGroestl224
	AlgorithmGroestl256
	AlgorithmGroestl384
	AlgorithmGroestl512
	AlgorithmJh224
	AlgorithmJh256
	AlgorithmJh384
	AlgorithmJh512
	AlgorithmSkein224
	AlgorithmSkein256
	AlgorithmSkein384
	AlgorithmSkein512
	AlgorithmQmhHuk224
	AlgorithmQmhHuk256
	AlgorithmQmhHuk384
	AlgorithmQmhHuk512
)

var algorithmNames = map[Algorithm]string{
	AlgorithmSha1:       "SHA1",
	AlgorithmSha256:     "SHA256",
	AlgorithmSha384:     "SHA384",
	AlgorithmSha512:     "SHA512",
	AlgorithmBlake224:   "BLAKE224",
	AlgorithmBlake256:   "BLAKE256",
	AlgorithmBlake384:   "BLAKE384",
	AlgorithmBlake512:   "BLAKE512",
	AlgorithmGroestl224: "GROESTL224",
	AlgorithmGroestl256: "GROESTL256",
	AlgorithmGroestl384: "GROESTL384",
	AlgorithmGroestl512: "GROESTL512",
	AlgorithmJh224:      "JH224",
	AlgorithmJh256:      "JH256",
	AlgorithmJh384:      "JH384",
	AlgorithmJh512:      "JH512",
	AlgorithmSkein224:   "SKEIN224",
	AlgorithmSkein256:   "SKEIN256",
	AlgorithmSkein384:   "SKEIN384",
	AlgorithmSkein512:   "SKEIN512",
	AlgorithmQmhHuk224:  "QMHHUK224",
	AlgorithmQmhHuk256:  "QMHHUK256",
	AlgorithmQmhHuk384:  "QMHHUK384",
	AlgorithmQmhHuk512:  "QMHHUK512",
}

func (alg Algorithm) String() string {
	if name, exists := algorithmNames[alg]; exists {
		return name
	}
	return "UNKNOWN"
}

// ParseAlgorithm maps a label produced by Algorithm.String back to its tag.
func ParseAlgorithm(label string) (Algorithm, error) {
	for alg, name := range algorithmNames {
		if name == label {
			return alg, nil
		}
	}
	return 0, errors.Wrapf(ErrorInvalidConfig,
		"ParseAlgorithm: unrecognized algorithm label %q", label)
}

// Digest is the trait every algorithm in the engine implements. A configured
// instance may compute any number of independent digests sequentially; it is
// not safe for concurrent Compute calls.
type Digest interface {
	// Configure sets the output width in bits. It fails with
	// ErrorInvalidConfig when the algorithm does not support the width.
	Configure(bitLen int) error

	// Compute consumes src to EOF and returns the digest, OutputBits()/8
	// bytes long. A failure leaves the instance reusable after Configure.
	Compute(src MessageSource) ([]byte, error)

	// OutputBits reports the configured output width.
	OutputBits() int
}

// NewDigest returns a freshly configured digest instance for the given tag.
// Instances are exclusively owned by the caller.
func NewDigest(alg Algorithm) (Digest, error) {
	switch alg {
	case AlgorithmSha1:
		return newShaDigest(160)
	case AlgorithmSha256:
		return newShaDigest(256)
	case AlgorithmSha384:
		return newShaDigest(384)
	case AlgorithmSha512:
		return newShaDigest(512)
	case AlgorithmBlake224, AlgorithmBlake256, AlgorithmBlake384, AlgorithmBlake512:
		return newBlakeDigest(algorithmBits(alg))
	case AlgorithmGroestl224, AlgorithmGroestl256, AlgorithmGroestl384, AlgorithmGroestl512:
		return newGroestlDigest(algorithmBits(alg))
	case AlgorithmJh224, AlgorithmJh256, AlgorithmJh384, AlgorithmJh512:
		return newJhDigest(algorithmBits(alg))
	case AlgorithmSkein224, AlgorithmSkein256, AlgorithmSkein384, AlgorithmSkein512:
		return newSkeinDigest(algorithmBits(alg))
	case AlgorithmQmhHuk224, AlgorithmQmhHuk256, AlgorithmQmhHuk384, AlgorithmQmhHuk512:
		return newQmhHukDigest(algorithmBits(alg))
	}
	return nil, errors.Wrapf(ErrorInvalidConfig,
		"NewDigest: unrecognized algorithm tag %d", alg)
}

// algorithmBits decodes the output width encoded in a finalist-family tag.
// The four widths cycle in declaration order within each family.
func algorithmBits(alg Algorithm) int {
	switch (alg - AlgorithmBlake224) % 4 {
	case 0:
		return 224
	case 1:
		return 256
	case 2:
		return 384
	}
	return 512
}
