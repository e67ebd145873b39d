package quipuhash

import (
	"github.com/pkg/errors"

	"github.com/quipu-protocol/core/quipuhash/blake"
	"github.com/quipu-protocol/core/quipuhash/groestl"
	"github.com/quipu-protocol/core/quipuhash/jh"
	"github.com/quipu-protocol/core/quipuhash/skein"
)

// writerDigest is the shape every finalist implementation exposes.
type writerDigest interface {
	Write(p []byte) (int, error)
	Sum(in []byte) []byte
	Reset()
}

// computeStreaming drains src through the hasher. The hasher is Reset first
// so a single instance can serve sequential computations.
func computeStreaming(hasher writerDigest, src MessageSource) ([]byte, error) {
	hasher.Reset()
	buf := make([]byte, 32*1024)
	for {
		numRead, err := readFull(src, buf)
		if err != nil {
			return nil, errors.Wrapf(ErrorIoFailure,
				"computeStreaming: reading message source: %v", err)
		}
		if numRead > 0 {
			_, _ = hasher.Write(buf[:numRead])
		}
		if numRead < len(buf) {
			break
		}
	}
	return hasher.Sum(nil), nil
}

func validateFinalistBits(bitLen int, context string) error {
	switch bitLen {
	case 224, 256, 384, 512:
		return nil
	}
	return errors.Wrapf(ErrorInvalidConfig,
		"%s: unsupported bit length %d", context, bitLen)
}

type blakeDigest struct {
	outputBits int
}

func newBlakeDigest(bitLen int) (*blakeDigest, error) {
	dig := &blakeDigest{}
	if err := dig.Configure(bitLen); err != nil {
		return nil, err
	}
	return dig, nil
}

func (dig *blakeDigest) Configure(bitLen int) error {
	if err := validateFinalistBits(bitLen, "blakeDigest.Configure"); err != nil {
		return err
	}
	dig.outputBits = bitLen
	return nil
}

func (dig *blakeDigest) OutputBits() int { return dig.outputBits }

func (dig *blakeDigest) Compute(src MessageSource) ([]byte, error) {
	if dig.outputBits <= 256 {
		return computeStreaming(blake.New256(dig.outputBits), src)
	}
	return computeStreaming(blake.New512(dig.outputBits), src)
}

type groestlDigest struct {
	outputBits int
}

func newGroestlDigest(bitLen int) (*groestlDigest, error) {
	dig := &groestlDigest{}
	if err := dig.Configure(bitLen); err != nil {
		return nil, err
	}
	return dig, nil
}

func (dig *groestlDigest) Configure(bitLen int) error {
	if err := validateFinalistBits(bitLen, "groestlDigest.Configure"); err != nil {
		return err
	}
	dig.outputBits = bitLen
	return nil
}

func (dig *groestlDigest) OutputBits() int { return dig.outputBits }

func (dig *groestlDigest) Compute(src MessageSource) ([]byte, error) {
	return computeStreaming(groestl.New(dig.outputBits), src)
}

type jhDigest struct {
	outputBits int
}

func newJhDigest(bitLen int) (*jhDigest, error) {
	dig := &jhDigest{}
	if err := dig.Configure(bitLen); err != nil {
		return nil, err
	}
	return dig, nil
}

func (dig *jhDigest) Configure(bitLen int) error {
	if err := validateFinalistBits(bitLen, "jhDigest.Configure"); err != nil {
		return err
	}
	dig.outputBits = bitLen
	return nil
}

func (dig *jhDigest) OutputBits() int { return dig.outputBits }

func (dig *jhDigest) Compute(src MessageSource) ([]byte, error) {
	return computeStreaming(jh.New(dig.outputBits), src)
}

type skeinDigest struct {
	outputBits int
}

func newSkeinDigest(bitLen int) (*skeinDigest, error) {
	dig := &skeinDigest{}
	if err := dig.Configure(bitLen); err != nil {
		return nil, err
	}
	return dig, nil
}

func (dig *skeinDigest) Configure(bitLen int) error {
	if err := validateFinalistBits(bitLen, "skeinDigest.Configure"); err != nil {
		return err
	}
	dig.outputBits = bitLen
	return nil
}

func (dig *skeinDigest) OutputBits() int { return dig.outputBits }

func (dig *skeinDigest) Compute(src MessageSource) ([]byte, error) {
	return computeStreaming(skein.New(dig.outputBits), src)
}
