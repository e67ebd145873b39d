package lib

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// DefaultTargetBytes is the width a packed target unpacks to unless the
// caller asks for another.
const DefaultTargetBytes = 32

// DecodePackedTarget expands a Bitcoin-style 4-byte packed target into a
// size-byte big-endian buffer. The top byte of packed is the mantissa
// placement and the low 24 bits are the three mantissa bytes, landing at
// positions [size-placement, size-placement+2].
func DecodePackedTarget(packed uint32, size int) ([]byte, error) {
	placement := int(packed >> 24)
	if size < 1 {
		return nil, errors.Wrapf(ErrorInvalidConfig,
			"DecodePackedTarget: target size %d must be positive", size)
	}
	if placement > size {
		return nil, errors.Wrapf(ErrorInvalidConfig,
			"DecodePackedTarget: mantissa placement %d overflows %d-byte target",
			placement, size)
	}

	target := make([]byte, size)
	mantissa := [3]byte{byte(packed >> 16), byte(packed >> 8), byte(packed)}
	for ii, b := range mantissa {
		pos := size - placement + ii
		if pos >= 0 && pos < size {
			target[pos] = b
		}
	}
	return target, nil
}

// PackFromLeadingZeroBits builds the packed form of the largest size-byte
// target with the given number of leading zero bits.
func PackFromLeadingZeroBits(zeroBits uint32, size int) uint32 {
	return (uint32(size)-zeroBits/8)<<24 | (uint32(0xff)>>(zeroBits%8))<<16 | 0xffff
}

// ExpectedWorkForTarget estimates the number of hashes a search against the
// 32-byte target performs in expectation: maxTarget / (target + 1), the
// usual order statistic for uniform digests. The +1 guards the
// divide-by-zero on an all-zero target.
func ExpectedWorkForTarget(target []byte) (*uint256.Int, error) {
	if len(target) != DefaultTargetBytes {
		return nil, errors.Wrapf(ErrorInvalidConfig,
			"ExpectedWorkForTarget: target must be %d bytes, got %d",
			DefaultTargetBytes, len(target))
	}

	maxTarget := new(uint256.Int).Not(uint256.NewInt(0))
	targetValue := new(uint256.Int).SetBytes(target)
	if !targetValue.Eq(maxTarget) {
		targetValue.AddUint64(targetValue, 1)
	}
	return new(uint256.Int).Div(maxTarget, targetValue), nil
}
