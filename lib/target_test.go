package lib

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestDecodePackedTarget(t *testing.T) {
	require := require.New(t)

	target, err := DecodePackedTarget(0x1effffff, 32)
	require.NoError(err)
	require.Equal(32, len(target))

	expected := make([]byte, 32)
	expected[2], expected[3], expected[4] = 0xff, 0xff, 0xff
	require.Equal(expected, target)

	// Full-size placement puts the mantissa at the very front.
	target, err = DecodePackedTarget(0x20123456, 32)
	require.NoError(err)
	require.Equal(byte(0x12), target[0])
	require.Equal(byte(0x34), target[1])
	require.Equal(byte(0x56), target[2])

	// Placement beyond the buffer is rejected.
	_, err = DecodePackedTarget(0x21ffffff, 32)
	require.Error(err)
	require.ErrorIs(err, ErrorInvalidConfig)

	_, err = DecodePackedTarget(0x1effffff, 0)
	require.Error(err)
}

func TestDecodePackedTargetNonDefaultSize(t *testing.T) {
	require := require.New(t)

	target, err := DecodePackedTarget(0x04ffff00, 8)
	require.NoError(err)
	require.Equal([]byte{0, 0, 0, 0, 0xff, 0xff, 0x00, 0}, target)
}

func TestPackFromLeadingZeroBits(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(0x1effffff), PackFromLeadingZeroBits(16, 32))
	require.Equal(uint32(0x20ffffff), PackFromLeadingZeroBits(0, 32))
	require.Equal(uint32(0x1f7fffff), PackFromLeadingZeroBits(9, 32))

	// Packing then unpacking yields a target with the requested zero-bit
	// prefix and a saturated mantissa behind it.
	target, err := DecodePackedTarget(PackFromLeadingZeroBits(16, 32), 32)
	require.NoError(err)
	require.Equal(byte(0), target[0])
	require.Equal(byte(0), target[1])
	require.Equal(byte(0xff), target[2])
}

func TestExpectedWorkForTarget(t *testing.T) {
	require := require.New(t)

	target, err := DecodePackedTarget(0x1effffff, DefaultTargetBytes)
	require.NoError(err)
	work, err := ExpectedWorkForTarget(target)
	require.NoError(err)
	require.True(work.Eq(uint256.NewInt(65536)), "got %v", work)

	// The all-ones target needs a single hash.
	easiest := make([]byte, DefaultTargetBytes)
	for ii := range easiest {
		easiest[ii] = 0xff
	}
	work, err = ExpectedWorkForTarget(easiest)
	require.NoError(err)
	require.True(work.Eq(uint256.NewInt(1)), "got %v", work)

	_, err = ExpectedWorkForTarget([]byte{0x01})
	require.Error(err)
	require.ErrorIs(err, ErrorInvalidConfig)
}
