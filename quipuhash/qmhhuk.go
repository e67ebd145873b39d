package quipuhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"
)

// qmhHukDigest implements the QmhHuk digest, a deliberate variant of SHA-2.
// It departs from FIPS 180-4 in its constants (primes 419..827), rotation
// tables, round count (56 for the 32-bit lanes, 64 for the 64-bit lanes), a
// four-temporary XOR-mixing round step, an XOR state merge at block end, and
// a π/φ-tabulated padding scheme that embeds the output width ahead of the
// message length. The primitive is project-specific and has not been
// independently validated; do not use it where a standardized hash is
// required.
type qmhHukDigest struct {
	outputBits int
}

const (
	qmhHukRounds32 = 56
	qmhHukRounds64 = 64
)

func newQmhHukDigest(bitLen int) (*qmhHukDigest, error) {
	dig := &qmhHukDigest{}
	if err := dig.Configure(bitLen); err != nil {
		return nil, err
	}
	return dig, nil
}

func (dig *qmhHukDigest) Configure(bitLen int) error {
	switch bitLen {
	case 224, 256, 384, 512:
		dig.outputBits = bitLen
		return nil
	}
	return errors.Wrapf(ErrorInvalidConfig,
		"qmhHukDigest.Configure: unsupported bit length %d", bitLen)
}

func (dig *qmhHukDigest) OutputBits() int {
	return dig.outputBits
}

func (dig *qmhHukDigest) Compute(src MessageSource) ([]byte, error) {
	if dig.outputBits <= 256 {
		return dig.compute32(src)
	}
	return dig.compute64(src)
}

// qmhHukPadFinal writes the 0x80 marker, the π padding run, the optional φ carry
// block, the two-byte output-width marker and the eight-byte message bit
// length into block (and carry when needed). It returns true when the carry
// block must also be compressed.
func qmhHukPadFinal(block []byte, carry []byte, used int, outputBits int, messageBits uint64) bool {
	blockLen := len(block)
	block[used] = 0x80
	if used+1 <= blockLen-10 {
		// Marker and lengths fit in the block the message ended in.
		copy(block[used+1:blockLen-10], qmhHukPadPi[:blockLen-10-(used+1)])
		binary.BigEndian.PutUint16(block[blockLen-10:], uint16(outputBits))
		binary.BigEndian.PutUint64(block[blockLen-8:], messageBits)
		return false
	}
	// Spill into a φ-filled carry block.
	copy(block[used+1:], qmhHukPadPi[:blockLen-(used+1)])
	copy(carry[:blockLen-10], qmhHukPadPhi[:blockLen-10])
	binary.BigEndian.PutUint16(carry[blockLen-10:], uint16(outputBits))
	binary.BigEndian.PutUint64(carry[blockLen-8:], messageBits)
	return true
}

func (dig *qmhHukDigest) compute32(src MessageSource) ([]byte, error) {
	state := qmhHukIv32
	var block [64]byte
	var messageBytes uint64

	for {
		numRead, err := readFull(src, block[:])
		if err != nil {
			return nil, errors.Wrapf(ErrorIoFailure,
				"qmhHukDigest.Compute: reading message source: %v", err)
		}
		messageBytes += uint64(numRead)
		if numRead < len(block) {
			var carry [64]byte
			needCarry := qmhHukPadFinal(block[:], carry[:], numRead,
				dig.outputBits, messageBytes*8)
			qmhHukCompress32(&state, block[:])
			if needCarry {
				qmhHukCompress32(&state, carry[:])
			}
			break
		}
		qmhHukCompress32(&state, block[:])
	}

	out := make([]byte, 32)
	for i, word := range state {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}
	return out[:dig.outputBits/8], nil
}

func (dig *qmhHukDigest) compute64(src MessageSource) ([]byte, error) {
	state := qmhHukIv64
	var block [128]byte
	var messageBytes uint64

	for {
		numRead, err := readFull(src, block[:])
		if err != nil {
			return nil, errors.Wrapf(ErrorIoFailure,
				"qmhHukDigest.Compute: reading message source: %v", err)
		}
		messageBytes += uint64(numRead)
		if numRead < len(block) {
			var carry [128]byte
			needCarry := qmhHukPadFinal(block[:], carry[:], numRead,
				dig.outputBits, messageBytes*8)
			qmhHukCompress64(&state, block[:])
			if needCarry {
				qmhHukCompress64(&state, carry[:])
			}
			break
		}
		qmhHukCompress64(&state, block[:])
	}

	out := make([]byte, 64)
	for i, word := range state {
		binary.BigEndian.PutUint64(out[i*8:], word)
	}
	return out[:dig.outputBits/8], nil
}

func qmhHukCompress32(state *[8]uint32, block []byte) {
	var schedule [qmhHukRounds32]uint32
	for t := 0; t < 16; t++ {
		schedule[t] = binary.BigEndian.Uint32(block[t*4:])
	}
	for t := 16; t < qmhHukRounds32; t++ {
		sig0 := bits.RotateLeft32(schedule[t-15], -6) ^
			bits.RotateLeft32(schedule[t-15], -16) ^ (schedule[t-15] >> 5)
		sig1 := bits.RotateLeft32(schedule[t-2], -13) ^
			bits.RotateLeft32(schedule[t-2], -21) ^ (schedule[t-2] >> 9)
		schedule[t] = sig1 + schedule[t-7] + sig0 + schedule[t-16]
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < qmhHukRounds32; t++ {
		bigSig0a := bits.RotateLeft32(a, -5) ^ bits.RotateLeft32(a, -17) ^ bits.RotateLeft32(a, -26)
		bigSig1a := bits.RotateLeft32(a, -9) ^ bits.RotateLeft32(a, -14) ^ bits.RotateLeft32(a, -28)
		bigSig0e := bits.RotateLeft32(e, -5) ^ bits.RotateLeft32(e, -17) ^ bits.RotateLeft32(e, -26)
		bigSig1e := bits.RotateLeft32(e, -9) ^ bits.RotateLeft32(e, -14) ^ bits.RotateLeft32(e, -28)

		t1 := h + bigSig1e + ((e & f) ^ (^e & g)) + qmhHukK32[t] + schedule[t]
		t2 := bigSig0a + ((a & b) ^ (a & c) ^ (b & c))
		t3 := d + bigSig0e + ((e & f) ^ (e & g) ^ (f & g)) + schedule[t]
		t4 := bigSig1a + ((a & b) ^ (^a & c))

		h = g
		g = f ^ t1
		f = e
		e = t3 + t4
		d = c
		c = b ^ t3
		b = a
		a = t1 + t2
	}

	state[0] ^= a
	state[1] ^= b
	state[2] ^= c
	state[3] ^= d
	state[4] ^= e
	state[5] ^= f
	state[6] ^= g
	state[7] ^= h
}

func qmhHukCompress64(state *[8]uint64, block []byte) {
	var schedule [qmhHukRounds64]uint64
	for t := 0; t < 16; t++ {
		schedule[t] = binary.BigEndian.Uint64(block[t*8:])
	}
	for t := 16; t < qmhHukRounds64; t++ {
		sig0 := bits.RotateLeft64(schedule[t-15], -3) ^
			bits.RotateLeft64(schedule[t-15], -13) ^ (schedule[t-15] >> 8)
		sig1 := bits.RotateLeft64(schedule[t-2], -25) ^
			bits.RotateLeft64(schedule[t-2], -47) ^ (schedule[t-2] >> 12)
		schedule[t] = sig1 + schedule[t-7] + sig0 + schedule[t-16]
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < qmhHukRounds64; t++ {
		bigSig0a := bits.RotateLeft64(a, -23) ^ bits.RotateLeft64(a, -31) ^ bits.RotateLeft64(a, -46)
		bigSig1a := bits.RotateLeft64(a, -11) ^ bits.RotateLeft64(a, -29) ^ bits.RotateLeft64(a, -50)
		bigSig0e := bits.RotateLeft64(e, -23) ^ bits.RotateLeft64(e, -31) ^ bits.RotateLeft64(e, -46)
		bigSig1e := bits.RotateLeft64(e, -11) ^ bits.RotateLeft64(e, -29) ^ bits.RotateLeft64(e, -50)

		t1 := h + bigSig1e + ((e & f) ^ (^e & g)) + qmhHukK64[t] + schedule[t]
		t2 := bigSig0a + ((a & b) ^ (a & c) ^ (b & c))
		t3 := d + bigSig0e + ((e & f) ^ (e & g) ^ (f & g)) + schedule[t]
		t4 := bigSig1a + ((a & b) ^ (^a & c))

		h = g
		g = f ^ t1
		f = e
		e = t3 + t4
		d = c
		c = b ^ t3
		b = a
		a = t1 + t2
	}

	state[0] ^= a
	state[1] ^= b
	state[2] ^= c
	state[3] ^= d
	state[4] ^= e
	state[5] ^= f
	state[6] ^= g
	state[7] ^= h
}
