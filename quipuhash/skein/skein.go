// Package skein implements the Skein-512 hash function (SHA-3 finalist) for
// plain message hashing at the 224-, 256-, 384- and 512-bit output widths.
// MAC, KDF, tree and personalization modes are out of scope.
package skein

import (
	"encoding/binary"

	"github.com/quipu-protocol/core/quipuhash/skein/threefish"
)

// BlockSize is the block size of Skein-512 in bytes.
const BlockSize = threefish.BlockSize512

// The UBI type field values and flags used for plain hashing.
const (
	// CfgConfig is the config type for the configuration block.
	CfgConfig uint64 = 4

	// CfgMessage is the config type for the message.
	CfgMessage uint64 = 48

	// CfgOutput is the config type for the output.
	CfgOutput uint64 = 63

	// FirstBlock is the first-block tweak flag.
	FirstBlock uint64 = 1 << 62

	// FinalBlock is the final-block tweak flag.
	FinalBlock uint64 = 1 << 63

	// SchemaID is the Skein schema ID, "SHA3" version 1.
	SchemaID uint64 = 0x133414853
)

// Digest computes a Skein-512 checksum at the configured output width.
type Digest struct {
	HashSize int // output size in bits (224, 256, 384 or 512)
	iv       [8]uint64
	chain    [8]uint64
	tweak    [2]uint64
	x        [BlockSize]byte
	nx       int
}

// New returns a reset digest producing hashSize output bits. The IV is
// derived by running the configuration block through UBI rather than
// tabulated, so any byte width up to 64 is admissible.
func New(hashSize int) *Digest {
	d := &Digest{HashSize: hashSize}
	var config [BlockSize]byte
	binary.LittleEndian.PutUint64(config[0:], SchemaID)
	binary.LittleEndian.PutUint64(config[8:], uint64(hashSize))
	d.chain = [8]uint64{}
	d.tweak = [2]uint64{32, CfgConfig<<56 | FirstBlock | FinalBlock}
	d.block(config[:])
	d.iv = d.chain
	d.Reset()
	return d
}

// Reset restores the chaining value to the configuration IV and opens a new
// message UBI invocation.
func (d *Digest) Reset() {
	d.chain = d.iv
	d.tweak = [2]uint64{0, CfgMessage<<56 | FirstBlock}
	d.nx = 0
}

func (d *Digest) Size() int { return d.HashSize >> 3 }

func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs message bytes. A full buffered block is held back until more
// input arrives so that the final block can carry the FinalBlock flag.
func (d *Digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	for len(p) > 0 {
		if d.nx == BlockSize {
			d.tweak[0] += BlockSize
			d.block(d.x[:])
			d.tweak[1] &^= FirstBlock
			d.nx = 0
		}
		n := copy(d.x[d.nx:], p)
		d.nx += n
		p = p[n:]
	}
	return
}

// Sum appends the checksum to in and returns the result.
func (d *Digest) Sum(in []byte) []byte {
	// Flush the message UBI: zero-pad the final (possibly empty) block.
	chain, tweak, x, nx := d.chain, d.tweak, d.x, d.nx

	for i := d.nx; i < BlockSize; i++ {
		d.x[i] = 0
	}
	d.tweak[0] += uint64(d.nx)
	d.tweak[1] |= FinalBlock
	d.block(d.x[:])

	// Output transform: UBI over a single counter block.
	var counter [BlockSize]byte
	d.tweak = [2]uint64{8, CfgOutput<<56 | FirstBlock | FinalBlock}
	d.block(counter[:])

	var out [BlockSize]byte
	for i, word := range d.chain {
		binary.LittleEndian.PutUint64(out[i*8:], word)
	}

	// Restore so the digest remains usable for further writes.
	d.chain, d.tweak, d.x, d.nx = chain, tweak, x, nx

	return append(in, out[:d.Size()]...)
}

// block runs one UBI compression: E(chain, tweak, block) XOR block.
func (d *Digest) block(block []byte) {
	var key [9]uint64
	var words [8]uint64
	copy(key[:8], d.chain[:])
	for i := 0; i < 8; i++ {
		words[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	feedforward := words
	threefish.Encrypt512(&key, &d.tweak, &words)
	for i := 0; i < 8; i++ {
		d.chain[i] = words[i] ^ feedforward[i]
	}
}
