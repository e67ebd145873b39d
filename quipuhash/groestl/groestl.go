// Package groestl implements the Grøstl hash function (SHA-3 finalist,
// final tweaked round-2 version) at the 224-, 256-, 384- and 512-bit output
// widths, restricted to byte-aligned messages.
//
// The state is an 8×8 (short widths) or 8×16 (wide widths) byte matrix
// filled column by column from the big-endian message block. The compression
// is f(h, m) = P(h⊕m) ⊕ Q(m) ⊕ h and the output transform is
// Ω(x) = trunc(P(x) ⊕ x).
package groestl

const (
	rows = 8

	// BlockSize256 is the block size of Grøstl-224/256 in bytes.
	BlockSize256 = 64

	// BlockSize512 is the block size of Grøstl-384/512 in bytes.
	BlockSize512 = 128

	rounds512  = 10
	rounds1024 = 14
)

var shiftP512 = [rows]int{0, 1, 2, 3, 4, 5, 6, 7}
var shiftQ512 = [rows]int{1, 3, 5, 7, 0, 2, 4, 6}
var shiftP1024 = [rows]int{0, 1, 2, 3, 4, 5, 6, 11}
var shiftQ1024 = [rows]int{1, 3, 5, 11, 0, 2, 4, 6}

// Digest computes a Grøstl checksum at the configured output width.
type Digest struct {
	HashSize   int // output size in bits (224, 256, 384 or 512)
	chain      []byte
	blockLen   int
	roundCount int
	x          [BlockSize512]byte
	nx         int
	blocks     uint64
}

// New returns a reset digest producing hashSize output bits.
func New(hashSize int) *Digest {
	d := &Digest{HashSize: hashSize}
	d.Reset()
	return d
}

// Reset reinitializes the chaining value to the width-encoding IV.
func (d *Digest) Reset() {
	if d.HashSize <= 256 {
		d.blockLen = BlockSize256
		d.roundCount = rounds512
	} else {
		d.blockLen = BlockSize512
		d.roundCount = rounds1024
	}
	d.chain = make([]byte, d.blockLen)
	// The IV is all-zero except for the 64-bit big-endian output width in
	// the trailing bytes.
	d.chain[d.blockLen-2] = byte(d.HashSize >> 8)
	d.chain[d.blockLen-1] = byte(d.HashSize)
	d.nx = 0
	d.blocks = 0
}

func (d *Digest) Size() int { return d.HashSize >> 3 }

func (d *Digest) BlockSize() int { return d.blockLen }

func (d *Digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	if d.nx > 0 {
		n := len(p)
		if n > d.blockLen-d.nx {
			n = d.blockLen - d.nx
		}
		d.nx += copy(d.x[d.nx:d.blockLen], p[:n])
		if d.nx == d.blockLen {
			d.compress(d.x[:d.blockLen])
			d.nx = 0
		}
		p = p[n:]
	}
	for len(p) >= d.blockLen {
		d.compress(p[:d.blockLen])
		p = p[d.blockLen:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:d.blockLen], p)
	}
	return
}

// Sum appends the checksum to in and returns the result.
func (d *Digest) Sum(in []byte) []byte {
	// Padding: 0x80, zeros, then the 64-bit big-endian count of blocks in
	// the padded message.
	var pad [2 * BlockSize512]byte
	padLen := d.blockLen - d.nx
	if padLen < 9 {
		padLen += d.blockLen
	}
	pad[0] = 0x80
	totalBlocks := d.blocks + uint64((d.nx+padLen)/d.blockLen)
	for i := uint(0); i < 8; i++ {
		pad[padLen-8+int(i)] = byte(totalBlocks >> (56 - 8*i))
	}
	_, _ = d.Write(pad[:padLen])

	// Output transform.
	perm := make([]byte, d.blockLen)
	copy(perm, d.chain)
	d.permuteP(perm)
	for i := range perm {
		perm[i] ^= d.chain[i]
	}
	return append(in, perm[d.blockLen-d.Size():]...)
}

func (d *Digest) compress(block []byte) {
	d.blocks++

	hm := make([]byte, d.blockLen)
	qm := make([]byte, d.blockLen)
	for i := range hm {
		hm[i] = d.chain[i] ^ block[i]
	}
	copy(qm, block)

	d.permuteP(hm)
	d.permuteQ(qm)

	for i := range d.chain {
		d.chain[i] ^= hm[i] ^ qm[i]
	}
}

// permuteP applies the P permutation in place over the column-major state.
func (d *Digest) permuteP(state []byte) {
	cols := d.blockLen / rows
	shifts := &shiftP512
	if cols == 16 {
		shifts = &shiftP1024
	}
	for r := 0; r < d.roundCount; r++ {
		for j := 0; j < cols; j++ {
			state[j*rows] ^= byte(j<<4) ^ byte(r)
		}
		subShiftMix(state, cols, shifts)
	}
}

// permuteQ applies the Q permutation in place over the column-major state.
func (d *Digest) permuteQ(state []byte) {
	cols := d.blockLen / rows
	shifts := &shiftQ512
	if cols == 16 {
		shifts = &shiftQ1024
	}
	for r := 0; r < d.roundCount; r++ {
		for j := 0; j < cols; j++ {
			for i := 0; i < rows-1; i++ {
				state[j*rows+i] ^= 0xff
			}
			state[j*rows+rows-1] ^= byte(j<<4) ^ 0xff ^ byte(r)
		}
		subShiftMix(state, cols, shifts)
	}
}

// subShiftMix applies SubBytes, ShiftBytes and MixBytes to the column-major
// state in one pass.
func subShiftMix(state []byte, cols int, shifts *[rows]int) {
	var tmp [BlockSize512]byte

	// SubBytes + ShiftBytes: row i rotates left by shifts[i] columns.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			tmp[j*rows+i] = sbox[state[((j+shifts[i])%cols)*rows+i]]
		}
	}

	// MixBytes: each column is multiplied by the circulant matrix
	// circ(2, 2, 3, 4, 5, 3, 5, 7) over GF(2^8).
	for j := 0; j < cols; j++ {
		col := tmp[j*rows : j*rows+rows]
		for i := 0; i < rows; i++ {
			state[j*rows+i] = mul2(col[i]) ^
				mul2(col[(i+1)%rows]) ^
				mul3(col[(i+2)%rows]) ^
				mul4(col[(i+3)%rows]) ^
				mul5(col[(i+4)%rows]) ^
				mul3(col[(i+5)%rows]) ^
				mul5(col[(i+6)%rows]) ^
				mul7(col[(i+7)%rows])
		}
	}
}

// GF(2^8) arithmetic modulo x^8 + x^4 + x^3 + x + 1.

func mul2(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

func mul3(b byte) byte { return mul2(b) ^ b }
func mul4(b byte) byte { return mul2(mul2(b)) }
func mul5(b byte) byte { return mul4(b) ^ b }
func mul7(b byte) byte { return mul4(b) ^ mul2(b) ^ b }

// sbox is the AES substitution box.
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5,
	0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0,
	0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc,
	0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a,
	0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0,
	0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b,
	0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85,
	0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5,
	0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17,
	0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88,
	0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c,
	0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9,
	0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6,
	0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e,
	0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94,
	0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68,
	0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}
