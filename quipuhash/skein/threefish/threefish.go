// Package threefish implements the Threefish-512 tweakable block cipher in
// the form the Skein hash function consumes it: eight 64-bit words, a
// 128-bit tweak, 72 rounds with a subkey injection every four.
package threefish

import "math/bits"

const (
	// BlockSize512 is the block size of Threefish-512 in bytes.
	BlockSize512 = 64

	// C240 is the key schedule parity constant.
	C240 = 0x1bd11bdaa9fc1a22
)

// rot512 holds the per-round rotation constants, cycling every eight rounds.
var rot512 = [8][4]uint{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

// Encrypt512 encrypts the eight-word block in place under the given key and
// tweak. The key is the nine-word extended form: callers populate key[0..7]
// and this function derives the parity word key[8].
func Encrypt512(key *[9]uint64, tweak *[2]uint64, block *[8]uint64) {
	key[8] = C240 ^ key[0] ^ key[1] ^ key[2] ^ key[3] ^
		key[4] ^ key[5] ^ key[6] ^ key[7]
	tweaks := [3]uint64{tweak[0], tweak[1], tweak[0] ^ tweak[1]}

	x := *block
	for round, subkey := 0, uint64(0); round < 72; round += 4 {
		x[0] += key[subkey%9]
		x[1] += key[(subkey+1)%9]
		x[2] += key[(subkey+2)%9]
		x[3] += key[(subkey+3)%9]
		x[4] += key[(subkey+4)%9]
		x[5] += key[(subkey+5)%9] + tweaks[subkey%3]
		x[6] += key[(subkey+6)%9] + tweaks[(subkey+1)%3]
		x[7] += key[(subkey+7)%9] + subkey
		subkey++

		for i := 0; i < 4; i++ {
			rot := &rot512[(round+i)%8]
			x[0] += x[1]
			x[1] = bits.RotateLeft64(x[1], int(rot[0])) ^ x[0]
			x[2] += x[3]
			x[3] = bits.RotateLeft64(x[3], int(rot[1])) ^ x[2]
			x[4] += x[5]
			x[5] = bits.RotateLeft64(x[5], int(rot[2])) ^ x[4]
			x[6] += x[7]
			x[7] = bits.RotateLeft64(x[7], int(rot[3])) ^ x[6]

			x = [8]uint64{x[2], x[1], x[4], x[7], x[6], x[5], x[0], x[3]}
		}
	}

	// Final subkey after round 72.
	x[0] += key[18%9]
	x[1] += key[(18+1)%9]
	x[2] += key[(18+2)%9]
	x[3] += key[(18+3)%9]
	x[4] += key[(18+4)%9]
	x[5] += key[(18+5)%9] + tweaks[18%3]
	x[6] += key[(18+6)%9] + tweaks[(18+1)%3]
	x[7] += key[(18+7)%9] + 18

	*block = x
}
