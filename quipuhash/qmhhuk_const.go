package quipuhash

// The QmhHuk constant tables. The initialization vectors are the first 32
// (resp. 64) fractional bits of the square roots of the first eight primes in
// 419..827; the round constants are the first 32 (resp. 64) fractional bits
// of the cube roots of all sixty-four primes in that range. The padding
// tables are the first 1024 fractional bits of π and of the golden ratio.
// These tables are project canon and are not a standardized primitive.

var qmhHukIv32 = [8]uint32{
	0x78307697, 0x84ae4b7c, 0xc2b2b755, 0xcf03d20e,
	0xf3cbb117, 0x0c2d3b4b, 0x308af161, 0x60a7a998,
}

var qmhHukIv64 = [8]uint64{
	0x7830769755fe0b0a, 0x84ae4b7cb79286a4,
	0xc2b2b7559233f645, 0xcf03d20e5acfa987,
	0xf3cbb117dbf3c297, 0x0c2d3b4be1707aba,
	0x308af161f4a4e085, 0x60a7a9985b936a57,
}

var qmhHukK32 = [64]uint32{
	0x7ba0ea2d, 0x7eabf2d0, 0x8dbe8d03, 0x90bb1721,
	0x99a2ad45, 0x9f86e289, 0xa84c4472, 0xb3df34fc,
	0xb99bb8d7, 0xbc76cbab, 0xc226a69a, 0xd304f19a,
	0xde1be20a, 0xe39bb437, 0xee84927c, 0xf3edd277,
	0xfbfdfe53, 0x0bee2c7a, 0x0e90181c, 0x25f57204,
	0x2da45582, 0x3a52c34c, 0x41dc0172, 0x495796fc,
	0x4bd31fc6, 0x533cde21, 0x5f7abfe3, 0x66c206b3,
	0x6dfcc6bc, 0x7062f20f, 0x778d5127, 0x7eaba3cc,
	0x8363eccc, 0x85be1c25, 0x93c04028, 0x9f4a205f,
	0xa1953565, 0xa627bb0f, 0xacfa8089, 0xb3c29b23,
	0xb602f6fa, 0xc36cee0a, 0xc7dc81ee, 0xce7b8471,
	0xd740288c, 0xe21dba7a, 0xeabbff66, 0xf56a9e60,
	0xfde41d72, 0x0434d097, 0x0a7cb752, 0x0ea7d22d,
	0x16f2987f, 0x1d20cdcd, 0x213af85a, 0x2964505c,
	0x2d738e11, 0x3b8cea0e, 0x4584e6ae, 0x515f4356,
	0x5356112d, 0x5d1bc3ed, 0x5f0da9f8, 0x62ef0be4,
}

var qmhHukK64 = [64]uint64{
	0x7ba0ea2d98160007, 0x7eabf2d0c21f964a,
	0x8dbe8d038b409545, 0x90bb1721582e8285,
	0x99a2ad45936d4e61, 0x9f86e289fe03e739,
	0xa84c4472faa9a82f, 0xb3df34fce89e0532,
	0xb99bb8d7b173534f, 0xbc76cbab1aea1f9c,
	0xc226a69a780f3cc3, 0xd304f19aa233957d,
	0xde1be20a212129dd, 0xe39bb43755141950,
	0xee84927cea48ddd2, 0xf3edd2773c523b67,
	0xfbfdfe53a8d32f2a, 0x0bee2c7ab77e9e25,
	0x0e90181cf1b09e56, 0x25f57204c725bed8,
	0x2da45582cd598b32, 0x3a52c34c203bfcf3,
	0x41dc0172cd1991c1, 0x495796fcb33cc1c0,
	0x4bd31fc693f9f16e, 0x533cde2115f5a9a0,
	0x5f7abfe36e99c1d3, 0x66c206b310a57e6f,
	0x6dfcc6bc39603f61, 0x7062f20f86fd1052,
	0x778d51277adec865, 0x7eaba3cc25da7048,
	0x8363eccc37a5be05, 0x85be1c253beba54e,
	0x93c04028f348bbc5, 0x9f4a205fd05b2148,
	0xa19535651ca6d2de, 0xa627bb0fbf027bc7,
	0xacfa80891da2f06b, 0xb3c29b23031a7f9d,
	0xb602f6fac7d3d74d, 0xc36cee0a10c7ba49,
	0xc7dc81eea9ebad4f, 0xce7b8471b0f809df,
	0xd740288c84df269c, 0xe21dba7ac2290607,
	0xeabbff66be175964, 0xf56a9e60f62cea92,
	0xfde41d729d126eab, 0x0434d0970e42e781,
	0x0a7cb752a3f1cd86, 0x0ea7d22d6bcd7382,
	0x16f2987f9495a5ee, 0x1d20cdcd45b8de1e,
	0x213af85a39b0c320, 0x2964505c52a2f35b,
	0x2d738e114181e082, 0x3b8cea0e71c58aaf,
	0x4584e6ae9f54016e, 0x515f4356903dccc2,
	0x5356112ddfd5a8e9, 0x5d1bc3edbe2c897a,
	0x5f0da9f8ed53548b, 0x62ef0be4d5492e78,
}

// qmhHukPadPi fills the first padding block after the 0x80 marker.
var qmhHukPadPi = [128]byte{
	0x24, 0x3f, 0x6a, 0x88, 0x85, 0xa3, 0x08, 0xd3,
	0x13, 0x19, 0x8a, 0x2e, 0x03, 0x70, 0x73, 0x44,
	0xa4, 0x09, 0x38, 0x22, 0x29, 0x9f, 0x31, 0xd0,
	0x08, 0x2e, 0xfa, 0x98, 0xec, 0x4e, 0x6c, 0x89,
	0x45, 0x28, 0x21, 0xe6, 0x38, 0xd0, 0x13, 0x77,
	0xbe, 0x54, 0x66, 0xcf, 0x34, 0xe9, 0x0c, 0x6c,
	0xc0, 0xac, 0x29, 0xb7, 0xc9, 0x7c, 0x50, 0xdd,
	0x3f, 0x84, 0xd5, 0xb5, 0xb5, 0x47, 0x09, 0x17,
	0x92, 0x16, 0xd5, 0xd9, 0x89, 0x79, 0xfb, 0x1b,
	0xd1, 0x31, 0x0b, 0xa6, 0x98, 0xdf, 0xb5, 0xac,
	0x2f, 0xfd, 0x72, 0xdb, 0xd0, 0x1a, 0xdf, 0xb7,
	0xb8, 0xe1, 0xaf, 0xed, 0x6a, 0x26, 0x7e, 0x96,
	0xba, 0x7c, 0x90, 0x45, 0xf1, 0x2c, 0x7f, 0x99,
	0x24, 0xa1, 0x99, 0x47, 0xb3, 0x91, 0x6c, 0xf7,
	0x08, 0x01, 0xf2, 0xe2, 0x85, 0x8e, 0xfc, 0x16,
	0x63, 0x69, 0x20, 0xd8, 0x71, 0x57, 0x4e, 0x69,
}

// qmhHukPadPhi fills the carry block when the marker and length fields do not
// fit in the block the message ends in.
var qmhHukPadPhi = [128]byte{
	0x9e, 0x37, 0x79, 0xb9, 0x7f, 0x4a, 0x7c, 0x15,
	0xf3, 0x9c, 0xc0, 0x60, 0x5c, 0xed, 0xc8, 0x34,
	0x10, 0x82, 0x27, 0x6b, 0xf3, 0xa2, 0x72, 0x51,
	0xf8, 0x6c, 0x6a, 0x11, 0xd0, 0xc1, 0x8e, 0x95,
	0x27, 0x67, 0xf0, 0xb1, 0x53, 0xd2, 0x7b, 0x7f,
	0x03, 0x47, 0x04, 0x5b, 0x5b, 0xf1, 0x82, 0x7f,
	0x01, 0x88, 0x6f, 0x09, 0x28, 0x40, 0x30, 0x02,
	0xc1, 0xd6, 0x4b, 0xa4, 0x0f, 0x33, 0x5e, 0x36,
	0xf0, 0x6a, 0xd7, 0xae, 0x97, 0x17, 0x87, 0x7e,
	0x85, 0x83, 0x9d, 0x6e, 0xff, 0xbd, 0x7d, 0xc6,
	0x64, 0xd3, 0x25, 0xd1, 0xc5, 0x37, 0x16, 0x82,
	0xca, 0xdd, 0x0c, 0xcc, 0xfd, 0xff, 0xbb, 0xe1,
	0x62, 0x6e, 0x33, 0xb8, 0xd0, 0x4b, 0x43, 0x31,
	0xbb, 0xf7, 0x3c, 0x79, 0x0d, 0x94, 0xf7, 0x9d,
	0x47, 0x1c, 0x4a, 0xb3, 0xed, 0x3d, 0x82, 0xa5,
	0xfe, 0xc5, 0x07, 0x70, 0x5e, 0x4a, 0xe6, 0xe5,
}
