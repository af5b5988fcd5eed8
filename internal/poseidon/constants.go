package poseidon

// Round constants for the width-16 permutation, one row per round
// (4 full, 13 partial, 4 full). Entries are raw 32-bit words; they are
// reduced into the field when added to the state.
var roundConstants = [totalRounds][Width]uint32{
	{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
		0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5},
	{0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
		0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da},
	{0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
		0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85},
	{0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
		0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3},
	{0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
		0xca273ece, 0xd186b8c7, 0xeada7dd6, 0xf57d4f7f, 0x06f067aa, 0x0a637dc5, 0x113f9804, 0x1b710b35},
	{0x28db77f5, 0x32caab7b, 0x3c9ebe0a, 0x431d67c4, 0x4cc5d4be, 0x597f299c, 0x5fcb6fab, 0x6c44198c,
		0x7ba0ea2d, 0x8fe23c8a, 0x9723b5af, 0xa3c25a6f, 0xab6bcfa4, 0xb4293cf1, 0xc0ce967b, 0xd186b8c7},
	{0xe6d5d0c7, 0xf1da05bf, 0xfeba4cf4, 0x0a0e6e70, 0x14292967, 0x1f83d9ab, 0x27b70a85, 0x2e1b2138,
		0x3956c25b, 0x428a2f98, 0x4d2c6dfc, 0x53380d13, 0x5cb0a9dc, 0x650a7354, 0x6a09e667, 0x71374491},
	{0x766a0abb, 0x7ba0ea2d, 0x81c2c92e, 0x8cc70208, 0x92722c85, 0x983e5152, 0x9bdc06a7, 0xa2bfe8a1,
		0xa54ff53a, 0xa831c66d, 0xab1c5ed5, 0xb00327c8, 0xb5c0fbcf, 0xbef9a3f7, 0xc19bf174, 0xc24b8b70},
	{0xc6e00bf3, 0xc67178f2, 0xca273ece, 0xd192e819, 0xd5a79147, 0xd6990624, 0xd807aa98, 0xe49b69c1,
		0xe6d5d0c7, 0xe9b5dba5, 0xeada7dd6, 0xefbe4786, 0xf1da05bf, 0xf40e3585, 0xf57d4f7f, 0xfeba4cf4},
	{0x0a0e6e70, 0x0a637dc5, 0x0fc19dc6, 0x06ca6351, 0x06f067aa, 0x113f9804, 0x12835b01, 0x1b710b35,
		0x1e376c08, 0x240ca1cc, 0x243185be, 0x28db77f5, 0x2748774c, 0x2de92c6f, 0x32caab7b, 0x34b0bcb5},
	{0x391c0cb3, 0x3c6ef372, 0x3c9ebe0a, 0x431d67c4, 0x4a7484aa, 0x4cc5d4be, 0x4ed8aa4a, 0x510e527f,
		0x550c7dc3, 0x597f299c, 0x59f111f1, 0x5b9cca4f, 0x5fcb6fab, 0x682e6ff3, 0x6c44198c, 0x72be5d74},
	{0x76f988da, 0x78a5636f, 0x80deb1fe, 0x84c87814, 0x8fe23c8a, 0x90befffa, 0x923f82a4, 0x9723b5af,
		0xa3c25a6f, 0xa4506ceb, 0xa81a664b, 0xab6bcfa4, 0xb4293cf1, 0xbb67ae85, 0xbf597fc7, 0xc0ce967b},
	{0xc76c51a3, 0x106aa070, 0x19a4c116, 0x14292967, 0x1f83d9ab, 0x27b70a85, 0x2e1b2138, 0x3956c25b,
		0x428a2f98, 0x4d2c6dfc, 0x53380d13, 0x5cb0a9dc, 0x650a7354, 0x6a09e667, 0x71374491, 0x748f82ee},
	{0x766a0abb, 0x7ba0ea2d, 0x81c2c92e, 0x8cc70208, 0x92722c85, 0x983e5152, 0x9bdc06a7, 0xa2bfe8a1,
		0xa54ff53a, 0xa831c66d, 0xab1c5ed5, 0xb00327c8, 0xb5c0fbcf, 0xbef9a3f7, 0xc19bf174, 0xc24b8b70},
	{0xc6e00bf3, 0xc67178f2, 0xca273ece, 0xd192e819, 0xd5a79147, 0xd6990624, 0xd807aa98, 0xe49b69c1,
		0xe6d5d0c7, 0xe9b5dba5, 0xeada7dd6, 0xefbe4786, 0xf1da05bf, 0xf40e3585, 0xf57d4f7f, 0xfeba4cf4},
	{0x0a0e6e70, 0x0a637dc5, 0x0fc19dc6, 0x06ca6351, 0x06f067aa, 0x113f9804, 0x12835b01, 0x1b710b35,
		0x1e376c08, 0x240ca1cc, 0x243185be, 0x28db77f5, 0x2748774c, 0x2de92c6f, 0x32caab7b, 0x34b0bcb5},
	{0x391c0cb3, 0x3c6ef372, 0x3c9ebe0a, 0x431d67c4, 0x4a7484aa, 0x4cc5d4be, 0x4ed8aa4a, 0x510e527f,
		0x550c7dc3, 0x597f299c, 0x59f111f1, 0x5b9cca4f, 0x5fcb6fab, 0x682e6ff3, 0x6c44198c, 0x72be5d74},
	{0x76f988da, 0x78a5636f, 0x80deb1fe, 0x84c87814, 0x8fe23c8a, 0x90befffa, 0x923f82a4, 0x9723b5af,
		0xa3c25a6f, 0xa4506ceb, 0xa81a664b, 0xab6bcfa4, 0xb4293cf1, 0xbb67ae85, 0xbf597fc7, 0xc0ce967b},
	{0xc76c51a3, 0x106aa070, 0x19a4c116, 0x14292967, 0x1f83d9ab, 0x27b70a85, 0x2e1b2138, 0x3956c25b,
		0x428a2f98, 0x4d2c6dfc, 0x53380d13, 0x5cb0a9dc, 0x650a7354, 0x6a09e667, 0x71374491, 0x748f82ee},
	{0x766a0abb, 0x7ba0ea2d, 0x81c2c92e, 0x8cc70208, 0x92722c85, 0x983e5152, 0x9bdc06a7, 0xa2bfe8a1,
		0xa54ff53a, 0xa831c66d, 0xab1c5ed5, 0xb00327c8, 0xb5c0fbcf, 0xbef9a3f7, 0xc19bf174, 0xc24b8b70},
	{0xc6e00bf3, 0xc67178f2, 0xca273ece, 0xd192e819, 0xd5a79147, 0xd6990624, 0xd807aa98, 0xe49b69c1,
		0xe6d5d0c7, 0xe9b5dba5, 0xeada7dd6, 0xefbe4786, 0xf1da05bf, 0xf40e3585, 0xf57d4f7f, 0xfeba4cf4},
}

// mdsMatrix is the circulant 16x16 mixing matrix generated by the row
// pattern (5, 7, 1, 3).
var mdsMatrix = buildMDS()

func buildMDS() [Width][Width]uint32 {
	pattern := [4]uint32{5, 7, 1, 3}
	var m [Width][Width]uint32
	for i := 0; i < Width; i++ {
		for j := 0; j < Width; j++ {
			m[i][j] = pattern[((j-i)%4+4)%4]
		}
	}
	return m
}
