package core

// sBox is the PRESENT substitution table (Bogdanov et al., CHES 2007, Table 3).
// Index and value are both 4-bit nibbles.
var sBox = [16]byte{
	0xC, 0x5, 0x6, 0xB, 0x9, 0x0, 0xA, 0xD,
	0x3, 0xE, 0xF, 0x8, 0x4, 0x7, 0x1, 0x2,
}

// sBoxInv is the inverse of sBox: sBoxInv[sBox[n]] == n for all n.
var sBoxInv = [16]byte{
	0x5, 0xE, 0xF, 0x8, 0xC, 0x1, 0x2, 0xD,
	0xB, 0x4, 0x6, 0x3, 0x0, 0x7, 0x9, 0xA,
}

// sBoxLayer applies S (or S⁻¹, if inverse is true) to each of the 16
// nibbles of the 64-bit state, one byte at a time.
func sBoxLayer(state *[8]byte, inverse bool) {
	table := &sBox
	if inverse {
		table = &sBoxInv
	}
	for i := 0; i < 8; i++ {
		b := state[i]
		hi := table[b>>4]
		lo := table[b&0x0F]
		state[i] = hi<<4 | lo
	}
}
