package core

// pTable[i] is the output bit position that input bit i moves to under P.
// pInvTable is its inverse: pInvTable[pTable[i]] == i.
//
// P(i) = 16i mod 63 for 0 <= i < 63, and P(63) = 63 (spec.md §3).
var pTable, pInvTable [64]int

func init() {
	for i := 0; i < 63; i++ {
		pTable[i] = (16 * i) % 63
	}
	pTable[63] = 63

	for j := 0; j < 63; j++ {
		pInvTable[j] = (4 * j) % 63
	}
	pInvTable[63] = 63
}

func getBit(state *[8]byte, i int) byte {
	return (state[i>>3] >> uint(i&7)) & 1
}

func setBit(state *[8]byte, i int, v byte) {
	mask := byte(1) << uint(i&7)
	if v != 0 {
		state[i>>3] |= mask
	} else {
		state[i>>3] &^= mask
	}
}

// pLayer applies the PRESENT bit permutation P to state: the bit at input
// position i moves to output position P(i). Bits 0 and 63 are fixed points.
func pLayer(state *[8]byte) {
	var out [8]byte
	for i := 0; i < 64; i++ {
		setBit(&out, pTable[i], getBit(state, i))
	}
	*state = out
}

// pLayerInverse applies P⁻¹, the inverse of pLayer.
func pLayerInverse(state *[8]byte) {
	var out [8]byte
	for i := 0; i < 64; i++ {
		setBit(&out, pInvTable[i], getBit(state, i))
	}
	*state = out
}
