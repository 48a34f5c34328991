/*
bits.go implements the low-level bit utilities the rest of the core is
built on: counting set bits and scanning for the least significant one.
*/

package chesscore

// bitscanMagic is a De Bruijn-style constant used to index bitScanLookup.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup maps the isolated-LSB hash to the index of that bit.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// bitScan returns the index of the least significant set bit.
//
// NOTE: bitScan returns 63 for an empty bitboard; callers must not pass a
// zero board where the result matters.
func bitScan(bitboard uint64) int {
	return bitScanLookup[bitboard&-bitboard*bitscanMagic>>58]
}

// popLSB clears the least significant set bit of *bitboard and returns its
// index.
func popLSB(bitboard *uint64) int {
	lsb := bitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// popCount returns the number of set bits in bitboard.
func popCount(bitboard uint64) (cnt int) {
	for ; bitboard != 0; cnt++ {
		bitboard &= bitboard - 1
	}
	return cnt
}
