package aes

import "encoding/binary"

// The state is always four words wide (Nb=4). The key length alone
// selects the remaining variant parameters: Nk words of key and
// Nr rounds (FIPS-197 figure 4).
const nb = 4

// numRounds returns Nr for a key of the given byte length:
// 10, 12 or 14 for 16, 24 or 32 bytes.
func numRounds(keyLen int) int {
	return keyLen/4 + 6
}

// rotWord rotates the bytes of a word left by one position.
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord substitutes every byte of a word through the S-box.
func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// expandKey derives the Nb*(Nr+1) round-key words from a raw key of
// 16, 24 or 32 bytes. The first Nk words are the key itself; each
// later word is the word Nk positions back xored with a transform of
// its predecessor: RotWord+SubWord+Rcon every Nk words, and for the
// 256-bit variant an extra SubWord halfway through each key stretch.
func expandKey(key []byte) []uint32 {
	nk := len(key) / 4
	nr := numRounds(len(key))

	w := make([]uint32, nb*(nr+1))
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < len(w); i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(rcon[i/nk])<<24
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}
	return w
}
