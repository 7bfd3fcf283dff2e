package aes

import "github.com/kargakis/tinyaes/pkg/gf"

// state is one block laid out as the standard 4x4 column-major byte
// matrix: the byte at row r, column c lives at index r+4c. Every
// round transform below is derived from these row/column semantics,
// independent of host byte order.
type state [BlockSize]byte

func (s *state) at(r, c int) byte     { return s[r+4*c] }
func (s *state) set(r, c int, b byte) { s[r+4*c] = b }

func (s *state) load(src []byte)  { copy(s[:], src[:BlockSize]) }
func (s *state) store(dst []byte) { copy(dst[:BlockSize], s[:]) }

// addRoundKey xors four round-key words into the state, one word
// per column, high byte into row 0.
func (s *state) addRoundKey(rk []uint32) {
	for c := 0; c < nb; c++ {
		w := rk[c]
		s.set(0, c, s.at(0, c)^byte(w>>24))
		s.set(1, c, s.at(1, c)^byte(w>>16))
		s.set(2, c, s.at(2, c)^byte(w>>8))
		s.set(3, c, s.at(3, c)^byte(w))
	}
}

func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r positions; row 0 stays put.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		var row [nb]byte
		for c := 0; c < nb; c++ {
			row[c] = s.at(r, (c+r)%nb)
		}
		for c := 0; c < nb; c++ {
			s.set(r, c, row[c])
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		var row [nb]byte
		for c := 0; c < nb; c++ {
			row[c] = s.at(r, (c+nb-r)%nb)
		}
		for c := 0; c < nb; c++ {
			s.set(r, c, row[c])
		}
	}
}

// mixColumns multiplies each column by the matrix {02,03,01,01} in
// GF(2^8). With t = a0^a1^a2^a3, each output byte reduces to
// a_i ^ t ^ double(a_i ^ a_{i+1}), so only the doubling primitive
// is needed.
func (s *state) mixColumns() {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := s.at(0, c), s.at(1, c), s.at(2, c), s.at(3, c)
		t := a0 ^ a1 ^ a2 ^ a3
		s.set(0, c, a0^t^gf.Double(a0^a1))
		s.set(1, c, a1^t^gf.Double(a1^a2))
		s.set(2, c, a2^t^gf.Double(a2^a3))
		s.set(3, c, a3^t^gf.Double(a3^a0))
	}
}

// invMixColumns multiplies each column by {0e,0b,0d,09}.
func (s *state) invMixColumns() {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := s.at(0, c), s.at(1, c), s.at(2, c), s.at(3, c)
		s.set(0, c, gf.Mul(a0, 0x0e)^gf.Mul(a1, 0x0b)^gf.Mul(a2, 0x0d)^gf.Mul(a3, 0x09))
		s.set(1, c, gf.Mul(a0, 0x09)^gf.Mul(a1, 0x0e)^gf.Mul(a2, 0x0b)^gf.Mul(a3, 0x0d))
		s.set(2, c, gf.Mul(a0, 0x0d)^gf.Mul(a1, 0x09)^gf.Mul(a2, 0x0e)^gf.Mul(a3, 0x0b))
		s.set(3, c, gf.Mul(a0, 0x0b)^gf.Mul(a1, 0x0d)^gf.Mul(a2, 0x09)^gf.Mul(a3, 0x0e))
	}
}
