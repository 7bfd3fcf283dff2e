// Package aes implements the AES block cipher (FIPS-197) for all
// three key sizes. The implementation favors an explicit byte-matrix
// state over table- or word-packed variants; SubBytes is the only
// secret-indexed table lookup and no further cache-timing hardening
// is attempted.
package aes

import (
	"crypto/cipher"
	"strconv"
)

// The AES block size in bytes.
const BlockSize = 16

// A Cipher is an instance of AES using a particular expanded key.
// It is safe for concurrent use: the schedule is never written
// after construction.
type Cipher struct {
	rounds int
	rk     []uint32
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// NewCipher creates and returns a new AES block cipher. The key must
// be 16, 24 or 32 bytes long, selecting AES-128, AES-192 or AES-256.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}
	return &Cipher{
		rounds: numRounds(len(key)),
		rk:     expandKey(key),
	}, nil
}

var _ cipher.Block = (*Cipher)(nil)

func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 16-byte block in src into dst.
// Dst and src may overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	var s state
	s.load(src)
	c.encrypt(&s)
	s.store(dst)
}

// Decrypt decrypts the 16-byte block in src into dst.
// Dst and src may overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	var s state
	s.load(src)
	c.decrypt(&s)
	s.store(dst)
}

// encrypt runs the forward cipher over one block: an initial key
// addition, then rounds of SubBytes, ShiftRows, MixColumns and
// AddRoundKey, with MixColumns skipped in the final round.
func (c *Cipher) encrypt(s *state) {
	s.addRoundKey(c.rk[:nb])
	for round := 1; round < c.rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(c.rk[round*nb : (round+1)*nb])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(c.rk[c.rounds*nb:])
}

// decrypt runs the inverse cipher, undoing the rounds in reverse
// order; InvMixColumns is skipped when unwinding the final round.
func (c *Cipher) decrypt(s *state) {
	s.addRoundKey(c.rk[c.rounds*nb:])
	for round := c.rounds - 1; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(c.rk[round*nb : (round+1)*nb])
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(c.rk[:nb])
}
