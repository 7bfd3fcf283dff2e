// Package modes implements the ECB, CBC and CTR modes of operation
// on top of the AES block cipher. A Context carries the expanded key
// and, for the chained modes, the IV or counter of one logical
// stream; the drivers transform caller-owned buffers in place.
package modes

import (
	"strconv"

	"github.com/kargakis/tinyaes/pkg/aes"
)

// Context holds the round-key schedule of one key and the current
// chaining value (CBC) or counter (CTR) of one stream. CBC and CTR
// advance the IV as a side effect of processing, so a Context must
// not be driven from multiple goroutines without external
// synchronization.
type Context struct {
	block *aes.Cipher
	iv    [aes.BlockSize]byte
}

type IVSizeError int

func (i IVSizeError) Error() string {
	return "modes: invalid IV size " + strconv.Itoa(int(i))
}

// New returns a Context for ECB use. The key must be 16, 24 or
// 32 bytes long; no IV is set.
func New(key []byte) (*Context, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Context{block: block}, nil
}

// NewWithIV returns a Context seeded with the given 16-byte IV, for
// CBC or CTR use. CTR callers must supply a counter value never used
// before under the same key: reusing a (key, counter) pair repeats
// keystream and leaks the XOR of the two plaintexts.
func NewWithIV(key, iv []byte) (*Context, error) {
	ctx, err := New(key)
	if err != nil {
		return nil, err
	}
	if err := ctx.SetIV(iv); err != nil {
		return nil, err
	}
	return ctx, nil
}

// SetIV replaces the chaining value or counter in place, re-seeding
// the stream without re-expanding the key.
func (ctx *Context) SetIV(iv []byte) error {
	if len(iv) != aes.BlockSize {
		return IVSizeError(len(iv))
	}
	copy(ctx.iv[:], iv)
	return nil
}

// xorBlock xors one block of src into dst.
func xorBlock(dst, src []byte) {
	for i := 0; i < aes.BlockSize; i++ {
		dst[i] ^= src[i]
	}
}
