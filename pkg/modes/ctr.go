package modes

import "github.com/kargakis/tinyaes/pkg/aes"

// Counter mode: the Context IV is treated as a big-endian 128-bit
// counter whose successive encryptions form the keystream. See NIST
// SP 800-38A, pp 13-15.

// CryptCTR xors buf with the keystream derived from the Context
// counter. The same call both encrypts and decrypts. Any buffer
// length is accepted. Only the counter persists in the Context; the
// unused tail of a partially consumed keystream block is discarded
// when the call returns, so split calls line up with a single call
// only on 16-byte boundaries.
//
// A (key, counter) pair must never be reused across streams.
func (ctx *Context) CryptCTR(buf []byte) {
	var keystream [aes.BlockSize]byte
	used := aes.BlockSize
	for i := range buf {
		if used == aes.BlockSize {
			ctx.block.Encrypt(keystream[:], ctx.iv[:])
			incrCounter(&ctx.iv)
			used = 0
		}
		buf[i] ^= keystream[used]
		used++
	}
}

// incrCounter steps a counter as a big-endian 128-bit integer,
// carrying leftward; sixteen 0xff bytes wrap to sixteen zeros.
func incrCounter(ctr *[aes.BlockSize]byte) {
	for i := aes.BlockSize - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			break
		}
	}
}
