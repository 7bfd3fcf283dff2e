package modes

import "github.com/kargakis/tinyaes/pkg/aes"

// Electronic codebook mode: every block is transformed
// independently, with no chaining and no IV. Equal plaintext blocks
// produce equal ciphertext blocks, which leaks structure; ECB is
// kept for compatibility and for building higher-level constructs.

// EncryptECB encrypts buf in place, one independent 16-byte block at
// a time. The buffer length must be a multiple of the block size;
// the caller pads externally.
func (ctx *Context) EncryptECB(buf []byte) {
	if len(buf)%aes.BlockSize != 0 {
		panic("modes: input not full blocks")
	}
	for len(buf) > 0 {
		ctx.block.Encrypt(buf, buf)
		buf = buf[aes.BlockSize:]
	}
}

// DecryptECB decrypts buf in place. The buffer length must be a
// multiple of the block size.
func (ctx *Context) DecryptECB(buf []byte) {
	if len(buf)%aes.BlockSize != 0 {
		panic("modes: input not full blocks")
	}
	for len(buf) > 0 {
		ctx.block.Decrypt(buf, buf)
		buf = buf[aes.BlockSize:]
	}
}
