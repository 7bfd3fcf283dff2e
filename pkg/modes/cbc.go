package modes

import "github.com/kargakis/tinyaes/pkg/aes"

// Cipher block chaining mode: each plaintext block is xored with the
// previous ciphertext block (the IV for the first) before
// encryption. See NIST SP 800-38A, pp 10-11.

// EncryptCBC encrypts buf in place. The buffer length must be a
// multiple of the block size. The final ciphertext block replaces
// the Context IV, so a subsequent call continues the same stream:
// encrypting two buffers back to back equals encrypting their
// concatenation.
func (ctx *Context) EncryptCBC(buf []byte) {
	if len(buf)%aes.BlockSize != 0 {
		panic("modes: input not full blocks")
	}
	iv := ctx.iv[:]
	for len(buf) > 0 {
		xorBlock(buf[:aes.BlockSize], iv)
		ctx.block.Encrypt(buf, buf)
		iv = buf[:aes.BlockSize]
		buf = buf[aes.BlockSize:]
	}
	copy(ctx.iv[:], iv)
}

// DecryptCBC decrypts buf in place. The buffer length must be a
// multiple of the block size. Each ciphertext block is saved before
// being overwritten and becomes the IV for the next block, so
// chunked decryption mirrors chunked encryption.
func (ctx *Context) DecryptCBC(buf []byte) {
	if len(buf)%aes.BlockSize != 0 {
		panic("modes: input not full blocks")
	}
	var next [aes.BlockSize]byte
	for len(buf) > 0 {
		copy(next[:], buf[:aes.BlockSize])
		ctx.block.Decrypt(buf, buf)
		xorBlock(buf[:aes.BlockSize], ctx.iv[:])
		ctx.iv = next
		buf = buf[aes.BlockSize:]
	}
}
