package aes

import (
	"bytes"
	"testing"
)

// Cipher examples from FIPS-197 appendices B and C.
type cryptTest struct {
	key []byte
	in  []byte
	out []byte
}

var encryptTests = []cryptTest{
	{
		// Appendix B.
		[]byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c},
		[]byte{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34},
		[]byte{0x39, 0x25, 0x84, 0x1d, 0x02, 0xdc, 0x09, 0xfb, 0xdc, 0x11, 0x85, 0x97, 0x19, 0x6a, 0x0b, 0x32},
	},
	{
		// Appendix C.1. AES-128.
		[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
		[]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		[]byte{0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30, 0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a},
	},
	{
		// Appendix C.2. AES-192.
		[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
			0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17},
		[]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		[]byte{0xdd, 0xa9, 0x7c, 0xa4, 0x86, 0x4c, 0xdf, 0xe0, 0x6e, 0xaf, 0x70, 0xa0, 0xec, 0x0d, 0x71, 0x91},
	},
	{
		// Appendix C.3. AES-256.
		[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
			0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f},
		[]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		[]byte{0x8e, 0xa2, 0xb7, 0xca, 0x51, 0x67, 0x45, 0xbf, 0xea, 0xfc, 0x49, 0x90, 0x4b, 0x49, 0x60, 0x89},
	},
}

// Test Cipher Encrypt against the FIPS-197 examples.
func TestCipherEncrypt(t *testing.T) {
	for i, tt := range encryptTests {
		c, err := NewCipher(tt.key)
		if err != nil {
			t.Errorf("NewCipher(%d bytes) = %s", len(tt.key), err)
			continue
		}
		out := make([]byte, len(tt.in))
		c.Encrypt(out, tt.in)
		if !bytes.Equal(out, tt.out) {
			t.Errorf("Cipher.Encrypt %d: got %x, want %x", i, out, tt.out)
		}
	}
}

// Test Cipher Decrypt against the FIPS-197 examples.
func TestCipherDecrypt(t *testing.T) {
	for i, tt := range encryptTests {
		c, err := NewCipher(tt.key)
		if err != nil {
			t.Errorf("NewCipher(%d bytes) = %s", len(tt.key), err)
			continue
		}
		plain := make([]byte, len(tt.out))
		c.Decrypt(plain, tt.out)
		if !bytes.Equal(plain, tt.in) {
			t.Errorf("Cipher.Decrypt %d: got %x, want %x", i, plain, tt.in)
		}
	}
}

// Decrypt must invert Encrypt for every key size, in place too.
func TestRoundTrip(t *testing.T) {
	for _, keyLen := range []int{16, 24, 32} {
		key := make([]byte, keyLen)
		for i := range key {
			key[i] = byte(i*31 + 1)
		}
		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher(%d bytes) = %s", keyLen, err)
		}

		block := make([]byte, BlockSize)
		for i := range block {
			block[i] = byte(i * 13)
		}
		orig := append([]byte(nil), block...)

		c.Encrypt(block, block)
		if bytes.Equal(block, orig) {
			t.Errorf("keyLen %d: Encrypt left the block unchanged", keyLen)
		}
		c.Decrypt(block, block)
		if !bytes.Equal(block, orig) {
			t.Errorf("keyLen %d: round trip got %x, want %x", keyLen, block, orig)
		}
	}
}

func TestKeySizeError(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 23, 33, 64} {
		_, err := NewCipher(make([]byte, n))
		if err == nil {
			t.Errorf("NewCipher(%d bytes): expected an error", n)
			continue
		}
		if _, ok := err.(KeySizeError); !ok {
			t.Errorf("NewCipher(%d bytes) = %T, want KeySizeError", n, err)
		}
	}
}

// Short input/output must be caught before any state is touched.
func TestShortBlocks(t *testing.T) {
	bytes := func(n int) []byte { return make([]byte, n) }

	c, _ := NewCipher(bytes(16))

	mustPanic(t, "aes: input not full block", func() { c.Encrypt(bytes(1), bytes(1)) })
	mustPanic(t, "aes: input not full block", func() { c.Decrypt(bytes(1), bytes(1)) })
	mustPanic(t, "aes: input not full block", func() { c.Encrypt(bytes(100), bytes(1)) })
	mustPanic(t, "aes: input not full block", func() { c.Decrypt(bytes(100), bytes(1)) })
	mustPanic(t, "aes: output not full block", func() { c.Encrypt(bytes(1), bytes(100)) })
	mustPanic(t, "aes: output not full block", func() { c.Decrypt(bytes(1), bytes(100)) })
}

func mustPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		err := recover()
		if err == nil {
			t.Errorf("function did not panic, wanted %q", msg)
		} else if err != msg {
			t.Errorf("got panic %q, wanted %q", err, msg)
		}
	}()
	f()
}

func BenchmarkEncrypt(b *testing.B) {
	tt := encryptTests[0]
	c, err := NewCipher(tt.key)
	if err != nil {
		b.Fatal("NewCipher:", err)
	}
	out := make([]byte, len(tt.in))
	b.SetBytes(int64(len(out)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(out, tt.in)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	tt := encryptTests[0]
	c, err := NewCipher(tt.key)
	if err != nil {
		b.Fatal("NewCipher:", err)
	}
	out := make([]byte, len(tt.out))
	b.SetBytes(int64(len(out)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(out, tt.out)
	}
}

func BenchmarkExpand(b *testing.B) {
	tt := encryptTests[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		expandKey(tt.key)
	}
}
