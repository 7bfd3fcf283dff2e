// Package gf implements the GF(2^8) arithmetic used by AES.
// All products are reduced by the polynomial x^8+x^4+x^3+x+1.
package gf

// Poly is the AES reduction polynomial without its x^8 term,
// so it fits in a byte. The full polynomial is 0x11b.
const Poly = 0x1b

// Double multiplies a by x (i.e. by 2), reducing when the
// product overflows a byte.
func Double(a byte) byte {
	d := a << 1
	if a&0x80 != 0 {
		d ^= Poly
	}
	return d
}

// Mul multiplies a and b by double-and-add. Only Double touches
// the reduction polynomial.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = Double(a)
		b >>= 1
	}
	return p
}
