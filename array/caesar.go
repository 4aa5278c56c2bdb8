package array

// CaesarCipher encrypts and decrypts upper-case Latin text by rotating the
// alphabet. It is the classic fixed-array exercise: both substitutions are
// precomputed into 26-entry lookup tables, so transforming a message is a
// single indexed pass.
//
// Only the letters A–Z are substituted; all other bytes pass through
// unchanged.
type CaesarCipher struct {
	forward  [26]byte // encryption table
	backward [26]byte // decryption table
}

// NewCaesarCipher creates a cipher rotating by shift positions. The shift
// is taken modulo 26; negative shifts rotate backwards.
func NewCaesarCipher(shift int) *CaesarCipher {
	shift = ((shift % 26) + 26) % 26
	c := &CaesarCipher{}
	for k := 0; k < 26; k++ {
		c.forward[k] = byte('A' + (k+shift)%26)
		c.backward[k] = byte('A' + (k-shift+26)%26)
	}
	return c
}

// Encrypt returns the encrypted message.
func (c *CaesarCipher) Encrypt(message string) string {
	return transform(message, &c.forward)
}

// Decrypt returns the decrypted message.
func (c *CaesarCipher) Decrypt(message string) string {
	return transform(message, &c.backward)
}

func transform(message string, table *[26]byte) string {
	out := []byte(message)
	for i, b := range out {
		if b >= 'A' && b <= 'Z' {
			out[i] = table[b-'A']
		}
	}
	return string(out)
}
