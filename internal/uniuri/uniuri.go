package uniuri

import "crypto/rand"

// StdLen is the standard length of a generated identifier, giving ~95 bits of entropy.
const StdLen = 16

// StdChars is the set of characters used in generated identifiers.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random identifier of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random identifier of the provided length.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	clen := len(StdChars)
	// Bytes above maxRb are rejected to avoid modulo bias.
	maxRb := 255 - (256 % clen)

	out := make([]byte, length)
	buf := make([]byte, length+length/2+1)

	var i int
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				continue
			}

			out[i] = StdChars[c%clen]
			i++
			if i == length {
				return string(out)
			}
		}
	}
}
