// Package uniuri generates random strings safe for use in file names and URLs.
package uniuri

import (
	"crypto/rand"
)

// StdLen is the default length of a generated string, ~95 bits of entropy.
const StdLen = 16

// stdChars is the character set used for generated strings.
var stdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random string of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length.
func NewLen(length int) string {
	if length == 0 {
		return ""
	}

	clen := len(stdChars)
	maxrb := 255 - (256 % clen)
	out := make([]byte, length)
	buf := make([]byte, length+(length/4)) // storage for random bytes

	i := 0
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxrb {
				// skip to avoid modulo bias
				continue
			}

			out[i] = stdChars[c%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
