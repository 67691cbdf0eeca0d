// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base32

import (
	"fmt"
	"strings"
)

const (
	// Separator divides the prefix from the payload.
	Separator = ':'

	// ChecksumLength is the number of words in the checksum.
	ChecksumLength = 8

	// MinLength is the length of the shortest string Decode accepts.
	MinLength = 8

	// MaxLength is the length of the longest string Decode accepts.
	MaxLength = 90

	// charset is the alphabet, indexed by word value.
	charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

// charsetRev maps an ASCII character to its word value, or -1 when the
// character is not part of the alphabet.  Upper and lower case letters map to
// the same value.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

// generator holds k(x), {2}k(x), {4}k(x), {8}k(x) and {16}k(x) where
// k(x) = x^8 mod g(x) for the CashAddr generator polynomial g(x).  Each is
// packed as eight 5-bit coefficients.
var generator = [5]uint64{
	0x98f2bc8e61,
	0x79b76d99e2,
	0xf33e5fb3c4,
	0xae2eabe2a8,
	0x1e4f43e470,
}

// polymodStep multiplies the checksum polynomial packed in chk by x and
// reduces it modulo the generator.  The caller XORs the next word into the
// result.
func polymodStep(chk uint64) uint64 {
	top := chk >> 35
	chk = (chk & 0x07ffffffff) << 5
	for i := 0; i < len(generator); i++ {
		if (top>>uint(i))&1 == 1 {
			chk ^= generator[i]
		}
	}
	return chk
}

// prefixChecksum returns the checksum state after feeding the low 5 bits of
// every prefix character followed by a zero separator word.
func prefixChecksum(prefix string) uint64 {
	chk := uint64(1)
	for i := 0; i < len(prefix); i++ {
		chk = polymodStep(chk) ^ uint64(prefix[i]&0x1f)
	}
	return polymodStep(chk)
}

// Encode encodes a prefix and a slice of 5-bit words into a checksummed
// base32 string.  The prefix is lowercased before use.
func Encode(prefix string, words []byte) (string, error) {
	if len(prefix)+ChecksumLength-1+len(words) > MaxLength {
		str := fmt.Sprintf("prefix of %d characters and %d words "+
			"exceed the maximum length of %d", len(prefix),
			len(words), MaxLength)
		return "", codecError(ErrEncodingTooLong, str)
	}

	prefix = strings.ToLower(prefix)
	chk := prefixChecksum(prefix)

	var sb strings.Builder
	sb.Grow(len(prefix) + 1 + len(words) + ChecksumLength)
	sb.WriteString(prefix)
	sb.WriteByte(Separator)
	for i, w := range words {
		if w>>5 != 0 {
			str := fmt.Sprintf("word %d at index %d is not a 5-bit "+
				"value", w, i)
			return "", codecError(ErrInvalidWord, str)
		}
		chk = polymodStep(chk) ^ uint64(w)
		sb.WriteByte(charset[w])
	}

	// Shift in room for the checksum words.
	for i := 0; i < ChecksumLength; i++ {
		chk = polymodStep(chk)
	}
	chk ^= 1

	for i := 0; i < ChecksumLength; i++ {
		shift := 5 * uint(ChecksumLength-1-i)
		sb.WriteByte(charset[(chk>>shift)&0x1f])
	}

	return sb.String(), nil
}

// Decode decodes a checksummed base32 string and returns its lowercase
// prefix and payload words with the checksum removed.
//
// An ErrInvalidChecksum error means the string was well formed but its
// checksum did not verify.  Every other error means the string is not a
// well-formed encoding at all.
func Decode(s string) (string, []byte, error) {
	if len(s) < MinLength {
		str := fmt.Sprintf("string length %d is below the minimum of %d",
			len(s), MinLength)
		return "", nil, codecError(ErrInvalidLength, str)
	}
	if len(s) > MaxLength {
		str := fmt.Sprintf("string length %d exceeds the maximum of %d",
			len(s), MaxLength)
		return "", nil, codecError(ErrInvalidLength, str)
	}

	chars := []byte(s)
	var haveUpper, haveLower bool
	sepIdx := -1
	for i, c := range chars {
		if c < 33 || c > 126 {
			str := fmt.Sprintf("invalid character %#x at index %d",
				c, i)
			return "", nil, codecError(ErrInvalidCharacter, str)
		}

		if c >= 'a' && c <= 'z' {
			haveLower = true
		}
		if c >= 'A' && c <= 'Z' {
			haveUpper = true
			c += 'a' - 'A'
			chars[i] = c
		}

		if c == Separator {
			sepIdx = i
		}
	}

	if haveUpper && haveLower {
		return "", nil, codecError(ErrMixedCase, "string contains "+
			"both upper and lower case characters")
	}

	switch {
	case sepIdx == -1:
		return "", nil, codecError(ErrMissingSeparator,
			"missing separator character")

	case sepIdx == 0:
		return "", nil, codecError(ErrMissingPrefix, "missing prefix")

	case sepIdx+ChecksumLength-1 > len(chars):
		str := fmt.Sprintf("invalid separator index %d", sepIdx)
		return "", nil, codecError(ErrInvalidSeparatorIndex, str)
	}

	prefix := string(chars[:sepIdx])
	chk := prefixChecksum(prefix)

	words := make([]byte, 0, len(chars)-sepIdx-1)
	for i := sepIdx + 1; i < len(chars); i++ {
		v := charsetRev[chars[i]]
		if v == -1 {
			str := fmt.Sprintf("unknown symbol %q at index %d",
				chars[i], i)
			return "", nil, codecError(ErrUnknownSymbol, str)
		}
		chk = polymodStep(chk) ^ uint64(v)
		words = append(words, byte(v))
	}

	if chk != 1 {
		str := fmt.Sprintf("checksum residue %#x, expected 1", chk)
		return "", nil, codecError(ErrInvalidChecksum, str)
	}

	// The separator rule lets through one or two symbols fewer than a full
	// checksum, so there may be nothing left to return.
	if len(words) < ChecksumLength {
		return prefix, words[:0], nil
	}
	return prefix, words[:len(words)-ChecksumLength], nil
}
