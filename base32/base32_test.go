// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base32_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bitcoincoltd/cashaddress/base32"
	"github.com/davecgh/go-spew/spew"
)

// validStrings are well-formed encodings taken from the reference address
// corpus plus a few edge cases.
var validStrings = []struct {
	in       string
	prefix   string
	numWords int
}{
	{"bitcoincash:qqq3728yw0y47sqn6l2na30mcw6zm78dzqre909m2r", "bitcoincash", 34},
	{"bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", "bitcoincash", 34},
	{"bitcoincash:qr95sy3j9xwd2ap32xkykttr4cvcu7as4y0qverfuy", "bitcoincash", 34},
	{"bitcoincash:ppm2qsznhks23z7629mms6s4cwef74vcwvn0h829pq", "bitcoincash", 34},
	{"bitcoincash:pr95sy3j9xwd2ap32xkykttr4cvcu7as4yc93ky28e", "bitcoincash", 34},
	{"bitcoincash:pqq3728yw0y47sqn6l2na30mcw6zm78dzq5ucqzc37", "bitcoincash", 34},
	{"BITCOINCASH:QPM2QSZNHKS23Z7629MMS6S4CWEF74VCWVY22GDX6A", "bitcoincash", 34},
	{"customprefix:23jhxapqv3shgcgawraq9rj", "customprefix", 15},
	{"bitcoincash:a5a8yrhz", "bitcoincash", 0},
	{"ab:q5qqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcur50p7gppyg3jgffxyu5zj23t9skjutcxlw76zuf", "ab", 79},
}

// TestDecode ensures valid strings decode and re-encode to their lowercase
// form.
func TestDecode(t *testing.T) {
	t.Parallel()

	for i, test := range validStrings {
		prefix, words, err := base32.Decode(test.in)
		if err != nil {
			t.Errorf("Decode #%d (%s): unexpected error: %v", i,
				test.in, err)
			continue
		}
		if prefix != test.prefix {
			t.Errorf("Decode #%d: got prefix %q, want %q", i, prefix,
				test.prefix)
			continue
		}
		if len(words) != test.numWords {
			t.Errorf("Decode #%d: got %d words, want %d", i,
				len(words), test.numWords)
			continue
		}

		encoded, err := base32.Encode(prefix, words)
		if err != nil {
			t.Errorf("Encode #%d: unexpected error: %v", i, err)
			continue
		}
		if encoded != strings.ToLower(test.in) {
			t.Errorf("Encode #%d: got %s, want %s", i, encoded,
				strings.ToLower(test.in))
		}
	}
}

// TestDecodeErrors ensures malformed strings fail with the expected error
// code.
func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		code base32.ErrorCode
	}{
		{
			name: "too short",
			in:   "a:qqqqq",
			code: base32.ErrInvalidLength,
		},
		{
			name: "too long",
			in:   "a:" + strings.Repeat("q", 89),
			code: base32.ErrInvalidLength,
		},
		{
			name: "space",
			in:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcw y22gdx6a",
			code: base32.ErrInvalidCharacter,
		},
		{
			name: "delete character",
			in:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcw\x7fy22gdx6a",
			code: base32.ErrInvalidCharacter,
		},
		{
			name: "non-ascii",
			in:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcw\xe2y22gdx6a",
			code: base32.ErrInvalidCharacter,
		},
		{
			name: "mixed case payload",
			in:   "bitcoincash:Qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			code: base32.ErrMixedCase,
		},
		{
			name: "mixed case prefix",
			in:   "Bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			code: base32.ErrMixedCase,
		},
		{
			name: "legacy address",
			in:   "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu",
			code: base32.ErrMixedCase,
		},
		{
			name: "no separator",
			in:   "qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			code: base32.ErrMissingSeparator,
		},
		{
			name: "empty prefix",
			in:   ":qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			code: base32.ErrMissingPrefix,
		},
		{
			name: "separator too late",
			in:   "abc:qqqqq",
			code: base32.ErrInvalidSeparatorIndex,
		},
		{
			name: "two separators",
			in:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22:dx6a",
			code: base32.ErrInvalidSeparatorIndex,
		},
		{
			name: "excluded letter",
			in:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6b",
			code: base32.ErrUnknownSymbol,
		},
		{
			name: "excluded digit",
			in:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx61",
			code: base32.ErrUnknownSymbol,
		},
		{
			name: "changed checksum symbol",
			in:   "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6q",
			code: base32.ErrInvalidChecksum,
		},
		{
			name: "changed prefix",
			in:   "bitcoincahs:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			code: base32.ErrInvalidChecksum,
		},
		{
			// The separator rule admits six symbols after a one
			// character prefix, short of a full checksum.
			name: "short checksum at separator boundary",
			in:   "a:qqqqqq",
			code: base32.ErrInvalidChecksum,
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		prefix, words, err := base32.Decode(test.in)
		var e base32.Error
		if !errors.As(err, &e) {
			t.Errorf("%s: expected error %v, got prefix %q words %s",
				test.name, test.code, prefix, spew.Sdump(words))
			continue
		}
		if e.ErrorCode != test.code {
			t.Errorf("%s: got error %v (%v), want %v", test.name,
				e.ErrorCode, err, test.code)
		}
	}
}

// TestDecodeCase ensures an all uppercase string decodes to the same words as
// its lowercase form.
func TestDecodeCase(t *testing.T) {
	t.Parallel()

	for i, test := range validStrings {
		lowerPrefix, lowerWords, err := base32.Decode(strings.ToLower(test.in))
		if err != nil {
			t.Errorf("#%d: lowercase decode failed: %v", i, err)
			continue
		}
		upperPrefix, upperWords, err := base32.Decode(strings.ToUpper(test.in))
		if err != nil {
			t.Errorf("#%d: uppercase decode failed: %v", i, err)
			continue
		}
		if lowerPrefix != upperPrefix || !bytes.Equal(lowerWords, upperWords) {
			t.Errorf("#%d: uppercase decoded to %q %v, lowercase to "+
				"%q %v", i, upperPrefix, upperWords, lowerPrefix,
				lowerWords)
		}
	}
}

// TestChecksumSensitivity ensures that substituting any single symbol of a
// valid string with another symbol of the alphabet is caught by the checksum.
func TestChecksumSensitivity(t *testing.T) {
	t.Parallel()

	const (
		addr    = "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a"
		symbols = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
		letters = "abcdefghijklmnopqrstuvwxyz"
	)
	sep := strings.IndexByte(addr, base32.Separator)

	check := func(mutated string) {
		_, _, err := base32.Decode(mutated)
		if !errors.Is(err, base32.Error{ErrorCode: base32.ErrInvalidChecksum}) {
			t.Errorf("%s: got %v, want checksum error", mutated, err)
		}
	}

	for i := sep + 1; i < len(addr); i++ {
		for j := 0; j < len(symbols); j++ {
			if symbols[j] == addr[i] {
				continue
			}
			check(addr[:i] + string(symbols[j]) + addr[i+1:])
		}
	}

	// Letters keep distinct values once masked to five bits, so a letter
	// substitution in the prefix is a single symbol error as well.
	for i := 0; i < sep; i++ {
		for j := 0; j < len(letters); j++ {
			if letters[j] == addr[i] {
				continue
			}
			check(addr[:i] + string(letters[j]) + addr[i+1:])
		}
	}
}

// TestEncode tests encoding against known strings.
func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		data   []byte
		want   string
	}{
		{"bitcoincash", nil, "bitcoincash:a5a8yrhz"},
		{"BitcoinCash", nil, "bitcoincash:a5a8yrhz"},
		{"customprefix", []byte("Test data"), "customprefix:23jhxapqv3shgcgawraq9rj"},
		{
			"bitcoincash",
			[]byte{
				0x00, 0x76, 0xa0, 0x40, 0x53, 0xbd, 0xa0, 0xa8,
				0x8b, 0xda, 0x51, 0x77, 0xb8, 0x6a, 0x15, 0xc3,
				0xb2, 0x9f, 0x55, 0x98, 0x73,
			},
			"bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		},
	}

	for i, test := range tests {
		words, err := base32.ToWords(test.data)
		if err != nil {
			t.Errorf("ToWords #%d: unexpected error: %v", i, err)
			continue
		}
		got, err := base32.Encode(test.prefix, words)
		if err != nil {
			t.Errorf("Encode #%d: unexpected error: %v", i, err)
			continue
		}
		if got != test.want {
			t.Errorf("Encode #%d: got %s, want %s", i, got, test.want)
		}
	}
}

// TestEncodeErrors ensures Encode rejects oversized input and values wider
// than five bits.
func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		words  []byte
		code   base32.ErrorCode
	}{
		{
			name:   "too long",
			prefix: "bitcoincash",
			words:  make([]byte, base32.MaxLength-7-len("bitcoincash")+1),
			code:   base32.ErrEncodingTooLong,
		},
		{
			name:   "word too wide",
			prefix: "bitcoincash",
			words:  []byte{0, 31, 32},
			code:   base32.ErrInvalidWord,
		},
	}

	for _, test := range tests {
		_, err := base32.Encode(test.prefix, test.words)
		if !errors.Is(err, base32.Error{ErrorCode: test.code}) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.code)
		}
	}

	// The length limit is inclusive.
	words := make([]byte, base32.MaxLength-7-len("bitcoincash"))
	if _, err := base32.Encode("bitcoincash", words); err != nil {
		t.Errorf("Encode at the length limit: unexpected error: %v", err)
	}
}
