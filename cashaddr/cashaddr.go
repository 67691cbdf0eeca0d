// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitcoincoltd/cashaddress/base32"
)

// Encode returns the CashAddr string for a hash of the given script type.
// The prefix is lowercased and the hash must be one of the supported sizes
// (20, 24, 28, 32, 40, 48, 56 or 64 bytes).  Hashes of 48 bytes and more only
// fit within the maximum address length under short prefixes.
func Encode(prefix string, scriptType ScriptType, hash []byte) (string, error) {
	if err := checkPrefix(prefix); err != nil {
		return "", err
	}

	version, err := encodeVersion(scriptType, len(hash))
	if err != nil {
		return "", err
	}

	data := make([]byte, 0, 1+len(hash))
	data = append(data, version)
	data = append(data, hash...)
	words, err := base32.ToWords(data)
	if err != nil {
		return "", wrapError(ErrInvalidPadding, "failed to pack payload",
			err)
	}

	addr, err := base32.Encode(prefix, words)
	if err != nil {
		str := fmt.Sprintf("%d byte hash does not fit an address with "+
			"prefix %q", len(hash), prefix)
		return "", wrapError(ErrAddressTooLong, str, err)
	}
	if len(addr) > base32.MaxLength {
		str := fmt.Sprintf("address of %d characters exceeds the maximum "+
			"of %d", len(addr), base32.MaxLength)
		return "", addressError(ErrAddressTooLong, str)
	}

	return addr, nil
}

// Decode decodes a CashAddr string into its lowercase prefix, script type and
// hash.  The string must carry its prefix; see DecodeWithDefaultPrefix for
// strings that may omit it.
func Decode(addr string) (string, ScriptType, []byte, error) {
	prefix, scriptType, hash, err := decode(addr)
	if err != nil {
		log.Tracef("Rejected address %q: %v", addr, err)
		return "", 0, nil, err
	}
	return prefix, scriptType, hash, nil
}

func decode(addr string) (string, ScriptType, []byte, error) {
	prefix, words, err := base32.Decode(addr)
	if err != nil {
		var e base32.Error
		if errors.As(err, &e) && e.ErrorCode.IsChecksum() {
			return "", 0, nil, wrapError(ErrChecksumMismatch,
				"checksum failed to verify", err)
		}
		return "", 0, nil, wrapError(ErrMalformedAddress,
			"failed to decode address", err)
	}

	data, err := base32.FromWords(words)
	if err != nil {
		return "", 0, nil, wrapError(ErrInvalidPadding,
			"failed to unpack payload", err)
	}

	scriptType, hash, err := extractPayload(data)
	if err != nil {
		return "", 0, nil, err
	}

	return prefix, scriptType, hash, nil
}

// extractPayload splits the unpacked payload into the script type declared
// by its version byte and the hash that follows it.
func extractPayload(data []byte) (ScriptType, []byte, error) {
	if len(data) < 1 {
		return 0, nil, addressError(ErrEmptyPayload, "empty payload")
	}

	scriptType, hashBits, err := decodeVersion(data[0])
	if err != nil {
		return 0, nil, err
	}

	if hashBits/8 != len(data)-1 {
		str := fmt.Sprintf("hash length of %d bytes does not match the "+
			"%d bits declared by the version", len(data)-1, hashBits)
		return 0, nil, addressError(ErrHashSizeMismatch, str)
	}

	return scriptType, data[1:], nil
}

// DecodeWithDefaultPrefix decodes a CashAddr string that may omit its
// prefix.  When the string has no separator, defaultPrefix is assumed.
func DecodeWithDefaultPrefix(addr, defaultPrefix string) (string, ScriptType, []byte, error) {
	if strings.IndexByte(addr, base32.Separator) == -1 {
		addr = defaultPrefix + string(base32.Separator) + addr
	}
	return Decode(addr)
}

// IsValid returns whether addr is a valid CashAddr string, assuming
// defaultPrefix when the string has none.  Every kind of failure, including
// legacy addresses in other formats, reports false.
func IsValid(addr, defaultPrefix string) bool {
	_, _, _, err := DecodeWithDefaultPrefix(addr, defaultPrefix)
	return err == nil
}

// checkPrefix ensures prefix is one the decoder can split off again.
func checkPrefix(prefix string) error {
	if prefix == "" {
		return addressError(ErrInvalidPrefix, "empty prefix")
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < 33 || c > 126 || c == base32.Separator {
			str := fmt.Sprintf("invalid prefix character %#x at index %d",
				c, i)
			return addressError(ErrInvalidPrefix, str)
		}
	}
	return nil
}
