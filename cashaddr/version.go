// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"
)

// ScriptType identifies what an address pays to.
type ScriptType uint8

const (
	// PubKeyHash is a pay-to-pubkey-hash address.
	PubKeyHash ScriptType = 0

	// ScriptHash is a pay-to-script-hash address.
	ScriptHash ScriptType = 1
)

// Map of ScriptType values to the names used in address tooling.
var scriptTypeStrings = map[ScriptType]string{
	PubKeyHash: "pubkeyhash",
	ScriptHash: "scripthash",
}

// String returns the ScriptType as a human-readable name.
func (t ScriptType) String() string {
	if s := scriptTypeStrings[t]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ScriptType (%d)", uint8(t))
}

// ParseScriptType returns the ScriptType named by s.  Both the long names
// ("pubkeyhash", "scripthash") and the short p2pkh and p2sh forms are
// accepted, ignoring case.
func ParseScriptType(s string) (ScriptType, error) {
	switch strings.ToLower(s) {
	case "pubkeyhash", "p2pkh":
		return PubKeyHash, nil
	case "scripthash", "p2sh":
		return ScriptHash, nil
	}
	str := fmt.Sprintf("unknown script type %q", s)
	return 0, addressError(ErrUnknownScriptType, str)
}

// hashSizes maps a hash size marker, the low three bits of the version byte,
// to the hash size in bits.
var hashSizes = [8]int{160, 192, 224, 256, 320, 384, 448, 512}

// hashSizeMarker returns the marker for a hash of the given size in bits.
func hashSizeMarker(bits int) (byte, bool) {
	for marker, size := range hashSizes {
		if size == bits {
			return byte(marker), true
		}
	}
	return 0, false
}

// IsSupportedHashSize returns whether a hash of n bytes can be carried by an
// address.
func IsSupportedHashSize(n int) bool {
	_, ok := hashSizeMarker(n * 8)
	return ok
}

// encodeVersion builds the version byte for a script type and a hash of
// hashLen bytes.
func encodeVersion(scriptType ScriptType, hashLen int) (byte, error) {
	switch scriptType {
	case PubKeyHash, ScriptHash:
	default:
		str := fmt.Sprintf("unknown script type %d", uint8(scriptType))
		return 0, addressError(ErrUnknownScriptType, str)
	}

	marker, ok := hashSizeMarker(hashLen * 8)
	if !ok {
		str := fmt.Sprintf("unsupported hash length of %d bytes", hashLen)
		return 0, addressError(ErrUnsupportedHashSize, str)
	}

	return byte(scriptType)<<3 | marker, nil
}

// decodeVersion splits a version byte into its script type and hash size in
// bits.
func decodeVersion(version byte) (ScriptType, int, error) {
	if version>>7&1 != 0 {
		return 0, 0, addressError(ErrReservedBit,
			"invalid version - MSB is reserved")
	}

	scriptMarker := version >> 3 & 0x1f
	hashMarker := int(version & 0x07)

	if hashMarker >= len(hashSizes) {
		str := fmt.Sprintf("invalid hash size marker %d", hashMarker)
		return 0, 0, addressError(ErrUnknownHashSize, str)
	}
	hashBits := hashSizes[hashMarker]

	var scriptType ScriptType
	switch scriptMarker {
	case 0:
		scriptType = PubKeyHash
	case 1:
		scriptType = ScriptHash
	default:
		str := fmt.Sprintf("invalid script type marker %d", scriptMarker)
		return 0, 0, addressError(ErrUnknownScriptType, str)
	}

	return scriptType, hashBits, nil
}
