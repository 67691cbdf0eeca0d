// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base32

import (
	"fmt"
)

// ConvertBits regroups a slice of fromBits-wide values into toBits-wide
// values, treating the input as one big-endian bit stream.  Both widths must
// be between 1 and 8.
//
// With pad set, a trailing partial group is emitted left-aligned and zero
// padded.  Without it, the input must end on a whole output group apart from
// fewer than fromBits zero bits.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		str := fmt.Sprintf("cannot convert from %d-bit to %d-bit groups",
			fromBits, toBits)
		return nil, codecError(ErrInvalidBitGroups, str)
	}

	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1

	regrouped := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for i, value := range data {
		if uint32(value)>>fromBits != 0 {
			str := fmt.Sprintf("value %d at index %d does not fit in "+
				"%d bits", value, i, fromBits)
			return nil, codecError(ErrInvalidBitValue, str)
		}

		acc = (acc<<fromBits | uint32(value)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
	}

	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
		return regrouped, nil
	}

	if bits >= fromBits {
		str := fmt.Sprintf("%d bits left over after conversion", bits)
		return nil, codecError(ErrExcessPadding, str)
	}
	if acc<<(toBits-bits)&maxv != 0 {
		return nil, codecError(ErrInvalidPadding, "non-zero padding bits")
	}

	return regrouped, nil
}

// ToWords converts bytes to 5-bit words, padding the final word.
func ToWords(data []byte) ([]byte, error) {
	return ConvertBits(data, 8, 5, true)
}

// FromWords converts 5-bit words back to bytes.  Padding bits must be zero.
func FromWords(words []byte) ([]byte, error) {
	return ConvertBits(words, 5, 8, false)
}
