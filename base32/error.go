// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base32

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength indicates a string to decode is shorter than
	// MinLength or longer than MaxLength characters.
	ErrInvalidLength ErrorCode = iota

	// ErrEncodingTooLong indicates the prefix and words passed to Encode
	// would exceed the maximum encoded length.
	ErrEncodingTooLong

	// ErrInvalidCharacter indicates a character outside the printable
	// ASCII range 33-126.
	ErrInvalidCharacter

	// ErrMixedCase indicates a string that contains both upper and lower
	// case letters.
	ErrMixedCase

	// ErrMissingSeparator indicates a string without the ':' separator.
	ErrMissingSeparator

	// ErrMissingPrefix indicates a string whose separator is the first
	// character.
	ErrMissingPrefix

	// ErrInvalidSeparatorIndex indicates the separator leaves too little
	// room for a checksum after it.
	ErrInvalidSeparatorIndex

	// ErrUnknownSymbol indicates a character after the separator that is
	// not part of the base32 alphabet.
	ErrUnknownSymbol

	// ErrInvalidWord indicates a value passed to Encode does not fit in 5
	// bits.
	ErrInvalidWord

	// ErrInvalidChecksum indicates the checksum did not verify.
	ErrInvalidChecksum

	// ErrInvalidBitGroups indicates ConvertBits was called with a group
	// size outside 1-8 bits.
	ErrInvalidBitGroups

	// ErrInvalidBitValue indicates an input value to ConvertBits does not
	// fit in the declared number of bits.
	ErrInvalidBitValue

	// ErrExcessPadding indicates that unpadded conversion left a whole
	// input group or more unconsumed.
	ErrExcessPadding

	// ErrInvalidPadding indicates that unpadded conversion left non-zero
	// padding bits.
	ErrInvalidPadding

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidLength:         "ErrInvalidLength",
	ErrEncodingTooLong:       "ErrEncodingTooLong",
	ErrInvalidCharacter:      "ErrInvalidCharacter",
	ErrMixedCase:             "ErrMixedCase",
	ErrMissingSeparator:      "ErrMissingSeparator",
	ErrMissingPrefix:         "ErrMissingPrefix",
	ErrInvalidSeparatorIndex: "ErrInvalidSeparatorIndex",
	ErrUnknownSymbol:         "ErrUnknownSymbol",
	ErrInvalidWord:           "ErrInvalidWord",
	ErrInvalidChecksum:       "ErrInvalidChecksum",
	ErrInvalidBitGroups:      "ErrInvalidBitGroups",
	ErrInvalidBitValue:       "ErrInvalidBitValue",
	ErrExcessPadding:         "ErrExcessPadding",
	ErrInvalidPadding:        "ErrInvalidPadding",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// IsMalformed returns whether the code describes text or words that are not
// a well-formed encoding, independent of the checksum.
func (e ErrorCode) IsMalformed() bool {
	return e >= ErrInvalidLength && e <= ErrInvalidWord
}

// IsChecksum returns whether the code describes a checksum failure.
func (e ErrorCode) IsChecksum() bool {
	return e == ErrInvalidChecksum
}

// IsBitPacking returns whether the code describes a failure to regroup bits.
func (e ErrorCode) IsBitPacking() bool {
	return e >= ErrInvalidBitGroups && e < numErrorCodes
}

// Error identifies a base32 encoding or decoding failure.  The caller can use
// errors.As to access the ErrorCode field, or errors.Is with an Error
// carrying only the ErrorCode of interest.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is reports whether target is an Error with the same ErrorCode.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.ErrorCode == e.ErrorCode
}

// codecError creates an Error given a set of arguments.
func codecError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
