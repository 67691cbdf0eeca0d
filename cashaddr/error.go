// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrMalformedAddress indicates the address text is not a well-formed
	// base32 encoding.  The wrapped base32.Error holds the details.
	ErrMalformedAddress ErrorCode = iota

	// ErrChecksumMismatch indicates the address is well formed but its
	// checksum does not verify.
	ErrChecksumMismatch

	// ErrInvalidPadding indicates the decoded words do not pack into whole
	// bytes.
	ErrInvalidPadding

	// ErrEmptyPayload indicates an address without a version byte.
	ErrEmptyPayload

	// ErrReservedBit indicates a version byte with the reserved high bit
	// set.
	ErrReservedBit

	// ErrUnknownScriptType indicates a script type marker other than
	// pubkeyhash or scripthash.
	ErrUnknownScriptType

	// ErrUnknownHashSize indicates a hash size marker with no defined
	// size.
	ErrUnknownHashSize

	// ErrHashSizeMismatch indicates the hash length differs from the size
	// the version byte declares.
	ErrHashSizeMismatch

	// ErrUnsupportedHashSize indicates a hash to encode whose length is
	// not one of the supported sizes.
	ErrUnsupportedHashSize

	// ErrInvalidPrefix indicates a prefix to encode that is empty or holds
	// characters the decoder would reject.
	ErrInvalidPrefix

	// ErrAddressTooLong indicates the encoded address would be longer than
	// the decoder accepts.
	ErrAddressTooLong

	// ErrWrongNetwork indicates an address whose prefix is not the one of
	// the expected network.
	ErrWrongNetwork

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrMalformedAddress:    "ErrMalformedAddress",
	ErrChecksumMismatch:    "ErrChecksumMismatch",
	ErrInvalidPadding:      "ErrInvalidPadding",
	ErrEmptyPayload:        "ErrEmptyPayload",
	ErrReservedBit:         "ErrReservedBit",
	ErrUnknownScriptType:   "ErrUnknownScriptType",
	ErrUnknownHashSize:     "ErrUnknownHashSize",
	ErrHashSizeMismatch:    "ErrHashSizeMismatch",
	ErrUnsupportedHashSize: "ErrUnsupportedHashSize",
	ErrInvalidPrefix:       "ErrInvalidPrefix",
	ErrAddressTooLong:      "ErrAddressTooLong",
	ErrWrongNetwork:        "ErrWrongNetwork",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// IsStructural returns whether the code describes a payload whose version
// byte or hash does not form a valid address.
func (e ErrorCode) IsStructural() bool {
	return e >= ErrEmptyPayload && e <= ErrUnsupportedHashSize
}

// Error identifies an address encoding or decoding failure.  Failures coming
// from the base32 layer are kept in Err, so errors.As can reach the
// underlying base32.Error.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error, if any
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an Error with the same ErrorCode.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.ErrorCode == e.ErrorCode
}

// addressError creates an Error given a set of arguments.
func addressError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// wrapError creates an Error that wraps a lower-layer error.
func wrapError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}
