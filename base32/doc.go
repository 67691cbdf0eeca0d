// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base32 implements the checksummed base32 text encoding used by
CashAddr addresses, together with the bit regrouping needed to move between
bytes and 5-bit words.

An encoded string has the form

	<prefix>:<payload symbols><8 checksum symbols>

The prefix is lowercase ASCII and only takes part in the checksum; it is not
base32 encoded.  Each payload symbol carries one 5-bit word taken from the
alphabet "qpzry9x8gf2tvdw0s3jn54khce6mua7l".  The checksum is a 40-bit BCH
code computed over the prefix (each character masked to its low 5 bits), a
zero separator word, and the payload words.  A string verifies when running
the checksum over everything after the prefix leaves a residue of exactly 1.

Strings may be all lowercase or all uppercase.  Mixed case is rejected.

Errors

All errors returned by this package are of type Error.  The ErrorCode field
identifies the specific failure and the IsMalformed, IsChecksum and
IsBitPacking methods on ErrorCode classify it, so callers can tell a garbled
string apart from one that only fails its checksum.
*/
package base32
