// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package cashaddr encodes and decodes Bitcoin Cash addresses in the CashAddr
format.

A CashAddr payload is a version byte followed by a hash.  Bit 7 of the version
byte is reserved and must be zero, bits 6-3 select the script type and bits
2-0 select the hash size:

	marker  script type    marker  hash size
	0       pubkeyhash     0       160 bits
	1       scripthash     1       192 bits
	                       2       224 bits
	                       3       256 bits
	                       4       320 bits
	                       5       384 bits
	                       6       448 bits
	                       7       512 bits

The payload is packed into 5-bit words and written with the base32 package,
so a decoded address is the triple (prefix, script type, hash).  This package
never hashes anything; callers supply hashes they computed themselves.

Errors

Errors are of type Error.  Failures inside the base32 layer are wrapped, with
ErrChecksumMismatch kept apart from ErrMalformedAddress so a mistyped address
can be told from garbage.  Codes for which ErrorCode.IsStructural reports true
mean the text decoded fine but the version byte and hash do not form an
address.  Callers that only need a yes or no answer should use IsValid.
*/
package cashaddr
