// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"

	"github.com/bitcoincoltd/cashaddress/chaincfg"
)

// Address is a decoded CashAddr address: the network prefix, the script type
// and the hash it pays to.  An Address is immutable and always encodable.
type Address struct {
	prefix     string
	scriptType ScriptType
	hash       []byte
	encoded    string
}

// NewAddress returns a new Address for the hash.  The prefix is lowercased.
func NewAddress(prefix string, scriptType ScriptType, hash []byte) (*Address, error) {
	encoded, err := Encode(prefix, scriptType, hash)
	if err != nil {
		return nil, err
	}

	return &Address{
		prefix:     strings.ToLower(prefix),
		scriptType: scriptType,
		hash:       append([]byte(nil), hash...),
		encoded:    encoded,
	}, nil
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if addr is a valid CashAddr address for defaultNet.  A string without
// a prefix is taken to be on defaultNet.
func DecodeAddress(addr string, defaultNet *chaincfg.Params) (*Address, error) {
	prefix, scriptType, hash, err := DecodeWithDefaultPrefix(addr,
		defaultNet.CashAddressPrefix)
	if err != nil {
		return nil, err
	}

	if prefix != defaultNet.CashAddressPrefix {
		str := fmt.Sprintf("address prefix %q is not %q used by %s",
			prefix, defaultNet.CashAddressPrefix, defaultNet.Name)
		return nil, addressError(ErrWrongNetwork, str)
	}

	return NewAddress(prefix, scriptType, hash)
}

// Prefix returns the lowercase network prefix of the address.
func (a *Address) Prefix() string {
	return a.prefix
}

// ScriptType returns what the address pays to.
func (a *Address) ScriptType() ScriptType {
	return a.scriptType
}

// Hash returns a copy of the hash the address pays to.
func (a *Address) Hash() []byte {
	return append([]byte(nil), a.hash...)
}

// EncodeAddress returns the CashAddr string encoding of the address,
// including its prefix.
func (a *Address) EncodeAddress() string {
	return a.encoded
}

// IsForNet returns whether or not the address is associated with the passed
// network.
func (a *Address) IsForNet(net *chaincfg.Params) bool {
	return a.prefix == net.CashAddressPrefix
}

// String returns a human-readable string for the address.  This is equivalent
// to calling EncodeAddress, but is provided so the type can be used as a
// fmt.Stringer.
func (a *Address) String() string {
	return a.EncodeAddress()
}
