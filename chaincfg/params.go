// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the Bitcoin Cash networks known to this module and
// the CashAddr prefix each of them uses.
package chaincfg

import (
	"errors"
	"strings"
)

// Params defines a Bitcoin Cash network by its name and the prefix its
// CashAddr addresses carry.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// CashAddressPrefix is the lowercase prefix of CashAddr addresses on
	// the network.
	CashAddressPrefix string
}

var (
	// ErrDuplicateNet describes an error where the parameters for a Bitcoin
	// Cash network could not be set due to the network or its address
	// prefix already being registered.
	ErrDuplicateNet = errors.New("duplicate Bitcoin Cash network")

	// ErrInvalidPrefix describes an error where a network was registered
	// with an empty prefix or one that is not all lowercase.
	ErrInvalidPrefix = errors.New("invalid CashAddr prefix")

	// ErrUnknownPrefix describes an error where a CashAddr prefix does not
	// belong to any default or registered network.
	ErrUnknownPrefix = errors.New("unknown CashAddr prefix")
)

var (
	registeredNets = make(map[string]struct{})
	prefixToParams = make(map[string]*Params)
)

// Register registers the network parameters for a Bitcoin Cash network.  This
// may error with ErrDuplicateNet if the network name or its prefix is already
// registered (either due to a previous Register call, or the network being one
// of the default networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible, before any lookups run concurrently.  Then, library
// packages may lookup networks or network parameters based on inputs and work
// regardless of the network being standard or not.
func Register(params *Params) error {
	prefix := params.CashAddressPrefix
	if prefix == "" || strings.ToLower(prefix) != prefix ||
		strings.IndexByte(prefix, ':') != -1 {

		return ErrInvalidPrefix
	}
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	if _, ok := prefixToParams[prefix]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Name] = struct{}{}
	prefixToParams[prefix] = params
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsCashAddressPrefix returns whether the prefix is known to any default or
// registered network.  The comparison ignores case, matching the decoder.
func IsCashAddressPrefix(prefix string) bool {
	_, ok := prefixToParams[strings.ToLower(prefix)]
	return ok
}

// ParamsForPrefix returns the network parameters that use the passed CashAddr
// prefix.
func ParamsForPrefix(prefix string) (*Params, error) {
	params, ok := prefixToParams[strings.ToLower(prefix)]
	if !ok {
		return nil, ErrUnknownPrefix
	}
	return params, nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
	mustRegister(&RegressionNetParams)
	mustRegister(&SimNetParams)
}
