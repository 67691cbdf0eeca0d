// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams defines the network parameters for the main Bitcoin Cash
// network.
var MainNetParams = Params{
	Name:              "mainnet",
	CashAddressPrefix: "bitcoincash",
}

// TestNet3Params defines the network parameters for the public Bitcoin Cash
// test network (version 3).
var TestNet3Params = Params{
	Name:              "testnet3",
	CashAddressPrefix: "bchtest",
}

// RegressionNetParams defines the network parameters for the regression test
// network.  Not to be confused with the test network, this one is intended
// for local testing with freely generated blocks.
var RegressionNetParams = Params{
	Name:              "regtest",
	CashAddressPrefix: "bchreg",
}

// SimNetParams defines the network parameters for the simulation test
// network.  It is intended for private use within a group of individuals
// doing simulation testing.
var SimNetParams = Params{
	Name:              "simnet",
	CashAddressPrefix: "bchsim",
}
