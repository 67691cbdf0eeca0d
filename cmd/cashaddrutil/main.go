// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Tool cashaddrutil validates, decodes and encodes Bitcoin Cash addresses in
// the CashAddr format.
//
// Usage:
//
//	cashaddrutil [OPTIONS] validate <address>...
//	cashaddrutil [OPTIONS] decode <address>
//	cashaddrutil [OPTIONS] encode <pubkeyhash|scripthash> <hexhash>
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitcoincoltd/cashaddress/cashaddr"
	"github.com/bitcoincoltd/cashaddress/chaincfg"
	"github.com/bitcoincoltd/cashaddress/internal/log"
	"github.com/bitcoincoltd/cashaddress/internal/version"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
)

// errInvalidAddresses is returned by the validate command when at least one
// of its arguments is not a valid address.
var errInvalidAddresses = errors.New("one or more addresses are invalid")

// validate writes one OK or FAIL line per address.
func validate(cfg *config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("validate: no addresses given")
	}

	var failed int
	for _, addr := range args {
		_, _, _, err := cashaddr.DecodeWithDefaultPrefix(addr, cfg.prefix())
		if err != nil {
			failed++
			log.ToolLog.Debugf("%s: %v", addr, err)
			fmt.Fprintf(w, "FAIL: %s\n", addr)
			continue
		}
		fmt.Fprintf(w, "OK: %s\n", addr)
	}

	log.ToolLog.Infof("Validated %d %s, %d invalid", len(args),
		pickNoun(len(args), "address", "addresses"), failed)
	if failed > 0 {
		return errInvalidAddresses
	}
	return nil
}

// decode writes the fields of a single address.
func decode(cfg *config, args []string, w io.Writer) error {
	if len(args) != 1 {
		return errors.New("decode: expected exactly one address")
	}

	prefix, scriptType, hash, err := cashaddr.DecodeWithDefaultPrefix(args[0],
		cfg.prefix())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "prefix:     %s\n", prefix)
	if params, err := chaincfg.ParamsForPrefix(prefix); err == nil {
		fmt.Fprintf(w, "network:    %s\n", params.Name)
	}
	fmt.Fprintf(w, "scripttype: %s\n", scriptType)
	fmt.Fprintf(w, "hashsize:   %d\n", len(hash)*8)
	fmt.Fprintf(w, "hash:       %x\n", hash)
	if cfg.Verbose {
		spew.Fdump(w, hash)
	}
	return nil
}

// encode writes the address for a script type and hex encoded hash.
func encode(cfg *config, args []string, w io.Writer) error {
	if len(args) != 2 {
		return errors.New("encode: expected a script type and a hash")
	}

	scriptType, err := cashaddr.ParseScriptType(args[0])
	if err != nil {
		return err
	}
	hash, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("encode: invalid hash: %w", err)
	}

	addr, err := cashaddr.Encode(cfg.prefix(), scriptType, hash)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, addr)
	return nil
}

// run executes the command named by the first argument.
func run(cfg *config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("no command given -- use validate, decode or " +
			"encode")
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	log.ToolLog.Debugf("Running %s on %s with prefix %q", cmd,
		cfg.params.Name, cfg.prefix())
	if !chaincfg.IsCashAddressPrefix(cfg.prefix()) {
		log.ToolLog.Warnf("Prefix %q is not used by any known network",
			cfg.prefix())
	}

	switch cmd {
	case "validate":
		return validate(cfg, args, w)
	case "decode":
		return decode(cfg, args, w)
	case "encode":
		return encode(cfg, args, w)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// pickNoun returns the singular or plural form of a noun depending on the
// count n.
func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if errors.Is(err, errShowSubsystems) {
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		return
	}
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			// The parser already printed the error and usage.
			if e.Type == flags.ErrHelp {
				return
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	if log.LogRotator != nil {
		defer log.LogRotator.Close()
	}

	if cfg.ShowVersion {
		fmt.Printf("cashaddrutil version %s\n", version.String())
		return
	}

	if err := run(cfg, args, os.Stdout); err != nil {
		if !errors.Is(err, errInvalidAddresses) {
			fmt.Fprintln(os.Stderr, err)
		}
		if log.LogRotator != nil {
			log.LogRotator.Close()
		}
		os.Exit(1)
	}
}
