// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitcoincoltd/cashaddress/chaincfg"
	"github.com/bitcoincoltd/cashaddress/internal/log"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "cashaddrutil.log"
)

// config defines the configuration options for cashaddrutil.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	TestNet3    bool   `long:"testnet" description:"Use the test network"`
	RegNet      bool   `long:"regtest" description:"Use the regression test network"`
	SimNet      bool   `long:"simnet" description:"Use the simulation test network"`
	Prefix      string `short:"p" long:"prefix" description:"Prefix assumed for addresses that omit one and used when encoding (overrides the network prefix)"`
	LogDir      string `long:"logdir" description:"Directory to write a rotated log file to"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	Verbose     bool   `short:"v" long:"verbose" description:"Dump the decoded fields of every address"`

	params *chaincfg.Params
}

// prefix returns the prefix addresses are checked and encoded against.
func (cfg *config) prefix() string {
	if cfg.Prefix != "" {
		return cfg.Prefix
	}
	return cfg.params.CashAddressPrefix
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !log.ValidLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		log.SetLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := log.SubsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, log.SupportedSubsystems())
		}

		if !log.ValidLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		log.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// errShowSubsystems is returned by loadConfig when the caller asked for the
// list of logging subsystems instead of running a command.
var errShowSubsystems = errors.New("show subsystems")

// loadConfig initializes and parses the config using command line options.
// It returns the remaining non-option arguments, which name the command to
// run.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultLogLevel,
		params:     &chaincfg.MainNetParams,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <validate|decode|encode> [ARGS...]"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if cfg.ShowVersion {
		return &cfg, remainingArgs, nil
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	if cfg.TestNet3 {
		numNets++
		cfg.params = &chaincfg.TestNet3Params
	}
	if cfg.RegNet {
		numNets++
		cfg.params = &chaincfg.RegressionNetParams
	}
	if cfg.SimNet {
		numNets++
		cfg.params = &chaincfg.SimNetParams
	}
	if numNets > 1 {
		str := "%s: the testnet, regtest, and simnet params can't be " +
			"used together -- choose one of the three"
		return nil, nil, fmt.Errorf(str, funcName)
	}

	// A custom prefix must be something an address can carry.
	if cfg.Prefix != "" && strings.ContainsAny(cfg.Prefix, ": \t") {
		str := "%s: the specified prefix [%v] is invalid"
		return nil, nil, fmt.Errorf(str, funcName, cfg.Prefix)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return &cfg, nil, errShowSubsystems
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("%s: %v", funcName, err)
	}

	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return nil, nil, fmt.Errorf("%s: %v", funcName, err)
		}
	}

	return &cfg, remainingArgs, nil
}
