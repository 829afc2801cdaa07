// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/journal"
	"github.com/bitmark-inc/swapmeet/rpc/certificate"
	"github.com/bitmark-inc/swapmeet/zmqutil"
)

const (
	publisherPublicKeyFilename  = "publisher.public"
	publisherPrivateKeyFilename = "publisher.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	journalPageSize = 100
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("swapmeetd rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publisher-key", "publisher":
		publicKeyFilename := getFilenameWithDirectory(arguments, publisherPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publisherPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "owner", "config-test", "cfg":
		return false // defer processing until configuration is read

	case "start", "run":
		return false // continue processing

	case "journal", "j", "withdrawals", "w":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                        (h)         - display this message\n\n")
		fmt.Printf("  version                     (v)         - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)       - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                            and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publisher-key [DIR]     (publisher) - create private key in: %q\n", "DIR/"+publisherPrivateKeyFilename)
		fmt.Printf("                                            and the public key in: %q\n", "DIR/"+publisherPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                       (run)       - just run the program, same as no arguments\n")
		fmt.Printf("                                            for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                 (cfg)       - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  owner                                   - display the configured owner account\n")
		fmt.Printf("\n")

		fmt.Printf("  journal [START [COUNT]]     (j)         - dump journalled calls as JSON to stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  withdrawals                 (w)         - list all recorded escrow payouts\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "owner":
		owner, err := account.FromBase58(options.Owner)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("owner:   %s\n", owner)
		fmt.Printf("network: %s\n", networkName(owner.IsTesting()))
		fmt.Printf("public:  %x\n", owner.PublicKey())

	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the journal is open so these commands can read the recorded calls
func processDataCommand(log *logger.L, arguments []string, j *journal.Journal) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "journal", "j":
		start := uint64(1)
		count := uint64(0) // all
		var err error

		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start sequence: %s", err)
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.ParseUint(arguments[1], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
		}

		fmt.Printf("[\n")
		n := uint64(0)
	loop:
		for 0 == count || n < count {
			size := journalPageSize
			if 0 != count && count-n < uint64(size) {
				size = int(count - n)
			}
			entries, err := j.Page(start, size)
			if nil != err {
				log.Errorf("journal dump error: %s", err)
				exitwithstatus.Message("journal dump error: %s", err)
			}
			if 0 == len(entries) {
				break loop
			}
			for _, e := range entries {
				fmt.Printf("  {\"sequence\":%d,\"call\":%s},\n", e.Sequence, e.Record)
			}
			n += uint64(len(entries))
			start = entries[len(entries)-1].Sequence + 1
		}
		fmt.Printf("{}]\n")

	case "withdrawals", "w":
		total := uint64(0)
		err := j.Withdrawals(func(sequence uint64, identity account.Account, amount uint64) error {
			total += amount
			fmt.Printf("%10d  %s  %d\n", sequence, identity, amount)
			return nil
		})
		if nil != err {
			log.Errorf("withdrawals error: %s", err)
			exitwithstatus.Message("withdrawals error: %s", err)
		}
		fmt.Printf("total: %d\n", total)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
