// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/swapmeet/account"
	"github.com/bitmark-inc/swapmeet/command/swapmeet-cli/rpccalls"
)

type metadata struct {
	options rpccalls.Options
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// slot selection shared by the swap transition commands
var slotFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "category, c",
		Value: "",
		Usage: "*category `NAME`",
	},
	cli.IntFlag{
		Name:  "collection, l",
		Value: -1,
		Usage: "*index of the caller's collection `N`",
	},
	cli.IntFlag{
		Name:  "index, x",
		Value: -1,
		Usage: "*slot in the caller's swap book `N`",
	},
}

func withSlot(flags ...cli.Flag) []cli.Flag {
	return append(append([]cli.Flag{}, slotFlags...), flags...)
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "swapmeet-cli"
	app.Usage = "collectables registry and escrowed swap client"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, C",
			Value:  "127.0.0.1:2150",
			Usage:  " swapmeetd host/IP and port, `HOST:PORT`",
			EnvVar: "SWAPMEET_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, i",
			Value:  "",
			Usage:  " base58 `ACCOUNT` making the requests",
			EnvVar: "SWAPMEET_CALLER",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " expected SHA3-256 of the server certificate `HEX`",
			EnvVar: "SWAPMEET_FINGERPRINT",
		},
		cli.BoolFlag{
			Name:  "insecure, k",
			Usage: " accept any server certificate",
		},
		cli.IntFlag{
			Name:  "retries, r",
			Value: 2,
			Usage: " resend a request up to `COUNT` times after a connection failure",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display swapmeetd status",
			ArgsUsage: "\n   (* = required)",
			Action:    runInfo,
		},
		{
			Name:      "categories",
			Usage:     "list all categories",
			ArgsUsage: "\n   (* = required)",
			Action:    runCategories,
		},
		{
			Name:      "add-category",
			Usage:     "create a category (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*category `NAME`",
				},
			},
			Action: runAddCategory,
		},
		{
			Name:      "register",
			Usage:     "register the caller as a collector",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*display `NAME`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "collector",
			Usage:     "show the registration of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "identity, a",
					Value: "",
					Usage: " base58 `ACCOUNT` [default caller]",
				},
			},
			Action: runCollector,
		},
		{
			Name:      "add-collection",
			Usage:     "create a collection in a category",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*category `NAME`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*collection `NAME`",
				},
				cli.StringFlag{
					Name:  "tags, t",
					Value: "",
					Usage: " free form `TAGS`",
				},
			},
			Action: runAddCollection,
		},
		{
			Name:      "collections",
			Usage:     "list the collections of a category",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*category `NAME`",
				},
				cli.IntFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " first collection index `N`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of collections `COUNT`",
				},
			},
			Action: runCollections,
		},
		{
			Name:      "items",
			Usage:     "list the items of a collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*category `NAME`",
				},
				cli.IntFlag{
					Name:  "collection, l",
					Value: -1,
					Usage: "*collection index `N`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " show details of a single item `NAME`",
				},
			},
			Action: runItems,
		},
		{
			Name:      "add-item",
			Usage:     "add an item to one of the caller's collections",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*category `NAME`",
				},
				cli.IntFlag{
					Name:  "collection, l",
					Value: -1,
					Usage: "*collection index `N`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*item `NAME`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+content hash `HEX`",
				},
				cli.StringFlag{
					Name:  "file, F",
					Value: "",
					Usage: "+hash the content of `FILE`",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: " declared value `AMOUNT`",
				},
				cli.BoolFlag{
					Name:  "swappable, s",
					Usage: " item can be offered or requested in a swap",
				},
			},
			Action: runAddItem,
		},
		{
			Name:      "remove-item",
			Usage:     "remove an item from one of the caller's collections",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*category `NAME`",
				},
				cli.IntFlag{
					Name:  "collection, l",
					Value: -1,
					Usage: "*collection index `N`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*item `NAME`",
				},
			},
			Action: runRemoveItem,
		},
		{
			Name:      "propose",
			Usage:     "offer one of the caller's items for another collector's item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*category `NAME`",
				},
				cli.IntFlag{
					Name:  "collection, l",
					Value: -1,
					Usage: "*index of the caller's collection `N`",
				},
				cli.StringFlag{
					Name:  "offered, o",
					Value: "",
					Usage: "*caller's item `NAME`",
				},
				cli.StringFlag{
					Name:  "swappee, e",
					Value: "",
					Usage: "*base58 `ACCOUNT` of the other collector",
				},
				cli.IntFlag{
					Name:  "swappee-collection, L",
					Value: -1,
					Usage: "*index of the swappee's collection `N`",
				},
				cli.StringFlag{
					Name:  "wanted, w",
					Value: "",
					Usage: "*swappee's item `NAME`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*shipping `ADDRESS` (only its hash is sent)",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: "*escrow `AMOUNT`",
				},
			},
			Action: runPropose,
		},
		{
			Name:      "reject",
			Usage:     "withdraw or decline a proposal",
			ArgsUsage: "\n   (* = required)",
			Flags:     withSlot(),
			Action:    runReject,
		},
		{
			Name:      "confirm",
			Usage:     "accept a proposal, matching its escrow",
			ArgsUsage: "\n   (* = required)",
			Flags: withSlot(
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*shipping `ADDRESS` (only its hash is sent)",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: "*escrow `AMOUNT`",
				},
			),
			Action: runConfirm,
		},
		{
			Name:      "track",
			Usage:     "record the shipping reference of a leg",
			ArgsUsage: "\n   (* = required)",
			Flags: withSlot(
				cli.StringFlag{
					Name:  "reference, R",
					Value: "",
					Usage: "*carrier tracking `REFERENCE`",
				},
				cli.StringFlag{
					Name:  "leg, g",
					Value: "",
					Usage: "*leg being shipped `swapper|swappee`",
				},
			),
			Action: runTrack,
		},
		{
			Name:      "received",
			Usage:     "acknowledge delivery of a leg",
			ArgsUsage: "\n   (* = required)",
			Flags: withSlot(
				cli.StringFlag{
					Name:  "leg, g",
					Value: "",
					Usage: "*leg that arrived `swapper|swappee`",
				},
			),
			Action: runReceived,
		},
		{
			Name:      "swap",
			Usage:     "show a swap and its tracking",
			ArgsUsage: "\n   (* = required)",
			Flags:     withSlot(),
			Action:    runSwap,
		},
		{
			Name:      "book",
			Usage:     "list the live swaps of one of the caller's collections",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*category `NAME`",
				},
				cli.IntFlag{
					Name:  "collection, l",
					Value: -1,
					Usage: "*collection index `N`",
				},
			},
			Action: runBook,
		},
		{
			Name:      "redeemable",
			Usage:     "show escrow balances",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "identity, a",
					Value: "",
					Usage: " base58 `ACCOUNT` [default caller]",
				},
				cli.BoolFlag{
					Name:  "totals, t",
					Usage: " show ledger wide sums instead",
				},
			},
			Action: runRedeemable,
		},
		{
			Name:      "redeem",
			Usage:     "withdraw the caller's redeemable escrow",
			ArgsUsage: "\n   (* = required)",
			Action:    runRedeem,
		},
		{
			Name:      "events",
			Usage:     "print events broadcast by swapmeetd",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, p",
					Value: "",
					Usage: "*broadcast `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key, s",
					Value: "",
					Usage: "*publisher public key `FILE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` events [0 = forever]",
				},
			},
			Action: runEvents,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			options: rpccalls.Options{
				Connect:     c.GlobalString("connect"),
				Fingerprint: c.GlobalString("fingerprint"),
				Insecure:    c.GlobalBool("insecure"),
				Retries:     c.GlobalInt("retries"),
				Verbose:     c.GlobalBool("verbose"),
			},
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if caller := c.GlobalString("caller"); "" != caller {
			a, err := account.FromBase58(caller)
			if nil != err {
				return fmt.Errorf("caller: %q  error: %s", caller, err)
			}
			m.options.Caller = a
		}

		if m.options.Retries < 0 {
			return fmt.Errorf("retries: %d cannot be negative", m.options.Retries)
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.options.Connect)
		}

		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	return app
}
