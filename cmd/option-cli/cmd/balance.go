// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/optionvm/optionvm/client"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] [address]",
	Short: "Reads the coins held by an address",
	Long: `
Reads the coins held by the given address. If no address is given, the
address of the local key is used.

$ option-cli balance 0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC

`,
	RunE: balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	addr, err := getBalanceOp(args)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	b, err := cli.Balance(addr)
	if err != nil {
		return err
	}
	color.Cyan("Address=%s Balance=%s", addr.Hex(), b)
	return nil
}

func getBalanceOp(args []string) (addr common.Address, err error) {
	switch len(args) {
	case 0:
		priv, err := crypto.LoadECDSA(privateKeyFile)
		if err != nil {
			return common.Address{}, err
		}
		return crypto.PubkeyToAddress(priv.PublicKey), nil
	case 1:
		return common.HexToAddress(args[0]), nil
	default:
		fmt.Fprintf(os.Stderr, "expected at most 1 argument, got %d", len(args))
		os.Exit(128)
	}
	return common.Address{}, nil
}
