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

	"github.com/optionvm/optionvm/chain"
	"github.com/optionvm/optionvm/client"
)

var transferCmd = &cobra.Command{
	Use:   "transfer [options] <to>",
	Short: "Transfers the option to another address",
	RunE:  transferFunc,
}

func transferFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	to := getTransferOp(args)
	cli := client.New(uri, requestTimeout)

	utx := &chain.TransferTx{
		BaseTx: &chain.BaseTx{},
		To:     to,
	}

	opts := []client.OpOption{}
	if verbose {
		opts = append(opts, client.WithInfo())
	}
	if _, _, err := client.SignIssueTx(cli, utx, priv, opts...); err != nil {
		return err
	}

	color.Green("transferred option to %s", to.Hex())
	return nil
}

func getTransferOp(args []string) (to common.Address) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly 1 argument, got %d", len(args))
		os.Exit(128)
	}
	return common.HexToAddress(args[0])
}
