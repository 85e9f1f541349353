// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/optionvm/optionvm/chain"
	"github.com/optionvm/optionvm/client"
)

var executeCmd = &cobra.Command{
	Use:   "execute [options] <funds>",
	Short: "Executes the option by paying the counter offer",
	Long: `
Issues "ExecuteTx" with the attached funds. The funds must match the
option's counter offer exactly, in any order. On success the counter
offer is paid to the creator and the collateral is released to the
owner.

$ option-cli execute 300silver
<<COMMENT
success
COMMENT

`,
	RunE: executeFunc,
}

func executeFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	funds := getExecuteOp(args)
	cli := client.New(uri, requestTimeout)

	utx := &chain.ExecuteTx{
		BaseTx: &chain.BaseTx{},
	}
	utx.SetFunds(funds)

	_, result, err := client.SignIssueTx(cli, utx, priv)
	if err != nil {
		return err
	}
	client.PPResult(result)

	addr := crypto.PubkeyToAddress(priv.PublicKey)
	b, err := cli.Balance(addr)
	if err != nil {
		return err
	}
	color.Cyan("Address=%s Balance=%s", addr.Hex(), b)
	return nil
}

func getExecuteOp(args []string) (funds chain.Coins) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly 1 argument, got %d", len(args))
		os.Exit(128)
	}

	funds, err := chain.ParseCoins(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse funds %v", err)
		os.Exit(128)
	}
	return funds
}
