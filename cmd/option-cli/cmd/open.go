// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/optionvm/optionvm/chain"
	"github.com/optionvm/optionvm/client"
)

var openCmd = &cobra.Command{
	Use:   "open [options] <collateral> <counter offer> <expires>",
	Short: "Locks collateral under a new option",
	Long: `
Issues "OpenTx" to lock the attached collateral in escrow until the
counter offer is paid or the expiration height passes.

# Locks 100gold under an option that may be executed for 300silver
# any time before height 128.
$ option-cli open 100gold 300silver 128
<<COMMENT
success
COMMENT

`,
	RunE: openFunc,
}

func openFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	collateral, counterOffer, expires := getOpenOp(args)
	cli := client.New(uri, requestTimeout)

	utx := &chain.OpenTx{
		BaseTx:       &chain.BaseTx{},
		CounterOffer: counterOffer,
		Expires:      expires,
	}
	utx.SetFunds(collateral)

	opts := []client.OpOption{}
	if verbose {
		opts = append(opts, client.WithInfo())
	}
	_, result, err := client.SignIssueTx(cli, utx, priv, opts...)
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

func getOpenOp(args []string) (collateral chain.Coins, counterOffer chain.Coins, expires uint64) {
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "expected exactly 3 arguments, got %d", len(args))
		os.Exit(128)
	}

	collateral, err := chain.ParseCoins(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse collateral %v", err)
		os.Exit(128)
	}
	counterOffer, err = chain.ParseCoins(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse counter offer %v", err)
		os.Exit(128)
	}
	expires, err = strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse expires %v", err)
		os.Exit(128)
	}
	return collateral, counterOffer, expires
}
