// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/optionvm/optionvm/chain"
	"github.com/optionvm/optionvm/client"
)

var burnCmd = &cobra.Command{
	Use:   "burn [options]",
	Short: "Returns the collateral of an expired option to its creator",
	Long: `
Issues "BurnTx" once the expiration height is reached. Anyone may issue
it. The collateral is returned to the option's creator and the record
is removed.

$ option-cli burn
<<COMMENT
success
COMMENT

`,
	RunE: burnFunc,
}

func burnFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "expected exactly 0 arguments, got %d", len(args))
		os.Exit(128)
	}

	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)

	utx := &chain.BurnTx{
		BaseTx: &chain.BaseTx{},
	}

	_, result, err := client.SignIssueTx(cli, utx, priv)
	if err != nil {
		return err
	}
	client.PPResult(result)
	return nil
}
