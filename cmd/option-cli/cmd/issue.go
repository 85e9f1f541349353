// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/optionvm/optionvm/chain"
	"github.com/optionvm/optionvm/client"
)

var issueCmd = &cobra.Command{
	Use:   "issue [options] <input file>",
	Short: "Issues an operation described by a JSON input file",
	Long: `
Reads a JSON operation description, signs it with the local key and
issues it. Useful for scripting the same operations the typed
subcommands cover.

$ cat open.json
{"type":"open","funds":[{"denom":"gold","amount":100}],"counterOffer":[{"denom":"silver","amount":300}],"expires":128}
$ option-cli issue open.json
<<COMMENT
success
COMMENT

`,
	RunE: issueFunc,
}

func issueFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	utx := getIssueOp(args)
	cli := client.New(uri, requestTimeout)

	opts := []client.OpOption{}
	if verbose {
		opts = append(opts, client.WithInfo())
	}
	_, result, err := client.SignIssueTx(cli, utx, priv, opts...)
	if err != nil {
		return err
	}
	client.PPResult(result)
	return nil
}

func getIssueOp(args []string) chain.UnsignedTransaction {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly 1 argument, got %d", len(args))
		os.Exit(128)
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %v", err)
		os.Exit(128)
	}
	var input chain.Input
	if err := json.Unmarshal(b, &input); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse input file %v", err)
		os.Exit(128)
	}
	utx, err := input.Decode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to decode input %v", err)
		os.Exit(128)
	}
	return utx
}
