// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/optionvm/optionvm/client"
)

var infoCmd = &cobra.Command{
	Use:   "info [options]",
	Short: "Reads the current option record",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "expected exactly 0 arguments, got %d", len(args))
		os.Exit(128)
	}
	cli := client.New(uri, requestTimeout)

	height, err := cli.Height()
	if err != nil {
		return err
	}
	color.Cyan("Height=%d", height)

	exists, info, err := cli.Option()
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("no option is held in escrow")
		return nil
	}
	client.PPOption(info)
	return nil
}
