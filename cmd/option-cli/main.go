// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// "option-cli" implements optionvm client operation interface.
package main

import (
	"fmt"
	"os"

	"github.com/optionvm/optionvm/cmd/option-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "option-cli failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
