// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/avalanchego/ids"

type Activity struct {
	Height  uint64 `serialize:"true" json:"height"`
	TxID    ids.ID `serialize:"true" json:"txId"`
	Sender  string `serialize:"true" json:"sender"`
	Typ     string `serialize:"true" json:"type"`
	To      string `serialize:"true" json:"to,omitempty"` // common.Address will be 0x000 when not populated
	Expires uint64 `serialize:"true" json:"expires,omitempty"`
}
