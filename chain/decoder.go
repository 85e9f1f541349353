// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

const (
	Open     = "open"
	Transfer = "transfer"
	Execute  = "execute"
	Burn     = "burn"
)

// Input is a JSON-friendly description of an operation, used by tooling to
// construct transactions. Funds become the coins attached to the
// transaction (the collateral of an open, the payment of an execute).
type Input struct {
	Typ          string         `json:"type"`
	Funds        Coins          `json:"funds,omitempty"`
	To           common.Address `json:"to,omitempty"`
	CounterOffer Coins          `json:"counterOffer,omitempty"`
	Expires      uint64         `json:"expires,omitempty"`
}

func (i *Input) Decode() (UnsignedTransaction, error) {
	switch i.Typ {
	case Open:
		return &OpenTx{
			BaseTx:       &BaseTx{Funds: i.Funds},
			CounterOffer: i.CounterOffer,
			Expires:      i.Expires,
		}, nil
	case Transfer:
		return &TransferTx{
			BaseTx: &BaseTx{Funds: i.Funds},
			To:     i.To,
		}, nil
	case Execute:
		return &ExecuteTx{
			BaseTx: &BaseTx{Funds: i.Funds},
		}, nil
	case Burn:
		return &BurnTx{
			BaseTx: &BaseTx{Funds: i.Funds},
		}, nil
	default:
		return nil, ErrInvalidType
	}
}
