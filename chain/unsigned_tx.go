// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// TransactionContext is the state an operation runs against. Funds were
// already withdrawn from Sender into escrow when Execute is invoked.
type TransactionContext struct {
	Genesis  *Genesis
	Database database.Database

	Height uint64
	TxID   ids.ID
	Sender common.Address
	Funds  Coins
}

// Payment is a payout owed by escrow after an operation settles.
type Payment struct {
	To     common.Address `json:"to"`
	Amount Coins          `json:"amount"`
}

// TransactionResult describes what an accepted operation did.
type TransactionResult struct {
	Typ      string     `json:"type"`
	Owner    string     `json:"owner,omitempty"`
	Payments []*Payment `json:"payments,omitempty"`
}

type UnsignedTransaction interface {
	Copy() UnsignedTransaction

	GetMagic() uint64
	SetMagic(uint64)
	GetNonce() uint64
	SetNonce(uint64)
	GetFunds() Coins
	SetFunds(Coins)

	ExecuteBase(*Genesis) error
	Execute(*TransactionContext) (*TransactionResult, error)
	Activity() *Activity
}
