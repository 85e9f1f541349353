// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ethereum/go-ethereum/common"

var _ UnsignedTransaction = &TransferTx{}

type TransferTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// To is the new owner of the option.
	To common.Address `serialize:"true" json:"to"`
}

func (t *TransferTx) Execute(c *TransactionContext) (*TransactionResult, error) {
	// Attached funds would be stranded in escrow.
	if len(c.Funds) > 0 {
		return nil, ErrUnexpectedFunds
	}

	// Must transfer to someone
	if t.To == zeroAddress {
		return nil, ErrRecipientZero
	}

	info, exists, err := GetOptionInfo(c.Database)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOptionMissing
	}
	if info.Owner != c.Sender {
		return nil, ErrUnauthorized
	}

	// An expired option can still change owners. Only execution is gated
	// on the expiration height.
	info.Owner = t.To
	if err := PutOptionInfo(c.Database, info); err != nil {
		return nil, err
	}
	return &TransactionResult{Typ: Transfer, Owner: t.To.Hex()}, nil
}

func (t *TransferTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, t.To[:])
	return &TransferTx{
		BaseTx: t.BaseTx.Copy(),
		To:     common.BytesToAddress(to),
	}
}

func (t *TransferTx) Activity() *Activity {
	return &Activity{
		Typ: Transfer,
		To:  t.To.Hex(),
	}
}
