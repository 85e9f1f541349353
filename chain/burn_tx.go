// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &BurnTx{}

// BurnTx reclaims the collateral of an expired option for its creator.
// Anyone can burn once the expiration height is reached.
type BurnTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
}

func (b *BurnTx) Execute(c *TransactionContext) (*TransactionResult, error) {
	// Attached funds would be stranded in escrow.
	if len(c.Funds) > 0 {
		return nil, ErrUnexpectedFunds
	}

	info, exists, err := GetOptionInfo(c.Database)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOptionMissing
	}
	if c.Height < info.Expires {
		return nil, &OptionNotExpiredError{Expires: info.Expires}
	}

	if err := DeleteOptionInfo(c.Database); err != nil {
		return nil, err
	}
	return &TransactionResult{
		Typ: Burn,
		Payments: []*Payment{
			{To: info.Creator, Amount: info.Collateral},
		},
	}, nil
}

func (b *BurnTx) Copy() UnsignedTransaction {
	return &BurnTx{
		BaseTx: b.BaseTx.Copy(),
	}
}

func (b *BurnTx) Activity() *Activity {
	return &Activity{
		Typ: Burn,
	}
}
