// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &ExecuteTx{}

// ExecuteTx settles the option. The owner pays the counter-offer to the
// creator and receives the collateral.
type ExecuteTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
}

func (e *ExecuteTx) Execute(c *TransactionContext) (*TransactionResult, error) {
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
	if c.Height >= info.Expires {
		return nil, &OptionExpiredError{Expires: info.Expires}
	}

	// The attached funds must match the counter-offer coin for coin,
	// regardless of how either side ordered its coins.
	if !c.Funds.Equal(info.CounterOffer) {
		return nil, &CounterOfferMismatchError{
			Offer:        c.Funds,
			CounterOffer: info.CounterOffer,
		}
	}

	if err := DeleteOptionInfo(c.Database); err != nil {
		return nil, err
	}
	return &TransactionResult{
		Typ: Execute,
		Payments: []*Payment{
			{To: info.Creator, Amount: info.CounterOffer},
			{To: info.Owner, Amount: info.Collateral},
		},
	}, nil
}

func (e *ExecuteTx) Copy() UnsignedTransaction {
	return &ExecuteTx{
		BaseTx: e.BaseTx.Copy(),
	}
}

func (e *ExecuteTx) Activity() *Activity {
	return &Activity{
		Typ: Execute,
	}
}
