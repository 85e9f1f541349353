// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "fmt"

var _ UnsignedTransaction = &OpenTx{}

type OpenTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// CounterOffer is the exact payment required to execute the option.
	CounterOffer Coins `serialize:"true" json:"counterOffer"`

	// Expires is the first height at which the option can no longer be
	// executed and may be burned instead.
	Expires uint64 `serialize:"true" json:"expires"`
}

func (o *OpenTx) ExecuteBase(g *Genesis) error {
	if err := o.BaseTx.ExecuteBase(g); err != nil {
		return err
	}
	if err := o.CounterOffer.Verify(); err != nil {
		return fmt.Errorf("counter-offer is invalid: %w", err)
	}
	return nil
}

func (o *OpenTx) Execute(c *TransactionContext) (*TransactionResult, error) {
	// An option that would already be expired is unopenable.
	if o.Expires <= c.Height {
		return nil, &OptionExpiredError{Expires: o.Expires}
	}

	// Only one option can be live at a time.
	has, err := HasOption(c.Database)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, ErrOptionActive
	}

	// The sender starts as both creator and owner. Whatever funds the
	// sender attached become the collateral.
	info := &OptionInfo{
		Creator:      c.Sender,
		Owner:        c.Sender,
		Collateral:   c.Funds,
		CounterOffer: o.CounterOffer,
		Expires:      o.Expires,
	}
	if err := PutOptionInfo(c.Database, info); err != nil {
		return nil, err
	}
	return &TransactionResult{Typ: Open, Owner: c.Sender.Hex()}, nil
}

func (o *OpenTx) Copy() UnsignedTransaction {
	return &OpenTx{
		BaseTx:       o.BaseTx.Copy(),
		CounterOffer: o.CounterOffer.Copy(),
		Expires:      o.Expires,
	}
}

func (o *OpenTx) Activity() *Activity {
	return &Activity{
		Typ:     Open,
		Expires: o.Expires,
	}
}
