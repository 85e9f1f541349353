// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "fmt"

type BaseTx struct {
	// Magic is a value defined in the genesis to protect against replay
	// attacks on different instances.
	Magic uint64 `serialize:"true" json:"magic"`

	// Nonce must equal the count of transactions the sender has already had
	// accepted.
	Nonce uint64 `serialize:"true" json:"nonce"`

	// Funds are withdrawn from the sender and placed in escrow before the
	// operation runs.
	Funds Coins `serialize:"true" json:"funds"`
}

func (b *BaseTx) GetMagic() uint64 {
	return b.Magic
}

func (b *BaseTx) SetMagic(magic uint64) {
	b.Magic = magic
}

func (b *BaseTx) GetNonce() uint64 {
	return b.Nonce
}

func (b *BaseTx) SetNonce(nonce uint64) {
	b.Nonce = nonce
}

func (b *BaseTx) GetFunds() Coins {
	return b.Funds
}

func (b *BaseTx) SetFunds(funds Coins) {
	b.Funds = funds
}

func (b *BaseTx) ExecuteBase(g *Genesis) error {
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	if err := b.Funds.Verify(); err != nil {
		return fmt.Errorf("funds are invalid: %w", err)
	}
	return nil
}

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{
		Magic: b.Magic,
		Nonce: b.Nonce,
		Funds: b.Funds.Copy(),
	}
}
