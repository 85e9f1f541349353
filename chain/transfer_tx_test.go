// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestTransferTx(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender2 := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()

	// Items: transfer without an option, open, transfer by a non-owner,
	// transfer to no one, transfer with funds attached, hand over, transfer
	// by the old owner, transfer to self, transfer after expiry
	tt := []struct {
		utx    UnsignedTransaction
		height uint64
		sender common.Address
		funds  Coins
		err    error
	}{
		{ // invalid before any option is opened
			utx:    &TransferTx{BaseTx: &BaseTx{}, To: sender2},
			height: 0,
			sender: sender,
			err:    ErrOptionMissing,
		},
		{ // open an option to transfer
			utx: &OpenTx{
				BaseTx:       &BaseTx{},
				CounterOffer: Coins{{Denom: "eth", Amount: 40}},
				Expires:      5,
			},
			height: 0,
			sender: sender,
			funds:  Coins{{Denom: "btc", Amount: 1}},
			err:    nil,
		},
		{ // only the owner can transfer
			utx:    &TransferTx{BaseTx: &BaseTx{}, To: sender2},
			height: 1,
			sender: sender2,
			err:    ErrUnauthorized,
		},
		{ // must transfer to someone
			utx:    &TransferTx{BaseTx: &BaseTx{}},
			height: 1,
			sender: sender,
			err:    ErrRecipientZero,
		},
		{ // attached funds have no destination on a transfer
			utx:    &TransferTx{BaseTx: &BaseTx{}, To: sender2},
			height: 1,
			sender: sender,
			funds:  Coins{{Denom: "btc", Amount: 1}},
			err:    ErrUnexpectedFunds,
		},
		{ // valid hand over
			utx:    &TransferTx{BaseTx: &BaseTx{}, To: sender2},
			height: 1,
			sender: sender,
			err:    nil,
		},
		{ // the old owner lost control
			utx:    &TransferTx{BaseTx: &BaseTx{}, To: sender},
			height: 2,
			sender: sender,
			err:    ErrUnauthorized,
		},
		{ // transferring to oneself is allowed
			utx:    &TransferTx{BaseTx: &BaseTx{}, To: sender2},
			height: 2,
			sender: sender2,
			err:    nil,
		},
		{ // ownership can still move after the option expires
			utx:    &TransferTx{BaseTx: &BaseTx{}, To: sender},
			height: 10,
			sender: sender2,
			err:    nil,
		},
	}
	for i, tv := range tt {
		tc := &TransactionContext{
			Genesis:  g,
			Database: db,
			Height:   tv.height,
			TxID:     ids.Empty,
			Sender:   tv.sender,
			Funds:    tv.funds,
		}
		_, err := tv.utx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	// ownership moved but the creator and terms are untouched
	info, exists, err := GetOptionInfo(db)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("option not found")
	}
	if info.Owner != sender {
		t.Fatalf("unexpected owner %s", info.Owner.Hex())
	}
	if info.Creator != sender {
		t.Fatalf("unexpected creator %s", info.Creator.Hex())
	}
	if !info.Collateral.Equal(Coins{{Denom: "btc", Amount: 1}}) {
		t.Fatalf("unexpected collateral %v", info.Collateral)
	}
	if info.Expires != 5 {
		t.Fatalf("unexpected expiration height %d", info.Expires)
	}
}

func TestTransferTxResult(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	sender, recipient := common.Address{0x1}, common.Address{0x2}
	if err := PutOptionInfo(db, &OptionInfo{
		Creator: sender,
		Owner:   sender,
		Expires: 100,
	}); err != nil {
		t.Fatal(err)
	}

	utx := &TransferTx{BaseTx: &BaseTx{}, To: recipient}
	result, err := utx.Execute(&TransactionContext{
		Genesis:  DefaultGenesis(),
		Database: db,
		Height:   1,
		TxID:     ids.Empty,
		Sender:   sender,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Typ != Transfer {
		t.Fatalf("unexpected result type %q", result.Typ)
	}
	if result.Owner != recipient.Hex() {
		t.Fatalf("unexpected owner %q", result.Owner)
	}
	if len(result.Payments) != 0 {
		t.Fatalf("unexpected payments %v", result.Payments)
	}
}
