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

func TestOpenTx(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	counterOffer := Coins{{Denom: "eth", Amount: 40}}
	collateral := Coins{{Denom: "btc", Amount: 1}}

	tt := []struct {
		utx    UnsignedTransaction
		height uint64
		funds  Coins
		err    error
	}{
		{ // invalid when the expiration height has passed
			utx:    &OpenTx{BaseTx: &BaseTx{}, CounterOffer: counterOffer, Expires: 1},
			height: 1,
			funds:  collateral,
			err:    ErrOptionExpired,
		},
		{ // a zero expiration height can never be open
			utx:    &OpenTx{BaseTx: &BaseTx{}, CounterOffer: counterOffer},
			height: 0,
			funds:  collateral,
			err:    ErrOptionExpired,
		},
		{ // valid at the smallest unexpired height
			utx:    &OpenTx{BaseTx: &BaseTx{}, CounterOffer: counterOffer, Expires: 1},
			height: 0,
			funds:  collateral,
			err:    nil,
		},
		{ // invalid while another option is live
			utx:    &OpenTx{BaseTx: &BaseTx{}, CounterOffer: counterOffer, Expires: 100},
			height: 0,
			funds:  collateral,
			err:    ErrOptionActive,
		},
	}
	for i, tv := range tt {
		tc := &TransactionContext{
			Genesis:  g,
			Database: db,
			Height:   tv.height,
			TxID:     ids.Empty,
			Sender:   sender,
			Funds:    tv.funds,
		}
		_, err := tv.utx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	info, exists, err := GetOptionInfo(db)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("option not found")
	}
	if info.Creator != sender || info.Owner != sender {
		t.Fatalf("unexpected parties %+v", info)
	}
	if !info.Collateral.Equal(collateral) || !info.CounterOffer.Equal(counterOffer) {
		t.Fatalf("unexpected terms %+v", info)
	}
	if info.Expires != 1 {
		t.Fatalf("unexpected expiration height %d", info.Expires)
	}
}

func TestOpenTxResult(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	sender := common.Address{0x1}
	utx := &OpenTx{
		BaseTx:       &BaseTx{},
		CounterOffer: Coins{{Denom: "eth", Amount: 40}},
		Expires:      100,
	}
	result, err := utx.Execute(&TransactionContext{
		Genesis:  DefaultGenesis(),
		Database: db,
		Height:   0,
		TxID:     ids.Empty,
		Sender:   sender,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Typ != Open {
		t.Fatalf("unexpected result type %q", result.Typ)
	}
	if result.Owner != sender.Hex() {
		t.Fatalf("unexpected owner %q", result.Owner)
	}
	if len(result.Payments) != 0 {
		t.Fatalf("unexpected payments %v", result.Payments)
	}

	// options with no collateral are allowed
	info, exists, err := GetOptionInfo(db)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("option not found")
	}
	if len(info.Collateral) != 0 {
		t.Fatalf("unexpected collateral %v", info.Collateral)
	}
}

func TestOpenTxExecuteBase(t *testing.T) {
	t.Parallel()

	g := DefaultGenesis()
	tt := []struct {
		utx *OpenTx
		err error
	}{
		{
			utx: &OpenTx{
				BaseTx:       &BaseTx{Magic: g.Magic},
				CounterOffer: Coins{{Denom: "eth", Amount: 40}},
				Expires:      100,
			},
		},
		{
			utx: &OpenTx{
				BaseTx:       &BaseTx{},
				CounterOffer: Coins{{Denom: "eth", Amount: 40}},
			},
			err: ErrInvalidMagic,
		},
		{ // counter-offer coins must be well formed
			utx: &OpenTx{
				BaseTx:       &BaseTx{Magic: g.Magic},
				CounterOffer: Coins{{Denom: "eth", Amount: 0}},
			},
			err: ErrInvalidFunds,
		},
		{ // counter-offer denominations must be unique
			utx: &OpenTx{
				BaseTx: &BaseTx{Magic: g.Magic},
				CounterOffer: Coins{
					{Denom: "eth", Amount: 40},
					{Denom: "eth", Amount: 1},
				},
			},
			err: ErrInvalidFunds,
		},
	}
	for i, tv := range tt {
		err := tv.utx.ExecuteBase(g)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.ExecuteBase err expected %v, got %v", i, tv.err, err)
		}
	}
}
