// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"crypto/ecdsa"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/crypto"
)

func createTestTx(t *testing.T, utx UnsignedTransaction, priv *ecdsa.PrivateKey) *Transaction {
	t.Helper()

	dh, err := DigestHash(utx)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}
	tx := NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		t.Fatal(err)
	}
	return tx
}

func TestTransaction(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	g := DefaultGenesis()
	found := ids.NewSet(3)
	for i := uint64(1); i <= 3; i++ {
		tx := createTestTx(t, &OpenTx{
			BaseTx:       &BaseTx{Magic: g.Magic},
			CounterOffer: Coins{{Denom: "eth", Amount: 40}},
			Expires:      i,
		}, priv)
		if found.Contains(tx.ID()) {
			t.Fatal("duplicate transaction ID")
		}
		found.Add(tx.ID())

		if tx.Sender() != sender {
			t.Fatalf("unexpected sender %s, expected %s", tx.Sender().Hex(), sender.Hex())
		}
	}
}

func TestTransactionErrInvalidSignature(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	g := DefaultGenesis()

	utx := &OpenTx{
		BaseTx:       &BaseTx{Magic: g.Magic},
		CounterOffer: Coins{{Denom: "eth", Amount: 40}},
		Expires:      100,
	}
	dh, err := DigestHash(utx)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}

	tx := NewTx(utx, []byte("invalid"))
	if err := tx.Init(); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("unexpected tx.Init error %v, expected %v", err, ErrInvalidSignature)
	}

	// A valid signature over different contents recovers a different sender.
	other := utx.Copy()
	other.SetNonce(1)
	tx = NewTx(other, sig)
	if err := tx.Init(); err != nil {
		t.Fatal(err)
	}
	if tx.Sender() == crypto.PubkeyToAddress(priv.PublicKey) {
		t.Fatal("tampered payload recovered the signer")
	}
}

func TestTransactionExecute(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	creator := crypto.PubkeyToAddress(priv.PublicKey)

	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	owner := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	g.CustomAllocation = []*CustomAllocation{
		{Address: creator, Denom: "btc", Balance: 10},
		{Address: owner, Denom: "eth", Balance: 100},
	}
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}

	collateral := Coins{{Denom: "btc", Amount: 1}}
	counterOffer := Coins{{Denom: "eth", Amount: 40}}

	// lock the collateral
	open := createTestTx(t, &OpenTx{
		BaseTx:       &BaseTx{Magic: g.Magic, Funds: collateral},
		CounterOffer: counterOffer,
		Expires:      5,
	}, priv)
	if _, err := open.Execute(g, db, 1); err != nil {
		t.Fatal(err)
	}
	if b, err := GetBalance(db, creator, "btc"); b != 9 || err != nil {
		t.Fatalf("unexpected balance %d, err %v", b, err)
	}
	if b, err := GetBalance(db, EscrowAddress(), "btc"); b != 1 || err != nil {
		t.Fatalf("unexpected balance %d, err %v", b, err)
	}

	// an accepted transaction cannot be replayed
	if _, err := open.Execute(g, db, 2); !errors.Is(err, ErrInvalidNonce) {
		t.Fatalf("unexpected error %v, expected %v", err, ErrInvalidNonce)
	}

	// hand the option over
	transfer := createTestTx(t, &TransferTx{
		BaseTx: &BaseTx{Magic: g.Magic, Nonce: 1},
		To:     owner,
	}, priv)
	if _, err := transfer.Execute(g, db, 2); err != nil {
		t.Fatal(err)
	}

	// settle
	execute := createTestTx(t, &ExecuteTx{
		BaseTx: &BaseTx{Magic: g.Magic, Funds: counterOffer},
	}, priv2)
	result, err := execute.Execute(g, db, 3)
	if err != nil {
		t.Fatal(err)
	}
	if result.Typ != Execute {
		t.Fatalf("unexpected result type %q", result.Typ)
	}

	// the counter-offer reached the creator and the collateral reached the
	// owner, with nothing left in escrow
	if b, err := GetBalance(db, creator, "btc"); b != 9 || err != nil {
		t.Fatalf("unexpected balance %d, err %v", b, err)
	}
	if b, err := GetBalance(db, creator, "eth"); b != 40 || err != nil {
		t.Fatalf("unexpected balance %d, err %v", b, err)
	}
	if b, err := GetBalance(db, owner, "btc"); b != 1 || err != nil {
		t.Fatalf("unexpected balance %d, err %v", b, err)
	}
	if b, err := GetBalance(db, owner, "eth"); b != 60 || err != nil {
		t.Fatalf("unexpected balance %d, err %v", b, err)
	}
	escrowed, err := GetBalances(db, EscrowAddress())
	if err != nil {
		t.Fatal(err)
	}
	if len(escrowed) != 0 {
		t.Fatalf("unexpected escrow balances %v", escrowed)
	}
}

func TestTransactionExecuteErrors(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	g := DefaultGenesis()

	tt := []struct {
		createTx func() *Transaction
		err      error
	}{
		{ // magic must match the genesis
			createTx: func() *Transaction {
				return createTestTx(t, &OpenTx{
					BaseTx:       &BaseTx{Magic: g.Magic + 1},
					CounterOffer: Coins{{Denom: "eth", Amount: 40}},
					Expires:      100,
				}, priv)
			},
			err: ErrInvalidMagic,
		},
		{ // a stale nonce is rejected before any state change
			createTx: func() *Transaction {
				return createTestTx(t, &OpenTx{
					BaseTx:       &BaseTx{Magic: g.Magic, Nonce: 7},
					CounterOffer: Coins{{Denom: "eth", Amount: 40}},
					Expires:      100,
				}, priv)
			},
			err: ErrInvalidNonce,
		},
		{ // attached funds must be covered by the sender's balance
			createTx: func() *Transaction {
				return createTestTx(t, &OpenTx{
					BaseTx: &BaseTx{
						Magic: g.Magic,
						Funds: Coins{{Denom: "btc", Amount: 1}},
					},
					CounterOffer: Coins{{Denom: "eth", Amount: 40}},
					Expires:      100,
				}, priv)
			},
			err: ErrInsufficientFunds,
		},
	}
	for i, tv := range tt {
		db := memdb.New()
		tx := tv.createTx()
		if _, err := tx.Execute(g, db, 1); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: unexpected tx.Execute error %v, expected %v", i, err, tv.err)
		}
		db.Close()
	}
}
