// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

var zeroAddress = (common.Address{})

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	digestHash []byte
	bytes      []byte
	id         ids.ID
	size       uint64
	sender     common.Address
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

func (t *Transaction) Copy() *Transaction {
	sig := make([]byte, len(t.Signature))
	copy(sig, t.Signature)
	return &Transaction{
		UnsignedTransaction: t.UnsignedTransaction.Copy(),
		Signature:           sig,
	}
}

// DigestHash returns the hash clients sign to authorize an operation.
func DigestHash(utx UnsignedTransaction) ([]byte, error) {
	b, err := Marshal(utx)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(b), nil
}

func (t *Transaction) Init() error {
	dh, err := DigestHash(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.digestHash = dh

	// Derive sender
	pk, err := DeriveSender(t.digestHash, t.Signature)
	if err != nil {
		return err
	}
	t.sender = crypto.PubkeyToAddress(*pk)

	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	h := sha3.Sum256(t.bytes)
	id, err := ids.ToID(h[:])
	if err != nil {
		return err
	}
	t.id = id

	t.size = uint64(len(t.bytes))
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) DigestHash() []byte { return t.digestHash }

func (t *Transaction) Sender() common.Address { return t.sender }

// Execute runs the transaction at the given height. Attached funds move
// from the sender into escrow before the operation is dispatched and any
// resulting payments settle out of escrow afterwards. The caller is
// responsible for discarding all writes when an error is returned.
func (t *Transaction) Execute(g *Genesis, db database.Database, height uint64) (*TransactionResult, error) {
	if err := t.UnsignedTransaction.ExecuteBase(g); err != nil {
		return nil, err
	}

	// Each sender's transactions are ordered by an account nonce so a
	// signed payload cannot be replayed.
	nonce, err := GetNonce(db, t.sender)
	if err != nil {
		return nil, err
	}
	if t.GetNonce() != nonce {
		return nil, ErrInvalidNonce
	}
	if err := SetNonce(db, t.sender, nonce+1); err != nil {
		return nil, err
	}

	funds := t.GetFunds()
	if err := MoveCoins(db, t.sender, escrowAddress, funds); err != nil {
		return nil, err
	}

	result, err := t.UnsignedTransaction.Execute(&TransactionContext{
		Genesis:  g,
		Database: db,
		Height:   height,
		TxID:     t.id,
		Sender:   t.sender,
		Funds:    funds,
	})
	if err != nil {
		return nil, err
	}

	for _, p := range result.Payments {
		if err := MoveCoins(db, escrowAddress, p.To, p.Amount); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (t *Transaction) Activity() *Activity {
	activity := t.UnsignedTransaction.Activity()
	activity.Sender = t.sender.Hex()
	activity.TxID = t.id
	return activity
}
