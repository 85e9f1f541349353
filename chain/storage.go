// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	smath "github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/optionvm/optionvm/parser"
)

// escrowAddress holds funds locked by accepted transactions until a
// settlement pays them out. No private key hashes to it.
var escrowAddress = common.BytesToAddress(crypto.Keccak256([]byte("optionvm/escrow"))[12:])

func EscrowAddress() common.Address {
	return escrowAddress
}

// 0x0/ (the option record slot)
// 0x1/ (balances)
//   -> [address]/[denom]
// 0x2/ (nonces)
//   -> [address]
// 0x3/ (height)
const (
	optionPrefix  = 0x0
	balancePrefix = 0x1
	noncePrefix   = 0x2
	heightPrefix  = 0x3
)

func OptionInfoKey() []byte {
	return []byte{optionPrefix}
}

func BalanceKey(addr common.Address, denom string) []byte {
	b := append([]byte{balancePrefix, parser.ByteDelimiter}, addr[:]...)
	b = append(b, parser.ByteDelimiter)
	return append(b, denom...)
}

func NonceKey(addr common.Address) []byte {
	return append([]byte{noncePrefix, parser.ByteDelimiter}, addr[:]...)
}

func HeightKey() []byte {
	return []byte{heightPrefix}
}

// GetOptionInfo returns the option record, or exists=false when the slot is
// empty. The record is never partially populated.
func GetOptionInfo(db database.Database) (*OptionInfo, bool, error) {
	k := OptionInfoKey()
	has, err := db.Has(k)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return nil, false, err
	}
	var i OptionInfo
	if _, err := Unmarshal(v, &i); err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

// PutOptionInfo overwrites the option record slot.
func PutOptionInfo(db database.Database, i *OptionInfo) error {
	b, err := Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(OptionInfoKey(), b)
}

// DeleteOptionInfo clears the option record slot. Clearing an empty slot is
// not an error.
func DeleteOptionInfo(db database.Database) error {
	return db.Delete(OptionInfoKey())
}

func HasOption(db database.Database) (bool, error) {
	return db.Has(OptionInfoKey())
}

func GetBalance(db database.Database, addr common.Address, denom string) (uint64, error) {
	v, err := db.Get(BalanceKey(addr, denom))
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// SetBalance stores the balance for (addr, denom). A zero balance deletes
// the key so balance iteration only ever surfaces positive amounts.
func SetBalance(db database.Database, addr common.Address, denom string, bal uint64) error {
	k := BalanceKey(addr, denom)
	if bal == 0 {
		return db.Delete(k)
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, bal)
	return db.Put(k, b)
}

// ModifyBalance adds or subtracts change for (addr, denom) and returns the
// new balance.
func ModifyBalance(db database.Database, addr common.Address, denom string, add bool, change uint64) (uint64, error) {
	b, err := GetBalance(db, addr, denom)
	if err != nil {
		return 0, err
	}
	var (
		n     uint64
		xflow bool
	)
	if add {
		n, xflow = smath.SafeAdd(b, change)
	} else {
		n, xflow = smath.SafeSub(b, change)
	}
	if xflow {
		return 0, fmt.Errorf(
			"%w: addr=%s denom=%s bal=%d change=%d",
			ErrInsufficientFunds, addr.Hex(), denom, b, change,
		)
	}
	return n, SetBalance(db, addr, denom, n)
}

// MoveCoins moves every coin in amount from one account to the other.
func MoveCoins(db database.Database, from common.Address, to common.Address, amount Coins) error {
	for _, c := range amount {
		if _, err := ModifyBalance(db, from, c.Denom, false, c.Amount); err != nil {
			return err
		}
		if _, err := ModifyBalance(db, to, c.Denom, true, c.Amount); err != nil {
			return err
		}
	}
	return nil
}

// GetBalances returns every positive balance held by addr, sorted by
// denomination.
func GetBalances(db database.Database, addr common.Address) (Coins, error) {
	baseKey := BalanceKey(addr, "")
	cursor := db.NewIteratorWithPrefix(baseKey)
	defer cursor.Release()

	cs := Coins{}
	for cursor.Next() {
		k, v := cursor.Key(), cursor.Value()
		cs = append(cs, Coin{
			Denom:  string(k[len(baseKey):]),
			Amount: binary.BigEndian.Uint64(v),
		})
	}
	return cs, cursor.Error()
}

func GetNonce(db database.Database, addr common.Address) (uint64, error) {
	v, err := db.Get(NonceKey(addr))
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func SetNonce(db database.Database, addr common.Address, nonce uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, nonce)
	return db.Put(NonceKey(addr), b)
}

// GetHeight returns the count of accepted transactions. A fresh database is
// at height 0.
func GetHeight(db database.Database) (uint64, error) {
	v, err := db.Get(HeightKey())
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func SetHeight(db database.Database, height uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, height)
	return db.Put(HeightKey(), b)
}
