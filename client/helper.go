// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"crypto/ecdsa"
	"encoding/json"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"

	"github.com/optionvm/optionvm/chain"
)

// Signs and issues the transaction.
func SignIssueTx(
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, result *chain.TransactionResult, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis()
	if err != nil {
		return ids.Empty, nil, err
	}

	sender := crypto.PubkeyToAddress(priv.PublicKey)
	nonce, err := cli.Nonce(sender)
	if err != nil {
		return ids.Empty, nil, err
	}

	utx.SetMagic(g.Magic)
	utx.SetNonce(nonce)

	dh, err := chain.DigestHash(utx)
	if err != nil {
		return ids.Empty, nil, err
	}

	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return ids.Empty, nil, err
	}

	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		return ids.Empty, nil, err
	}

	color.Yellow(
		"issuing tx %s (sender=%s, nonce=%d, funds=%s)",
		tx.ID(), sender.Hex(), tx.GetNonce(), tx.GetFunds(),
	)
	txID, result, err = cli.IssueTx(tx.Bytes())
	if err != nil {
		return ids.Empty, nil, err
	}
	color.Green("transaction %s accepted", txID)

	if ret.info {
		exists, info, err := cli.Option()
		if err != nil {
			color.Red("cannot get option info %v", err)
			return ids.Empty, nil, err
		}
		if !exists {
			color.Blue("no option is held in escrow")
		} else {
			PPOption(info)
		}
	}

	return txID, result, nil
}

// PPOption pretty prints the option record.
func PPOption(info *chain.OptionInfo) {
	color.Blue(
		"option: creator=%s owner=%s collateral=%s counter offer=%s expires=%d",
		info.Creator.Hex(), info.Owner.Hex(),
		info.Collateral, info.CounterOffer, info.Expires,
	)
}

// PPResult pretty prints a settlement result.
func PPResult(result *chain.TransactionResult) {
	if result == nil {
		return
	}
	if len(result.Owner) > 0 {
		color.Green("%s: owner=%s", result.Typ, result.Owner)
	}
	for _, p := range result.Payments {
		color.Green("%s: paid %s to %s", result.Typ, p.Amount, p.To.Hex())
	}
}

// PPActivity pretty prints recent activity.
func PPActivity(a []*chain.Activity) error {
	for _, item := range a {
		b, err := json.Marshal(item)
		if err != nil {
			return err
		}
		color.Cyan(string(b))
	}
	return nil
}
