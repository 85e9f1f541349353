// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/optionvm/optionvm/chain"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type IssueTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueTxReply struct {
	TxID    ids.ID                   `serialize:"true" json:"txId"`
	Success bool                     `serialize:"true" json:"success"`
	Result  *chain.TransactionResult `serialize:"true" json:"result,omitempty"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	results, errs := svc.vm.Submit(tx)
	if len(errs) > 0 {
		return errs[0]
	}
	reply.Success = true
	reply.Result = results[0]
	return nil
}

type OptionReply struct {
	Exists bool              `serialize:"true" json:"exists"`
	Info   *chain.OptionInfo `serialize:"true" json:"info,omitempty"`
}

func (svc *PublicService) Option(_ *http.Request, _ *struct{}, reply *OptionReply) error {
	info, exists, err := chain.GetOptionInfo(svc.vm.db)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Info = info
	return nil
}

type BalanceArgs struct {
	Address string `serialize:"true" json:"address"`
}

type BalanceReply struct {
	Balance chain.Coins `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	paddr := common.HexToAddress(args.Address)
	bals, err := chain.GetBalances(svc.vm.db, paddr)
	if err != nil {
		return err
	}
	reply.Balance = bals
	return err
}

type NonceArgs struct {
	Address string `serialize:"true" json:"address"`
}

type NonceReply struct {
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (svc *PublicService) Nonce(_ *http.Request, args *NonceArgs, reply *NonceReply) error {
	paddr := common.HexToAddress(args.Address)
	nonce, err := chain.GetNonce(svc.vm.db, paddr)
	if err != nil {
		return err
	}
	reply.Nonce = nonce
	return err
}

type HeightReply struct {
	Height uint64 `serialize:"true" json:"height"`
}

func (svc *PublicService) Height(_ *http.Request, _ *struct{}, reply *HeightReply) error {
	height, err := chain.GetHeight(svc.vm.db)
	if err != nil {
		return err
	}
	reply.Height = height
	return nil
}

type RecentActivityReply struct {
	Activity []*chain.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *RecentActivityReply) error {
	reply.Activity = svc.vm.RecentActivity()
	return nil
}
