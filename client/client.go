// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "optionvm" client SDK.
package client

import (
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/optionvm/optionvm/chain"
	"github.com/optionvm/optionvm/vm"
)

// Client defines optionvm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)

	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)
	// Height fetches the height of the last accepted transaction.
	Height() (uint64, error)

	// Returns the option record, if one is held in escrow.
	Option() (bool, *chain.OptionInfo, error)
	// Balance returns the coins held by an account.
	Balance(addr common.Address) (chain.Coins, error)
	// Nonce returns the next expected nonce for an account.
	Nonce(addr common.Address) (uint64, error)

	// Issues the transaction and returns the settlement result.
	IssueTx(d []byte) (ids.ID, *chain.TransactionResult, error)

	// RecentActivity returns the latest accepted transactions, newest first.
	RecentActivity() ([]*chain.Activity, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		"optionvm",
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Height() (uint64, error) {
	resp := new(vm.HeightReply)
	if err := cli.req.SendRequest(
		"height",
		nil,
		resp,
	); err != nil {
		color.Red("failed to get height %v", err)
		return 0, err
	}
	return resp.Height, nil
}

func (cli *client) Option() (bool, *chain.OptionInfo, error) {
	resp := new(vm.OptionReply)
	if err := cli.req.SendRequest(
		"option",
		nil,
		resp,
	); err != nil {
		return false, nil, err
	}
	return resp.Exists, resp.Info, nil
}

func (cli *client) Balance(addr common.Address) (chain.Coins, error) {
	resp := new(vm.BalanceReply)
	if err := cli.req.SendRequest(
		"balance",
		&vm.BalanceArgs{
			Address: addr.Hex(),
		},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Balance, nil
}

func (cli *client) Nonce(addr common.Address) (uint64, error) {
	resp := new(vm.NonceReply)
	if err := cli.req.SendRequest(
		"nonce",
		&vm.NonceArgs{
			Address: addr.Hex(),
		},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Nonce, nil
}

func (cli *client) IssueTx(d []byte) (ids.ID, *chain.TransactionResult, error) {
	resp := new(vm.IssueTxReply)
	if err := cli.req.SendRequest(
		"issueTx",
		&vm.IssueTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, nil, err
	}
	return resp.TxID, resp.Result, nil
}

func (cli *client) RecentActivity() ([]*chain.Activity, error) {
	resp := new(vm.RecentActivityReply)
	err := cli.req.SendRequest(
		"recentActivity",
		nil,
		resp,
	)
	return resp.Activity, err
}

type Op struct {
	info bool
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to print out the option record after issuance.
func WithInfo() OpOption {
	return func(op *Op) { op.info = true }
}
