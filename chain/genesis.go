// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/optionvm/optionvm/parser"
)

const defaultMagic = 1

type CustomAllocation struct {
	Address common.Address `serialize:"true" json:"address"`
	Denom   string         `serialize:"true" json:"denom"`
	Balance uint64         `serialize:"true" json:"balance"`
}

type Genesis struct {
	// Magic is hardcoded into each transaction so a payload signed for one
	// instance cannot be accepted by another.
	Magic uint64 `serialize:"true" json:"magic"`

	// Allocations
	CustomAllocation []*CustomAllocation `serialize:"true" json:"customAllocation"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic: defaultMagic,
	}
}

func (g *Genesis) Verify() error {
	if g.Magic == 0 {
		return ErrInvalidMagic
	}
	for _, alloc := range g.CustomAllocation {
		if err := parser.CheckDenom(alloc.Denom); err != nil {
			return fmt.Errorf("%w: addr=%s", err, alloc.Address.Hex())
		}
	}
	return nil
}

func (g *Genesis) Load(db database.Database) error {
	start := time.Now()
	defer func() {
		log.Debug("loaded genesis allocations", "t", time.Since(start))
	}()

	for _, alloc := range g.CustomAllocation {
		if err := SetBalance(db, alloc.Address, alloc.Denom, alloc.Balance); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address.Hex(), alloc.Balance)
		}
	}
	return SetHeight(db, 0)
}
