// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// OptionInfo is the single persisted option record. Collateral and
// CounterOffer are set at open and never mutated; Owner is reassigned by
// transfer; Creator never changes.
type OptionInfo struct {
	Creator      common.Address `serialize:"true" json:"creator"`
	Owner        common.Address `serialize:"true" json:"owner"`
	Collateral   Coins          `serialize:"true" json:"collateral"`
	CounterOffer Coins          `serialize:"true" json:"counterOffer"`

	// Expires is the height at which execution is disallowed and burn
	// becomes allowed.
	Expires uint64 `serialize:"true" json:"expires"`
}

func (i *OptionInfo) Copy() *OptionInfo {
	return &OptionInfo{
		Creator:      i.Creator,
		Owner:        i.Owner,
		Collateral:   i.Collateral.Copy(),
		CounterOffer: i.CounterOffer.Copy(),
		Expires:      i.Expires,
	}
}
