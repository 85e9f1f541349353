// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/optionvm/optionvm/parser"
)

// Coin is an amount of a single denomination.
type Coin struct {
	Denom  string `serialize:"true" json:"denom"`
	Amount uint64 `serialize:"true" json:"amount"`
}

func (c Coin) String() string {
	return fmt.Sprintf("%d%s", c.Amount, c.Denom)
}

// Coins is a list of (denomination, amount) pairs. A well-formed list has
// valid denominations, positive amounts, and no duplicate denominations;
// ordering is not significant for equality.
type Coins []Coin

// Verify returns an error if the list is not well-formed. An empty list is
// well-formed.
func (cs Coins) Verify() error {
	seen := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		if err := parser.CheckDenom(c.Denom); err != nil {
			return err
		}
		if c.Amount == 0 {
			return fmt.Errorf("%w: zero amount for %q", ErrInvalidFunds, c.Denom)
		}
		if _, ok := seen[c.Denom]; ok {
			return fmt.Errorf("%w: duplicate denomination %q", ErrInvalidFunds, c.Denom)
		}
		seen[c.Denom] = struct{}{}
	}
	return nil
}

// Canonical returns a copy sorted by denomination with duplicate
// denominations merged and zero amounts dropped.
func (cs Coins) Canonical() Coins {
	merged := make(map[string]uint64, len(cs))
	for _, c := range cs {
		merged[c.Denom] += c.Amount
	}
	out := make(Coins, 0, len(merged))
	for denom, amount := range merged {
		if amount == 0 {
			continue
		}
		out = append(out, Coin{Denom: denom, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Denom < out[j].Denom })
	return out
}

// Equal reports whether both lists carry the same amounts per denomination:
// every denomination present in one must appear with an identical amount in
// the other, with no extras on either side.
func (cs Coins) Equal(other Coins) bool {
	a, b := cs.Canonical(), other.Canonical()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (cs Coins) Empty() bool { return len(cs) == 0 }

func (cs Coins) Copy() Coins {
	if cs == nil {
		return nil
	}
	out := make(Coins, len(cs))
	copy(out, cs)
	return out
}

func (cs Coins) String() string {
	if len(cs) == 0 {
		return "[]"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// ParseCoin parses a single coin string of the form "100gold".
func ParseCoin(s string) (Coin, error) {
	amount, denom, err := parser.ParseAmount(s)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: denom, Amount: amount}, nil
}

// ParseCoins parses a comma-separated coin list of the form
// "100gold,20silver". An empty string parses to an empty list.
func ParseCoins(s string) (Coins, error) {
	if len(s) == 0 {
		return Coins{}, nil
	}
	parts := strings.Split(s, ",")
	cs := make(Coins, len(parts))
	for i, p := range parts {
		c, err := ParseCoin(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	if err := cs.Verify(); err != nil {
		return nil, err
	}
	return cs, nil
}
