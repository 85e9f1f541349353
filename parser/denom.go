// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines denomination and coin parsing operations.
package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinDenomSize = 3
	MaxDenomSize = 10

	ByteDelimiter byte = '/'
)

var (
	ErrInvalidDenom  = errors.New("denominations must be ^[a-z]{3,10}$")
	ErrInvalidAmount = errors.New("amounts must be positive base-10 integers")

	reg *regexp.Regexp
)

func init() {
	reg = regexp.MustCompile("^[a-z]{3,10}$")
}

// CheckDenom returns an error if the denomination format is invalid.
func CheckDenom(denom string) error {
	if !reg.MatchString(denom) {
		return ErrInvalidDenom
	}
	return nil
}

// ParseAmount splits a coin string of the form "100gold" into its amount
// and denomination.
func ParseAmount(s string) (amount uint64, denom string, err error) {
	idx := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if idx <= 0 {
		return 0, "", ErrInvalidAmount
	}
	amount, err = strconv.ParseUint(s[:idx], 10, 64)
	if err != nil {
		return 0, "", err
	}
	if amount == 0 {
		return 0, "", ErrInvalidAmount
	}
	denom = s[idx:]
	if err := CheckDenom(denom); err != nil {
		return 0, "", err
	}
	return amount, denom, nil
}
