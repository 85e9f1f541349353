// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"
)

var (
	// Tx Correctness
	ErrInvalidMagic     = errors.New("invalid magic")
	ErrInvalidNonce     = errors.New("invalid nonce")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidType      = errors.New("invalid tx type")

	// Funds
	ErrInvalidFunds      = errors.New("invalid funds")
	ErrUnexpectedFunds   = errors.New("unexpected funds attached")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Execution Correctness
	ErrOptionMissing        = errors.New("option missing")
	ErrOptionActive         = errors.New("option already active")
	ErrOptionExpired        = errors.New("option expired")
	ErrOptionNotExpired     = errors.New("option not expired")
	ErrUnauthorized         = errors.New("sender is not authorized")
	ErrCounterOfferMismatch = errors.New("counter offer mismatch")
	ErrRecipientZero        = errors.New("recipient cannot be zero address")
)

// OptionExpiredError reports the expiration height that disallowed the
// operation. It unwraps to ErrOptionExpired.
type OptionExpiredError struct {
	Expires uint64
}

func (e *OptionExpiredError) Error() string {
	return fmt.Sprintf("option expired (expires=%d)", e.Expires)
}

func (e *OptionExpiredError) Unwrap() error { return ErrOptionExpired }

// OptionNotExpiredError reports the expiration height a burn must wait for.
// It unwraps to ErrOptionNotExpired.
type OptionNotExpiredError struct {
	Expires uint64
}

func (e *OptionNotExpiredError) Error() string {
	return fmt.Sprintf("option not expired (expires=%d)", e.Expires)
}

func (e *OptionNotExpiredError) Unwrap() error { return ErrOptionNotExpired }

// CounterOfferMismatchError carries both sides of a failed funds comparison.
// It unwraps to ErrCounterOfferMismatch.
type CounterOfferMismatchError struct {
	Offer        Coins
	CounterOffer Coins
}

func (e *CounterOfferMismatchError) Error() string {
	return fmt.Sprintf("counter offer mismatch (offer=%s, counter offer=%s)", e.Offer, e.CounterOffer)
}

func (e *CounterOfferMismatchError) Unwrap() error { return ErrCounterOfferMismatch }
