// Package engine holds the domain rules behind the pages: campaign progress,
// crystal redemption, level math, and profile editing. Everything here is
// pure in-memory state; the views render it and the catalog seeds it.
package engine

import "errors"

var (
	// ErrInsufficientBalance is returned when a redemption costs more than the wallet holds.
	ErrInsufficientBalance = errors.New("insufficient crystal balance")

	// ErrAlreadyRedeemed is returned when an offer was already redeemed this session.
	ErrAlreadyRedeemed = errors.New("offer already redeemed")

	// ErrOfferSoldOut is returned when an offer has no supply left.
	ErrOfferSoldOut = errors.New("offer is sold out")

	// ErrAmountOutOfRange is returned when a swap amount is outside the valid window.
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrOfferUnavailable is returned when a token offer is not currently open.
	ErrOfferUnavailable = errors.New("offer unavailable")

	// ErrNotJoined is returned when a campaign task is toggled before joining.
	ErrNotJoined = errors.New("campaign not joined")

	// ErrEmptyName is returned when a profile draft is saved without a name.
	ErrEmptyName = errors.New("profile name must not be empty")
)
