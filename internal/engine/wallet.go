package engine

import (
	"github.com/mireldan/crystalquest/internal/models"
	"github.com/shopspring/decimal"
)

// Wallet is the session-scoped crystal balance plus the set of offers
// redeemed this session. Successful redemptions and swaps decrement the
// balance; there is no external ledger behind it.
type Wallet struct {
	balance  int64
	redeemed map[int64]bool
	history  []models.Redemption
}

// NewWallet returns a wallet holding the given starting balance.
func NewWallet(balance int64) *Wallet {
	return &Wallet{
		balance:  balance,
		redeemed: make(map[int64]bool),
	}
}

// Balance returns the current crystal balance.
func (w *Wallet) Balance() int64 { return w.balance }

// CanAfford reports whether the balance covers cost.
func (w *Wallet) CanAfford(cost int64) bool { return w.balance >= cost }

// Redeemed reports whether the offer id was redeemed this session.
func (w *Wallet) Redeemed(id int64) bool { return w.redeemed[id] }

// History returns the redemptions recorded this session, oldest first.
func (w *Wallet) History() []models.Redemption { return w.history }

// IsSoldOut reports whether a whitelist offer has exhausted its supply.
func IsSoldOut(o models.WhitelistOffer) bool { return o.Claimed >= o.Supply }

// RedeemWhitelist spends o.Cost crystals for a whitelist spot. A second call
// for the same offer fails with ErrAlreadyRedeemed and changes nothing.
func (w *Wallet) RedeemWhitelist(o models.WhitelistOffer) error {
	if w.redeemed[o.ID] {
		return ErrAlreadyRedeemed
	}
	if IsSoldOut(o) {
		return ErrOfferSoldOut
	}
	if !w.CanAfford(o.Cost) {
		return ErrInsufficientBalance
	}
	w.redeemed[o.ID] = true
	w.balance -= o.Cost
	w.history = append(w.history, models.Redemption{
		Kind:   "NFT Whitelist",
		Item:   o.Name,
		Cost:   o.Cost,
		Status: "Confirmed",
	})
	return nil
}

// SwapTokens exchanges amount crystals for tokens at the offer's rate.
// amount must satisfy minAmount <= amount <= min(maxAmount, balance).
// The returned value is amount * exchangeRate, exact for fractional rates.
func (w *Wallet) SwapTokens(o models.TokenOffer, amount int64) (decimal.Decimal, error) {
	if !o.Available {
		return decimal.Zero, ErrOfferUnavailable
	}
	max := o.MaxAmount
	if w.balance < max {
		max = w.balance
	}
	if amount < o.MinAmount || amount > max {
		return decimal.Zero, ErrAmountOutOfRange
	}
	out := decimal.NewFromInt(amount).Mul(o.ExchangeRate)
	w.balance -= amount
	w.history = append(w.history, models.Redemption{
		Kind:   "Token Swap",
		Item:   out.String() + " " + o.Symbol,
		Cost:   amount,
		Status: "Completed",
	})
	return out, nil
}
