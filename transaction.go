package bankbook

import (
	"fmt"

	"github.com/etnz/bankbook/date"
)

// Transaction is one immutable ledger entry: an amount on a calendar day.
// Exempt transactions are synthesized by the account itself (interest, fees)
// and bypass the admission limits that apply to customer entries.
type Transaction struct {
	amount Money
	day    date.Date
	exempt bool
}

// NewTransaction creates a transaction. A zero day defaults to today.
func NewTransaction(amount Money, day date.Date, exempt bool) Transaction {
	if day.IsZero() {
		day = date.Today()
	}
	return Transaction{amount: amount, day: day, exempt: exempt}
}

// Amount returns the transaction amount, positive or negative.
func (t Transaction) Amount() Money { return t.amount }

// When returns the calendar day of the transaction.
func (t Transaction) When() date.Date { return t.day }

// IsExempt reports whether the transaction bypasses count limits.
func (t Transaction) IsExempt() bool { return t.exempt }

// CheckBalance reports whether applying t to the given balance keeps the
// account at or above zero.
func (t Transaction) CheckBalance(balance Money) bool {
	return !balance.Add(t.amount).IsNegative()
}

// SameDay reports whether both transactions fall on the same calendar day.
func (t Transaction) SameDay(o Transaction) bool { return t.day.SameDay(o.day) }

// SameMonth reports whether both transactions fall in the same calendar month.
func (t Transaction) SameMonth(o Transaction) bool { return t.day.SameMonth(o.day) }

// Before reports whether t is dated strictly before o.
func (t Transaction) Before(o Transaction) bool { return t.day.Before(o.day) }

// String formats the day and amount, e.g. "2025-01-10, $50.00".
func (t Transaction) String() string {
	return fmt.Sprintf("%s, %s", t.day, t.amount)
}
