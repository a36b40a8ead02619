package bankbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/bankbook/date"
	"github.com/shopspring/decimal"
)

// AccountType identifies the policy an account runs under.
type AccountType int

const (
	// Savings earns high interest but caps the number of customer
	// transactions per day and per month.
	Savings AccountType = iota
	// Checking earns low interest and charges a fee when the balance is low.
	Checking
)

func (t AccountType) String() string {
	switch t {
	case Savings:
		return "Savings"
	case Checking:
		return "Checking"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(s) {
	case "savings":
		return Savings, nil
	case "checking":
		return Checking, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

// policy bundles the per-type rules consulted during admission and
// assessment. Zero limits mean unlimited; a zero threshold disables fees.
type policy struct {
	interestRate decimal.Decimal
	dailyLimit   int
	monthlyLimit int
	feeThreshold Money
	lowFee       Money
	charges      bool
}

func (t AccountType) policy() policy {
	switch t {
	case Savings:
		return policy{
			interestRate: decimal.RequireFromString("0.025"),
			dailyLimit:   2,
			monthlyLimit: 5,
		}
	case Checking:
		return policy{
			interestRate: decimal.RequireFromString("0.0015"),
			feeThreshold: M(100),
			lowFee:       M(-10),
			charges:      true,
		}
	default:
		panic(fmt.Sprintf("unknown account type %d", t))
	}
}

// Account holds the admitted transaction history for one account number.
//
// The history is append-only: every mutation goes through Add, and a
// rejected transaction leaves the account exactly as it was.
type Account struct {
	number       int64
	kind         AccountType
	transactions []Transaction
	latest       Transaction // running max by date among admitted transactions
	hasLatest    bool
}

func newAccount(kind AccountType, number int64) *Account {
	return &Account{number: number, kind: kind}
}

// Number returns the bank-assigned account number.
func (a *Account) Number() int64 { return a.number }

// Kind returns the account type.
func (a *Account) Kind() AccountType { return a.kind }

// Balance sums the amounts of all admitted transactions.
//
// A cached balance field updated on admission would be faster, but summing
// the history keeps the balance always in sync with the transactions.
func (a *Account) Balance() Money {
	var sum Money
	for _, t := range a.transactions {
		sum = sum.Add(t.Amount())
	}
	return sum
}

// Latest returns the most recently dated admitted transaction, if any.
func (a *Account) Latest() (Transaction, bool) {
	return a.latest, a.hasLatest
}

// Transactions returns the history sorted by date, oldest first. Entries on
// the same day keep their admission order. The stored order is not mutated.
func (a *Account) Transactions() []Transaction {
	sorted := slices.Clone(a.transactions)
	slices.SortStableFunc(sorted, func(x, y Transaction) int {
		switch {
		case x.Before(y):
			return -1
		case y.Before(x):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Add checks a pending transaction against the account rules and appends it
// to the history when every check passes.
//
// It returns ErrOverdraw when a non-exempt transaction would drive the
// balance negative, ErrTransactionLimit when the account type's daily or
// monthly count is reached, and a *SequenceError when the transaction is
// dated before the latest admitted one.
func (a *Account) Add(t Transaction) error {
	if !t.IsExempt() {
		if !t.CheckBalance(a.Balance()) {
			return ErrOverdraw
		}
		if !a.withinLimits(t) {
			return ErrTransactionLimit
		}
	}
	if a.hasLatest && t.When().Before(a.latest.When()) {
		return &SequenceError{Latest: a.latest.When()}
	}
	a.transactions = append(a.transactions, t)
	if !a.hasLatest || t.When().After(a.latest.When()) {
		a.latest = t
		a.hasLatest = true
	}
	return nil
}

// withinLimits counts the non-exempt transactions sharing the pending
// transaction's calendar day and month against the type's limits.
func (a *Account) withinLimits(t Transaction) bool {
	p := a.kind.policy()
	if p.dailyLimit == 0 && p.monthlyLimit == 0 {
		return true
	}
	var today, thisMonth int
	for _, prev := range a.transactions {
		if prev.IsExempt() {
			continue
		}
		if prev.SameDay(t) {
			today++
		}
		if prev.SameMonth(t) {
			thisMonth++
		}
	}
	return today < p.dailyLimit && thisMonth < p.monthlyLimit
}

// AssessInterestAndFees admits an exempt interest transaction of
// balance times the account's rate, dated on the given day, then applies the
// account type's fee policy. Interest runs strictly before fees so the fee
// threshold sees the post-interest balance.
//
// At most one assessment per calendar month: when an exempt transaction
// already exists in that month the run is refused with a *SequenceError.
// A zero day defaults to today.
func (a *Account) AssessInterestAndFees(on date.Date) error {
	if on.IsZero() {
		on = date.Today()
	}
	for _, prev := range a.transactions {
		if prev.IsExempt() && prev.When().SameMonth(on) {
			return &SequenceError{Latest: prev.When()}
		}
	}
	p := a.kind.policy()
	interest := NewTransaction(a.Balance().MulRate(p.interestRate), on, true)
	if err := a.Add(interest); err != nil {
		return err
	}
	if p.charges && a.Balance().LessThan(p.feeThreshold) {
		return a.Add(NewTransaction(p.lowFee, on, true))
	}
	return nil
}

// String formats the type, account number, and balance of the account.
// For example, "Savings#000000001,\tbalance: $50.00".
func (a *Account) String() string {
	return fmt.Sprintf("%s#%09d,\tbalance: %s", a.kind, a.number, a.Balance())
}
