package bankbook

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Bank owns the accounts of one session, keyed by account number.
//
// Account numbers are unique and monotonically assigned, starting at 1.
type Bank struct {
	accounts map[int64]*Account
	next     int64
}

// NewBank creates an empty bank.
func NewBank() *Bank {
	return &Bank{accounts: make(map[int64]*Account), next: 1}
}

// NewAccount creates an account of the given type with the next available
// number, registers it, and returns it.
func (b *Bank) NewAccount(kind AccountType) *Account {
	a := newAccount(kind, b.next)
	b.accounts[a.number] = a
	b.next++
	return a
}

// Open is NewAccount with the type given as a string ("savings" or
// "checking", case-insensitive).
func (b *Bank) Open(kind string) (*Account, error) {
	t, err := ParseAccountType(kind)
	if err != nil {
		return nil, err
	}
	return b.NewAccount(t), nil
}

// Account returns the account with that number.
func (b *Bank) Account(number int64) (*Account, error) {
	a, ok := b.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: #%09d", ErrAccountNotFound, number)
	}
	return a, nil
}

// Accounts iterates over all accounts in ascending account-number order.
func (b *Bank) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, number := range slices.Sorted(maps.Keys(b.accounts)) {
			if !yield(b.accounts[number]) {
				return
			}
		}
	}
}

// Len returns the number of accounts.
func (b *Bank) Len() int { return len(b.accounts) }
