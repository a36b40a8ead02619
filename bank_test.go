package bankbook

import (
	"errors"
	"testing"
)

func TestBank_assignsIncreasingNumbers(t *testing.T) {
	b := NewBank()
	kinds := []AccountType{Savings, Checking, Checking, Savings}
	for i, kind := range kinds {
		a := b.NewAccount(kind)
		if got, want := a.Number(), int64(i+1); got != want {
			t.Errorf("account %d got number %d, want %d", i, got, want)
		}
		if a.Kind() != kind {
			t.Errorf("account %d got kind %s, want %s", i, a.Kind(), kind)
		}
	}
}

func TestBank_Open(t *testing.T) {
	b := NewBank()
	a, err := b.Open("Checking")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if a.Kind() != Checking {
		t.Errorf("Open(Checking) created a %s account", a.Kind())
	}
	if _, err := b.Open("premium"); err == nil {
		t.Error("Open should reject an unknown account type")
	}
}

func TestBank_Account(t *testing.T) {
	b := NewBank()
	a := b.NewAccount(Savings)

	got, err := b.Account(a.Number())
	if err != nil {
		t.Fatalf("Account(%d): %v", a.Number(), err)
	}
	if got != a {
		t.Error("Account returned a different account")
	}

	_, err = b.Account(99)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Account(99) = %v, want ErrAccountNotFound", err)
	}
}

func TestBank_AccountsOrdered(t *testing.T) {
	b := NewBank()
	for range 5 {
		b.NewAccount(Checking)
	}
	var prev int64
	var n int
	for a := range b.Accounts() {
		if a.Number() <= prev {
			t.Errorf("accounts out of order: %d after %d", a.Number(), prev)
		}
		prev = a.Number()
		n++
	}
	if n != b.Len() {
		t.Errorf("iterated %d accounts, bank has %d", n, b.Len())
	}
}
