package bankbook

import "github.com/etnz/bankbook/date"

// D is a helper for tests to build a date from its string form.
func D(s string) date.Date { return date.MustParse(s) }

// tx is a helper for tests to build a customer transaction.
func tx(amount float64, day string) Transaction {
	return NewTransaction(M(amount), D(day), false)
}

// exemptTx is a helper for tests to build a system-generated transaction.
func exemptTx(amount float64, day string) Transaction {
	return NewTransaction(M(amount), D(day), true)
}
