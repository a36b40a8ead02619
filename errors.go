package bankbook

import (
	"errors"
	"fmt"

	"github.com/etnz/bankbook/date"
)

var (
	// ErrOverdraw reports a non-exempt transaction that would drive the
	// account balance below zero. The transaction is discarded.
	ErrOverdraw = errors.New("transaction would overdraw the account")

	// ErrTransactionLimit reports that the account reached its daily or
	// monthly count of non-exempt transactions.
	ErrTransactionLimit = errors.New("account reached its transaction limit")

	// ErrAccountNotFound reports a lookup for an unknown account number.
	ErrAccountNotFound = errors.New("account not found")
)

// SequenceError reports a transaction dated before the account's latest
// admitted transaction, or an interest run repeated within the same calendar
// month. Latest is the date that blocks the operation.
type SequenceError struct {
	Latest date.Date
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("new transactions must be dated %s or later", e.Latest)
}
