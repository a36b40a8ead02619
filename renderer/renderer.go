// Package renderer turns bankbook values into markdown strings for the CLI.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/bankbook"
)

// Accounts renders a markdown table with one line per account.
func Accounts(accounts []*bankbook.Account) string {
	var b strings.Builder
	b.WriteString("| Account | Balance |\n")
	b.WriteString("|---|---:|\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s#%09d | %s |\n", a.Kind(), a.Number(), a.Balance())
	}
	return b.String()
}

// Transactions renders a markdown table of a transaction history.
func Transactions(txs []bankbook.Transaction) string {
	var b strings.Builder
	b.WriteString("| Date | Amount | Origin |\n")
	b.WriteString("|---|---:|---|\n")
	for _, t := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t.When(), t.Amount(), origin(t))
	}
	return b.String()
}

func origin(t bankbook.Transaction) string {
	if t.IsExempt() {
		return "bank"
	}
	return "customer"
}

// Transaction renders a single transaction to a string.
func Transaction(t bankbook.Transaction) string {
	return t.String()
}
