// Package bankbook implements a small personal-banking ledger: accounts
// holding an immutable history of dated transactions, the rules that decide
// whether a pending transaction may be admitted (overdraft prevention,
// per-day and per-month limits, chronological ordering), and the periodic
// assessment of interest and fees.
//
// The core functionalities include:
//   - Transaction admission: a validate-then-append protocol that leaves the
//     account untouched when any rule rejects the pending transaction.
//   - Balance derivation: balances are always recomputed from the admitted
//     history, never cached, so they cannot drift out of sync.
//   - Interest and fees: exempt transactions synthesized by the account
//     itself, at most once per calendar month.
//   - Data persistence: encoding and decoding the whole bank to and from a
//     human-readable, version-tagged JSONL snapshot.
//
// This package serves as the foundational logic for the `bbk` command-line
// tool.
package bankbook
