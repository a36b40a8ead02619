package bankbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/bankbook/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The snapshot is line-oriented JSON: a header record followed by one record
// per account. The explicit record and version tags keep old snapshot files
// readable when the format evolves.

const (
	snapshotRecord  = "bankbook"
	accountRecord   = "account"
	snapshotVersion = 1
)

type headerRec struct {
	Record  string `json:"record"`
	Version int    `json:"version"`
	Next    int64  `json:"next"`
}

type transactionRec struct {
	Amount decimal.Decimal `json:"amount"`
	Date   date.Date       `json:"date"`
	Exempt bool            `json:"exempt,omitempty"`
}

type accountRec struct {
	Record       string           `json:"record"`
	Kind         string           `json:"kind"`
	Number       int64            `json:"number"`
	Transactions []transactionRec `json:"transactions"`
}

// EncodeBank writes the whole bank to w, one JSON line per record, accounts
// in ascending number order. Amounts are written with all their digits so
// that fractional interest survives the round trip exactly.
func EncodeBank(w io.Writer, b *Bank) error {
	writeLine := func(v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write snapshot record: %w", err)
		}
		return nil
	}

	if err := writeLine(headerRec{Record: snapshotRecord, Version: snapshotVersion, Next: b.next}); err != nil {
		return err
	}
	for a := range b.Accounts() {
		rec := accountRec{
			Record:       accountRecord,
			Kind:         a.Kind().String(),
			Number:       a.Number(),
			Transactions: make([]transactionRec, 0, len(a.transactions)),
		}
		for _, t := range a.transactions {
			rec.Transactions = append(rec.Transactions, transactionRec{
				Amount: t.Amount().Decimal(),
				Date:   t.When(),
				Exempt: t.IsExempt(),
			})
		}
		if err := writeLine(rec); err != nil {
			return err
		}
	}
	return nil
}

// restore appends a previously admitted transaction without re-running the
// admission checks; the history was validated when it was first admitted.
func (a *Account) restore(t Transaction) {
	a.transactions = append(a.transactions, t)
	if !a.hasLatest || t.When().After(a.latest.When()) {
		a.latest = t
		a.hasLatest = true
	}
}

// DecodeBank reads a snapshot produced by EncodeBank and rebuilds the bank,
// including the next-available account number.
func DecodeBank(r io.Reader) (*Bank, error) {
	bank := NewBank()
	scanner := bufio.NewScanner(r)

	var sawHeader bool
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case snapshotRecord:
			var header headerRec
			if err := json.Unmarshal(lineBytes, &header); err != nil {
				return nil, err
			}
			if header.Version != snapshotVersion {
				return nil, fmt.Errorf("unsupported snapshot version %d, want %d", header.Version, snapshotVersion)
			}
			bank.next = header.Next
			sawHeader = true
		case accountRecord:
			if !sawHeader {
				return nil, fmt.Errorf("account record before snapshot header in line %q", string(lineBytes))
			}
			var rec accountRec
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, err
			}
			kind, err := ParseAccountType(rec.Kind)
			if err != nil {
				return nil, err
			}
			if _, exists := bank.accounts[rec.Number]; exists {
				return nil, fmt.Errorf("duplicate account number %d in snapshot", rec.Number)
			}
			a := newAccount(kind, rec.Number)
			for _, tr := range rec.Transactions {
				// Not NewTransaction: its zero-date default would silently
				// re-date a record missing its date field.
				if tr.Date.IsZero() {
					return nil, fmt.Errorf("account %d has a transaction with no date", rec.Number)
				}
				a.restore(Transaction{amount: M(tr.Amount), day: tr.Date, exempt: tr.Exempt})
			}
			bank.accounts[rec.Number] = a
			// Guard the counter against a stale header.
			if rec.Number >= bank.next {
				bank.next = rec.Number + 1
			}
		default:
			return nil, fmt.Errorf("unknown snapshot record: %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("snapshot header not found")
	}
	if bank.next < 1 {
		bank.next = 1
	}
	return bank, nil
}

// SaveBank writes the bank snapshot to path through a temporary file and an
// atomic rename, so a crash mid-write cannot corrupt an existing snapshot.
func SaveBank(path string, b *Bank) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for bank file %q: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary bank file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeBank(tmp, b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary bank file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace bank file %q: %w", path, err)
	}
	return nil
}

// LoadBank reads the bank snapshot from path.
func LoadBank(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bank, err := DecodeBank(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode bank file %q: %w", path, err)
	}
	return bank, nil
}
