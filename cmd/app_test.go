package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/bankbook"
	"github.com/etnz/bankbook/date"
	"github.com/google/subcommands"
)

// useBankFile points the app at a test bank file and restores the
// original on cleanup.
func useBankFile(t *testing.T, path string) {
	t.Helper()
	old := bankFile
	bankFile = &path
	t.Cleanup(func() { bankFile = old })
}

// captureStderr runs fn with stderr redirected to a pipe and returns
// everything written there, log output included.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	w.Close()
	out, _ := io.ReadAll(r)
	return string(out)
}

// savedBank writes a bank with one savings account holding $50 and
// returns its snapshot path.
func savedBank(t *testing.T) string {
	t.Helper()
	b := bankbook.NewBank()
	a := b.NewAccount(bankbook.Savings)
	amount, err := bankbook.ParseMoney("50")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if err := a.Add(bankbook.NewTransaction(amount, date.MustParse("2025-01-10"), false)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	path := filepath.Join(t.TempDir(), "bank.jsonl")
	if err := bankbook.SaveBank(path, b); err != nil {
		t.Fatalf("SaveBank: %v", err)
	}
	return path
}

func TestOpen_refusedDepositSavesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.jsonl")
	useBankFile(t, path)

	cmd := &openCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("t", "savings")
	f.Set("a", "-50")

	var status subcommands.ExitStatus
	stderr := captureStderr(t, func() {
		status = cmd.Execute(context.Background(), f)
	})

	if status != subcommands.ExitFailure {
		t.Errorf("Execute = %v, want ExitFailure", status)
	}
	if !strings.Contains(stderr, "insufficient account balance") {
		t.Errorf("stderr = %q, want the insufficient balance message", stderr)
	}
	// The refused opening must not leave a bank file behind.
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("bank file exists after refused open, stat err = %v", err)
	}
}

func TestTx_refusedLeavesSnapshotUntouched(t *testing.T) {
	path := savedBank(t)
	useBankFile(t, path)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	cmd := &txCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("acct", "1")
	f.Set("a", "-1000")

	var status subcommands.ExitStatus
	stderr := captureStderr(t, func() {
		status = cmd.Execute(context.Background(), f)
	})

	if status != subcommands.ExitFailure {
		t.Errorf("Execute = %v, want ExitFailure", status)
	}
	if !strings.Contains(stderr, "insufficient account balance") {
		t.Errorf("stderr = %q, want the insufficient balance message", stderr)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("snapshot changed after refused transaction.\nBefore:\n%s\nAfter:\n%s", before, after)
	}
}

func TestTx_withoutSelectedAccount(t *testing.T) {
	path := savedBank(t)
	useBankFile(t, path)

	cmd := &txCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("a", "10")

	var status subcommands.ExitStatus
	stderr := captureStderr(t, func() {
		status = cmd.Execute(context.Background(), f)
	})

	if status != subcommands.ExitUsageError {
		t.Errorf("Execute = %v, want ExitUsageError", status)
	}
	if !strings.Contains(stderr, "select an account with -acct") {
		t.Errorf("stderr = %q, want the account selection message", stderr)
	}
}

func TestTx_unknownAccount(t *testing.T) {
	path := savedBank(t)
	useBankFile(t, path)

	cmd := &txCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("acct", "42")
	f.Set("a", "10")

	var status subcommands.ExitStatus
	stderr := captureStderr(t, func() {
		status = cmd.Execute(context.Background(), f)
	})

	if status != subcommands.ExitFailure {
		t.Errorf("Execute = %v, want ExitFailure", status)
	}
	if !strings.Contains(stderr, "That account number does not exist.") {
		t.Errorf("stderr = %q, want the unknown account message", stderr)
	}
}

func TestFail_messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "overdraw", err: bankbook.ErrOverdraw, want: "insufficient account balance"},
		{name: "transaction limit", err: bankbook.ErrTransactionLimit, want: "reached a transaction limit"},
		{name: "out of order", err: &bankbook.SequenceError{Latest: date.MustParse("2025-01-10")}, want: "New transactions must be from 2025-01-10 onward."},
		{name: "unknown account", err: bankbook.ErrAccountNotFound, want: "That account number does not exist."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var status subcommands.ExitStatus
			stderr := captureStderr(t, func() {
				status = fail(tc.err)
			})
			if status != subcommands.ExitFailure {
				t.Errorf("fail = %v, want ExitFailure", status)
			}
			if !strings.Contains(stderr, tc.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tc.want)
			}
		})
	}
}
