package clearing

import (
	"fmt"
	"maps"
	"slices"
)

// Ledger owns one shard's accounts and deposit traces.
//
// A Ledger is not safe for concurrent use. Each worker of the sharded
// driver owns exactly one Ledger and is the only goroutine that ever
// touches it; the sequential driver uses a single Ledger for everything.
type Ledger struct {
	accounts map[ClientID]*Account
	traces   map[TxID]*trace
	policy   LockPolicy
}

// NewLedger creates an empty ledger applying the given lock policy.
func NewLedger(policy LockPolicy) *Ledger {
	return &Ledger{
		accounts: make(map[ClientID]*Account),
		traces:   make(map[TxID]*trace),
		policy:   policy,
	}
}

// Apply applies one record to its client's account.
//
// On refusal it returns a *Rejection describing why and leaves every
// balance and trace untouched. Apply never panics on semantically invalid
// input; a malformed record cannot reach it (the decoder only yields
// well-typed records).
func (l *Ledger) Apply(rec Record) error {
	switch r := rec.(type) {
	case Deposit:
		return l.deposit(r)
	case Withdrawal:
		return l.withdrawal(r)
	case Dispute, Resolve, Chargeback:
		return l.lifecycle(rec)
	default:
		return fmt.Errorf("unhandled record kind %q", rec.What())
	}
}

func (l *Ledger) deposit(r Deposit) error {
	if _, seen := l.traces[r.Tx]; seen {
		return reject(r, DuplicateTransaction)
	}
	if acc := l.accounts[r.Client]; acc != nil && acc.locked && l.policy == BlockDebitsAndCredits {
		return reject(r, AccountLocked)
	}
	acc := l.account(r.Client)
	l.traces[r.Tx] = &trace{client: r.Client, amount: r.Amount}
	acc.available = acc.available.Add(r.Amount)
	return nil
}

func (l *Ledger) withdrawal(r Withdrawal) error {
	acc := l.accounts[r.Client]
	if acc == nil {
		// No funds were ever deposited; do not materialize the account.
		return reject(r, InsufficientFunds)
	}
	if acc.locked {
		return reject(r, AccountLocked)
	}
	if acc.available.LessThan(r.Amount) {
		return reject(r, InsufficientFunds)
	}
	acc.available = acc.available.Sub(r.Amount)
	return nil
}

// lifecycle advances the referenced deposit through its dispute states.
func (l *Ledger) lifecycle(rec Record) error {
	tr := l.traces[rec.ID()]
	if tr == nil || tr.client != rec.Who() {
		return reject(rec, UnknownReference)
	}
	// The deposit that created the trace also created the account.
	acc := l.accounts[tr.client]

	switch rec.What() {
	case KindDispute:
		if tr.state != clean {
			return reject(rec, InvalidStateTransition)
		}
		tr.state = disputed
		acc.available = acc.available.Sub(tr.amount)
		acc.held = acc.held.Add(tr.amount)
	case KindResolve:
		if tr.state != disputed {
			return reject(rec, InvalidStateTransition)
		}
		tr.state = clean
		acc.held = acc.held.Sub(tr.amount)
		acc.available = acc.available.Add(tr.amount)
	case KindChargeback:
		if tr.state != disputed {
			return reject(rec, InvalidStateTransition)
		}
		tr.state = chargedBack
		acc.held = acc.held.Sub(tr.amount)
		acc.locked = true
	}
	return nil
}

// account returns the client's account, creating it on first use.
func (l *Ledger) account(c ClientID) *Account {
	acc, ok := l.accounts[c]
	if !ok {
		acc = &Account{available: A(0), held: A(0)}
		l.accounts[c] = acc
	}
	return acc
}

// Account returns the client's account, or nil if the client never held
// funds.
func (l *Ledger) Account(c ClientID) *Account { return l.accounts[c] }

// Snapshots returns one row per account, sorted by ascending client id.
func (l *Ledger) Snapshots() []Snapshot {
	rows := make([]Snapshot, 0, len(l.accounts))
	for _, c := range slices.Sorted(maps.Keys(l.accounts)) {
		acc := l.accounts[c]
		rows = append(rows, Snapshot{
			Client:    c,
			Available: acc.available,
			Held:      acc.held,
			Total:     acc.Total(),
			Locked:    acc.locked,
		})
	}
	return rows
}
