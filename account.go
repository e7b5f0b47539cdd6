package clearing

// disputeState tracks where a deposit stands in its dispute lifecycle.
//
// The only transitions are clean->disputed (dispute), disputed->clean
// (resolve) and disputed->chargedBack (chargeback). chargedBack is
// terminal.
type disputeState int

const (
	clean disputeState = iota
	disputed
	chargedBack
)

// trace retains what the ledger needs to validate dispute lifecycle
// records against a past deposit. A trace is immutable except for its
// state, and is never deleted: re-disputes and double chargebacks must
// stay detectable for the whole run.
type trace struct {
	client ClientID
	amount Amount
	state  disputeState
}

// LockPolicy decides which fund movements a locked account still accepts.
//
// Dispute, resolve and chargeback records referencing the account's prior
// deposits are accepted under either policy, so an in-flight dispute can
// finish after the lock.
type LockPolicy int

const (
	// BlockWithdrawals refuses only withdrawals after a chargeback locks
	// the account; deposits are still credited. This is the default.
	BlockWithdrawals LockPolicy = iota
	// BlockDebitsAndCredits refuses deposits as well.
	BlockDebitsAndCredits
)

// Account holds one client's balances and lock status.
//
// available may go negative: disputing a deposit whose funds were already
// withdrawn moves the full deposit amount to held. held never goes
// negative, and locked never reverts to false.
type Account struct {
	available Amount
	held      Amount
	locked    bool
}

func (a *Account) Available() Amount { return a.available }
func (a *Account) Held() Amount      { return a.held }
func (a *Account) Locked() bool      { return a.locked }

// Total is the derived full balance; it is never stored.
func (a *Account) Total() Amount { return a.available.Add(a.held) }
