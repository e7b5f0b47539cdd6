package clearing

import "fmt"

// Reason classifies why the ledger refused a record.
type Reason int

const (
	// DuplicateTransaction is a deposit reusing an already-seen tx id.
	DuplicateTransaction Reason = iota
	// UnknownReference is a dispute lifecycle record naming a tx id with
	// no trace, or one that belongs to a different client.
	UnknownReference
	// InvalidStateTransition is a dispute lifecycle record arriving while
	// the referenced deposit is in a disqualifying state.
	InvalidStateTransition
	// InsufficientFunds is a withdrawal exceeding the available balance.
	InsufficientFunds
	// AccountLocked is a fund movement refused because the account was
	// locked by a chargeback.
	AccountLocked

	numReasons = iota
)

func (r Reason) String() string {
	switch r {
	case DuplicateTransaction:
		return "duplicate transaction"
	case UnknownReference:
		return "unknown reference"
	case InvalidStateTransition:
		return "invalid state transition"
	case InsufficientFunds:
		return "insufficient funds"
	case AccountLocked:
		return "account locked"
	default:
		return "unknown"
	}
}

// Rejection reports a record the ledger refused. A rejection is local to
// its record: the stream keeps going and no account state was touched.
type Rejection struct {
	Client ClientID
	Tx     TxID
	Reason Reason
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("client %d tx %d: %s", r.Client, r.Tx, r.Reason)
}

// reject builds the rejection for a refused record.
func reject(rec Record, reason Reason) *Rejection {
	return &Rejection{Client: rec.Who(), Tx: rec.ID(), Reason: reason}
}
