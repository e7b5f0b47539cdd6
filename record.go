package clearing

// ClientID identifies an account holder.
type ClientID uint16

// TxID identifies the deposit or withdrawal that created it. Dispute
// lifecycle records reference the TxID of a past deposit.
type TxID uint32

// RecordKind is a typed string identifying a record's wire name.
type RecordKind string

// Record kinds, as they appear in the input stream.
const (
	KindDeposit    RecordKind = "deposit"
	KindWithdrawal RecordKind = "withdrawal"
	KindDispute    RecordKind = "dispute"
	KindResolve    RecordKind = "resolve"
	KindChargeback RecordKind = "chargeback"
)

// Record is one decoded transaction record.
//
// The set of kinds is closed: deposits and withdrawals move funds, the
// other three advance a prior deposit through its dispute lifecycle. The
// decoder guarantees a record is well-typed; it may still be semantically
// invalid and refused by the ledger.
type Record interface {
	What() RecordKind // Returns the kind of the record
	Who() ClientID    // Returns the client the record applies to
	ID() TxID         // Returns the transaction id carried or referenced
}

// Ref contains the fields common to all record kinds.
type Ref struct {
	Client ClientID
	Tx     TxID
}

// Who returns the client the record applies to.
func (r Ref) Who() ClientID { return r.Client }

// ID returns the transaction id the record carries or references.
func (r Ref) ID() TxID { return r.Tx }

// Deposit credits funds to a client and opens a disputable transaction.
type Deposit struct {
	Ref
	Amount Amount
}

// Withdrawal debits funds from a client. Withdrawals are never disputable.
type Withdrawal struct {
	Ref
	Amount Amount
}

// Dispute places the referenced deposit's funds on hold.
type Dispute struct{ Ref }

// Resolve releases a disputed deposit's funds back to available.
type Resolve struct{ Ref }

// Chargeback forfeits a disputed deposit's funds and locks the account.
type Chargeback struct{ Ref }

func (Deposit) What() RecordKind    { return KindDeposit }
func (Withdrawal) What() RecordKind { return KindWithdrawal }
func (Dispute) What() RecordKind    { return KindDispute }
func (Resolve) What() RecordKind    { return KindResolve }
func (Chargeback) What() RecordKind { return KindChargeback }

// NewDeposit creates a deposit record.
func NewDeposit(client ClientID, tx TxID, amount Amount) Deposit {
	return Deposit{Ref: Ref{Client: client, Tx: tx}, Amount: amount}
}

// NewWithdrawal creates a withdrawal record.
func NewWithdrawal(client ClientID, tx TxID, amount Amount) Withdrawal {
	return Withdrawal{Ref: Ref{Client: client, Tx: tx}, Amount: amount}
}

// NewDispute creates a dispute record referencing a past deposit.
func NewDispute(client ClientID, tx TxID) Dispute {
	return Dispute{Ref: Ref{Client: client, Tx: tx}}
}

// NewResolve creates a resolve record referencing a disputed deposit.
func NewResolve(client ClientID, tx TxID) Resolve {
	return Resolve{Ref: Ref{Client: client, Tx: tx}}
}

// NewChargeback creates a chargeback record referencing a disputed deposit.
func NewChargeback(client ClientID, tx TxID) Chargeback {
	return Chargeback{Ref: Ref{Client: client, Tx: tx}}
}
