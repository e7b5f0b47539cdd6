package clearing

import (
	"errors"
	"iter"
)

// Runner applies records strictly in arrival order against a single
// ledger. It is the reference implementation: the sharded driver must
// produce the same snapshots for any input and worker count.
type Runner struct {
	Policy LockPolicy  // lock policy, default BlockWithdrawals
	Diag   Diagnostics // optional sink for refused records
}

// Run drains the record sequence and returns the final snapshots, sorted
// by ascending client id.
//
// Decode failures and rejections are reported to the diagnostics sink and
// never stop the run. The only fatal error is a broken input stream (an
// I/O failure the decoder cannot resynchronize from).
func (r *Runner) Run(records iter.Seq2[Record, error]) ([]Snapshot, error) {
	diag := r.Diag
	if diag == nil {
		diag = NopDiagnostics{}
	}
	ledger := NewLedger(r.Policy)

	for rec, err := range records {
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				diag.Malformed(err)
				continue
			}
			return nil, err
		}
		if err := ledger.Apply(rec); err != nil {
			var rej *Rejection
			if errors.As(err, &rej) {
				diag.Rejected(rej)
				continue
			}
			diag.Malformed(err)
		}
	}
	return ledger.Snapshots(), nil
}
