// Package clearing is a batch transaction-clearing engine.
//
// It ingests an ordered stream of deposit, withdrawal, dispute, resolve
// and chargeback records, applies the validated dispute state machine per
// client, and emits a final snapshot of every account's balances and lock
// status. Invalid records are refused one by one and never abort the run.
//
// Two drivers produce identical results: Runner applies everything in
// order on one goroutine, ShardedRunner partitions clients across workers
// that each own their slice of the account space exclusively.
package clearing
