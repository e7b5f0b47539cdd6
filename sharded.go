package clearing

import (
	"errors"
	"iter"
	"runtime"
	"sync"
)

// DefaultQueueSize bounds each worker's queue when none is configured.
// Large enough that a briefly slow shard does not stall routing, small
// enough that a saturated shard applies backpressure instead of hoarding
// the whole input in memory.
const DefaultQueueSize = 4096

// ShardedRunner processes records on a fixed pool of workers, each owning
// a disjoint partition of the client id space (client id modulo worker
// count) and its own private ledger.
//
// All records for a client land on the same worker in arrival order, so
// per-client ordering is preserved; no order is guaranteed across clients,
// which is fine because no record ever touches two accounts. Workers share
// nothing but their inbound queue, so the apply path needs no locks.
type ShardedRunner struct {
	Workers   int         // number of shards, default runtime.NumCPU()
	QueueSize int         // per-worker queue bound, default DefaultQueueSize
	Policy    LockPolicy  // lock policy, default BlockWithdrawals
	Diag      Diagnostics // optional sink, shared by all workers
}

// Run fans the record sequence out to the shard workers, joins them, and
// returns the merged snapshots sorted by ascending client id.
//
// A full shard queue blocks the routing loop (backpressure) rather than
// dropping records. Closing the queues is the end-of-input signal; workers
// drain what is left before reporting their shard's snapshots.
func (s *ShardedRunner) Run(records iter.Seq2[Record, error]) ([]Snapshot, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	queueSize := s.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	diag := s.Diag
	if diag == nil {
		diag = NopDiagnostics{}
	}

	queues := make([]chan Record, workers)
	shards := make([][]Snapshot, workers)
	var wg sync.WaitGroup
	for i := range queues {
		queues[i] = make(chan Record, queueSize)
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger := NewLedger(s.Policy)
			for rec := range queues[i] {
				if err := ledger.Apply(rec); err != nil {
					var rej *Rejection
					if errors.As(err, &rej) {
						diag.Rejected(rej)
					} else {
						diag.Malformed(err)
					}
				}
			}
			shards[i] = ledger.Snapshots()
		}()
	}

	var fatal error
	for rec, err := range records {
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) {
				diag.Malformed(err)
				continue
			}
			fatal = err
			break
		}
		// Blocks when the shard is saturated; no record is ever dropped.
		queues[int(rec.Who())%workers] <- rec
	}

	for _, q := range queues {
		close(q)
	}
	wg.Wait()
	if fatal != nil {
		return nil, fatal
	}

	var rows []Snapshot
	for _, shard := range shards {
		rows = append(rows, shard...)
	}
	SortSnapshots(rows)
	return rows, nil
}
