package clearing

import (
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestStatsCountsConcurrently(t *testing.T) {
	stats := NewStats()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				stats.Rejected(&Rejection{Client: 1, Tx: 1, Reason: InsufficientFunds})
				stats.Malformed(&DecodeError{Line: 1, Field: "type"})
			}
		}()
	}
	wg.Wait()
	if got := stats.RejectedCount(InsufficientFunds); got != 8000 {
		t.Errorf("rejected count = %d, want 8000", got)
	}
	if got := stats.MalformedCount(); got != 8000 {
		t.Errorf("malformed count = %d, want 8000", got)
	}
	if got := stats.RejectedCount(AccountLocked); got != 0 {
		t.Errorf("account locked count = %d, want 0", got)
	}
}

func TestStatsFields(t *testing.T) {
	stats := NewStats()
	stats.Rejected(&Rejection{Reason: UnknownReference})
	stats.Rejected(&Rejection{Reason: UnknownReference})

	fields := stats.Fields()
	// malformed, rejected, plus one non-zero reason.
	if len(fields) != 3 {
		t.Fatalf("Fields() returned %d fields, want 3", len(fields))
	}
}

func TestMultiDiagnosticsFansOut(t *testing.T) {
	a, b := NewStats(), NewStats()
	multi := MultiDiagnostics{a, b, LogDiagnostics{Logger: zap.NewNop()}}

	multi.Rejected(&Rejection{Reason: DuplicateTransaction})
	multi.Malformed(&DecodeError{Line: 3, Field: "tx"})

	for i, s := range []*Stats{a, b} {
		if s.RejectedCount(DuplicateTransaction) != 1 || s.MalformedCount() != 1 {
			t.Errorf("sink %d missed events", i)
		}
	}
}
