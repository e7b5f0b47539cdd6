package clearing

import (
	"strings"
	"testing"
)

func TestRunnerScenario(t *testing.T) {
	input := RecordHeader + `
deposit, 1, 1, 10.0
deposit, 2, 2, 5.0
dispute, 1, 1,
withdrawal, 1, 3, 3.0
resolve, 1, 1,
`
	r := &Runner{}
	rows, err := r.Run(DecodeRecords(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []Snapshot{
		{Client: 1, Available: A(10), Held: A(0), Total: A(10), Locked: false},
		{Client: 2, Available: A(5), Held: A(0), Total: A(5), Locked: false},
	}
	checkSnapshots(t, rows, want)
}

func TestRunnerPureFlow(t *testing.T) {
	// With no disputes the final available is deposits minus withdrawals.
	r := &Runner{}
	rows, err := r.Run(seq(
		NewDeposit(1, 1, A(10)),
		NewDeposit(1, 2, A(2.5)),
		NewWithdrawal(1, 3, A(4)),
		NewDeposit(2, 4, A(1)),
	))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []Snapshot{
		{Client: 1, Available: A(8.5), Held: A(0), Total: A(8.5), Locked: false},
		{Client: 2, Available: A(1), Held: A(0), Total: A(1), Locked: false},
	}
	checkSnapshots(t, rows, want)
}

func TestRunnerReportsDiagnostics(t *testing.T) {
	input := RecordHeader + `
deposit, 1, 1, 10.0
not a record at all
withdrawal, 1, 2, 100.0
dispute, 1, 9,
`
	stats := NewStats()
	r := &Runner{Diag: stats}
	if _, err := r.Run(DecodeRecords(strings.NewReader(input))); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := stats.MalformedCount(); got != 1 {
		t.Errorf("malformed = %d, want 1", got)
	}
	if got := stats.RejectedCount(InsufficientFunds); got != 1 {
		t.Errorf("insufficient funds = %d, want 1", got)
	}
	if got := stats.RejectedCount(UnknownReference); got != 1 {
		t.Errorf("unknown reference = %d, want 1", got)
	}
	if got := stats.RejectedTotal(); got != 2 {
		t.Errorf("rejected total = %d, want 2", got)
	}
}

func TestRunnerDiagnosticsDoNotChangeResults(t *testing.T) {
	input := RecordHeader + `
deposit, 1, 1, 10.0
garbage
withdrawal, 1, 2, 100.0
dispute, 1, 1,
chargeback, 1, 1,
`
	quiet, err := (&Runner{}).Run(DecodeRecords(strings.NewReader(input)))
	if err != nil {
		t.Fatal(err)
	}
	noisy, err := (&Runner{Diag: MultiDiagnostics{NewStats(), NopDiagnostics{}}}).Run(DecodeRecords(strings.NewReader(input)))
	if err != nil {
		t.Fatal(err)
	}
	checkSnapshots(t, noisy, quiet)
}

// seq wraps literal records in the decoder's sequence shape.
func seq(recs ...Record) func(yield func(Record, error) bool) {
	return func(yield func(Record, error) bool) {
		for _, rec := range recs {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// checkSnapshots compares two snapshot slices field by field.
func checkSnapshots(t *testing.T, got, want []Snapshot) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Client != w.Client || !g.Available.Equal(w.Available) || !g.Held.Equal(w.Held) ||
			!g.Total.Equal(w.Total) || g.Locked != w.Locked {
			t.Errorf("row %d = %+v, want %+v", i, g, w)
		}
	}
}
