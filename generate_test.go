package clearing

import "testing"

func TestGeneratorDeterministic(t *testing.T) {
	a, b := NewGenerator(99), NewGenerator(99)
	for i := range 1000 {
		ra, rb := a.Next(), b.Next()
		if ra.What() != rb.What() || ra.Who() != rb.Who() || ra.ID() != rb.ID() {
			t.Fatalf("record %d diverged: %s/%d/%d vs %s/%d/%d",
				i, ra.What(), ra.Who(), ra.ID(), rb.What(), rb.Who(), rb.ID())
		}
	}
}

func TestGeneratorShape(t *testing.T) {
	g := NewGenerator(7)
	counts := map[RecordKind]int{}
	deposits := map[TxID]bool{}
	for range 10000 {
		rec := g.Next()
		counts[rec.What()]++
		switch rec.What() {
		case KindDeposit:
			deposits[rec.ID()] = true
		case KindDispute, KindResolve, KindChargeback:
			// Lifecycle records always reference an issued deposit.
			if !deposits[rec.ID()] {
				t.Fatalf("%s references tx %d which was never deposited", rec.What(), rec.ID())
			}
		}
	}
	if counts[KindDeposit] == 0 || counts[KindWithdrawal] == 0 || counts[KindDispute] == 0 ||
		counts[KindResolve] == 0 || counts[KindChargeback] == 0 {
		t.Fatalf("some kinds never generated: %v", counts)
	}
	// Chargebacks are deliberately rare.
	if counts[KindChargeback] > counts[KindDispute] {
		t.Errorf("chargebacks (%d) should be rarer than disputes (%d)", counts[KindChargeback], counts[KindDispute])
	}
	// Deposit amounts are always positive and within the shaped range.
	if dep, ok := NewGenerator(7).Next().(Deposit); ok && dep.Amount.IsNegative() {
		t.Error("generated deposit with negative amount")
	}
}

func TestGeneratorWorkloadProcessesCleanly(t *testing.T) {
	// The engine must chew through a generated workload without a fatal
	// error, whatever the mix of accepted and rejected records.
	g := NewGenerator(3)
	records := make([]Record, 0, 5000)
	for range 5000 {
		records = append(records, g.Next())
	}
	rows, err := (&Runner{}).Run(seq(records...))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("no accounts materialized from a shaped workload")
	}
	for _, row := range rows {
		if row.Held.IsNegative() {
			t.Errorf("client %d held went negative: %s", row.Client, row.Held)
		}
		if !row.Total.Equal(row.Available.Add(row.Held)) {
			t.Errorf("client %d total %s != available %s + held %s", row.Client, row.Total, row.Available, row.Held)
		}
	}
}

func TestRandomGeneratorNoPanic(t *testing.T) {
	g := NewRandomGenerator(5)
	l := NewLedger(BlockWithdrawals)
	for range 5000 {
		// Rejections are expected; panics are not.
		_ = l.Apply(g.Next())
	}
}
