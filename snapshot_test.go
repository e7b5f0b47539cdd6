package clearing

import (
	"strings"
	"testing"
)

func TestSortSnapshots(t *testing.T) {
	rows := []Snapshot{
		{Client: 30}, {Client: 2}, {Client: 7},
	}
	SortSnapshots(rows)
	for i, want := range []ClientID{2, 7, 30} {
		if rows[i].Client != want {
			t.Errorf("row %d client = %d, want %d", i, rows[i].Client, want)
		}
	}
}

func TestEncodeSnapshots(t *testing.T) {
	rows := []Snapshot{
		{Client: 1, Available: A(10), Held: A(0), Total: A(10), Locked: false},
		{Client: 2, Available: A(1.5), Held: A(2.25), Total: A(3.75), Locked: true},
	}
	var b strings.Builder
	if err := EncodeSnapshots(&b, rows); err != nil {
		t.Fatalf("EncodeSnapshots() error = %v", err)
	}
	want := `client,available,held,total,locked
1,10,0,10,false
2,1.5,2.25,3.75,true
`
	if b.String() != want {
		t.Errorf("EncodeSnapshots() =\n%s\nwant\n%s", b.String(), want)
	}
}
