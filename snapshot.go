package clearing

import (
	"bufio"
	"fmt"
	"io"
	"slices"
)

// Snapshot is the final state of one account, emitted once the input is
// exhausted.
type Snapshot struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}

// SnapshotHeader is the header line of the snapshot CSV output.
const SnapshotHeader = "client,available,held,total,locked"

// SortSnapshots orders rows by ascending client id. Row order carries no
// meaning; a fixed order keeps outputs reproducible and comparable.
func SortSnapshots(rows []Snapshot) {
	slices.SortFunc(rows, func(a, b Snapshot) int { return int(a.Client) - int(b.Client) })
}

// EncodeSnapshots writes rows as CSV, header included.
func EncodeSnapshots(w io.Writer, rows []Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, SnapshotHeader)
	for _, row := range rows {
		fmt.Fprintf(bw, "%d,%s,%s,%s,%t\n", row.Client, row.Available, row.Held, row.Total, row.Locked)
	}
	return bw.Flush()
}
