package clearing

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// RecordHeader is the header line of the record CSV format.
const RecordHeader = "type, client, tx, amount"

// DecodeError reports a single undecodable input line. The decoder keeps
// going after yielding one; it never aborts the stream for a bad line.
type DecodeError struct {
	Line  int    // 1-based line number in the input
	Field string // the first field that failed to decode
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("missing or invalid %s in line %d", e.Field, e.Line)
}

// DecodeRecords decodes a stream of records from r.
//
// The format is one record per line, "type, client, tx, amount", with the
// amount column present only for deposits and withdrawals. The first line
// is the header and is skipped; blank lines are skipped; whitespace around
// fields is ignored; columns past the fourth are ignored.
//
// Each yielded pair is either a record or an error. A *DecodeError is
// local to its line and the sequence continues past it. Any other error is
// an I/O failure: record boundaries can no longer be trusted and the
// sequence stops.
func DecodeRecords(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for line := 1; scanner.Scan(); line++ {
			if line == 1 {
				continue // header
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			rec, err := decodeLine(text, line)
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("reading records: %w", err))
		}
	}
}

// decodeLine decodes a single non-empty line into a record.
func decodeLine(text string, line int) (Record, error) {
	fields := strings.SplitN(text, ",", 5)
	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	kind := RecordKind(get(0))
	switch kind {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
	default:
		return nil, &DecodeError{Line: line, Field: "type"}
	}

	client, err := strconv.ParseUint(get(1), 10, 16)
	if err != nil {
		return nil, &DecodeError{Line: line, Field: "client"}
	}
	tx, err := strconv.ParseUint(get(2), 10, 32)
	if err != nil {
		return nil, &DecodeError{Line: line, Field: "tx"}
	}

	c, t := ClientID(client), TxID(tx)
	switch kind {
	case KindDeposit, KindWithdrawal:
		amount, err := ParseAmount(get(3))
		if err != nil || !amount.IsPositive() {
			return nil, &DecodeError{Line: line, Field: "amount"}
		}
		if kind == KindDeposit {
			return NewDeposit(c, t, amount), nil
		}
		return NewWithdrawal(c, t, amount), nil
	case KindDispute:
		return NewDispute(c, t), nil
	case KindResolve:
		return NewResolve(c, t), nil
	default:
		return NewChargeback(c, t), nil
	}
}

// EncodeRecord writes rec as one CSV line. Records without an amount keep
// the trailing comma so every line has four columns.
func EncodeRecord(w io.Writer, rec Record) error {
	var err error
	switch r := rec.(type) {
	case Deposit:
		_, err = fmt.Fprintf(w, "%s,%d,%d,%s\n", r.What(), r.Client, r.Tx, r.Amount)
	case Withdrawal:
		_, err = fmt.Fprintf(w, "%s,%d,%d,%s\n", r.What(), r.Client, r.Tx, r.Amount)
	default:
		_, err = fmt.Fprintf(w, "%s,%d,%d,\n", rec.What(), rec.Who(), rec.ID())
	}
	return err
}
