package clearing

import (
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Diagnostics receives the records the engine refused. Enabling or
// disabling a sink never changes computed balances, only visibility.
//
// Implementations must be safe for concurrent use: the sharded driver
// reports from every worker.
type Diagnostics interface {
	// Malformed reports a record the decoder could not produce.
	Malformed(err error)
	// Rejected reports a well-typed record the ledger refused.
	Rejected(rej *Rejection)
}

// NopDiagnostics discards every event. It is the default sink.
type NopDiagnostics struct{}

func (NopDiagnostics) Malformed(error)     {}
func (NopDiagnostics) Rejected(*Rejection) {}

// LogDiagnostics reports every event through a zap logger, with enough
// context (client, tx, reason) to reproduce the refusal.
type LogDiagnostics struct {
	Logger *zap.Logger
}

func (d LogDiagnostics) Malformed(err error) {
	d.Logger.Warn("malformed record", zap.Error(err))
}

func (d LogDiagnostics) Rejected(rej *Rejection) {
	d.Logger.Info("record rejected",
		zap.Uint16("client", uint16(rej.Client)),
		zap.Uint32("tx", uint32(rej.Tx)),
		zap.Stringer("reason", rej.Reason),
	)
}

// Stats counts refusals per reason without locking, so shard workers never
// contend on the hot path.
type Stats struct {
	malformed *xsync.Counter
	rejected  [numReasons]*xsync.Counter
}

// NewStats creates a zeroed Stats sink.
func NewStats() *Stats {
	s := &Stats{malformed: xsync.NewCounter()}
	for i := range s.rejected {
		s.rejected[i] = xsync.NewCounter()
	}
	return s
}

func (s *Stats) Malformed(error)         { s.malformed.Inc() }
func (s *Stats) Rejected(rej *Rejection) { s.rejected[rej.Reason].Inc() }

// MalformedCount returns the number of undecodable records seen.
func (s *Stats) MalformedCount() int64 { return s.malformed.Value() }

// RejectedCount returns the number of refusals for one reason.
func (s *Stats) RejectedCount(reason Reason) int64 { return s.rejected[reason].Value() }

// RejectedTotal returns the number of refusals across all reasons.
func (s *Stats) RejectedTotal() int64 {
	var total int64
	for _, c := range s.rejected {
		total += c.Value()
	}
	return total
}

// Fields renders the counters as zap fields for a run summary.
func (s *Stats) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Int64("malformed", s.MalformedCount()),
		zap.Int64("rejected", s.RejectedTotal()),
	}
	for r := Reason(0); r < numReasons; r++ {
		if n := s.rejected[r].Value(); n > 0 {
			fields = append(fields, zap.Int64(r.String(), n))
		}
	}
	return fields
}

// MultiDiagnostics fans every event out to all sinks.
type MultiDiagnostics []Diagnostics

func (m MultiDiagnostics) Malformed(err error) {
	for _, d := range m {
		d.Malformed(err)
	}
}

func (m MultiDiagnostics) Rejected(rej *Rejection) {
	for _, d := range m {
		d.Rejected(rej)
	}
}

// NewLogger builds the production logger used by the CLI and the log sink.
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
