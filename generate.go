package clearing

import "math/rand/v2"

// Generator produces a shaped synthetic workload: the client population
// grows over time, deposits dominate, and dispute lifecycle records mostly
// reference deposits that were actually issued, so a meaningful share of
// them is accepted by the ledger.
type Generator struct {
	rng        *rand.Rand
	nextTx     uint32
	nextClient uint16
	clients    []ClientID
	deposits   []Ref // issued deposits, candidates for lifecycle records
}

// NewGenerator creates a deterministic generator for the given seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewPCG(seed, seed)),
		nextClient: 1,
		clients:    []ClientID{0},
	}
}

// Next returns the next record of the workload.
func (g *Generator) Next() Record {
	for {
		switch p := g.rng.IntN(100); {
		case p < 26:
			client := g.pickClient()
			tx := TxID(g.nextTx)
			g.nextTx++
			g.deposits = append(g.deposits, Ref{Client: client, Tx: tx})
			return NewDeposit(client, tx, g.amount())
		case p < 51:
			tx := TxID(g.nextTx)
			g.nextTx++
			return NewWithdrawal(g.clients[g.rng.IntN(len(g.clients))], tx, g.amount())
		case p < 71:
			if ref, ok := g.pickDeposit(); ok {
				return NewDispute(ref.Client, ref.Tx)
			}
		case p < 98:
			if ref, ok := g.pickDeposit(); ok {
				return NewResolve(ref.Client, ref.Tx)
			}
		default:
			// Kept rare: with enough records most clients would otherwise
			// end up locked.
			if ref, ok := g.pickDeposit(); ok {
				return NewChargeback(ref.Client, ref.Tx)
			}
		}
	}
}

// pickClient returns an existing client most of the time, and grows the
// population for the rest.
func (g *Generator) pickClient() ClientID {
	if g.rng.Float64() < 0.2 {
		client := ClientID(g.nextClient)
		g.nextClient++
		g.clients = append(g.clients, client)
		return client
	}
	return g.clients[g.rng.IntN(len(g.clients))]
}

func (g *Generator) pickDeposit() (Ref, bool) {
	if len(g.deposits) == 0 {
		return Ref{}, false
	}
	return g.deposits[g.rng.IntN(len(g.deposits))], true
}

func (g *Generator) amount() Amount {
	// Strictly positive: a zero amount would not survive the decoder.
	return A(g.rng.Float64()*999 + 1)
}

// RandomGenerator produces uniformly random records: random kinds, ids and
// amounts, with no correlation whatsoever. Nearly everything it emits gets
// rejected, which is exactly what robustness tests want.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a deterministic random generator for the
// given seed.
func NewRandomGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Next returns the next uniformly random record.
func (g *RandomGenerator) Next() Record {
	client := ClientID(g.rng.IntN(1 << 16))
	tx := TxID(g.rng.Uint32())
	switch g.rng.IntN(5) {
	case 0:
		return NewDeposit(client, tx, A(g.rng.Float64()*10000))
	case 1:
		return NewWithdrawal(client, tx, A(g.rng.Float64()*10000))
	case 2:
		return NewDispute(client, tx)
	case 3:
		return NewResolve(client, tx)
	default:
		return NewChargeback(client, tx)
	}
}
