package baccarat

// Ledger is the ordered round history of one run.
type Ledger struct {
	records []RoundRecord
	wins    int
	losses  int
	ties    int
}

func NewLedger(capacity int) *Ledger {
	return &Ledger{records: make([]RoundRecord, 0, capacity)}
}

func (l *Ledger) Append(r RoundRecord) {
	switch r.Kind {
	case ActionTie:
		l.ties++
	case ActionWin:
		l.wins++
	default:
		l.losses++
	}
	l.records = append(l.records, r)
}

func (l *Ledger) Len() int { return len(l.records) }

// Records returns a copy of the history in round order.
func (l *Ledger) Records() []RoundRecord {
	out := make([]RoundRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) Summarize(initial, final int64) Summary {
	return Summary{
		FinalBalance: final,
		Profit:       final - initial,
		TotalRounds:  len(l.records),
		Wins:         l.wins,
		Losses:       l.losses,
		Ties:         l.ties,
	}
}
