package models

// GoldScale converts addon copper amounts to gold.
const GoldScale = 10000

// GoldLedger accumulates a player's gold movements within one session.
// Apart from Cut, which is assigned, every field only grows.
type GoldLedger struct {
	Cut      int64
	Paid     int64
	Received int64
	Given    int64
	Mailed   int64
}

// LedgerRecord is the persisted form of a GoldLedger.
type LedgerRecord struct {
	PlayerID string `json:"playerID"`
	Cut      int64  `json:"cut"`
	Paid     int64  `json:"paid"`
	Received int64  `json:"received"`
	Given    int64  `json:"given"`
	Mailed   int64  `json:"mailed"`
}

// AddPaid records a won auction.
func (l *GoldLedger) AddPaid(price int64) {
	l.Paid += price
}

// AddTrade records a trade window, amounts already scaled to gold.
func (l *GoldLedger) AddTrade(received, given int64) {
	l.Received += received
	l.Given += given
}

// AddMail records gold sent by mail, already scaled to gold.
func (l *GoldLedger) AddMail(given int64) {
	l.Mailed += given
}

// SetCut assigns the player's share, replacing any previous value.
func (l *GoldLedger) SetCut(cut int64) {
	l.Cut = cut
}

// Record projects the ledger to its persisted form. Ledgers without a cut
// are not exported and report false.
func (l *GoldLedger) Record(playerUID string) (LedgerRecord, bool) {
	if l.Cut == 0 {
		return LedgerRecord{}, false
	}
	return LedgerRecord{
		PlayerID: playerUID,
		Cut:      l.Cut,
		Paid:     l.Paid,
		Received: l.Received,
		Given:    l.Given,
		Mailed:   l.Mailed,
	}, true
}
