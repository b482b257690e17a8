package models

// Misc holds the derived session totals.
type Misc struct {
	Payout   int64 `json:"payout"`
	Incoming int64 `json:"incoming"`
}

// Session is the aggregate of one parsed export.
type Session struct {
	UID      string
	Title    string
	Date     int64
	Players  map[string]*Player
	Auctions []*Auction
	Ledgers  map[string]*GoldLedger
	Misc     Misc

	order []string
}

// Record is the persisted form of a Session.
type Record struct {
	UUID    string                  `json:"uuid"`
	Title   string                  `json:"title"`
	Date    int64                   `json:"date"`
	Players map[string]PlayerRecord `json:"players"`
	Items   []AuctionRecord         `json:"items"`
	Ledgers []LedgerRecord          `json:"ledgers"`
	Misc    Misc                    `json:"misc"`
}

// NewSession returns an empty session with its own containers.
func NewSession() *Session {
	return &Session{
		Players:  make(map[string]*Player),
		Auctions: make([]*Auction, 0),
		Ledgers:  make(map[string]*GoldLedger),
	}
}

// AddPlayer registers p with a zeroed ledger. A uid that is already known is
// left untouched and its existing ledger is returned with false.
func (s *Session) AddPlayer(p Player) (*GoldLedger, bool) {
	if _, ok := s.Players[p.UID]; ok {
		return s.Ledgers[p.UID], false
	}
	player := p
	ledger := &GoldLedger{}
	s.Players[p.UID] = &player
	s.Ledgers[p.UID] = ledger
	s.order = append(s.order, p.UID)
	return ledger, true
}

// PlayerUIDs returns player uids in registration order.
func (s *Session) PlayerUIDs() []string {
	return s.order
}

// AddAuction appends a finalized auction and books its price to the winner.
// The winner must already be registered.
func (s *Session) AddAuction(a *Auction) {
	s.Auctions = append(s.Auctions, a)
	if l, ok := s.Ledgers[a.WinnerUID]; ok {
		l.AddPaid(a.Price)
	}
	s.Misc.Incoming += a.Price
}

// Record projects the session to its persisted form.
func (s *Session) Record() Record {
	rec := Record{
		UUID:    s.UID,
		Title:   s.Title,
		Date:    s.Date,
		Players: make(map[string]PlayerRecord, len(s.Players)),
		Items:   make([]AuctionRecord, 0, len(s.Auctions)),
		Ledgers: make([]LedgerRecord, 0),
		Misc:    s.Misc,
	}
	for id, p := range s.Players {
		rec.Players[id] = p.Record()
	}
	for _, a := range s.Auctions {
		rec.Items = append(rec.Items, a.Record())
	}
	for _, id := range s.PlayerUIDs() {
		if lr, ok := s.Ledgers[id].Record(id); ok {
			rec.Ledgers = append(rec.Ledgers, lr)
		}
	}
	return rec
}

// IndexEntry projects the session to its index entry.
func (s *Session) IndexEntry() IndexEntry {
	return IndexEntry{
		UID:    s.UID,
		Title:  s.Title,
		Date:   s.Date,
		Payout: s.Misc.Payout,
		Total:  s.Misc.Incoming,
	}
}
