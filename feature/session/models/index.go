package models

// IndexEntry is the searchable summary of one session.
type IndexEntry struct {
	UID    string
	Title  string
	Date   int64
	Payout int64
	Total  int64
}

// IndexRecord is the persisted form of an IndexEntry. Note the key of the
// identifier is "uuid" while the field is UID.
type IndexRecord struct {
	UUID   string `json:"uuid"`
	Title  string `json:"title"`
	Date   int64  `json:"date"`
	Payout int64  `json:"payout"`
	Total  int64  `json:"total"`
}

// Record projects the entry to its persisted form.
func (e IndexEntry) Record() IndexRecord {
	return IndexRecord{
		UUID:   e.UID,
		Title:  e.Title,
		Date:   e.Date,
		Payout: e.Payout,
		Total:  e.Total,
	}
}

// Entry converts a persisted record back to an IndexEntry.
func (r IndexRecord) Entry() IndexEntry {
	return IndexEntry{
		UID:    r.UUID,
		Title:  r.Title,
		Date:   r.Date,
		Payout: r.Payout,
		Total:  r.Total,
	}
}
