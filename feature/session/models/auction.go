package models

import "gdkp-ledger/core/uid"

// Item types reported in records.
const (
	ItemTypeDefault   = 1
	ItemTypeFlaskFine = 8
	ItemTypeFlask     = 9
)

// noteRule buckets an item by the exact auction note.
type noteRule struct {
	note      string
	match     int
	otherwise int
}

// itemTypeRules is closed: items missing from it are ItemTypeDefault.
var itemTypeRules = map[int]noteRule{
	45978: {note: "Fine", match: ItemTypeFlaskFine, otherwise: ItemTypeFlask},
}

// ItemType classifies an item id and auction note.
func ItemType(itemID int, note string) int {
	rule, ok := itemTypeRules[itemID]
	if !ok {
		return ItemTypeDefault
	}
	if note == rule.note {
		return rule.match
	}
	return rule.otherwise
}

// Auction is a sold lot. Build it with NewAuction and call Finalize before
// adding it to a session; UID is empty until then.
type Auction struct {
	UID       string
	RawID     string
	Price     int64
	ItemID    int
	WinnerUID string
	Note      string
}

// AuctionRecord is the persisted form of an Auction.
type AuctionRecord struct {
	UUID     string `json:"uuid"`
	Amount   int64  `json:"amount"`
	ItemID   int    `json:"itemID"`
	PlayerID string `json:"playerId"`
	Note     string `json:"note"`
	ItemType int    `json:"itemType"`
}

// NewAuction creates an auction from raw fields.
func NewAuction(rawID string, price int64, itemID int, winnerUID, note string) *Auction {
	return &Auction{
		RawID:     rawID,
		Price:     price,
		ItemID:    itemID,
		WinnerUID: winnerUID,
		Note:      note,
	}
}

// Finalize derives the auction identifier from its raw id.
func (a *Auction) Finalize() *Auction {
	a.UID = uid.Derive(a.RawID)
	return a
}

// ItemType returns the item classification of the lot.
func (a *Auction) ItemType() int {
	return ItemType(a.ItemID, a.Note)
}

// Record projects the auction to its persisted form.
func (a *Auction) Record() AuctionRecord {
	return AuctionRecord{
		UUID:     a.UID,
		Amount:   a.Price,
		ItemID:   a.ItemID,
		PlayerID: a.WinnerUID,
		Note:     a.Note,
		ItemType: a.ItemType(),
	}
}
