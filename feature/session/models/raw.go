package models

// RawExport is one session export as written by the GDKP addon.
// Pointer fields are required; nil means the key was absent.
type RawExport struct {
	Title             *string                      `json:"title"`
	CreatedAt         any                          `json:"createdAt"`
	ID                *string                      `json:"ID"`
	LastAvailableBase any                          `json:"lastAvailableBase"`
	Auctions          *Object[RawAuction]          `json:"Auctions"`
	GoldLedger        *Object[Object[RawLogEntry]] `json:"GoldLedger"`
	Pot               *RawPot                      `json:"Pot"`
}

// RawAuction is a single lot of the Auctions table.
type RawAuction struct {
	ID     *string         `json:"ID"`
	Price  any             `json:"price"`
	ItemID any             `json:"itemID"`
	Winner *RawPlayer      `json:"Winner"`
	Bids   *Object[RawBid] `json:"Bids"`
	Note   string          `json:"note"`
}

// RawPlayer is a player reference carrying the composite uuid tag.
type RawPlayer struct {
	UUID  *string `json:"uuid"`
	Name  string  `json:"name"`
	Class string  `json:"class"`
	Race  string  `json:"race"`
}

// RawBid is an entry of an auction's Bids table.
type RawBid struct {
	Bidder *RawPlayer `json:"Bidder"`
}

// RawLogEntry is a dated trade or mail movement of the GoldLedger table.
type RawLogEntry struct {
	Type     string `json:"type"`
	Received any    `json:"received"`
	Given    any    `json:"given"`
}

// RawPot holds the payout table.
type RawPot struct {
	Cuts *Object[any] `json:"Cuts"`
}

// Log entry types.
const (
	LogTypeTrade = "trade"
	LogTypeMail  = "mail"
)
