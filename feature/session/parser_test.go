package session

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gdkp-ledger/core/uid"
	"gdkp-ledger/feature/session/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func parseFixture(t *testing.T) *models.Session {
	t.Helper()
	p := NewParser(zap.NewNop())
	s, err := p.ParseFile(filepath.Join("testdata", "icc25.json"))
	require.NoError(t, err)
	return s
}

func TestParse_Header(t *testing.T) {
	s := parseFixture(t)

	assert.Equal(t, uid.Derive("1700000000-Organizer-1"), s.UID)
	assert.Equal(t, "ICC 25 Heroic", s.Title)
	assert.Equal(t, int64(1700000000), s.Date)
	assert.Equal(t, int64(125000), s.Misc.Payout)
}

func TestParse_Auctions(t *testing.T) {
	s := parseFixture(t)

	require.Len(t, s.Auctions, 3)
	assert.Equal(t, uid.Derive("auction-3"), s.Auctions[0].UID)
	assert.Equal(t, uid.Derive("auction-1"), s.Auctions[1].UID)
	assert.Equal(t, uid.Derive("auction-5"), s.Auctions[2].UID)

	assert.Equal(t, "0A1", s.Auctions[0].WinnerUID)
	assert.Equal(t, models.ItemTypeFlaskFine, s.Auctions[1].ItemType())
	assert.Equal(t, models.ItemTypeFlask, s.Auctions[2].ItemType())
	assert.Equal(t, int64(5000), s.Misc.Incoming)

	t.Run("UnsoldAuctionsLeaveNoTrace", func(t *testing.T) {
		assert.NotContains(t, s.Players, "0Z9")
		assert.NotContains(t, s.Players, "0Y8")
	})

	t.Run("PaidMatchesWonAuctions", func(t *testing.T) {
		won := map[string]int64{}
		for _, a := range s.Auctions {
			won[a.WinnerUID] += a.Price
		}
		for id, l := range s.Ledgers {
			assert.Equal(t, won[id], l.Paid, "player %s", id)
		}
	})
}

func TestParse_Players(t *testing.T) {
	s := parseFixture(t)

	alice := s.Players["0A1"]
	require.NotNil(t, alice)
	assert.Equal(t, models.Player{UID: "0A1", Name: "Alice", Class: "mage", Race: "gnome"}, *alice)

	// Bidders who never won still get an identity.
	require.Contains(t, s.Players, "0B2")
	assert.Equal(t, int64(0), s.Ledgers["0B2"].Paid)

	dave := uid.Synthetic("Dave")
	require.Contains(t, s.Players, dave)
	assert.Equal(t, models.Player{UID: dave, Name: "Dave"}, *s.Players[dave])

	assert.Equal(t, []string{"0A1", "0B2", "0C3", dave}, s.PlayerUIDs())
	assert.Len(t, s.Ledgers, len(s.Players))
}

func TestParse_TradeLog(t *testing.T) {
	s := parseFixture(t)

	alice := s.Ledgers["0A1"]
	assert.Equal(t, int64(3500), alice.Received)
	assert.Equal(t, int64(0), alice.Given)
	assert.Equal(t, int64(1), alice.Mailed)

	bob := s.Ledgers["0B2"]
	assert.Equal(t, int64(60000), bob.Given)
	assert.Equal(t, int64(0), bob.Received, "unknown log types are ignored")

	dave := s.Ledgers[uid.Synthetic("Dave")]
	assert.Equal(t, int64(123), dave.Received)
}

func TestParse_Cuts(t *testing.T) {
	s := parseFixture(t)

	assert.Equal(t, int64(600), s.Ledgers["0A1"].Cut)
	assert.Equal(t, int64(650), s.Ledgers["0B2"].Cut, "last cut for a name wins")
	assert.Equal(t, int64(0), s.Ledgers["0C3"].Cut)
	assert.Equal(t, int64(100), s.Ledgers[uid.Synthetic("Dave")].Cut)

	t.Run("UnmatchedCutIsDropped", func(t *testing.T) {
		for _, p := range s.Players {
			assert.NotEqual(t, "Nobody", p.Name)
		}
	})

	rec := s.Record()
	assert.Len(t, rec.Ledgers, 3)
	for _, l := range rec.Ledgers {
		assert.NotZero(t, l.Cut)
	}
	assert.LessOrEqual(t, len(rec.Ledgers), len(rec.Players))
}

func TestParse_Deterministic(t *testing.T) {
	a := parseFixture(t).Record()
	b := parseFixture(t).Record()
	assert.Equal(t, a, b)
}

func TestParse_CaseInsensitiveNames(t *testing.T) {
	for _, name := range []string{"alice", "ALICE", "Alice"} {
		t.Run(name, func(t *testing.T) {
			raw := exportWith(`{"a":{"ID":"x","price":10,"itemID":1,"Winner":{"uuid":"`+name+`-1","name":"`+name+`","class":"","race":""}}}`,
				`{"Alice-123":{"t":{"type":"trade","received":20000,"given":0}}}`,
				`{"Alice-123":42}`)
			s, err := NewParser(nil).Parse(strings.NewReader(raw))
			require.NoError(t, err)
			assert.Len(t, s.Players, 1)
			assert.Equal(t, int64(2), s.Ledgers["1"].Received)
			assert.Equal(t, int64(42), s.Ledgers["1"].Cut)
		})
	}
}

func TestParse_DuplicateNamesFirstRegisteredWins(t *testing.T) {
	raw := exportWith(`{
		"a":{"ID":"x","price":10,"itemID":1,"Winner":{"uuid":"Eve-1","name":"Eve","class":"","race":""}},
		"b":{"ID":"y","price":10,"itemID":1,"Winner":{"uuid":"Eve-2","name":"eve","class":"","race":""}}
	}`, `{}`, `{"Eve-X":7}`)

	s, err := NewParser(nil).Parse(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.Ledgers["1"].Cut)
	assert.Equal(t, int64(0), s.Ledgers["2"].Cut)
}

func TestParse_UIDReusedUnderAnotherName(t *testing.T) {
	raw := exportWith(`{
		"a":{"ID":"x","price":10,"itemID":1,"Winner":{"uuid":"Ann-1","name":"Ann","class":"","race":""}},
		"b":{"ID":"y","price":5,"itemID":1,"Winner":{"uuid":"ann-1","name":"ann","class":"","race":""}},
		"c":{"ID":"z","price":20,"itemID":1,"Winner":{"uuid":"Bob-1","name":"Bob","class":"","race":""}}
	}`, `{}`, `{}`)

	core, logs := observer.New(zap.WarnLevel)
	s, err := NewParser(zap.New(core)).Parse(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Len(t, s.Players, 1)
	assert.Equal(t, "Ann", s.Players["1"].Name)
	assert.Equal(t, int64(35), s.Ledgers["1"].Paid)

	warned := logs.FilterMessageSnippet("another name").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "Bob", warned[0].ContextMap()["name"])
	assert.Equal(t, "Ann", warned[0].ContextMap()["registered"])
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"NotJSON", `{`, ""},
		{"MissingTitle", `{"createdAt":1,"ID":"x","lastAvailableBase":0,"Auctions":{},"GoldLedger":{},"Pot":{"Cuts":{}}}`, "title"},
		{"MissingDate", `{"title":"t","ID":"x","lastAvailableBase":0,"Auctions":{},"GoldLedger":{},"Pot":{"Cuts":{}}}`, "createdAt"},
		{"MissingID", `{"title":"t","createdAt":1,"lastAvailableBase":0,"Auctions":{},"GoldLedger":{},"Pot":{"Cuts":{}}}`, "ID"},
		{"BadBase", `{"title":"t","createdAt":1,"ID":"x","lastAvailableBase":"abc","Auctions":{},"GoldLedger":{},"Pot":{"Cuts":{}}}`, "lastAvailableBase"},
		{"MissingAuctions", `{"title":"t","createdAt":1,"ID":"x","lastAvailableBase":0,"GoldLedger":{},"Pot":{"Cuts":{}}}`, "Auctions"},
		{"MissingCuts", `{"title":"t","createdAt":1,"ID":"x","lastAvailableBase":0,"Auctions":{},"GoldLedger":{},"Pot":{}}`, "Pot.Cuts"},
		{"MissingWinnerTag", exportWith(`{"a":{"ID":"x","price":10,"itemID":1,"Winner":{"name":"A"}}}`, `{}`, `{}`), "Auctions.a.Winner.uuid"},
		{"BadPrice", exportWith(`{"a":{"ID":"x","price":"lots","itemID":1,"Winner":{"uuid":"A-1"}}}`, `{}`, `{}`), "Auctions.a.price"},
		{"PriceOutOfRange", exportWith(`{"a":{"ID":"x","price":1e30,"itemID":1,"Winner":{"uuid":"A-1"}}}`, `{}`, `{}`), "Auctions.a.price"},
		{"CutOutOfRange", exportWith(`{}`, `{}`, `{"A-1":-1e30}`), "Pot.Cuts.A-1"},
		{"MissingTradeAmount", exportWith(`{}`, `{"A-1":{"t":{"type":"trade","given":1}}}`, `{}`), "received"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewParser(nil).Parse(strings.NewReader(tt.raw))
			assert.Nil(t, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedExport))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func exportWith(auctions, ledger, cuts string) string {
	return `{"title":"t","createdAt":1,"ID":"raw","lastAvailableBase":0,` +
		`"Auctions":` + auctions + `,"GoldLedger":` + ledger + `,"Pot":{"Cuts":` + cuts + `}}`
}
