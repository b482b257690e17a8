package session

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gdkp-ledger/core/uid"
	"gdkp-ledger/core/utils"
	"gdkp-ledger/feature/session/models"

	"go.uber.org/zap"
)

// Parser builds sessions from raw exports.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a new parser. A nil logger disables logging.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// state is the per-export working set.
type state struct {
	session *models.Session
	roster  *Roster
	logger  *zap.Logger
}

// ParseFile reads and parses the export stored at path.
func (p *Parser) ParseFile(path string) (*models.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse decodes one export and reconciles it into a Session.
func (p *Parser) Parse(r io.Reader) (*models.Session, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw models.RawExport
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExport, err)
	}

	return p.Build(&raw)
}

// Build reconciles an already decoded export.
func (p *Parser) Build(raw *models.RawExport) (*models.Session, error) {
	st := &state{
		session: models.NewSession(),
		roster:  NewRoster(),
		logger:  p.logger,
	}

	if err := st.readHeader(raw); err != nil {
		return nil, err
	}
	st.logger = p.logger.With(zap.String("session", st.session.UID))

	if raw.Auctions == nil {
		return nil, missing("Auctions")
	}
	if err := raw.Auctions.Each(st.parseAuction); err != nil {
		return nil, err
	}

	if raw.GoldLedger == nil {
		return nil, missing("GoldLedger")
	}
	if err := raw.GoldLedger.Each(st.parseTradeLog); err != nil {
		return nil, err
	}

	if raw.Pot == nil {
		return nil, missing("Pot")
	}
	if raw.Pot.Cuts == nil {
		return nil, missing("Pot.Cuts")
	}
	if err := raw.Pot.Cuts.Each(st.parseCut); err != nil {
		return nil, err
	}

	st.logger.Debug("Export reconciled",
		zap.Int("auctions", raw.Auctions.Len()),
		zap.Int("logs", raw.GoldLedger.Len()),
		zap.Int("cuts", raw.Pot.Cuts.Len()),
		zap.Int("players", len(st.session.PlayerUIDs())),
	)
	return st.session, nil
}

func (st *state) readHeader(raw *models.RawExport) error {
	if raw.Title == nil {
		return missing("title")
	}
	if raw.ID == nil {
		return missing("ID")
	}
	if raw.CreatedAt == nil {
		return missing("createdAt")
	}
	if raw.LastAvailableBase == nil {
		return missing("lastAvailableBase")
	}

	date, err := utils.ToInt64(raw.CreatedAt)
	if err != nil {
		return malformed("createdAt", "%v", err)
	}
	payout, err := utils.ToInt64(raw.LastAvailableBase)
	if err != nil {
		return malformed("lastAvailableBase", "%v", err)
	}

	st.session.UID = uid.Derive(*raw.ID)
	st.session.Title = *raw.Title
	st.session.Date = date
	st.session.Misc = models.Misc{Payout: payout}
	return nil
}

func (st *state) parseAuction(key string, data models.RawAuction) error {
	field := "Auctions." + key

	var price int64
	if data.Price != nil {
		p, err := utils.ToInt64(data.Price)
		if err != nil {
			return malformed(field+".price", "%v", err)
		}
		price = p
	}
	if price <= 0 {
		st.logger.Debug("Skipping unsold auction", zap.String("auction", key))
		return nil
	}

	if data.ID == nil {
		return missing(field + ".ID")
	}
	if data.ItemID == nil {
		return missing(field + ".itemID")
	}
	itemID, err := utils.ToInt64(data.ItemID)
	if err != nil {
		return malformed(field+".itemID", "%v", err)
	}

	winnerUID, err := st.addPlayer(field+".Winner", data.Winner)
	if err != nil {
		return err
	}

	auction := models.NewAuction(*data.ID, price, int(itemID), winnerUID, data.Note).Finalize()
	st.session.AddAuction(auction)

	return data.Bids.Each(func(bidKey string, bid models.RawBid) error {
		_, err := st.addPlayer(field+".Bids."+bidKey+".Bidder", bid.Bidder)
		return err
	})
}

// addPlayer registers the referenced player once and returns its uid.
func (st *state) addPlayer(field string, data *models.RawPlayer) (string, error) {
	if data == nil {
		return "", missing(field)
	}
	if data.UUID == nil {
		return "", missing(field + ".uuid")
	}

	id := uid.PlayerFromTag(*data.UUID)
	st.register(models.Player{
		UID:   id,
		Name:  data.Name,
		Class: strings.ToLower(data.Class),
		Race:  strings.ToLower(data.Race),
	})
	return id, nil
}

func (st *state) register(p models.Player) *models.GoldLedger {
	ledger, created := st.session.AddPlayer(p)
	if created {
		st.roster.Add(p.Name, p.UID)
		return ledger
	}
	if existing := st.session.Players[p.UID]; !strings.EqualFold(existing.Name, p.Name) {
		st.logger.Warn("Player uid already registered under another name, merging ledgers",
			zap.String("uid", p.UID), zap.String("registered", existing.Name), zap.String("name", p.Name))
	}
	return ledger
}

// resolve returns the ledger of the player named in tag.
func (st *state) resolve(tag string) (*models.GoldLedger, bool) {
	name := uid.NameFromTag(tag)
	id, ok := st.roster.Resolve(name)
	if !ok {
		return nil, false
	}
	if candidates := st.roster.Candidates(name); len(candidates) > 1 {
		st.logger.Debug("Ambiguous player name, using first registered",
			zap.String("name", name), zap.Strings("candidates", candidates))
	}
	return st.session.Ledgers[id], true
}

func (st *state) parseTradeLog(tag string, entries models.Object[models.RawLogEntry]) error {
	ledger, ok := st.resolve(tag)
	if !ok {
		name := capitalize(uid.NameFromTag(tag))
		id := uid.Synthetic(name)
		st.logger.Debug("Trade log player not in roster, synthesizing",
			zap.String("tag", tag), zap.String("uid", id))
		ledger = st.register(models.Player{UID: id, Name: name})
	}

	return entries.Each(func(key string, entry models.RawLogEntry) error {
		field := "GoldLedger." + tag + "." + key
		switch entry.Type {
		case models.LogTypeTrade:
			received, err := utils.ScaleDown(entry.Received, models.GoldScale)
			if err != nil {
				return malformed(field+".received", "%v", err)
			}
			given, err := utils.ScaleDown(entry.Given, models.GoldScale)
			if err != nil {
				return malformed(field+".given", "%v", err)
			}
			ledger.AddTrade(received, given)
		case models.LogTypeMail:
			given, err := utils.ScaleDown(entry.Given, models.GoldScale)
			if err != nil {
				return malformed(field+".given", "%v", err)
			}
			ledger.AddMail(given)
		}
		return nil
	})
}

func (st *state) parseCut(tag string, value any) error {
	cut, err := utils.ToInt64(value)
	if err != nil {
		return malformed("Pot.Cuts."+tag, "%v", err)
	}

	ledger, ok := st.resolve(tag)
	if !ok {
		st.logger.Warn("Dropping cut for unknown player", zap.String("tag", tag), zap.Int64("cut", cut))
		return nil
	}
	ledger.SetCut(cut)
	return nil
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
