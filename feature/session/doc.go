// Package session turns raw GDKP addon exports into normalized sessions.
//
// The parser reconciles three views of the same raid:
//
//   - Auctions reference players by composite tag ("Name-externalId"); these
//     define the player roster and their uids.
//   - GoldLedger (trade and mail logs) references players by tag too, but only
//     the name portion is reliable across sources, so entries are matched by
//     case-insensitive name. Unknown names get a synthesized player.
//   - Pot.Cuts assigns each player's share, matched by name as well. Unknown
//     names are dropped.
//
// # Usage
//
//	p := session.NewParser(logger)
//	s, err := p.ParseFile("exports/icc25.json")
//	if errors.Is(err, session.ErrMalformedExport) {
//	    // skip the file
//	}
package session
