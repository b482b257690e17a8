package models

// Player is a participant of a session.
type Player struct {
	UID   string
	Name  string
	Class string
	Race  string
}

// PlayerRecord is the persisted form of a Player.
type PlayerRecord struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Race  string `json:"race"`
}

// Record projects the player to its persisted form.
func (p *Player) Record() PlayerRecord {
	return PlayerRecord{
		UID:   p.UID,
		Name:  p.Name,
		Class: p.Class,
		Race:  p.Race,
	}
}
