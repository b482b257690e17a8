package session

import "strings"

// Roster resolves display names to player uids. Names are compared
// case-insensitively; when several players share a name the first one
// registered wins.
type Roster struct {
	byName map[string][]string
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{byName: make(map[string][]string)}
}

// Add records uid under name.
func (r *Roster) Add(name, uid string) {
	key := strings.ToLower(name)
	r.byName[key] = append(r.byName[key], uid)
}

// Resolve returns the first uid registered under name.
func (r *Roster) Resolve(name string) (string, bool) {
	uids := r.byName[strings.ToLower(name)]
	if len(uids) == 0 {
		return "", false
	}
	return uids[0], true
}

// Candidates returns every uid registered under name in registration order.
func (r *Roster) Candidates(name string) []string {
	return r.byName[strings.ToLower(name)]
}
