package storage

import (
	"strings"

	"golang.org/x/text/cases"
)

type RosterEntry struct {
	Name string `yaml:"nome" json:"nome"`
	Role string `yaml:"funcao" json:"funcao"`
}

// Roster maps a supervisor to the crew printed on the cover page.
// Lookups ignore case and surrounding spaces.
type Roster struct {
	teams map[string][]RosterEntry
	names map[string]string
}

func NewRoster(teams map[string][]RosterEntry) *Roster {
	r := &Roster{
		teams: make(map[string][]RosterEntry, len(teams)),
		names: make(map[string]string, len(teams)),
	}
	for name, members := range teams {
		key := FoldKey(name)
		r.teams[key] = append(r.teams[key], members...)
		if _, ok := r.names[key]; !ok {
			r.names[key] = name
		}
	}
	return r
}

// Lookup returns the crew for supervisor; ok is false when the supervisor is unmapped.
func (r *Roster) Lookup(supervisor string) ([]RosterEntry, bool) {
	if r == nil {
		return nil, false
	}
	members, ok := r.teams[FoldKey(supervisor)]
	return members, ok
}

// Supervisors returns the supervisor names as written in the source.
func (r *Roster) Supervisors() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, n)
	}
	return out
}

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.teams)
}

// FoldKey is the case-insensitive key used to match supervisor names.
func FoldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
