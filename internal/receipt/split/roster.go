package split

import (
	"fmt"
	"strings"
)

// Role defines how a participant takes part in a receipt split
type Role string

const (
	// RoleSharer participants split the shared remainder evenly
	RoleSharer Role = "SHARER"
	// RoleSpecificOnly participants pay only for their own items
	RoleSpecificOnly Role = "SPECIFIC_ONLY"
)

// Participant is a named member of the roster
type Participant struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Roster is the fixed four-role participant model: two sharers and two
// specific-only participants.
type Roster struct {
	participants [4]Participant
}

// NewRoster builds a roster from the two sharer names followed by the two
// specific-only names. Names must be non-blank and unique.
func NewRoster(sharerA, sharerB, otherA, otherB string) (Roster, error) {
	names := []string{sharerA, sharerB, otherA, otherB}
	seen := make(map[string]bool, len(names))

	var r Roster
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return Roster{}, fmt.Errorf("%w: participant %d has no name", ErrInvalidRoster, i+1)
		}
		if seen[name] {
			return Roster{}, fmt.Errorf("%w: duplicate participant %q", ErrInvalidRoster, name)
		}
		seen[name] = true

		role := RoleSpecificOnly
		if i < 2 {
			role = RoleSharer
		}
		r.participants[i] = Participant{Name: name, Role: role}
	}
	return r, nil
}

// Participants returns all four participants in roster order
func (r Roster) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants[:])
	return out
}

// Sharers returns the two sharer names, first sharer first
func (r Roster) Sharers() (string, string) {
	return r.participants[0].Name, r.participants[1].Name
}

// Has reports whether name belongs to the roster
func (r Roster) Has(name string) bool {
	_, ok := r.RoleOf(name)
	return ok
}

// RoleOf returns the role of the named participant
func (r Roster) RoleOf(name string) (Role, bool) {
	for _, p := range r.participants {
		if p.Name == name {
			return p.Role, true
		}
	}
	return "", false
}

// Names returns the participant names in roster order
func (r Roster) Names() []string {
	out := make([]string, 0, len(r.participants))
	for _, p := range r.participants {
		out = append(out, p.Name)
	}
	return out
}
