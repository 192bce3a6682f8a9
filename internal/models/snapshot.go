package models

import "fmt"

// Persona state codes as exposed by the Steam Web API.
const (
	PersonaOffline = iota
	PersonaOnline
	PersonaBusy
	PersonaAway
	PersonaSnooze
	PersonaLookingToTrade
	PersonaLookingToPlay
)

var personaLabels = map[int]string{
	PersonaOffline:        "offline",
	PersonaOnline:         "online",
	PersonaBusy:           "busy",
	PersonaAway:           "away",
	PersonaSnooze:         "snooze",
	PersonaLookingToTrade: "looking to trade",
	PersonaLookingToPlay:  "looking to play",
}

// PersonaLabel maps a persona state code to its display label.
// Codes outside the known table render as "unknown(<n>)" but still
// compare numerically everywhere else.
func PersonaLabel(state int) string {
	if label, ok := personaLabels[state]; ok {
		return label
	}
	return fmt.Sprintf("unknown(%d)", state)
}

// PlayerSnapshot is one normalized observation of the tracked user.
// InGame is true iff the summaries record carried a current game title,
// so InGame implies Game != "".
type PlayerSnapshot struct {
	Name         string `json:"name"`
	PersonaState int    `json:"persona_state"`
	StateLabel   string `json:"state_label"`
	InGame       bool   `json:"in_game"`
	Game         string `json:"game,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	ProfileURL   string `json:"profile_url,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

// Offline reports whether the snapshot represents the offline persona state.
func (s *PlayerSnapshot) Offline() bool {
	return s.PersonaState == PersonaOffline
}
