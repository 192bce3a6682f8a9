package steam

import (
	"sdn/internal/models"
	"time"
)

type summariesDTO struct {
	Response struct {
		Players []playerDTO `json:"players"`
	} `json:"response"`
}

// playerDTO mirrors the subset of the summaries record this daemon reads.
// GameExtraInfo is a pointer because its mere presence marks the player
// as in-game.
type playerDTO struct {
	PersonaName   string  `json:"personaname"`
	PersonaState  int     `json:"personastate"`
	GameExtraInfo *string `json:"gameextrainfo"`
	AvatarFull    string  `json:"avatarfull"`
	ProfileURL    string  `json:"profileurl"`
}

func (p playerDTO) toSnapshot(now time.Time) *models.PlayerSnapshot {
	name := p.PersonaName
	if name == "" {
		name = "Friend"
	}

	// InGame implies a non-empty title; an empty gameextrainfo is treated
	// as not playing.
	game := ""
	if p.GameExtraInfo != nil {
		game = *p.GameExtraInfo
	}

	return &models.PlayerSnapshot{
		Name:         name,
		PersonaState: p.PersonaState,
		StateLabel:   models.PersonaLabel(p.PersonaState),
		InGame:       game != "",
		Game:         game,
		AvatarURL:    p.AvatarFull,
		ProfileURL:   p.ProfileURL,
		Timestamp:    now.Unix(),
	}
}
