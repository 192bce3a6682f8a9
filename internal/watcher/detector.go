package watcher

import (
	"sdn/internal/models"
	"sdn/internal/structures"
	"strings"
)

const (
	ReasonCameOnline     = "came online"
	ReasonStartedPlaying = "started playing"
)

// Detector decides whether the change between two snapshots is worth a
// notification. It is pure: no clock, no I/O, no mutation.
type Detector struct {
	onlyOnline bool
	onlyGames  map[string]struct{}
}

func NewDetector(conf *structures.Config) *Detector {
	games := make(map[string]struct{}, len(conf.Filters.OnlyGames))
	for _, game := range conf.Filters.OnlyGames {
		games[strings.ToLower(game)] = struct{}{}
	}
	return &Detector{
		onlyOnline: conf.Filters.OnlyOnline,
		onlyGames:  games,
	}
}

// Decide evaluates the rules in order; the first matching rule wins, so a
// tick that both comes online and starts a game produces one message.
// A nil prev (fresh install, discarded status file) counts as offline and
// not in game.
//
// Rule 1, came online: offline → any online-ish state. Suppressed when the
// user asked for game alerts only (only_online together with a non-empty
// game list).
// Rule 2, started playing: not-in-game → in-game. Suppressed when
// only_online is set, or when a game list is set and the title is not on
// it (case-insensitive). Switching between games never fires.
func (d *Detector) Decide(prev, curr *models.PlayerSnapshot) (bool, string) {
	prevState := models.PersonaOffline
	prevInGame := false
	if prev != nil {
		prevState = prev.PersonaState
		prevInGame = prev.InGame
	}

	if prevState == models.PersonaOffline && curr.PersonaState > models.PersonaOffline {
		if d.onlyOnline && len(d.onlyGames) > 0 {
			return false, ""
		}
		return true, ReasonCameOnline
	}

	if !prevInGame && curr.InGame {
		if len(d.onlyGames) > 0 {
			if _, ok := d.onlyGames[strings.ToLower(curr.Game)]; !ok {
				return false, ""
			}
		}
		if d.onlyOnline {
			return false, ""
		}
		return true, ReasonStartedPlaying
	}

	return false, ""
}
