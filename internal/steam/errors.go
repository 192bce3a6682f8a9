package steam

import (
	"errors"
	"fmt"
)

// ErrNoPlayerData means the API answered 200 with an empty players array,
// which usually points at a wrong SteamID64 or API key.
var ErrNoPlayerData = errors.New("no player data returned - check SteamID64 and API key")

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("steam api status %d: %s", e.Status, e.Body)
}
