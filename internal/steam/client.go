package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sdn/internal/models"
	"sdn/internal/structures"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	DefaultBaseURL = "https://api.steampowered.com"
	summariesPath  = "/ISteamUser/GetPlayerSummaries/v2/"

	requestTimeout = 20 * time.Second
)

type ClientInterface interface {
	FetchSnapshot(ctx context.Context) (*models.PlayerSnapshot, error)
}

type Client struct {
	apiKey  string
	steamID string
	http    *http.Client
	baseURL string
}

func New(apiKey, steamID string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		steamID: steamID,
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: DefaultBaseURL,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewClient is the DI constructor.
func NewClient(conf *structures.Config) ClientInterface {
	return New(conf.Steam.APIKey, conf.Steam.FriendID64)
}

// FetchSnapshot issues one GET against the player-summaries endpoint and
// normalizes the first player record into a snapshot.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.PlayerSnapshot, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("steamids", c.steamID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+summariesPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("steam http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return nil, &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var dto summariesDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("steam decode: %w", err)
	}
	if len(dto.Response.Players) == 0 {
		return nil, ErrNoPlayerData
	}

	return dto.Response.Players[0].toSnapshot(time.Now()), nil
}
