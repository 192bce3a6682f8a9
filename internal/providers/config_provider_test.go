package providers

import (
	"sdn/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STEAM_API_KEY", "key")
	t.Setenv("STEAM_FRIEND_ID64", "76561198000000000")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/1/t")
}

func TestNewConfigProvider_Defaults(t *testing.T) {
	setRequiredEnv(t)

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, "SteamDiscordNotifier", conf.AppName)
	assert.False(t, conf.Debug)
	assert.Equal(t, 60, conf.Steam.PollSeconds)
	assert.False(t, conf.Discord.BotMode)
	assert.False(t, conf.Filters.OnlyOnline)
	assert.Empty(t, conf.Filters.OnlyGames)
	assert.True(t, conf.Keepalive.Enabled)
	assert.Equal(t, "0.0.0.0", conf.Keepalive.Host)
	assert.Equal(t, 3000, conf.Keepalive.Port)
	assert.Equal(t, ".status.json", conf.Persistence.FilePath)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.Equal(t, uint32(0o644), conf.Logger.Mode)
	assert.True(t, conf.Metrics.Enabled)
	assert.True(t, conf.Cache.Enabled)
	assert.Equal(t, 1, conf.Cache.Size)
}

func TestNewConfigProvider_PollFloor(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_SECONDS", "5")

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, 15, conf.Steam.PollSeconds)
}

func TestNewConfigProvider_PollAboveFloorKept(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_SECONDS", "120")

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, 120, conf.Steam.PollSeconds)
}

func TestNewConfigProvider_BooleanForms(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ONLY_ONLINE", "YES")
	t.Setenv("KEEPALIVE", "0")
	t.Setenv("SDN_METRICS_ENABLED", "false")

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)
	assert.True(t, conf.Filters.OnlyOnline)
	assert.False(t, conf.Keepalive.Enabled)
	assert.False(t, conf.Metrics.Enabled)
}

func TestNewConfigProvider_GameListNormalized(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ONLY_GAMES", " Dota 2 ,CSGO,, Rust")

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dota 2", "csgo", "rust"}, conf.Filters.OnlyGames)
}

func TestNewConfigProvider_BotMode(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "key")
	t.Setenv("STEAM_FRIEND_ID64", "76561198000000000")
	t.Setenv("BOT_MODE", "true")
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "42")

	conf, err := NewConfigProvider(&structures.CliFlags{DebugMode: true})
	require.NoError(t, err)
	assert.True(t, conf.Discord.BotMode)
	assert.True(t, conf.Debug)
}

func TestNewConfigProvider_MissingSteamKey(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "")
	t.Setenv("STEAM_FRIEND_ID64", "76561198000000000")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/1/t")

	_, err := NewConfigProvider(&structures.CliFlags{})
	assert.Error(t, err)
}

func TestNewConfigProvider_MissingEnvFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{EnvFile: "does-not-exist.env"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.env")
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw      string
		fallback bool
		expected bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{" Yes ", false, true},
		{"0", true, false},
		{"no", true, false},
		{"banana", true, false},
		{"", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseBool(tt.raw, tt.fallback), "raw=%q", tt.raw)
	}
}

func TestSplitGames(t *testing.T) {
	assert.Empty(t, splitGames(""))
	assert.Empty(t, splitGames(" , ,"))
	assert.Equal(t, []string{"dota 2"}, splitGames("Dota 2"))
	assert.Equal(t, []string{"a", "b"}, splitGames("A,  B ,"))
}
