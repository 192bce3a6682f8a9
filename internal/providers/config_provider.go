package providers

import (
	"fmt"
	"sdn/internal/structures"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPollSeconds = 60
	minPollSeconds     = 15
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	if flags.EnvFile != "" {
		if err := godotenv.Load(flags.EnvFile); err != nil {
			return nil, fmt.Errorf("unable to load env file %s: %w", flags.EnvFile, err)
		}
	} else {
		// Local dev convenience; hosted runtimes inject real env vars.
		_ = godotenv.Load()
	}

	v := viper.New()

	// The env surface predates this daemon, so the names are bound
	// explicitly instead of derived from the config keys.
	bindings := map[string]string{
		"steam.apiKey":          "STEAM_API_KEY",
		"steam.friendId64":      "STEAM_FRIEND_ID64",
		"steam.pollSeconds":     "POLL_SECONDS",
		"discord.botMode":       "BOT_MODE",
		"discord.botToken":      "DISCORD_BOT_TOKEN",
		"discord.channelId":     "DISCORD_CHANNEL_ID",
		"discord.webhookUrl":    "DISCORD_WEBHOOK_URL",
		"discord.mentionUserId": "DISCORD_USER_ID",
		"filters.onlyOnline":    "ONLY_ONLINE",
		"filters.onlyGames":     "ONLY_GAMES",
		"keepalive.enabled":     "KEEPALIVE",
		"keepalive.port":        "PORT",
		"persistence.filePath":  "SDN_STATUS_FILE",
		"logger.level":          "SDN_LOG_LEVEL",
		"logger.dir":            "SDN_LOG_DIR",
		"logger.mode":           "SDN_LOG_FILE_MODE",
		"metrics.enabled":       "SDN_METRICS_ENABLED",
		"cache.enabled":         "SDN_CACHE_ENABLED",
		"cache.size":            "SDN_CACHE_SIZE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	v.SetDefault("steam.pollSeconds", defaultPollSeconds)
	v.SetDefault("keepalive.port", 3000)
	v.SetDefault("persistence.filePath", ".status.json")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0o644)
	v.SetDefault("cache.size", 1)

	pollSeconds := v.GetInt("steam.pollSeconds")
	if pollSeconds < minPollSeconds {
		// Hard floor to be kind to the upstream API.
		pollSeconds = minPollSeconds
	}

	conf := &structures.Config{
		Steam: structures.SteamConfig{
			APIKey:      strings.TrimSpace(v.GetString("steam.apiKey")),
			FriendID64:  strings.TrimSpace(v.GetString("steam.friendId64")),
			PollSeconds: pollSeconds,
		},
		Discord: structures.DiscordConfig{
			BotMode:       parseBool(v.GetString("discord.botMode"), false),
			BotToken:      strings.TrimSpace(v.GetString("discord.botToken")),
			ChannelID:     strings.TrimSpace(v.GetString("discord.channelId")),
			WebhookURL:    strings.TrimSpace(v.GetString("discord.webhookUrl")),
			MentionUserID: strings.TrimSpace(v.GetString("discord.mentionUserId")),
		},
		Filters: structures.FiltersConfig{
			OnlyOnline: parseBool(v.GetString("filters.onlyOnline"), false),
			OnlyGames:  splitGames(v.GetString("filters.onlyGames")),
		},
		Keepalive: structures.KeepaliveConfig{
			Enabled: parseBool(v.GetString("keepalive.enabled"), true),
			Host:    "0.0.0.0",
			Port:    v.GetInt("keepalive.port"),
		},
		Persistence: structures.PersistenceConfig{
			FilePath: v.GetString("persistence.filePath"),
		},
		Logger: structures.LoggerConfig{
			Level: v.GetString("logger.level"),
			Mode:  v.GetUint32("logger.mode"),
			Dir:   v.GetString("logger.dir"),
		},
		Metrics: structures.MetricsConfig{
			Enabled: parseBool(v.GetString("metrics.enabled"), true),
		},
		Cache: structures.CacheConfig{
			Enabled: parseBool(v.GetString("cache.enabled"), true),
			Size:    v.GetInt("cache.size"),
		},
	}

	cnfValidator := NewCnfValidator(conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	conf.AppName = "SteamDiscordNotifier"
	conf.Debug = flags.DebugMode

	return conf, nil
}

// parseBool accepts the historical 1|true|yes forms, case-insensitively.
// Anything else is false; an unset variable keeps the fallback.
func parseBool(raw string, fallback bool) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "yes":
		return true
	}
	return false
}

// splitGames normalizes the comma-separated ONLY_GAMES list: entries are
// trimmed, lowercased and empty ones dropped.
func splitGames(raw string) []string {
	parts := strings.Split(raw, ",")
	games := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			games = append(games, part)
		}
	}
	return games
}
