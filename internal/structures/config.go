package structures

type SteamConfig struct {
	APIKey      string `validate:"required"`
	FriendID64  string `validate:"required"`
	PollSeconds int    `validate:"required|int|min:15"`
}

type DiscordConfig struct {
	BotMode       bool
	BotToken      string
	ChannelID     string
	WebhookURL    string
	MentionUserID string
}

type FiltersConfig struct {
	OnlyOnline bool
	OnlyGames  []string
}

type KeepaliveConfig struct {
	Enabled bool
	Host    string `validate:"required"`
	Port    int    `validate:"required|uint|min:1"`
}

type PersistenceConfig struct {
	FilePath string `validate:"required"`
}

type LoggerConfig struct {
	Level string `validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32
	Dir   string
}

type MetricsConfig struct {
	Enabled bool
}

type CacheConfig struct {
	Enabled bool
	Size    int
}

type Config struct {
	AppName     string
	Debug       bool
	Steam       SteamConfig
	Discord     DiscordConfig
	Filters     FiltersConfig
	Keepalive   KeepaliveConfig
	Persistence PersistenceConfig
	Logger      LoggerConfig
	Metrics     MetricsConfig
	Cache       CacheConfig
}
