package discord

import (
	"sdn/internal/models"
	"sdn/internal/providers"
	"sdn/internal/structures"
	"time"
)

const sendTimeout = 20 * time.Second

// Notifier is one of the two delivery back-ends. Both post the payload
// built by BuildMessage; they differ only in transport.
type Notifier interface {
	Name() string
	Send(snapshot *models.PlayerSnapshot, reason string) error
}

// NewNotifier selects the back-end from config. Config validation has
// already guaranteed the fields for the selected mode are present.
func NewNotifier(conf *structures.Config, logger providers.Logger) (Notifier, error) {
	if conf.Discord.BotMode {
		return NewBotNotifier(conf.Discord.BotToken, conf.Discord.ChannelID, conf.Discord.MentionUserID, logger)
	}
	return NewWebhookNotifier(conf.Discord.WebhookURL, conf.Discord.MentionUserID, logger)
}
