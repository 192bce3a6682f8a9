package providers

import (
	"errors"
	"sdn/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate runs the struct tag rules plus the transport selection rule,
// which cannot be expressed as a single-field tag: bot mode requires a
// token and a channel, webhook mode requires a webhook URL.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	if cv.conf.Discord.BotMode {
		if cv.conf.Discord.BotToken == "" || cv.conf.Discord.ChannelID == "" {
			return errors.New("BOT_MODE=true requires DISCORD_BOT_TOKEN and DISCORD_CHANNEL_ID")
		}
		return nil
	}
	if cv.conf.Discord.WebhookURL == "" {
		return errors.New("provide DISCORD_WEBHOOK_URL (webhook mode) or set BOT_MODE=true with bot token and channel")
	}
	return nil
}
