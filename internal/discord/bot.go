package discord

import (
	"errors"
	"sdn/internal/models"
	"sdn/internal/providers"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// BotNotifier posts channel messages with a bot token. The session is
// REST-only; no gateway connection is opened.
type BotNotifier struct {
	session   *discordgo.Session
	channelID string
	mention   string
	logger    providers.Logger
}

func NewBotNotifier(token, channelID, mentionUserID string, logger providers.Logger) (*BotNotifier, error) {
	session, err := discordgo.New("Bot " + strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	session.Client.Timeout = sendTimeout

	return &BotNotifier{
		session:   session,
		channelID: channelID,
		mention:   mentionUserID,
		logger:    logger,
	}, nil
}

func (n *BotNotifier) Name() string { return "bot" }

func (n *BotNotifier) Send(snapshot *models.PlayerSnapshot, reason string) error {
	content, embed := BuildMessage(snapshot, reason, n.mention)
	_, err := n.session.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Content:         content,
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: allowedMentions(),
	})
	if err != nil {
		logSendFailure(n.logger, "bot", err)
	}
	return err
}

// logSendFailure emits the single error line with status code and response
// body when Discord rejected the message.
func logSendFailure(logger providers.Logger, backend string, err error) {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		logger.Errorf(providers.TypeNotify, "%s send failed: %d %s",
			backend, restErr.Response.StatusCode, string(restErr.ResponseBody))
		return
	}
	logger.Errorf(providers.TypeNotify, "%s send failed: %s", backend, err)
}
