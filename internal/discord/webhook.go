package discord

import (
	"fmt"
	"net/url"
	"sdn/internal/models"
	"sdn/internal/providers"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// WebhookNotifier executes a Discord webhook. No authentication beyond
// the webhook token embedded in the URL is needed.
type WebhookNotifier struct {
	session *discordgo.Session
	id      string
	token   string
	mention string
	logger  providers.Logger
}

func NewWebhookNotifier(webhookURL, mentionUserID string, logger providers.Logger) (*WebhookNotifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	session.Client.Timeout = sendTimeout

	return &WebhookNotifier{
		session: session,
		id:      id,
		token:   token,
		mention: mentionUserID,
		logger:  logger,
	}, nil
}

func (n *WebhookNotifier) Name() string { return "webhook" }

func (n *WebhookNotifier) Send(snapshot *models.PlayerSnapshot, reason string) error {
	content, embed := BuildMessage(snapshot, reason, n.mention)
	_, err := n.session.WebhookExecute(n.id, n.token, false, &discordgo.WebhookParams{
		Content:         content,
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: allowedMentions(),
	})
	if err != nil {
		logSendFailure(n.logger, "webhook", err)
	}
	return err
}

// ParseWebhookURL extracts the webhook id and token from a Discord webhook
// URL of the form .../api/webhooks/{id}/{token}.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid webhook url: %w", err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, segment := range segments {
		if segment == "webhooks" && i == len(segments)-3 {
			if segments[i+1] != "" && segments[i+2] != "" {
				return segments[i+1], segments[i+2], nil
			}
		}
	}
	return "", "", fmt.Errorf("webhook url %q does not end in /webhooks/{id}/{token}", raw)
}
