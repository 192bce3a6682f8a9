package discord

import (
	"fmt"
	"sdn/internal/models"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// BuildMessage produces the message content and the single embed both
// back-ends post. The description carries only the non-empty lines, in
// fixed order: status, game, profile.
func BuildMessage(curr *models.PlayerSnapshot, reason, mentionUserID string) (string, *discordgo.MessageEmbed) {
	content := "Steam update:"
	if mentionUserID != "" {
		content = fmt.Sprintf("<@%s> Steam update:", mentionUserID)
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "Status: **%s**\n", curr.StateLabel)
	if curr.InGame && curr.Game != "" {
		fmt.Fprintf(&desc, "Game: **%s**\n", curr.Game)
	}
	if curr.ProfileURL != "" {
		fmt.Fprintf(&desc, "Profile: %s\n", curr.ProfileURL)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s!", curr.Name, reason),
		Description: desc.String(),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: curr.AvatarURL},
	}
	return content, embed
}

// Only user mentions may ping; role and everyone pings stay inert even if
// someone's persona name contains them.
func allowedMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
	}
}
