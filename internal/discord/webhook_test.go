package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookURL_Valid(t *testing.T) {
	id, token, err := ParseWebhookURL("https://discord.com/api/webhooks/123456/abcDEF-ghi")
	require.NoError(t, err)
	assert.Equal(t, "123456", id)
	assert.Equal(t, "abcDEF-ghi", token)
}

func TestParseWebhookURL_VersionedPath(t *testing.T) {
	id, token, err := ParseWebhookURL("https://discord.com/api/v9/webhooks/123456/tok")
	require.NoError(t, err)
	assert.Equal(t, "123456", id)
	assert.Equal(t, "tok", token)
}

func TestParseWebhookURL_TrailingSlash(t *testing.T) {
	id, token, err := ParseWebhookURL("https://discord.com/api/webhooks/123456/tok/")
	require.NoError(t, err)
	assert.Equal(t, "123456", id)
	assert.Equal(t, "tok", token)
}

func TestParseWebhookURL_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"https://discord.com/api/webhooks/123456",
		"https://discord.com/api/webhooks",
		"https://example.com/not/a/webhook",
		"https://discord.com/api/webhooks/123456/tok/extra",
	} {
		_, _, err := ParseWebhookURL(raw)
		assert.Error(t, err, raw)
	}
}
