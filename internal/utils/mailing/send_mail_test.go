package mailing

import (
	"FoodWasteLogger/internal/utils"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMailConfig_Configured(t *testing.T) {
	utils.ResetConfig()
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_AUTH_EMAIL", "")
	assert.False(t, LoadMailConfig().Configured())

	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_AUTH_EMAIL", "pantry@example.com")
	assert.True(t, LoadMailConfig().Configured())
}

func TestNewMessage(t *testing.T) {
	config := MailConfig{SMTPEmail: "pantry@example.com", SMTPSender: "Food Waste Logger"}

	msg := NewMessage(config, "me@example.com", "Food expiry alert", "<b>Milk</b>")

	assert.Equal(t, []string{"me@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Food expiry alert"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{`"Food Waste Logger" <pantry@example.com>`}, msg.GetHeader("From"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<b>Milk</b>")
}

func TestSendMail_InvalidPort(t *testing.T) {
	utils.ResetConfig()
	t.Setenv("SMTP_PORT", "not-a-port")

	err := SendMail("me@example.com", "subject", "body")

	assert.Error(t, err)
}
