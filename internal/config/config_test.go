package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "BOOKING_RATE_LIMIT", "BOOKING_RATE_WINDOW", "STRICT_STATUS_TRANSITIONS", "N8N_WEBHOOK_URL", "TRUSTED_PROXIES", "EMAIL_USER", "EMAIL_PASS", "S3_BUCKET"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 3, cfg.BookingRateLimit)
	assert.Equal(t, time.Hour, cfg.BookingRateWindow)
	assert.False(t, cfg.StrictStatusTransitions)
	assert.Empty(t, cfg.WebhookURL)
	assert.False(t, cfg.EmailEnabled())
	assert.False(t, cfg.StorageEnabled())
	assert.Equal(t, "America/Sao_Paulo", cfg.ShopTimezone)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("BOOKING_RATE_LIMIT", "5")
	t.Setenv("BOOKING_RATE_WINDOW", "30m")
	t.Setenv("STRICT_STATUS_TRANSITIONS", "true")
	t.Setenv("N8N_WEBHOOK_URL", " https://n8n.example.com/hook ")
	t.Setenv("EMAIL_USER", "barbearia@example.com")
	t.Setenv("EMAIL_PASS", "abcd efgh ijkl mnop")
	t.Setenv("S3_BUCKET", "barbearia-images")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 5, cfg.BookingRateLimit)
	assert.Equal(t, 30*time.Minute, cfg.BookingRateWindow)
	assert.True(t, cfg.StrictStatusTransitions)
	assert.Equal(t, "https://n8n.example.com/hook", cfg.WebhookURL)
	assert.Equal(t, "abcdefghijklmnop", cfg.EmailPass)
	assert.True(t, cfg.EmailEnabled())
	assert.True(t, cfg.StorageEnabled())
}

func TestWebhookPlaceholderDisables(t *testing.T) {
	t.Setenv("N8N_WEBHOOK_URL", "COLOQUE_SEU_WEBHOOK_AQUI")
	assert.Empty(t, Load().WebhookURL)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("BOOKING_RATE_LIMIT", "-1")
	t.Setenv("BOOKING_RATE_WINDOW", "soon")

	cfg := Load()
	assert.Equal(t, 3, cfg.BookingRateLimit)
	assert.Equal(t, time.Hour, cfg.BookingRateWindow)
}

func TestTrustedProxiesList(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, 172.16.0.0/12,, ")
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, Load().TrustedProxies)
}
