package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_NAME", "market_test")
	t.Setenv("AUDIT_RETENTION_DAYS", "7")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")

	LoadConfig()

	assert.Equal(t, "market_test", DbName)
	assert.Equal(t, 7, AuditRetentionDays)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, AllowedOrigins)
	assert.True(t, MinioUseSSL)
	assert.Equal(t, 24, TokenTTLHours)
}
