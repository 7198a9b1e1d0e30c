package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergePriority(t *testing.T) {
	// First config in the list wins for non-zero fields.
	first := &StructuredConfig{
		App: App{TokenSignKey: "from-env", TokenDuration: 2 * time.Hour},
	}
	second := &StructuredConfig{
		App:     App{TokenSignKey: "from-json", TokenIssuer: "json-issuer"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second, defaultConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)

	// gaps are filled by defaults
	assert.Equal(t, DefaultOTPDuration, cfg.App.OTPDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, defaultConfig())

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
	assert.ErrorIs(t, err, ErrNoDatabaseDSN)
}

func TestValidate_MailerFromRequiredWithBaseURL(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/db"
	cfg.Mailer.BaseURL = "https://api.mail.example.com/v1"

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrNoMailerFrom)

	cfg.Mailer.From = "no-reply@taskward.dev"
	assert.NoError(t, cfg.validate())
}
