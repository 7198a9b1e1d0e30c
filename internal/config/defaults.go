package config

import "time"

const (
	// DefaultTokenDuration is the validity window of issued bearer tokens.
	DefaultTokenDuration = time.Hour

	// DefaultOTPDuration is the validity window of emailed one-time codes.
	DefaultOTPDuration = 10 * time.Minute

	// DefaultRequestTimeout bounds a single inbound HTTP request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultMailerTimeout bounds a single outbound mail-delivery attempt.
	DefaultMailerTimeout = 15 * time.Second

	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = "localhost:8080"

	// DefaultTokenIssuer is the "iss" claim used when none is configured.
	DefaultTokenIssuer = "taskward"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			OTPDuration:   DefaultOTPDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Mailer: Mailer{
			Timeout: DefaultMailerTimeout,
		},
	}
}
