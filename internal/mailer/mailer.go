// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kovalyov

// Package mailer delivers transactional mail through an HTTP mail-provider
// API. The server only ever sends one kind of message: the password-reset
// code, so the interface stays deliberately small.
package mailer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ekovalyov/taskward/internal/config"
	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends transactional messages to users.
type Mailer interface {
	SendOTP(ctx context.Context, to string, otp string) error
}

// message is the JSON body accepted by the provider's POST /messages endpoint.
type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// httpMailer posts messages to an HTTP mail-provider API using resty.
type httpMailer struct {
	client *resty.Client
	from   string
}

// NewMailer constructs a [Mailer] from the mailer configuration.
//
// When no BaseURL is configured the returned mailer only logs the code at
// debug level instead of delivering it, which keeps local development usable
// without a mail provider account.
func NewMailer(cfg config.Mailer, log *logger.Logger) Mailer {
	if cfg.BaseURL == "" {
		log.Warn().Msg("mailer base url is not set: OTP codes will be logged, not delivered")
		return &logMailer{logger: log}
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		cli.SetAuthToken(cfg.APIKey)
	}

	return &httpMailer{client: cli, from: cfg.From}
}

func (m *httpMailer) SendOTP(ctx context.Context, to string, otp string) error {
	log := logger.FromContext(ctx)

	body := message{
		From:    m.from,
		To:      to,
		Subject: "Your password reset code",
		Text:    fmt.Sprintf("Your OTP code is: %s. It expires in 10 minutes.", otp),
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/messages")
	if err != nil {
		log.Err(err).Str("func", "*httpMailer.SendOTP").Msg("mail provider request failed")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		providerBody := strings.TrimSpace(string(resp.Body()))
		if providerBody == "" {
			providerBody = http.StatusText(resp.StatusCode())
		}

		log.Error().
			Str("func", "*httpMailer.SendOTP").
			Int("status", resp.StatusCode()).
			Msg("mail provider rejected message")
		return fmt.Errorf("%w: http %d: %s", ErrSendingMail, resp.StatusCode(), providerBody)
	}

	return nil
}

// logMailer is the no-provider fallback: it writes the code to the debug log.
type logMailer struct {
	logger *logger.Logger
}

func (m *logMailer) SendOTP(ctx context.Context, to string, otp string) error {
	log := logger.FromContext(ctx)
	log.Debug().
		Str("func", "*logMailer.SendOTP").
		Str("to", to).
		Str("otp", otp).
		Msg("mail delivery skipped: no provider configured")
	return nil
}
