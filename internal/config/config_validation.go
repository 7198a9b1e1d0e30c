package config

import "errors"

// validate checks that every setting without a safe default has been
// provided by at least one configuration source.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}

	if c.Mailer.BaseURL != "" && c.Mailer.From == "" {
		errs = append(errs, ErrNoMailerFrom)
	}

	return errors.Join(errs...)
}
