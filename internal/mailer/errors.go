package mailer

import "errors"

// ErrSendingMail wraps any transport or provider-side delivery failure.
var ErrSendingMail = errors.New("error sending mail")
