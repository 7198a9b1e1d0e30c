package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP produces a 4-digit numeric one-time code in the inclusive
// range 1000–9999, drawn from crypto/rand. The code is always exactly four
// ASCII digits and never starts with zero.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("error generating one-time code: %w", err)
	}

	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
