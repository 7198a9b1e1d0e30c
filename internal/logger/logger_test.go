package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	// must not panic
	l.Info().Str("k", "v").Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_ReturnsNonNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_ExtractsAttachedLogger(t *testing.T) {
	nop := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(nop.Logger.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)
}
