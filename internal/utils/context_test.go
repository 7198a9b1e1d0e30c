package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext_TableTest(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "value present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "user-123"),
			wantID: "user-123",
			wantOK: true,
		},
		{
			name:   "value absent",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "wrong type",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantOK: false,
		},
		{
			name:   "empty string",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, ""),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
