package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests parsing of command-line address values
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{
			name:     "valid localhost",
			input:    "localhost:8080",
			wantHost: "localhost",
			wantPort: 8080,
		},
		{
			name:     "valid IP",
			input:    "127.0.0.1:9090",
			wantHost: "127.0.0.1",
			wantPort: 9090,
		},
		{
			name:    "missing port",
			input:   "localhost",
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			input:   "localhost:http",
			wantErr: true,
		},
		{
			name:    "zero port",
			input:   "localhost:0",
			wantErr: true,
		},
		{
			name:    "invalid host",
			input:   "not-an-ip:8080",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}
