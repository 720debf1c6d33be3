package util

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		realIP    string
		want      string
	}{
		{"forwarded single", "203.0.113.9", "", "203.0.113.9"},
		{"forwarded chain takes first", "203.0.113.9, 10.0.0.1, 10.0.0.2", "", "203.0.113.9"},
		{"forwarded with spaces", "  203.0.113.9 , 10.0.0.1", "", "203.0.113.9"},
		{"real ip fallback", "", "198.51.100.4", "198.51.100.4"},
		{"forwarded beats real ip", "203.0.113.9", "198.51.100.4", "203.0.113.9"},
		{"no headers", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/submit/abc", nil)
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}
