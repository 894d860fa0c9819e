package utils

import (
	"context"
	"curasync-service/internal/pkg/constvars"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientKey(t *testing.T) {
	t.Run("Client ID header wins", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/navigation/doctor", nil)
		req.Header.Set(constvars.HeaderXClientID, " tab-42 ")
		assert.Equal(t, "tab-42", ClientKey(req))
	})

	t.Run("Forwarded for", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/navigation/doctor", nil)
		req.Header.Set(constvars.HeaderXForwardedFor, "203.0.113.9, 10.0.0.1")
		assert.Equal(t, "203.0.113.9", ClientKey(req))
	})

	t.Run("Remote address", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/navigation/doctor", nil)
		req.RemoteAddr = "198.51.100.7:5555"
		assert.Equal(t, "198.51.100.7", ClientKey(req))
	})
}

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGetBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def", "abc.def"},
		{"bearer  abc.def ", "abc.def"},
		{"Basic dXNlcg==", ""},
		{"Bearer", ""},
		{"", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/api/v1/session", nil)
		if tt.header != "" {
			req.Header.Set(constvars.HeaderAuthorization, tt.header)
		}
		assert.Equal(t, tt.want, GetBearerToken(req), tt.header)
	}
}
