package utils

import (
	"context"
	"curasync-service/internal/pkg/constvars"
	"net"
	"net/http"
	"strings"
)

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// GetClientKey returns the client key stored by the request middleware.
func GetClientKey(ctx context.Context) string {
	clientKey, _ := ctx.Value(constvars.CONTEXT_CLIENT_KEY).(string)
	return clientKey
}

// ClientKey identifies the caller for per-client state: the X-Client-ID
// header when present, otherwise the remote IP.
func ClientKey(r *http.Request) string {
	if clientID := strings.TrimSpace(r.Header.Get(constvars.HeaderXClientID)); clientID != "" {
		return clientID
	}
	return RemoteIP(r)
}

// GetBearerToken returns the token of an "Authorization: Bearer <token>"
// header, or an empty string.
func GetBearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, constvars.AuthSchemeBearer) {
		return ""
	}
	return strings.TrimSpace(token)
}

func RemoteIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get(constvars.HeaderXRealIP); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
