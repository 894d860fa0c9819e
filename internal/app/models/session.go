package models

import "time"

type Session struct {
	SessionID  string    `json:"session_id"`
	AccountID  string    `json:"account_id"`
	Role       Role      `json:"role"`
	Email      string    `json:"email"`
	RememberMe bool      `json:"remember_me"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
