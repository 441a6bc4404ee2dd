package entity

import "time"

// ExternalIdentity is what Google reports about a user after a successful code exchange.
// It is consumed once per login and never stored as-is.
type ExternalIdentity struct {
	GoogleID    string // Google's 'sub' / userinfo id.
	AccessToken string // Opaque Google access token, embedded in the session so logout can revoke it.
	Name        string
	Email       string
}

// SessionClaims is the payload carried by a session token.
type SessionClaims struct {
	GoogleAccessToken string
	UserID            string
	Username          string
	Email             string
	Role              Role
	IssuedAt          time.Time
	ExpiresAt         time.Time
}

// Remaining returns exp minus now in whole Unix seconds, or zero once nothing is left.
func (c *SessionClaims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() {
		return 0
	}

	seconds := c.ExpiresAt.Unix() - now.Unix()
	if seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
