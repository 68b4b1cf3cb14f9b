// Package session implements the client-held session contract: a JSON
// payload kept in shared storage, valid for at most 24 hours after login,
// checked lazily on every read and invalidated across contexts through
// storage watchers.
package session

import (
	"time"
	"workshoppro-backend/models"
)

// MaxSessionAge bounds the session lifetime, measured from login rather than
// from last activity.
const MaxSessionAge = 24 * time.Hour

// StorageKey is the single key the payload lives under.
const StorageKey = "usuario"

// Payload is what the client persists after a successful login.
type Payload struct {
	User         models.PublicUser `json:"user"`
	LoginTime    int64             `json:"loginTime"`    // unix milliseconds
	LastActivity int64             `json:"lastActivity"` // unix milliseconds
}

// Structurally valid means both required sub-fields are present. Anything
// else is treated as an absent session and cleared on sight.
func (p *Payload) Valid() bool {
	return p.User.ID != 0 && p.LoginTime != 0
}

// Expired reports whether the payload outlived MaxSessionAge.
func (p *Payload) Expired(now time.Time) bool {
	age := now.UnixMilli() - p.LoginTime
	return age > MaxSessionAge.Milliseconds()
}
