package session

import (
	"encoding/json"
	"sync"
	"time"
	"workshoppro-backend/models"

	"github.com/robfig/cron/v3"
)

// State of the gate with respect to protected access. Anonymous and Expired
// are both terminal: a protected-view check in either state must redirect to
// login and must not proceed.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	default:
		return "anonymous"
	}
}

// Gate guards protected views against absent, malformed or expired sessions.
// Expiry is checked lazily on read; there is no background timer proactively
// expiring sessions, only a periodic fallback re-check plus the storage
// watcher for cross-context invalidation.
type Gate struct {
	store Store
	now   func() time.Time

	mu            sync.Mutex
	authenticated bool
	onInvalidate  []func()

	cron        *cron.Cron
	cancelWatch func()
}

func NewGate(store Store) *Gate {
	return &Gate{
		store: store,
		now:   time.Now,
	}
}

// Establish records a successful login: Anonymous -> Authenticated.
func (g *Gate) Establish(user models.PublicUser) error {
	now := g.now().UnixMilli()
	payload := Payload{
		User:         user,
		LoginTime:    now,
		LastActivity: now,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	g.store.Set(StorageKey, string(raw))

	g.mu.Lock()
	g.authenticated = true
	g.mu.Unlock()
	return nil
}

// Current reads the held session and returns the user when it is still
// valid. An expired or structurally invalid payload is cleared on the spot.
func (g *Gate) Current() (*models.PublicUser, State) {
	raw, ok := g.store.Get(StorageKey)
	if !ok {
		g.markInvalid()
		return nil, StateAnonymous
	}

	var payload Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || !payload.Valid() {
		g.store.Delete(StorageKey)
		g.markInvalid()
		return nil, StateExpired
	}

	if payload.Expired(g.now()) {
		g.store.Delete(StorageKey)
		g.markInvalid()
		return nil, StateExpired
	}

	g.mu.Lock()
	g.authenticated = true
	g.mu.Unlock()
	return &payload.User, StateAuthenticated
}

// Touch refreshes the last-activity timestamp. Login time, and with it the
// expiry deadline, stays untouched.
func (g *Gate) Touch() {
	raw, ok := g.store.Get(StorageKey)
	if !ok {
		return
	}
	var payload Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || !payload.Valid() {
		return
	}
	payload.LastActivity = g.now().UnixMilli()
	updated, err := json.Marshal(payload)
	if err != nil {
		return
	}
	g.store.Set(StorageKey, string(updated))
}

// Logout clears the held session immediately: Authenticated -> Anonymous.
func (g *Gate) Logout() {
	g.store.Delete(StorageKey)
	g.mu.Lock()
	g.authenticated = false
	g.mu.Unlock()
}

// OnInvalidate registers a callback fired once per transition out of
// Authenticated, whether by expiry, structural invalidity or another context
// clearing the session.
func (g *Gate) OnInvalidate(fn func()) {
	g.mu.Lock()
	g.onInvalidate = append(g.onInvalidate, fn)
	g.mu.Unlock()
}

// Start wires the storage watcher and the periodic fallback re-check.
func (g *Gate) Start() {
	g.cancelWatch = g.store.Watch(func(key, newValue string) {
		if key == StorageKey && newValue == "" {
			g.markInvalid()
		}
	})

	g.cron = cron.New()
	g.cron.AddFunc("@every 5m", func() {
		g.Current()
	})
	g.cron.Start()
}

// Stop tears down the watcher and the fallback check. The held session is
// left as is.
func (g *Gate) Stop() {
	if g.cancelWatch != nil {
		g.cancelWatch()
		g.cancelWatch = nil
	}
	if g.cron != nil {
		g.cron.Stop()
		g.cron = nil
	}
}

// markInvalid fires the invalidation callbacks on the Authenticated ->
// {Anonymous, Expired} edge only.
func (g *Gate) markInvalid() {
	g.mu.Lock()
	was := g.authenticated
	g.authenticated = false
	callbacks := make([]func(), len(g.onInvalidate))
	copy(callbacks, g.onInvalidate)
	g.mu.Unlock()

	if !was {
		return
	}
	for _, fn := range callbacks {
		fn()
	}
}
