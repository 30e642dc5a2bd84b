package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/lumina-commerce/storefront-api/models"
)

const (
	// TTL is how long a session is valid before auto-expiring.
	TTL = 24 * time.Hour

	// CleanupInterval is how often the background cleanup runs.
	CleanupInterval = time.Minute
)

var ErrSessionNotFound = errors.New("session not found")

// Role is what the identity provider knows about a session. It only gates
// seller-only views; cart and checkout behave the same for every role.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleCustomer  Role = "customer"
	RoleSeller    Role = "seller"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAnonymous, RoleCustomer, RoleSeller:
		return Role(s), nil
	default:
		return "", errors.New("invalid role: " + s)
	}
}

// Session is one shopper's interactive session. It exclusively owns its
// cart; handlers hold the session lock for the duration of an operation so
// the cart only ever sees one writer at a time.
type Session struct {
	ID        string
	Role      Role
	Cart      *models.Cart
	CreatedAt time.Time
	ExpiresAt time.Time

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store keeps live sessions in memory and expires them in the background.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewStore creates a session store and starts its cleanup goroutine.
func NewStore() *Store {
	st := &Store{
		sessions:    make(map[string]*Session),
		stopCleanup: make(chan struct{}),
	}

	st.wg.Add(1)
	go st.cleanupLoop()

	return st
}

func (st *Store) cleanupLoop() {
	defer st.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.expireSessions()
		case <-st.stopCleanup:
			return
		}
	}
}

func (st *Store) expireSessions() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.Expired() {
			delete(st.sessions, id)
		}
	}
}

// Create starts a fresh session with an empty cart.
func (st *Store) Create(role Role) *Session {
	now := time.Now()
	s := &Session{
		ID:        "sess_" + randomHex(16),
		Role:      role,
		Cart:      models.NewCart(),
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the live session with the given id, or ErrSessionNotFound if
// it never existed or has expired.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok || s.Expired() {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close stops the background cleanup and waits for it to finish.
func (st *Store) Close() {
	close(st.stopCleanup)
	st.wg.Wait()
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_sess"
	}
	return hex.EncodeToString(bytes)
}
