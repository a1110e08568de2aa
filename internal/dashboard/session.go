package dashboard

import (
	"github.com/ryazanov/inkstudio/internal/localstore"
)

const sessionKey = "session"

// Session is the authenticated identity a dashboard runs under. It is
// passed explicitly to every view-model, never read ambiently.
type Session struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// SessionStore persists the session between dashboard runs
type SessionStore struct {
	store *localstore.Store
}

// NewSessionStore creates new SessionStore instance
func NewSessionStore(store *localstore.Store) *SessionStore {
	return &SessionStore{store: store}
}

// Init stores the session after a successful authentication
func (ss *SessionStore) Init(sess Session) error {
	return ss.store.Put(sessionKey, sess)
}

// Current returns the stored session, nil when logged out
func (ss *SessionStore) Current() (*Session, error) {
	var sess Session

	ok, err := ss.store.Get(sessionKey, &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return &sess, nil
}

// Clear drops the stored session on logout
func (ss *SessionStore) Clear() error {
	return ss.store.Delete(sessionKey)
}
