package form

import (
	"sync"

	"bluebook/internal/domain"

	"github.com/google/uuid"
)

// Store keeps the in-memory editing sessions. There is no server-side
// persistence tier; a session lives until the process stops or the session
// is deleted. All access is funneled through Do so every session sees one
// logical flow of control at a time.
type Store struct {
	mu    sync.Mutex
	forms map[string]*State
}

func NewStore() *Store {
	return &Store{forms: map[string]*State{}}
}

// Create allocates a new session with a fresh id.
func (st *Store) Create() *State {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := New(uuid.NewString())
	st.forms[s.ID] = s
	return s
}

// Do runs fn against the session while holding the store lock. Reads and
// writes both go through here; at form-session scale the single lock is the
// simplest correct thing.
func (st *Store) Do(id string, fn func(*State) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.forms[id]
	if !ok {
		return domain.NotFoundError{Resource: "skjema"}
	}
	return fn(s)
}

// Delete discards a session. Unknown ids are ignored.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.forms, id)
}
