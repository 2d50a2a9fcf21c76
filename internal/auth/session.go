// Package auth holds the session manager and the route access gate.
//
// The session manager keeps the current authenticated identity and the
// volunteer registry, both rehydrated from durable local state at
// startup and written back synchronously on every mutation. Volunteer
// passwords are stored as bcrypt hashes; the system this replaces kept
// plaintext, a flagged defect deliberately not reproduced. The admin
// identity is a fixed mock credential pair, not a stored record.
package auth

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/turtletrack/turtletrack/internal/localstate"
	"github.com/turtletrack/turtletrack/internal/model"
)

// Fixed admin credentials and identity.
const (
	adminUsername = "admin"
	adminPassword = "123456"
	adminID       = "admin-1"
)

// Result is the structured outcome of login/register. Failures are
// values, never panics.
type Result struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	User    *model.User `json:"user,omitempty"`
}

func failure(msg string) Result { return Result{Success: false, Error: msg} }

// Manager owns session state and the volunteer registry.
type Manager struct {
	mu         sync.RWMutex
	user       *model.User
	volunteers []model.Volunteer

	state *localstate.Store
	log   zerolog.Logger
}

// NewManager rehydrates session state and the volunteer registry from
// durable local state. Absent keys yield an anonymous session and an
// empty registry.
func NewManager(state *localstate.Store, log zerolog.Logger) (*Manager, error) {
	m := &Manager{state: state, log: log}
	if state == nil {
		return m, nil
	}

	if raw, ok, err := state.Get(localstate.KeySessionUser); err != nil {
		return nil, fmt.Errorf("rehydrate session: %w", err)
	} else if ok {
		var u model.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return nil, fmt.Errorf("rehydrate session: %w", err)
		}
		m.user = &u
	}

	if raw, ok, err := state.Get(localstate.KeyVolunteers); err != nil {
		return nil, fmt.Errorf("rehydrate volunteers: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &m.volunteers); err != nil {
			return nil, fmt.Errorf("rehydrate volunteers: %w", err)
		}
	}
	return m, nil
}

// Login authenticates the given credentials for the requested role.
// Failure leaves the current session untouched.
func (m *Manager) Login(username, password string, role model.Role) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch role {
	case model.RoleAdmin:
		if username != adminUsername || password != adminPassword {
			return failure("Invalid admin credentials")
		}
		u := &model.User{ID: adminID, Username: adminUsername, Role: model.RoleAdmin}
		m.setSession(u)
		return Result{Success: true, User: u}

	case model.RoleVolunteer:
		for _, v := range m.volunteers {
			if v.Username != username {
				continue
			}
			if bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) != nil {
				break
			}
			u := &model.User{ID: v.ID, Username: v.Username, Email: v.Email, Role: model.RoleVolunteer}
			m.setSession(u)
			return Result{Success: true, User: u}
		}
		return failure("Invalid username or password")

	default:
		return failure(fmt.Sprintf("Unknown role %q", role))
	}
}

// Register creates a volunteer credential record and logs the new
// identity in immediately. A username or email already present in the
// registry fails with a duplicate error.
func (m *Manager) Register(username, email, password string) Result {
	if username == "" || email == "" || password == "" {
		return failure("Username, email and password are required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.volunteers {
		if v.Username == username || v.Email == email {
			return failure("Username or email already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		m.log.Error().Stack().Err(err).Msg("failed to hash password")
		return failure("Registration failed. Please try again.")
	}

	v := model.Volunteer{
		ID:           fmt.Sprintf("volunteer-%d", time.Now().UnixMilli()),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	m.volunteers = append(m.volunteers, v)
	m.persistVolunteers()

	// auto-login with the new identity
	u := &model.User{ID: v.ID, Username: v.Username, Email: v.Email, Role: model.RoleVolunteer}
	m.setSession(u)
	return Result{Success: true, User: u}
}

// Logout clears the in-memory session and its persisted copy. Calling
// it while anonymous is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	if m.state != nil {
		if err := m.state.Delete(localstate.KeySessionUser); err != nil {
			m.log.Error().Stack().Err(err).Msg("failed to clear persisted session")
		}
	}
}

// Current returns a copy of the session identity, or nil when anonymous.
func (m *Manager) Current() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) IsAuthenticated() bool { return m.Current() != nil }

func (m *Manager) IsAdmin() bool {
	u := m.Current()
	return u != nil && u.Role == model.RoleAdmin
}

func (m *Manager) IsVolunteer() bool {
	u := m.Current()
	return u != nil && u.Role == model.RoleVolunteer
}

// VolunteerCount reports the registry size.
func (m *Manager) VolunteerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.volunteers)
}

// setSession stores u as the current identity and persists it.
// Callers hold m.mu.
func (m *Manager) setSession(u *model.User) {
	m.user = u
	if m.state == nil {
		return
	}
	raw, err := json.Marshal(u)
	if err != nil {
		m.log.Error().Stack().Err(err).Msg("failed to serialize session")
		return
	}
	if err := m.state.Put(localstate.KeySessionUser, string(raw)); err != nil {
		m.log.Error().Stack().Err(err).Msg("failed to persist session")
	}
}

// persistVolunteers writes the registry through to durable local
// state. Callers hold m.mu.
func (m *Manager) persistVolunteers() {
	if m.state == nil {
		return
	}
	raw, err := json.Marshal(m.volunteers)
	if err != nil {
		m.log.Error().Stack().Err(err).Msg("failed to serialize volunteers")
		return
	}
	if err := m.state.Put(localstate.KeyVolunteers, string(raw)); err != nil {
		m.log.Error().Stack().Err(err).Msg("failed to persist volunteers")
	}
}
