// Package testutil provides mock implementations for testing the application layer.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"volunteerhub/internal/domain/announcement"
	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

// MockUserRepository is an in-memory implementation of user.Repository.
type MockUserRepository struct {
	mu      sync.RWMutex
	users   map[uint]*user.User
	byEmail map[string]*user.User
	nextID  uint

	// Error injection for testing
	createError error
	getError    error
	updateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:   make(map[uint]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}
	if _, ok := m.byEmail[u.Email()]; ok {
		return errors.NewConflictError("email is already registered")
	}

	if u.ID() == 0 {
		m.nextID++
		if err := u.SetID(m.nextID); err != nil {
			return err
		}
	}

	m.users[u.ID()] = u
	m.byEmail[u.Email()] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}
	return m.users[id], nil
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	result := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}
	return m.byEmail[email], nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateError != nil {
		return m.updateError
	}
	if _, ok := m.users[u.ID()]; !ok {
		return errors.NewNotFoundError("user not found")
	}
	m.users[u.ID()] = u
	return nil
}

// AddUser seeds a user, assigning an ID when needed.
func (m *MockUserRepository) AddUser(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u.ID() == 0 {
		m.nextID++
		_ = u.SetID(m.nextID)
	}
	m.users[u.ID()] = u
	m.byEmail[u.Email()] = u
}

func (m *MockUserRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// MockEventRepository is an in-memory implementation of event.Repository.
// Membership transitions run against the aggregate, which enforces the
// same capacity and uniqueness preconditions as the persistent store.
type MockEventRepository struct {
	mu     sync.RWMutex
	events map[uint]*event.Event
	order  []uint
	nextID uint

	createError error
	getError    error
	updateError error
	deleteError error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{
		events: make(map[uint]*event.Event),
	}
}

func (m *MockEventRepository) Create(ctx context.Context, e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}

	if e.ID() == 0 {
		m.nextID++
		if err := e.SetID(m.nextID); err != nil {
			return err
		}
	}

	m.events[e.ID()] = e
	m.order = append(m.order, e.ID())
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uint) (*event.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}
	return m.events[id], nil
}

// List returns events newest first, matching the persistent store ordering.
func (m *MockEventRepository) List(ctx context.Context) ([]*event.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	result := make([]*event.Event, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		if e, ok := m.events[m.order[i]]; ok {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MockEventRepository) ListByVolunteer(ctx context.Context, userID uint) ([]*event.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	var result []*event.Event
	for i := len(m.order) - 1; i >= 0; i-- {
		if e, ok := m.events[m.order[i]]; ok && e.IsEnrolled(userID) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MockEventRepository) Update(ctx context.Context, e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateError != nil {
		return m.updateError
	}
	if _, ok := m.events[e.ID()]; !ok {
		return errors.NewNotFoundError("event not found")
	}
	m.events[e.ID()] = e
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.events, id)
	return nil
}

func (m *MockEventRepository) AddVolunteer(ctx context.Context, eventID, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[eventID]
	if !ok {
		return errors.NewNotFoundError("event not found")
	}
	return e.Enroll(userID)
}

func (m *MockEventRepository) RemoveVolunteer(ctx context.Context, eventID, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[eventID]
	if !ok {
		return errors.NewNotFoundError("event not found")
	}
	return e.Withdraw(userID)
}

// AddEvent seeds an event, assigning an ID when needed.
func (m *MockEventRepository) AddEvent(e *event.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID() == 0 {
		m.nextID++
		_ = e.SetID(m.nextID)
	}
	m.events[e.ID()] = e
	m.order = append(m.order, e.ID())
}

func (m *MockEventRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// MockAnnouncementRepository is an in-memory implementation of
// announcement.Repository.
type MockAnnouncementRepository struct {
	mu            sync.RWMutex
	announcements map[uint]*announcement.Announcement
	order         []uint
	nextID        uint

	createError error
	getError    error
	markError   error
}

func NewMockAnnouncementRepository() *MockAnnouncementRepository {
	return &MockAnnouncementRepository{
		announcements: make(map[uint]*announcement.Announcement),
	}
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}

	if a.ID() == 0 {
		m.nextID++
		if err := a.SetID(m.nextID); err != nil {
			return err
		}
	}

	m.announcements[a.ID()] = a
	m.order = append(m.order, a.ID())
	return nil
}

func (m *MockAnnouncementRepository) GetByID(ctx context.Context, id uint) (*announcement.Announcement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}
	return m.announcements[id], nil
}

func (m *MockAnnouncementRepository) ListByRecipient(ctx context.Context, userID uint) ([]*announcement.Announcement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	var result []*announcement.Announcement
	for i := len(m.order) - 1; i >= 0; i-- {
		if a, ok := m.announcements[m.order[i]]; ok && a.IsRecipient(userID) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *MockAnnouncementRepository) MarkRead(ctx context.Context, announcementID, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.markError != nil {
		return m.markError
	}

	a, ok := m.announcements[announcementID]
	if !ok {
		return errors.NewNotFoundError("announcement not found")
	}
	return a.MarkRead(userID)
}

// MockPasswordHasher hashes by prefixing, so tests can assert without bcrypt.
type MockPasswordHasher struct {
	hashError error
}

func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.hashError != nil {
		return "", m.hashError
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// MockLogger records log calls for inspection.
type MockLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// LogEntry records a single log call.
type LogEntry struct {
	Level   string
	Message string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{entries: make([]LogEntry, 0)}
}

func (m *MockLogger) log(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: msg})
}

func (m *MockLogger) Debug(msg string, args ...any) { m.log("DEBUG", msg) }
func (m *MockLogger) Info(msg string, args ...any)  { m.log("INFO", msg) }
func (m *MockLogger) Warn(msg string, args ...any)  { m.log("WARN", msg) }
func (m *MockLogger) Error(msg string, args ...any) { m.log("ERROR", msg) }

func (m *MockLogger) Debugw(msg string, keysAndValues ...interface{}) { m.log("DEBUG", msg) }
func (m *MockLogger) Infow(msg string, keysAndValues ...interface{})  { m.log("INFO", msg) }
func (m *MockLogger) Warnw(msg string, keysAndValues ...interface{})  { m.log("WARN", msg) }
func (m *MockLogger) Errorw(msg string, keysAndValues ...interface{}) { m.log("ERROR", msg) }

func (m *MockLogger) With(args ...any) logger.Interface { return m }
func (m *MockLogger) Named(name string) logger.Interface { return m }

// Entries returns a copy of the recorded log calls.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}
