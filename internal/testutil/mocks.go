package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/centsy/centsy-backend/internal/websocket"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users []*domain.User
	ByID  map[uuid.UUID]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByID: make(map[uuid.UUID]*domain.User),
	}
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users = append(m.Users, user)
	m.ByID[user.ID] = user
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetAll returns all users in insertion order
func (m *MockUserRepository) GetAll() ([]*domain.User, error) {
	return m.Users, nil
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets []*domain.Budget
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{}
}

// AddBudget adds a budget to the mock repository
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	m.Budgets = append(m.Budgets, budget)
}

// GetByUserAndMonth returns the user's budgets whose month matches exactly
func (m *MockBudgetRepository) GetByUserAndMonth(userID uuid.UUID, monthStart time.Time) ([]*domain.Budget, error) {
	var result []*domain.Budget
	for _, b := range m.Budgets {
		if b.UserID == userID && b.Month.Equal(monthStart) {
			result = append(result, b)
		}
	}
	return result, nil
}

// MockTransactionRepository is a mock implementation of
// domain.TransactionRepository. FailForUser forces a fetch error for specific
// users to exercise failure isolation.
type MockTransactionRepository struct {
	Transactions []*domain.Transaction
	FailForUser  map[uuid.UUID]error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		FailForUser: make(map[uuid.UUID]error),
	}
}

// AddTransaction adds a transaction to the mock repository
func (m *MockTransactionRepository) AddTransaction(tx *domain.Transaction) {
	m.Transactions = append(m.Transactions, tx)
}

// GetByUserAndDateRange returns the user's transactions within [start, end]
func (m *MockTransactionRepository) GetByUserAndDateRange(userID uuid.UUID, start, end time.Time) ([]*domain.Transaction, error) {
	if err, ok := m.FailForUser[userID]; ok {
		return nil, err
	}

	var result []*domain.Transaction
	for _, tx := range m.Transactions {
		if tx.UserID != userID {
			continue
		}
		if tx.TransactionDate.Before(start) || tx.TransactionDate.After(end) {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}

// MockNotificationRepository is a mock implementation of
// domain.NotificationRepository enforcing the per-user message uniqueness the
// real store guarantees with a unique index
type MockNotificationRepository struct {
	Notifications []*domain.Notification
	NextID        int32
	CreateErr     error
	mu            sync.Mutex
}

// NewMockNotificationRepository creates a new MockNotificationRepository
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{NextID: 1}
}

// Create stores the notification unless the message already exists for the user
func (m *MockNotificationRepository) Create(notification *domain.Notification) (*domain.Notification, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, false, m.CreateErr
	}

	for _, n := range m.Notifications {
		if n.UserID == notification.UserID && n.Message == notification.Message {
			return nil, false, nil
		}
	}

	stored := &domain.Notification{
		ID:        m.NextID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		Kind:      notification.Kind,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	m.NextID++
	m.Notifications = append(m.Notifications, stored)
	return stored, true, nil
}

// MessageExists reports whether the exact message is stored for the user
func (m *MockNotificationRepository) MessageExists(userID uuid.UUID, message string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.Notifications {
		if n.UserID == userID && n.Message == message {
			return true, nil
		}
	}
	return false, nil
}

// GetAllByUser returns the user's notifications, newest first
func (m *MockNotificationRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*domain.Notification
	for _, n := range m.Notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// MarkRead flags the user's notification as read
func (m *MockNotificationRepository) MarkRead(userID uuid.UUID, id int32) (*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.Notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

// CapturedEvent records one published websocket event
type CapturedEvent struct {
	UserID uuid.UUID
	Event  websocket.Event
}

// CapturingPublisher is a websocket.EventPublisher that records events
type CapturingPublisher struct {
	Events []CapturedEvent
	mu     sync.Mutex
}

// Publish records the event
func (p *CapturingPublisher) Publish(userID uuid.UUID, event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, CapturedEvent{UserID: userID, Event: event})
}
