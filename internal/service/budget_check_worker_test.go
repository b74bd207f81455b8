package service

import (
	"context"
	"testing"
	"time"

	"github.com/centsy/centsy-backend/internal/util"
	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupWorker() (*BudgetCheckWorker, *checkFixture) {
	f := setupBudgetCheck()
	logger := zerolog.Nop() // Silent logger for tests

	config := BudgetCheckWorkerConfig{
		Interval: 50 * time.Millisecond, // Fast interval for testing
	}

	return NewBudgetCheckWorker(f.service, logger, config), f
}

func TestBudgetCheckWorker_New(t *testing.T) {
	worker, _ := setupWorker()

	assert.NotNil(t, worker)
	assert.Equal(t, 50*time.Millisecond, worker.interval)
	assert.False(t, worker.IsRunning())
}

func TestBudgetCheckWorker_DefaultConfig(t *testing.T) {
	config := DefaultBudgetCheckWorkerConfig()
	assert.Equal(t, 24*time.Hour, config.Interval)
}

func TestBudgetCheckWorker_InvalidIntervalFallsBack(t *testing.T) {
	f := setupBudgetCheck()
	worker := NewBudgetCheckWorker(f.service, zerolog.Nop(), BudgetCheckWorkerConfig{Interval: 0})
	assert.Equal(t, 24*time.Hour, worker.interval)
}

func TestBudgetCheckWorker_StartStop(t *testing.T) {
	worker, _ := setupWorker()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, worker.IsRunning())

	worker.Stop()
	assert.False(t, worker.IsRunning())
}

func TestBudgetCheckWorker_StartTwiceIsIdempotent(t *testing.T) {
	worker, _ := setupWorker()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker.Start(ctx)
	worker.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	assert.True(t, worker.IsRunning())

	worker.Stop()
	assert.False(t, worker.IsRunning())
}

func TestBudgetCheckWorker_StopWithoutStart(t *testing.T) {
	worker, _ := setupWorker()

	worker.Stop()
	assert.False(t, worker.IsRunning())
}

func TestBudgetCheckWorker_ContextCancellation(t *testing.T) {
	worker, _ := setupWorker()

	ctx, cancel := context.WithCancel(context.Background())

	worker.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, worker.IsRunning())

	cancel()
	time.Sleep(100 * time.Millisecond)
	assert.False(t, worker.IsRunning())
}

func TestBudgetCheckWorker_RunsCheckOnStartup(t *testing.T) {
	worker, f := setupWorker()

	monthStart, today := util.MonthToDateWindow(time.Now())
	user := &domain.User{ID: uuid.New(), Email: "worker@example.com"}
	f.users.AddUser(user)
	f.budgets.AddBudget(&domain.Budget{
		UserID:       user.ID,
		CategoryID:   1,
		CategoryName: "Rent",
		Amount:       decimal.RequireFromString("1000.00"),
		Month:        monthStart,
	})
	f.txs.AddTransaction(&domain.Transaction{
		UserID:          user.ID,
		CategoryID:      1,
		CategoryName:    "Rent",
		CategoryKind:    domain.CategoryKindExpense,
		Amount:          decimal.RequireFromString("1000.00"),
		TransactionDate: today,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	worker.Stop()

	stored, err := f.notifs.GetAllByUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, stored, 3) // 100% spend crosses every threshold
}
