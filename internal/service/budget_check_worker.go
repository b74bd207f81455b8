package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// BudgetCheckWorker is a background worker that periodically runs the budget
// check for all users
type BudgetCheckWorker struct {
	checkService *BudgetCheckService
	logger       zerolog.Logger
	interval     time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	mu           sync.Mutex
	running      bool
}

// BudgetCheckWorkerConfig holds configuration for the budget check worker
type BudgetCheckWorkerConfig struct {
	Interval time.Duration // How often to run the check
}

// DefaultBudgetCheckWorkerConfig returns sensible defaults
func DefaultBudgetCheckWorkerConfig() BudgetCheckWorkerConfig {
	return BudgetCheckWorkerConfig{
		Interval: 24 * time.Hour, // Daily check
	}
}

// NewBudgetCheckWorker creates a new budget check worker
func NewBudgetCheckWorker(checkService *BudgetCheckService, logger zerolog.Logger, config BudgetCheckWorkerConfig) *BudgetCheckWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultBudgetCheckWorkerConfig().Interval
	}

	return &BudgetCheckWorker{
		checkService: checkService,
		logger:       logger.With().Str("component", "budget_check_worker").Logger(),
		interval:     config.Interval,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start begins the periodic budget check
func (w *BudgetCheckWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().
		Dur("interval", w.interval).
		Msg("Starting budget check worker")

	go w.run(ctx)
}

// Stop gracefully stops the worker
func (w *BudgetCheckWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping budget check worker")
	close(w.stopCh)
	<-w.doneCh
	w.logger.Info().Msg("Budget check worker stopped")
}

// run is the worker's main loop
func (w *BudgetCheckWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	// Run immediately on startup
	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return
		case <-w.stopCh:
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce executes a single budget check pass and logs its counters
func (w *BudgetCheckWorker) runOnce(ctx context.Context) {
	w.logger.Debug().Msg("Starting budget check run")
	startTime := time.Now()

	result, err := w.checkService.RunBudgetCheck(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("Budget check run failed")
		return
	}

	w.logger.Info().
		Int("users_processed", result.UsersProcessed).
		Int("users_failed", result.UsersFailed).
		Int("notifications_created", result.NotificationsCreated).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed budget check run")
}

// IsRunning returns whether the worker is currently running
func (w *BudgetCheckWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
