package service

import (
	"context"
	"time"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/centsy/centsy-backend/internal/util"
	"github.com/centsy/centsy-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetCheckService runs the budget monitoring pass: for every user it
// aggregates the current month's spending, evaluates it against that month's
// budgets and stores threshold notifications that have not been sent before.
type BudgetCheckService struct {
	userRepo         domain.UserRepository
	budgetRepo       domain.BudgetRepository
	transactionRepo  domain.TransactionRepository
	notificationRepo domain.NotificationRepository
	publisher        websocket.EventPublisher
}

// NewBudgetCheckService creates a new BudgetCheckService. Pass a
// websocket.NoOpPublisher when push is disabled.
func NewBudgetCheckService(
	userRepo domain.UserRepository,
	budgetRepo domain.BudgetRepository,
	transactionRepo domain.TransactionRepository,
	notificationRepo domain.NotificationRepository,
	publisher websocket.EventPublisher,
) *BudgetCheckService {
	return &BudgetCheckService{
		userRepo:         userRepo,
		budgetRepo:       budgetRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// BudgetCheckResult holds counters for a single run
type BudgetCheckResult struct {
	UsersProcessed       int `json:"usersProcessed"`
	UsersFailed          int `json:"usersFailed"`
	NotificationsCreated int `json:"notificationsCreated"`
}

// RunBudgetCheck checks every user's budgets once. A failure while processing
// one user is logged and never aborts the rest of the run; only a failure to
// enumerate users is returned. Callable directly, independent of any timer.
func (s *BudgetCheckService) RunBudgetCheck(ctx context.Context) (*BudgetCheckResult, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	result := &BudgetCheckResult{}
	for _, user := range users {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		created, err := s.processUser(user)
		if err != nil {
			log.Error().
				Err(err).
				Str("user_id", user.ID.String()).
				Str("email", user.Email).
				Msg("Budget check failed for user")
			result.UsersFailed++
			continue
		}

		result.UsersProcessed++
		result.NotificationsCreated += created
	}

	return result, nil
}

// processUser runs aggregation, evaluation and threshold checks for one user
// over the current month-to-date window
func (s *BudgetCheckService) processUser(user *domain.User) (int, error) {
	monthStart, today := util.MonthToDateWindow(time.Now())

	budgets, err := s.budgetRepo.GetByUserAndMonth(user.ID, monthStart)
	if err != nil {
		return 0, err
	}
	if len(budgets) == 0 {
		// Nothing to track this month
		return 0, nil
	}

	transactions, err := s.transactionRepo.GetByUserAndDateRange(user.ID, monthStart, today)
	if err != nil {
		return 0, err
	}

	aggregate := Aggregate(transactions)
	statuses := EvaluateBudgets(budgets, aggregate.SpendByCategory)

	created := 0
	for _, status := range statuses {
		n, err := s.checkThresholds(user, status)
		if err != nil {
			return created, err
		}
		created += n
	}

	return created, nil
}

// checkThresholds stores a notification for every threshold the status has
// crossed and whose message has not already been stored for the user. The
// repository insert is atomic on (user, message), so a concurrent duplicate
// loses the race instead of producing a second row.
func (s *BudgetCheckService) checkThresholds(user *domain.User, status *domain.BudgetStatus) (int, error) {
	created := 0

	for _, threshold := range BudgetThresholds {
		if status.Percentage.LessThan(decimal.NewFromInt(int64(threshold))) {
			continue
		}

		message := ThresholdMessage(threshold, status.Percentage, status.CategoryName)

		exists, err := s.notificationRepo.MessageExists(user.ID, message)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		notification, inserted, err := s.notificationRepo.Create(&domain.Notification{
			UserID:  user.ID,
			Message: message,
			Kind:    domain.NotificationKindBudgetThreshold,
		})
		if err != nil {
			return created, err
		}
		if !inserted {
			continue
		}

		created++
		log.Info().
			Str("email", user.Email).
			Str("message", message).
			Msg("Created budget notification")

		s.publisher.Publish(user.ID, websocket.NotificationCreated(notification))
	}

	return created, nil
}
