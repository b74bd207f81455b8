package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BudgetThresholds are the spend percentages that trigger a notification.
// Each threshold is evaluated independently: a month at 130% spend crosses
// all three and produces three notifications.
var BudgetThresholds = []int{75, 90, 100}

// ThresholdMessage renders the notification text for a crossed threshold.
// The rendered string is also the per-user deduplication key, so the exact
// wording is load-bearing: a different percentage on a later day yields a new
// message and therefore a new notification. Keeping all formatting here means
// a future switch to a structured dedup key (user, category, period,
// threshold) only touches this file.
func ThresholdMessage(threshold int, percentage decimal.Decimal, categoryName string) string {
	pct := percentage.StringFixed(2)

	switch threshold {
	case 100:
		return fmt.Sprintf("You have exceeded your '%s' budget for this month, with %s%% spent.", categoryName, pct)
	case 90:
		return fmt.Sprintf("You are nearing the limit of your '%s' budget, with %s%% spent this month.", categoryName, pct)
	default:
		return fmt.Sprintf("You have spent %s%% of your '%s' budget for this month.", pct, categoryName)
	}
}
