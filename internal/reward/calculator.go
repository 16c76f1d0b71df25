package reward

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"customer-rewards/internal/domain"
)

var (
	lowerThreshold = decimal.NewFromInt(50)
	upperThreshold = decimal.NewFromInt(100)
	doubleRate     = decimal.NewFromInt(2)
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CalculatePoints computes the reward points for a single transaction amount:
//   - 0 points for amounts of 50 and under
//   - 1 point per whole unit over 50, up to 100
//   - 2 points per unit over 100, plus the 50 points from the 50-100 band;
//     the doubling happens before truncation, so fractional amounts over 100
//     still earn their doubled fraction's whole part
//
// Negative amounts fall into the first band and score 0.
func CalculatePoints(amount decimal.Decimal) int64 {
	if amount.LessThanOrEqual(lowerThreshold) {
		return 0
	}
	if amount.LessThanOrEqual(upperThreshold) {
		return amount.Sub(lowerThreshold).IntPart()
	}
	return amount.Sub(upperThreshold).Mul(doubleRate).IntPart() + 50
}

// MonthName returns the full English name for a 1-12 month value. Anything
// else cannot come from a real calendar date and is a programming error.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("invalid month value: %d", month))
	}
	return monthNames[month-1]
}

// ScoredTransaction pairs a transaction with its freshly computed points.
type ScoredTransaction struct {
	Transaction domain.Transaction
	Points      int64
}

// MonthlyReward is one calendar month's aggregated points.
type MonthlyReward struct {
	Year   int    `json:"year"`
	Month  string `json:"month"`
	Points int64  `json:"points"`
}

// Result holds the outcome of scoring a transaction set: every transaction
// with its points, the per-month breakdown, and the grand total. The total
// always equals the sum of the monthly entries.
type Result struct {
	Transactions []ScoredTransaction
	Monthly      []MonthlyReward
	Total        int64
}

type monthKey struct {
	year  int
	month time.Month
}

// Calculate scores each transaction and folds the points into a per-month
// breakdown. Input order does not affect the totals. Months whose
// transactions all score zero still appear in the breakdown, with zero
// points. An empty input yields an empty result with total 0.
func Calculate(transactions []domain.Transaction) Result {
	buckets := make(map[monthKey]int64)
	scored := make([]ScoredTransaction, 0, len(transactions))
	var total int64

	for _, tx := range transactions {
		points := CalculatePoints(tx.Amount)
		total += points

		key := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		buckets[key] += points

		scored = append(scored, ScoredTransaction{Transaction: tx, Points: points})
	}

	keys := make([]monthKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	monthly := make([]MonthlyReward, 0, len(keys))
	for _, key := range keys {
		monthly = append(monthly, MonthlyReward{
			Year:   key.year,
			Month:  MonthName(int(key.month)),
			Points: buckets[key],
		})
	}

	return Result{
		Transactions: scored,
		Monthly:      monthly,
		Total:        total,
	}
}
