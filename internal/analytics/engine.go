// Package analytics computes every derived figure the dashboard shows
// from the raw payment and merchant feeds. All functions are pure: they
// take fresh slices, return fresh results and keep no state between
// calls, so recomputing on every load is safe and cheap at the scale of
// a few thousand records.
package analytics

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"paydash/internal/models"
	"paydash/internal/observability/metrics"
)

// DaysPerPeriod is the size of one trend-chart window.
const DaysPerPeriod = 30

// TopMerchantLimit is the default ranking length.
const TopMerchantLimit = 5

// parseAmount parses the upstream decimal string. Malformed, negative
// or non-finite values count as zero instead of poisoning every
// downstream sum; each occurrence is logged and counted.
func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		log.Printf("analytics: skipping malformed payment amount %q", raw)
		metrics.MalformedAmounts.Inc()
		return 0
	}
	return v
}

// ComputeTotals returns the SUCCESS-filtered amount sum, the count of
// all payments regardless of status, and the success rate in percent.
func ComputeTotals(payments []models.Payment) models.TotalStats {
	var amount float64
	successes := 0
	for _, p := range payments {
		if p.Status == models.PaymentStatusSuccess {
			amount += parseAmount(p.Amount)
			successes++
		}
	}

	rate := 0.0
	if len(payments) > 0 {
		rate = float64(successes) / float64(len(payments)) * 100
	}

	return models.TotalStats{
		TotalAmount: amount,
		TotalCount:  len(payments),
		SuccessRate: rate,
	}
}

// ComputeTrends splits the feed at its midpoint, in input order, and
// reports the percentage change of each headline figure between the
// two halves. A zero first-half value yields a 0 trend; that masks a
// genuine rise from a zero baseline, but keeps the output finite.
func ComputeTrends(payments []models.Payment) models.TrendStats {
	mid := len(payments) / 2
	first := ComputeTotals(payments[:mid])
	second := ComputeTotals(payments[mid:])

	return models.TrendStats{
		AmountTrend:      trendPct(first.TotalAmount, second.TotalAmount),
		CountTrend:       trendPct(float64(first.TotalCount), float64(second.TotalCount)),
		SuccessRateTrend: trendPct(first.SuccessRate, second.SuccessRate),
	}
}

func trendPct(first, second float64) float64 {
	if first <= 0 {
		return 0
	}
	return (second - first) / first * 100
}

// BucketByStatus groups payments by status in first-occurrence order.
// Amounts accumulate every payment, not just successful ones.
func BucketByStatus(payments []models.Payment) []models.StatusBucket {
	keys, buckets := bucketBy(payments, func(p models.Payment) string { return p.Status })

	out := make([]models.StatusBucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, models.StatusBucket{Status: k, Count: b.count, Amount: b.amount})
	}
	return out
}

// BucketByPayType groups payments by method in first-occurrence order.
func BucketByPayType(payments []models.Payment) []models.MethodBucket {
	keys, buckets := bucketBy(payments, func(p models.Payment) string { return p.PayType })

	out := make([]models.MethodBucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, models.MethodBucket{PayType: k, Count: b.count, Amount: b.amount})
	}
	return out
}

type bucket struct {
	count  int
	amount float64
}

func bucketBy(payments []models.Payment, key func(models.Payment) string) ([]string, map[string]*bucket) {
	keys := make([]string, 0)
	buckets := make(map[string]*bucket)
	for _, p := range payments {
		k := key(p)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
			keys = append(keys, k)
		}
		b.count++
		b.amount += parseAmount(p.Amount)
	}
	return keys, buckets
}

// RankTopMerchants groups payments by merchant and returns the top
// entries by accumulated amount. Every payment counts regardless of
// status; the ranking deliberately mirrors what the dashboard always
// showed rather than the SUCCESS-only headline total. The sort is
// stable, so merchants with equal amounts keep feed order.
func RankTopMerchants(payments []models.Payment, limit int) []models.TopMerchantEntry {
	type group struct {
		name   string
		amount float64
		count  int
	}

	codes := make([]string, 0)
	groups := make(map[string]*group)
	for _, p := range payments {
		g, ok := groups[p.MchtCode]
		if !ok {
			g = &group{name: p.MerchantLabel()}
			groups[p.MchtCode] = g
			codes = append(codes, p.MchtCode)
		}
		g.amount += parseAmount(p.Amount)
		g.count++
	}

	var totalRevenue float64
	for _, g := range groups {
		totalRevenue += g.amount
	}

	entries := make([]models.TopMerchantEntry, 0, len(codes))
	for _, code := range codes {
		g := groups[code]
		pct := 0.0
		if totalRevenue > 0 {
			pct = g.amount / totalRevenue * 100
		}
		entries = append(entries, models.TopMerchantEntry{
			MchtCode:         code,
			MchtName:         g.name,
			TotalAmount:      g.amount,
			TransactionCount: g.count,
			Percent:          pct,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalAmount > entries[j].TotalAmount
	})

	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// BuildDateSeries buckets payments by the calendar-date portion of
// paymentAt, ascending. Amount sums SUCCESS payments only, count sums
// all payments on the date. The display date is the MM-DD suffix.
func BuildDateSeries(payments []models.Payment) []models.DateBucket {
	type day struct {
		amount float64
		count  int
	}

	days := make(map[string]*day)
	for _, p := range payments {
		date, _, _ := strings.Cut(p.PaymentAt, "T")
		d, ok := days[date]
		if !ok {
			d = &day{}
			days[date] = d
		}
		if p.Status == models.PaymentStatusSuccess {
			d.amount += parseAmount(p.Amount)
		}
		d.count++
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	// Lexicographic order is chronological for YYYY-MM-DD.
	sort.Strings(dates)

	series := make([]models.DateBucket, 0, len(dates))
	for _, date := range dates {
		d := days[date]
		series = append(series, models.DateBucket{
			Date:     shortDate(date),
			FullDate: date,
			Amount:   d.amount,
			Count:    d.count,
		})
	}
	return series
}

func shortDate(fullDate string) string {
	if len(fullDate) > 5 {
		return fullDate[len(fullDate)-5:]
	}
	return fullDate
}

// PaginateSeries returns the periodIndex-th fixed-size window of the
// series. Out-of-range indexes yield an empty slice.
func PaginateSeries(series []models.DateBucket, periodIndex, pageSize int) []models.DateBucket {
	if periodIndex < 0 || pageSize <= 0 {
		return []models.DateBucket{}
	}
	start := periodIndex * pageSize
	if start >= len(series) {
		return []models.DateBucket{}
	}
	end := start + pageSize
	if end > len(series) {
		end = len(series)
	}
	return series[start:end]
}

// TotalPeriods returns how many windows the series spans.
func TotalPeriods(seriesLen, pageSize int) int {
	if seriesLen <= 0 || pageSize <= 0 {
		return 0
	}
	return (seriesLen + pageSize - 1) / pageSize
}

// LastPeriodIndex returns the index of the most recent window, the
// default view on load. Returns 0 for an empty series.
func LastPeriodIndex(seriesLen, pageSize int) int {
	n := TotalPeriods(seriesLen, pageSize)
	if n == 0 {
		return 0
	}
	return n - 1
}

// EnrichMerchants returns a copy of merchants with per-merchant
// transaction counts and amount sums joined in from the payment set.
// Sums include every payment status; the dashboard-wide total is
// SUCCESS-only, and the asymmetry is intentional upstream behavior.
func EnrichMerchants(merchants []models.Merchant, payments []models.Payment) []models.Merchant {
	type tally struct {
		count  int
		amount float64
	}

	tallies := make(map[string]*tally, len(merchants))
	for _, p := range payments {
		t, ok := tallies[p.MchtCode]
		if !ok {
			t = &tally{}
			tallies[p.MchtCode] = t
		}
		t.count++
		t.amount += parseAmount(p.Amount)
	}

	out := make([]models.Merchant, len(merchants))
	for i, m := range merchants {
		if t, ok := tallies[m.MchtCode]; ok {
			m.TransactionCount = t.count
			m.TotalAmount = t.amount
		}
		out[i] = m
	}
	return out
}

// CountActiveMerchants counts merchants in ACTIVE status.
func CountActiveMerchants(merchants []models.Merchant) int {
	n := 0
	for _, m := range merchants {
		if m.Status == models.MerchantStatusActive {
			n++
		}
	}
	return n
}
