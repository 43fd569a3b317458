package analytics

import (
	"sort"
	"strings"

	"paydash/internal/models"
)

// PaymentFilter narrows a payment list. Zero-valued fields match
// everything; set fields are ANDed together.
type PaymentFilter struct {
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // inclusive, YYYY-MM-DD (extended to end of day)
	MchtCode  string
	PayType   string
	Status    string
	MinAmount *float64
	MaxAmount *float64
}

// Sortable payment fields.
const (
	SortByPaymentAt = "paymentAt"
	SortByAmount    = "amount"
	SortByStatus    = "status"
	SortByPayType   = "payType"
	SortByMerchant  = "mchtCode"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterPayments returns the payments matching every set criterion.
// Date bounds compare against the raw ISO timestamp string, which
// orders chronologically for the upstream's fixed format.
func FilterPayments(payments []models.Payment, f PaymentFilter) []models.Payment {
	endBound := ""
	if f.EndDate != "" {
		endBound = f.EndDate + "T23:59:59"
	}

	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if f.StartDate != "" && p.PaymentAt < f.StartDate {
			continue
		}
		if endBound != "" && p.PaymentAt > endBound {
			continue
		}
		if f.MchtCode != "" && p.MchtCode != f.MchtCode {
			continue
		}
		if f.PayType != "" && p.PayType != f.PayType {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.MinAmount != nil && parseAmount(p.Amount) < *f.MinAmount {
			continue
		}
		if f.MaxAmount != nil && parseAmount(p.Amount) > *f.MaxAmount {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPayments returns a sorted copy; the input is never reordered.
// Unknown fields leave the copy in input order.
func SortPayments(payments []models.Payment, field, order string) []models.Payment {
	out := make([]models.Payment, len(payments))
	copy(out, payments)

	var less func(a, b models.Payment) bool
	switch field {
	case SortByPaymentAt:
		less = func(a, b models.Payment) bool { return a.PaymentAt < b.PaymentAt }
	case SortByAmount:
		less = func(a, b models.Payment) bool { return parseAmount(a.Amount) < parseAmount(b.Amount) }
	case SortByStatus:
		less = func(a, b models.Payment) bool { return a.Status < b.Status }
	case SortByPayType:
		less = func(a, b models.Payment) bool { return a.PayType < b.PayType }
	case SortByMerchant:
		less = func(a, b models.Payment) bool { return a.MerchantLabel() < b.MerchantLabel() }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortAsc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// RecentPayments returns the most recent payments by timestamp,
// newest first.
func RecentPayments(payments []models.Payment, limit int) []models.Payment {
	recent := SortPayments(payments, SortByPaymentAt, SortDesc)
	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// SearchMerchants returns merchants whose name, code or business type
// contains the keyword, case-insensitively. An empty keyword matches
// everything.
func SearchMerchants(merchants []models.Merchant, keyword string) []models.Merchant {
	if keyword == "" {
		out := make([]models.Merchant, len(merchants))
		copy(out, merchants)
		return out
	}

	kw := strings.ToLower(keyword)
	out := make([]models.Merchant, 0, len(merchants))
	for _, m := range merchants {
		if strings.Contains(strings.ToLower(m.MchtName), kw) ||
			strings.Contains(strings.ToLower(m.MchtCode), kw) ||
			strings.Contains(strings.ToLower(m.BizType), kw) {
			out = append(out, m)
		}
	}
	return out
}

// Page returns the zero-based page window of items. Out-of-range pages
// yield an empty slice.
func Page[T any](items []T, page, size int) []T {
	if page < 0 || size <= 0 {
		return []T{}
	}
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns how many pages of the given size the list spans.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
