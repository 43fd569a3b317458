package models

// DashboardStats is the headline card row of the dashboard. Trends
// compare the second half of the payment feed against the first half.
type DashboardStats struct {
	TotalAmount         float64 `json:"totalAmount"`
	TotalCount          int     `json:"totalCount"`
	SuccessRate         float64 `json:"successRate"`
	ActiveMerchantCount int     `json:"activeMerchantCount"`
	AmountTrend         float64 `json:"amountTrend"`
	CountTrend          float64 `json:"countTrend"`
	SuccessRateTrend    float64 `json:"successRateTrend"`
}

// TotalStats holds the SUCCESS-filtered amount sum, full count and
// success rate for a payment set.
type TotalStats struct {
	TotalAmount float64 `json:"totalAmount"`
	TotalCount  int     `json:"totalCount"`
	SuccessRate float64 `json:"successRate"`
}

// TrendStats holds half-over-half percentage changes.
type TrendStats struct {
	AmountTrend      float64 `json:"amountTrend"`
	CountTrend       float64 `json:"countTrend"`
	SuccessRateTrend float64 `json:"successRateTrend"`
}

// StatusBucket is one slice of the status distribution. Amount sums
// every payment of that status, not just successful ones.
type StatusBucket struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// MethodBucket is one slice of the payment-method distribution.
type MethodBucket struct {
	PayType string  `json:"payType"`
	Count   int     `json:"count"`
	Amount  float64 `json:"amount"`
}

// DateBucket is one day of the trend series. Amount counts SUCCESS
// payments only; Count counts every payment on that date.
type DateBucket struct {
	Date     string  `json:"date"`
	FullDate string  `json:"fullDate"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// TopMerchantEntry is one row of the top-merchant ranking. Percent is
// the merchant's share of the summed revenue across all merchants.
type TopMerchantEntry struct {
	MchtCode         string  `json:"mchtCode"`
	MchtName         string  `json:"mchtName"`
	TotalAmount      float64 `json:"totalAmount"`
	TransactionCount int     `json:"transactionCount"`
	Percent          float64 `json:"percent"`
}

// TrendPeriod is one 30-day window of the date series, used for paged
// chart navigation.
type TrendPeriod struct {
	PeriodIndex  int          `json:"periodIndex"`
	TotalPeriods int          `json:"totalPeriods"`
	Series       []DateBucket `json:"series"`
}

// Dashboard is the full payload the dashboard page renders in one load.
type Dashboard struct {
	Stats          DashboardStats     `json:"stats"`
	StatusData     []StatusBucket     `json:"statusData"`
	MethodData     []MethodBucket     `json:"methodData"`
	TopMerchants   []TopMerchantEntry `json:"topMerchants"`
	Trend          TrendPeriod        `json:"trend"`
	RecentPayments []Payment          `json:"recentPayments"`
}
