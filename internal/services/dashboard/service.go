// Package dashboard assembles the dashboard payload from the raw
// payment and merchant feeds.
package dashboard

import (
	"context"

	"paydash/internal/analytics"
	"paydash/internal/models"
)

type Service interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	GetTrendPeriod(ctx context.Context, periodIndex int) (*models.TrendPeriod, error)
}

// DataSource provides the complete datasets the aggregates are built
// from.
type DataSource interface {
	Payments(ctx context.Context) ([]models.Payment, error)
	Merchants(ctx context.Context) ([]models.Merchant, error)
}

type service struct {
	data DataSource
}

func NewService(data DataSource) Service {
	return &service{data: data}
}

// GetDashboard recomputes every dashboard aggregate from scratch. The
// payment feed is scanned a few times over a few thousand records, so
// combining the passes is not worth the loss of clarity.
func (s *service) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	payments, err := s.data.Payments(ctx)
	if err != nil {
		return nil, err
	}
	merchants, err := s.data.Merchants(ctx)
	if err != nil {
		return nil, err
	}

	totals := analytics.ComputeTotals(payments)
	trends := analytics.ComputeTrends(payments)

	series := analytics.BuildDateSeries(payments)
	periodIndex := analytics.LastPeriodIndex(len(series), analytics.DaysPerPeriod)

	return &models.Dashboard{
		Stats: models.DashboardStats{
			TotalAmount:         totals.TotalAmount,
			TotalCount:          totals.TotalCount,
			SuccessRate:         totals.SuccessRate,
			ActiveMerchantCount: analytics.CountActiveMerchants(merchants),
			AmountTrend:         trends.AmountTrend,
			CountTrend:          trends.CountTrend,
			SuccessRateTrend:    trends.SuccessRateTrend,
		},
		StatusData:   analytics.BucketByStatus(payments),
		MethodData:   analytics.BucketByPayType(payments),
		TopMerchants: analytics.RankTopMerchants(payments, analytics.TopMerchantLimit),
		Trend: models.TrendPeriod{
			PeriodIndex:  periodIndex,
			TotalPeriods: analytics.TotalPeriods(len(series), analytics.DaysPerPeriod),
			Series:       analytics.PaginateSeries(series, periodIndex, analytics.DaysPerPeriod),
		},
		RecentPayments: analytics.RecentPayments(payments, 5),
	}, nil
}

// GetTrendPeriod re-slices the date series to the requested window for
// chart paging. An out-of-range index yields an empty window.
func (s *service) GetTrendPeriod(ctx context.Context, periodIndex int) (*models.TrendPeriod, error) {
	payments, err := s.data.Payments(ctx)
	if err != nil {
		return nil, err
	}

	series := analytics.BuildDateSeries(payments)
	return &models.TrendPeriod{
		PeriodIndex:  periodIndex,
		TotalPeriods: analytics.TotalPeriods(len(series), analytics.DaysPerPeriod),
		Series:       analytics.PaginateSeries(series, periodIndex, analytics.DaysPerPeriod),
	}, nil
}
