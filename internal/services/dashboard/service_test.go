package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paydash/internal/models"
)

type MockDataSource struct {
	mock.Mock
}

func (m *MockDataSource) Payments(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockDataSource) Merchants(ctx context.Context) ([]models.Merchant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Merchant), args.Error(1)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	payments := []models.Payment{
		{PaymentCode: "P1", MchtCode: "A", Amount: "100", Status: "SUCCESS", PayType: "ONLINE", PaymentAt: "2024-01-01T10:00:00"},
		{PaymentCode: "P2", MchtCode: "B", Amount: "50", Status: "FAILED", PayType: "MOBILE", PaymentAt: "2024-01-02T09:00:00"},
	}
	merchants := []models.Merchant{
		{MchtCode: "A", Status: "ACTIVE"},
		{MchtCode: "B", Status: "INACTIVE"},
	}

	t.Run("assembles the full payload", func(t *testing.T) {
		data := new(MockDataSource)
		data.On("Payments", mock.Anything).Return(payments, nil)
		data.On("Merchants", mock.Anything).Return(merchants, nil)

		svc := NewService(data)
		dash, err := svc.GetDashboard(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 100.0, dash.Stats.TotalAmount)
		assert.Equal(t, 2, dash.Stats.TotalCount)
		assert.Equal(t, 50.0, dash.Stats.SuccessRate)
		assert.Equal(t, 1, dash.Stats.ActiveMerchantCount)

		require.Len(t, dash.StatusData, 2)
		assert.Equal(t, "SUCCESS", dash.StatusData[0].Status)
		require.Len(t, dash.MethodData, 2)
		require.Len(t, dash.TopMerchants, 2)
		assert.Equal(t, "A", dash.TopMerchants[0].MchtCode)

		require.Len(t, dash.Trend.Series, 2)
		assert.Equal(t, 0, dash.Trend.PeriodIndex)
		assert.Equal(t, 1, dash.Trend.TotalPeriods)

		require.Len(t, dash.RecentPayments, 2)
		assert.Equal(t, "P2", dash.RecentPayments[0].PaymentCode)

		data.AssertExpectations(t)
	})

	t.Run("empty datasets yield zeroed payload", func(t *testing.T) {
		data := new(MockDataSource)
		data.On("Payments", mock.Anything).Return([]models.Payment{}, nil)
		data.On("Merchants", mock.Anything).Return([]models.Merchant{}, nil)

		svc := NewService(data)
		dash, err := svc.GetDashboard(context.Background())
		require.NoError(t, err)

		assert.Zero(t, dash.Stats.TotalAmount)
		assert.Zero(t, dash.Stats.TotalCount)
		assert.Zero(t, dash.Stats.SuccessRate)
		assert.Empty(t, dash.StatusData)
		assert.Empty(t, dash.TopMerchants)
		assert.Empty(t, dash.Trend.Series)
		assert.Empty(t, dash.RecentPayments)
	})

	t.Run("propagates fetch failure", func(t *testing.T) {
		data := new(MockDataSource)
		data.On("Payments", mock.Anything).Return(nil, errors.New("upstream down"))

		svc := NewService(data)
		_, err := svc.GetDashboard(context.Background())
		assert.Error(t, err)
	})
}

func TestDashboardService_GetTrendPeriod(t *testing.T) {
	// 35 distinct dates spread over two 30-day windows.
	payments := make([]models.Payment, 0, 35)
	for i := 0; i < 35; i++ {
		day := i%9 + 1
		month := i/9 + 1
		at := "2024-0" + string(rune('0'+month)) + "-0" + string(rune('0'+day)) + "T10:00:00"
		payments = append(payments, models.Payment{
			PaymentCode: "P", MchtCode: "A", Amount: "10",
			Status: "SUCCESS", PayType: "ONLINE", PaymentAt: at,
		})
	}

	data := new(MockDataSource)
	data.On("Payments", mock.Anything).Return(payments, nil)
	svc := NewService(data)

	period, err := svc.GetTrendPeriod(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, period.PeriodIndex)
	assert.Equal(t, 2, period.TotalPeriods)
	assert.Len(t, period.Series, 5)

	empty, err := svc.GetTrendPeriod(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, empty.Series)
}
