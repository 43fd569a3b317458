package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paydash/internal/analytics"
	"paydash/internal/client"
	"paydash/internal/export"
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

type MockUpstream struct {
	mock.Mock
}

func (m *MockUpstream) FetchPayment(code string) (*models.Payment, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockUpstream) FetchPaymentStatusCodes() ([]models.StatusCode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatusCode), args.Error(1)
}

func (m *MockUpstream) FetchPayTypeCodes() ([]models.PayTypeCode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PayTypeCode), args.Error(1)
}

var feed = []models.Payment{
	{PaymentCode: "P1", MchtCode: "A", Amount: "100", Currency: "KRW", Status: "SUCCESS", PayType: "ONLINE", PaymentAt: "2024-01-01T10:00:00"},
	{PaymentCode: "P2", MchtCode: "B", Amount: "300", Currency: "KRW", Status: "FAILED", PayType: "MOBILE", PaymentAt: "2024-01-03T09:00:00"},
	{PaymentCode: "P3", MchtCode: "A", Amount: "200", Currency: "KRW", Status: "SUCCESS", PayType: "VACT", PaymentAt: "2024-01-02T08:00:00"},
}

func TestPaymentService_List(t *testing.T) {
	data := new(MockDataSource)
	data.On("Payments", mock.Anything).Return(feed, nil)
	svc := NewService(data, new(MockUpstream))

	t.Run("filters, sorts and pages", func(t *testing.T) {
		page, err := svc.List(context.Background(), ListQuery{
			Filter:    analytics.PaymentFilter{MchtCode: "A"},
			SortField: analytics.SortByAmount,
			SortOrder: analytics.SortDesc,
			Page:      0,
			Size:      1,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, page.TotalItems)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "P3", page.Items[0].PaymentCode)
	})

	t.Run("out of range page is empty, totals intact", func(t *testing.T) {
		page, err := svc.List(context.Background(), ListQuery{
			SortField: analytics.SortByPaymentAt,
			SortOrder: analytics.SortDesc,
			Page:      5,
			Size:      20,
		})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.TotalItems)
	})

	t.Run("propagates fetch failure", func(t *testing.T) {
		broken := new(MockDataSource)
		broken.On("Payments", mock.Anything).Return(nil, errors.New("boom"))
		svc := NewService(broken, new(MockUpstream))

		_, err := svc.List(context.Background(), ListQuery{Size: 10})
		assert.Error(t, err)
	})
}

func TestPaymentService_Recent(t *testing.T) {
	data := new(MockDataSource)
	data.On("Payments", mock.Anything).Return(feed, nil)
	svc := NewService(data, new(MockUpstream))

	recent, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "P2", recent[0].PaymentCode)
	assert.Equal(t, "P3", recent[1].PaymentCode)
}

func TestPaymentService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		upstream := new(MockUpstream)
		upstream.On("FetchPayment", "P1").Return(&feed[0], nil)
		svc := NewService(new(MockDataSource), upstream)

		p, err := svc.Get(context.Background(), "P1")
		require.NoError(t, err)
		assert.Equal(t, "P1", p.PaymentCode)
	})

	t.Run("maps upstream 404", func(t *testing.T) {
		upstream := new(MockUpstream)
		upstream.On("FetchPayment", "NOPE").Return(nil, client.ErrNotFound)
		svc := NewService(new(MockDataSource), upstream)

		_, err := svc.Get(context.Background(), "NOPE")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPaymentService_Export(t *testing.T) {
	newSvc := func() Service {
		data := new(MockDataSource)
		data.On("Payments", mock.Anything).Return(feed, nil)
		upstream := new(MockUpstream)
		upstream.On("FetchPaymentStatusCodes").Return([]models.StatusCode{
			{Code: "SUCCESS", Description: "Success"},
		}, nil)
		upstream.On("FetchPayTypeCodes").Return([]models.PayTypeCode{
			{Type: "ONLINE", Description: "Online"},
		}, nil)
		return NewService(data, upstream)
	}

	t.Run("csv export carries filtered rows and labels", func(t *testing.T) {
		file, err := newSvc().Export(context.Background(),
			analytics.PaymentFilter{MchtCode: "A"}, export.FormatCSV)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(file.Name, ".csv"))
		assert.Contains(t, file.ContentType, "text/csv")

		body := string(file.Data)
		assert.Contains(t, body, "P1")
		assert.Contains(t, body, "P3")
		assert.NotContains(t, body, "P2")
		assert.Contains(t, body, "Success") // label, not raw code
		assert.Contains(t, body, "VACT")    // unlabelled code passes through
	})

	t.Run("xlsx export", func(t *testing.T) {
		file, err := newSvc().Export(context.Background(),
			analytics.PaymentFilter{}, export.FormatXLSX)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
		assert.NotEmpty(t, file.Data)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := newSvc().Export(context.Background(),
			analytics.PaymentFilter{}, "pdf")
		assert.ErrorIs(t, err, ErrBadExportKind)
	})
}

func TestPaymentService_Codes(t *testing.T) {
	upstream := new(MockUpstream)
	upstream.On("FetchPaymentStatusCodes").Return([]models.StatusCode{
		{Code: "SUCCESS", Description: "Success"},
	}, nil)
	upstream.On("FetchPayTypeCodes").Return([]models.PayTypeCode{
		{Type: "ONLINE", Description: "Online"},
	}, nil)
	svc := NewService(new(MockDataSource), upstream)

	codes, err := svc.Codes(context.Background())
	require.NoError(t, err)
	assert.Len(t, codes.Statuses, 1)
	assert.Len(t, codes.PayTypes, 1)
}
