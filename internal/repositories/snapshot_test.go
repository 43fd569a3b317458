package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paydash/internal/models"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchPayments() ([]models.Payment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockFetcher) FetchMerchants() ([]models.Merchant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Merchant), args.Error(1)
}

func TestSnapshotRepository_NoCache(t *testing.T) {
	payments := []models.Payment{{PaymentCode: "P1", Amount: "100"}}
	merchants := []models.Merchant{{MchtCode: "M1"}}

	t.Run("payments fall through to the fetcher", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.On("FetchPayments").Return(payments, nil).Once()

		repo := NewSnapshotRepository(fetcher, nil)
		got, err := repo.Payments(context.Background())
		require.NoError(t, err)
		assert.Equal(t, payments, got)
		fetcher.AssertExpectations(t)
	})

	t.Run("merchants fall through to the fetcher", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.On("FetchMerchants").Return(merchants, nil).Once()

		repo := NewSnapshotRepository(fetcher, nil)
		got, err := repo.Merchants(context.Background())
		require.NoError(t, err)
		assert.Equal(t, merchants, got)
		fetcher.AssertExpectations(t)
	})

	t.Run("fetch errors surface to the caller", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.On("FetchPayments").Return(nil, errors.New("upstream down"))

		repo := NewSnapshotRepository(fetcher, nil)
		_, err := repo.Payments(context.Background())
		assert.Error(t, err)
	})

	t.Run("every call refetches without a cache", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.On("FetchPayments").Return(payments, nil).Twice()

		repo := NewSnapshotRepository(fetcher, nil)
		_, err := repo.Payments(context.Background())
		require.NoError(t, err)
		_, err = repo.Payments(context.Background())
		require.NoError(t, err)
		fetcher.AssertExpectations(t)
	})
}
