// Package merchant serves the merchant listing and detail pages.
// Listings are enriched with per-merchant transaction counts and
// amount sums derived from the payment feed.
package merchant

import (
	"context"
	"errors"

	"paydash/internal/analytics"
	"paydash/internal/client"
	"paydash/internal/models"
)

var ErrNotFound = errors.New("merchant not found")

// Page is one window of the enriched, filtered merchant list.
type Page struct {
	Items      []models.Merchant `json:"items"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

type Service interface {
	List(ctx context.Context, keyword string, page, size int) (*Page, error)
	Get(ctx context.Context, code string) (*models.MerchantDetail, error)
}

type DataSource interface {
	Payments(ctx context.Context) ([]models.Payment, error)
	Merchants(ctx context.Context) ([]models.Merchant, error)
}

type Upstream interface {
	FetchMerchantDetail(code string) (*models.MerchantDetail, error)
}

type service struct {
	data     DataSource
	upstream Upstream
}

func NewService(data DataSource, upstream Upstream) Service {
	return &service{data: data, upstream: upstream}
}

func (s *service) List(ctx context.Context, keyword string, page, size int) (*Page, error) {
	merchants, err := s.data.Merchants(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.data.Payments(ctx)
	if err != nil {
		return nil, err
	}

	enriched := analytics.EnrichMerchants(merchants, payments)
	matched := analytics.SearchMerchants(enriched, keyword)

	return &Page{
		Items:      analytics.Page(matched, page, size),
		Page:       page,
		Size:       size,
		TotalItems: len(matched),
		TotalPages: analytics.PageCount(len(matched), size),
	}, nil
}

func (s *service) Get(ctx context.Context, code string) (*models.MerchantDetail, error) {
	detail, err := s.upstream.FetchMerchantDetail(code)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return detail, nil
}
