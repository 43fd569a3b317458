// Package payment serves the payment listing pages: filtering,
// sorting, paging, detail lookup, label tables and file export.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paydash/internal/analytics"
	"paydash/internal/client"
	"paydash/internal/export"
	"paydash/internal/models"
)

// ListQuery carries the listing parameters after handler parsing.
type ListQuery struct {
	Filter    analytics.PaymentFilter
	SortField string
	SortOrder string
	Page      int // zero-based
	Size      int
}

// Page is one window of the filtered, sorted payment list.
type Page struct {
	Items      []models.Payment `json:"items"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// File is a rendered export ready to stream to the browser.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Service interface {
	List(ctx context.Context, q ListQuery) (*Page, error)
	Recent(ctx context.Context, limit int) ([]models.Payment, error)
	Get(ctx context.Context, code string) (*models.Payment, error)
	Export(ctx context.Context, filter analytics.PaymentFilter, format string) (*File, error)
	Codes(ctx context.Context) (*models.PaymentCodes, error)
}

// DataSource provides the cached payment feed.
type DataSource interface {
	Payments(ctx context.Context) ([]models.Payment, error)
}

// Upstream covers the uncached single-record and label endpoints.
type Upstream interface {
	FetchPayment(code string) (*models.Payment, error)
	FetchPaymentStatusCodes() ([]models.StatusCode, error)
	FetchPayTypeCodes() ([]models.PayTypeCode, error)
}

type service struct {
	data     DataSource
	upstream Upstream
}

func NewService(data DataSource, upstream Upstream) Service {
	return &service{data: data, upstream: upstream}
}

func (s *service) List(ctx context.Context, q ListQuery) (*Page, error) {
	payments, err := s.data.Payments(ctx)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterPayments(payments, q.Filter)
	sorted := analytics.SortPayments(filtered, q.SortField, q.SortOrder)

	return &Page{
		Items:      analytics.Page(sorted, q.Page, q.Size),
		Page:       q.Page,
		Size:       q.Size,
		TotalItems: len(sorted),
		TotalPages: analytics.PageCount(len(sorted), q.Size),
	}, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]models.Payment, error) {
	payments, err := s.data.Payments(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.RecentPayments(payments, limit), nil
}

func (s *service) Get(ctx context.Context, code string) (*models.Payment, error) {
	p, err := s.upstream.FetchPayment(code)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Export renders the filtered payment set as CSV or XLSX. The whole
// filtered set is exported, not the current page, matching the
// original download behavior.
func (s *service) Export(ctx context.Context, filter analytics.PaymentFilter, format string) (*File, error) {
	if format != export.FormatCSV && format != export.FormatXLSX {
		return nil, fmt.Errorf("%w: %q", ErrBadExportKind, format)
	}

	payments, err := s.data.Payments(ctx)
	if err != nil {
		return nil, err
	}
	filtered := analytics.FilterPayments(payments, filter)

	codes, err := s.Codes(ctx)
	if err != nil {
		return nil, err
	}
	labels := export.NewLabels(codes.Statuses, codes.PayTypes)

	name := fmt.Sprintf("payments_%s_%s.%s",
		time.Now().Format("2006-01-02"), uuid.NewString()[:8], format)

	switch format {
	case export.FormatCSV:
		data, err := export.PaymentsCSV(filtered, labels)
		if err != nil {
			return nil, err
		}
		return &File{Name: name, ContentType: "text/csv; charset=utf-8", Data: data}, nil
	default:
		data, err := export.PaymentsXLSX(filtered, labels)
		if err != nil {
			return nil, err
		}
		return &File{
			Name:        name,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}
}

func (s *service) Codes(ctx context.Context) (*models.PaymentCodes, error) {
	statuses, err := s.upstream.FetchPaymentStatusCodes()
	if err != nil {
		return nil, err
	}
	payTypes, err := s.upstream.FetchPayTypeCodes()
	if err != nil {
		return nil, err
	}
	return &models.PaymentCodes{Statuses: statuses, PayTypes: payTypes}, nil
}
