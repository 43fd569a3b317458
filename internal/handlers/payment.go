package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"paydash/internal/analytics"
	"paydash/internal/export"
	"paydash/internal/services/payment"
	"paydash/internal/utils/pagination"
	"paydash/internal/utils/response"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func parseFilter(c *fiber.Ctx) analytics.PaymentFilter {
	f := analytics.PaymentFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		MchtCode:  c.Query("mchtCode"),
		PayType:   c.Query("payType"),
		Status:    c.Query("status"),
	}
	if raw := c.Query("minAmount"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinAmount = &v
		}
	}
	if raw := c.Query("maxAmount"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MaxAmount = &v
		}
	}
	return f
}

// ListPayments returns one page of the filtered, sorted payment list.
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	page := pagination.ParseFromRequest(c)

	q := payment.ListQuery{
		Filter:    parseFilter(c),
		SortField: c.Query("sort", analytics.SortByPaymentAt),
		SortOrder: c.Query("order", analytics.SortDesc),
		Page:      page.Page,
		Size:      page.Size,
	}

	result, err := h.paymentService.List(c.Context(), q)
	if err != nil {
		return response.BadGateway(c, "Failed to load payments")
	}

	return response.Success(c, "Payments retrieved successfully", result)
}

// GetRecentPayments returns the newest payments, default 5.
func (h *PaymentHandler) GetRecentPayments(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil || limit < 0 {
		limit = 5
	}

	payments, err := h.paymentService.Recent(c.Context(), limit)
	if err != nil {
		return response.BadGateway(c, "Failed to load recent payments")
	}

	return response.Success(c, "Recent payments retrieved successfully", payments)
}

// GetPayment returns a single payment by code.
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	code := c.Params("code")

	p, err := h.paymentService.Get(c.Context(), code)
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			return response.NotFound(c, "Payment not found")
		}
		return response.BadGateway(c, "Failed to load payment")
	}

	return response.Success(c, "Payment retrieved successfully", p)
}

// ExportPayments streams the filtered payment set as a CSV or XLSX
// download.
func (h *PaymentHandler) ExportPayments(c *fiber.Ctx) error {
	format := c.Query("format", export.FormatCSV)

	file, err := h.paymentService.Export(c.Context(), parseFilter(c), format)
	if err != nil {
		if errors.Is(err, payment.ErrBadExportKind) {
			return response.BadRequest(c, "format must be csv or xlsx")
		}
		return response.BadGateway(c, "Failed to export payments")
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Data)
}

// GetPaymentCodes returns the status and pay-type label tables.
func (h *PaymentHandler) GetPaymentCodes(c *fiber.Ctx) error {
	codes, err := h.paymentService.Codes(c.Context())
	if err != nil {
		return response.BadGateway(c, "Failed to load code tables")
	}

	return response.Success(c, "Code tables retrieved successfully", codes)
}
