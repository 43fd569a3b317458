package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paydash/internal/services/merchant"
	"paydash/internal/utils/pagination"
	"paydash/internal/utils/response"
)

type MerchantHandler struct {
	merchantService merchant.Service
}

func NewMerchantHandler(merchantService merchant.Service) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
	}
}

// ListMerchants returns one page of the enriched merchant list,
// optionally narrowed by a keyword over name, code and business type.
func (h *MerchantHandler) ListMerchants(c *fiber.Ctx) error {
	page := pagination.ParseFromRequest(c)
	keyword := c.Query("keyword")

	result, err := h.merchantService.List(c.Context(), keyword, page.Page, page.Size)
	if err != nil {
		return response.BadGateway(c, "Failed to load merchants")
	}

	return response.Success(c, "Merchants retrieved successfully", result)
}

// GetMerchant returns the full profile for one merchant.
func (h *MerchantHandler) GetMerchant(c *fiber.Ctx) error {
	code := c.Params("code")

	detail, err := h.merchantService.Get(c.Context(), code)
	if err != nil {
		if errors.Is(err, merchant.ErrNotFound) {
			return response.NotFound(c, "Merchant not found")
		}
		return response.BadGateway(c, "Failed to load merchant")
	}

	return response.Success(c, "Merchant retrieved successfully", detail)
}
