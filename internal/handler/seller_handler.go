package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"marketplace/internal/model"
	"marketplace/internal/service"
)

// SellerHandler handles seller endpoints.
type SellerHandler struct {
	sellerService service.SellerService
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(sellerService service.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// CreateSellerRequest represents a seller creation request.
type CreateSellerRequest struct {
	Name              string          `json:"name" validate:"required"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
}

// SellerResponse is the wire shape of a seller record.
type SellerResponse struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
}

func newSellerResponse(seller *model.Seller) SellerResponse {
	return SellerResponse{
		ID:                seller.ID,
		Name:              seller.Name,
		CommissionPercent: seller.CommissionPercent,
	}
}

// CreateSeller godoc
// @Summary Create a seller (admin only)
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSellerRequest true "Seller data"
// @Success 201 {object} SellerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /sellers [post]
func (h *SellerHandler) CreateSeller(c echo.Context) error {
	var req CreateSellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	seller, err := h.sellerService.Create(c.Request().Context(), req.Name, req.CommissionPercent)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, newSellerResponse(seller))
}

// GetSeller godoc
// @Summary Get a seller by id
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seller ID"
// @Success 200 {object} SellerResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sellers/{id} [get]
func (h *SellerHandler) GetSeller(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	seller, err := h.sellerService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newSellerResponse(seller))
}

// ListSellers godoc
// @Summary List sellers
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} SellerResponse
// @Router /sellers [get]
func (h *SellerHandler) ListSellers(c echo.Context) error {
	offset, limit := parsePagination(c)
	sellers, err := h.sellerService.List(c.Request().Context(), offset, limit)
	if err != nil {
		return httpError(err)
	}

	resp := make([]SellerResponse, 0, len(sellers))
	for i := range sellers {
		resp = append(resp, newSellerResponse(&sellers[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteSeller godoc
// @Summary Delete a seller (admin only)
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seller ID"
// @Success 204 {object} nil
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sellers/{id} [delete]
func (h *SellerHandler) DeleteSeller(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.sellerService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
