package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/service"
)

// SeedHandler handles bulk catalog import.
type SeedHandler struct {
	bootstrapService service.BootstrapService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(bootstrapService service.BootstrapService) *SeedHandler {
	return &SeedHandler{bootstrapService: bootstrapService}
}

// ImportCatalogResponse represents the catalog import result.
type ImportCatalogResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
}

// ImportCatalog godoc
// @Summary Bulk create-or-update sellers and products (admin only)
// @Tags seed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []service.CatalogSeller true "Catalog entries"
// @Success 200 {object} ImportCatalogResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /seed/catalog [post]
func (h *SeedHandler) ImportCatalog(c echo.Context) error {
	var entries []service.CatalogSeller
	if err := c.Bind(&entries); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, updated, err := h.bootstrapService.ImportCatalog(c.Request().Context(), entries)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, ImportCatalogResponse{
		Message: "catalog imported successfully",
		Created: created,
		Updated: updated,
	})
}
