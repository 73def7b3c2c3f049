// Package handler contains the echo handlers of the directory API.
package handler

import (
	"log/slog"
	"net/http"

	"brandhub/internal/delivery/api/response"
	"brandhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BrandHandlerParams holds dependencies for BrandHandler, injected by Fx.
type BrandHandlerParams struct {
	fx.In

	BrandUC usecase.BrandUsecase
	Logger  *slog.Logger
}

// BrandHandler serves the brand and agent endpoints
type BrandHandler struct {
	brandUC usecase.BrandUsecase
	logger  *slog.Logger
}

// NewBrandHandler is the constructor for BrandHandler
func NewBrandHandler(params BrandHandlerParams) *BrandHandler {
	return &BrandHandler{
		brandUC: params.BrandUC,
		logger:  params.Logger,
	}
}

// ListBrands handles GET /brands
func (h *BrandHandler) ListBrands(c echo.Context) error {
	brands, err := h.brandUC.ListBrands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands)
}

// GetBrand handles GET /brands/:id. The id is used verbatim; there is no format check.
func (h *BrandHandler) GetBrand(c echo.Context) error {
	brand, err := h.brandUC.GetBrand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brand)
}

// BrandMap handles GET /brands/map and answers a bare GeoJSON FeatureCollection
func (h *BrandHandler) BrandMap(c echo.Context) error {
	collection, err := h.brandUC.BrandMap(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := collection.MarshalJSON()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}

// ListAgents handles GET /agents
func (h *BrandHandler) ListAgents(c echo.Context) error {
	agents, err := h.brandUC.ListAgents(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, agents)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
