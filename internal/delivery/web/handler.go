package web

import (
	"context"
	"log/slog"
	"net/http"

	"brandhub/internal/client"
	deliverycontext "brandhub/internal/delivery/context"
	"brandhub/internal/domain/entity"
	"brandhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// BrandProvider is the read side of the directory the pages are rendered from.
type BrandProvider interface {
	GetAllBrands(ctx context.Context) ([]*entity.Brand, error)
	GetBrandByID(ctx context.Context, id string) (*entity.Brand, error)
	GetAgents(ctx context.Context) ([]*entity.Agent, error)
}

const (
	msgBrandsUnavailable = "Failed to load brands. Please try again later."
	msgBrandUnavailable  = "Failed to load brand details. Please try again later."
	msgAgentsUnavailable = "Failed to load agents. Please try again later."
	msgBrandNotFound     = "Brand not found"
)

type indexPage struct {
	Title  string
	Brands []*entity.Brand
}

type brandPage struct {
	Title string
	Brand *entity.Brand
}

type agentsPage struct {
	Title  string
	Agents []*entity.Agent
}

type errorPage struct {
	Title   string
	Message string
}

type pageHandler struct {
	provider BrandProvider
	logger   *slog.Logger
}

func (h *pageHandler) index(c echo.Context) error {
	brands, err := h.provider.GetAllBrands(c.Request().Context())
	if err != nil {
		return h.renderError(c, http.StatusBadGateway, "Something went wrong", msgBrandsUnavailable)
	}

	return c.Render(http.StatusOK, "index.html", indexPage{Title: "Luxury Brands", Brands: brands})
}

func (h *pageHandler) brand(c echo.Context) error {
	brand, err := h.provider.GetBrandByID(c.Request().Context(), c.Param("id"))
	switch {
	case client.IsNotFound(err), err == nil && brand == nil:
		return h.renderError(c, http.StatusNotFound, msgBrandNotFound, "")
	case err != nil:
		return h.renderError(c, http.StatusBadGateway, "Something went wrong", msgBrandUnavailable)
	}

	return c.Render(http.StatusOK, "brand.html", brandPage{Title: brand.Name, Brand: brand})
}

func (h *pageHandler) agents(c echo.Context) error {
	agents, err := h.provider.GetAgents(c.Request().Context())
	if err != nil {
		return h.renderError(c, http.StatusBadGateway, "Something went wrong", msgAgentsUnavailable)
	}

	return c.Render(http.StatusOK, "agents.html", agentsPage{Title: "Our Agents", Agents: agents})
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *pageHandler) renderError(c echo.Context, status int, title, message string) error {
	return c.Render(status, "error.html", errorPage{Title: title, Message: message})
}

// handleHTTPError renders routing errors and template failures as an error page.
func (h *pageHandler) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	title := "Something went wrong"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		status = httpErr.Code
		title = http.StatusText(status)
	} else {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Page rendering failed",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	if renderErr := c.Render(status, "error.html", errorPage{Title: title}); renderErr != nil {
		_ = c.String(status, title)
	}
}
