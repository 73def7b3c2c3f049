// Package client is the data-access facade the frontend uses to read the directory API.
package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"brandhub/config"
	deliverycontext "brandhub/internal/delivery/context"
	"brandhub/internal/domain/entity"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

// BrandClient exposes the API endpoints as typed calls. It keeps no cache;
// every call issues one request.
type BrandClient struct {
	transport Transport
	logger    *slog.Logger
}

// Params holds dependencies for BrandClient, injected by Fx.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Transport Transport `optional:"true"`
}

// NewFromConfig builds a client over the HTTP transport unless one is provided.
func NewFromConfig(params Params) *BrandClient {
	transport := params.Transport
	if transport == nil {
		transport = NewHTTPTransport(params.Config.Client.BaseURL, params.Config.Client.Timeout)
	}

	return New(transport, params.Logger)
}

// New creates a BrandClient over the given transport.
func New(transport Transport, logger *slog.Logger) *BrandClient {
	return &BrandClient{
		transport: transport,
		logger:    logger,
	}
}

// GetAllBrands returns every brand, ordered by name.
func (c *BrandClient) GetAllBrands(ctx context.Context) ([]*entity.Brand, error) {
	var resp envelope[[]*entity.Brand]
	if err := c.get(ctx, "/brands", &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// GetBrandByID returns one brand. A successful envelope without data yields nil, nil.
func (c *BrandClient) GetBrandByID(ctx context.Context, id string) (*entity.Brand, error) {
	var resp envelope[*entity.Brand]
	if err := c.get(ctx, "/brands/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// GetAgents returns every agent with its brand summaries.
func (c *BrandClient) GetAgents(ctx context.Context) ([]*entity.Agent, error) {
	var resp envelope[[]*entity.Agent]
	if err := c.get(ctx, "/agents", &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// get issues the request and turns an unsuccessful envelope into a *StatusError.
func (c *BrandClient) get(ctx context.Context, path string, out interface{ failure() (bool, string) }) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	if err := c.transport.Get(ctx, path, out); err != nil {
		if IsNotFound(err) {
			logger.Debug("API resource not found", slog.String("path", path))
		} else {
			logger.Error("API request failed", slog.String("path", path), slog.Any("error", err))
		}

		return err
	}

	if failed, message := out.failure(); failed {
		err := &StatusError{StatusCode: http.StatusOK, Message: message}
		logger.Error("API reported failure", slog.String("path", path), slog.Any("error", err))

		return errors.WithStack(err)
	}

	return nil
}

func (e *envelope[T]) failure() (bool, string) {
	return !e.Success, e.Error
}
