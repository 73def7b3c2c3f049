package web

import (
	"context"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandhub/config"
	"brandhub/internal/client"
	"brandhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	brands []*entity.Brand
	agents []*entity.Agent
	err    error
}

func (f *fakeProvider) GetAllBrands(context.Context) ([]*entity.Brand, error) {
	return f.brands, f.err
}

func (f *fakeProvider) GetBrandByID(_ context.Context, id string) (*entity.Brand, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, brand := range f.brands {
		if brand.ID == id {
			return brand, nil
		}
	}

	return nil, &client.StatusError{StatusCode: http.StatusNotFound, Message: "Brand not found"}
}

func (f *fakeProvider) GetAgents(context.Context) ([]*entity.Agent, error) {
	return f.agents, f.err
}

func newTestEcho(t *testing.T, provider BrandProvider) *echo.Echo {
	t.Helper()

	e, err := NewEcho(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)), provider)
	require.NoError(t, err)

	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func sampleBrands() []*entity.Brand {
	return []*entity.Brand{
		{
			ID:           "chanel",
			Name:         "Chanel",
			Description:  strings.Repeat("a", 150),
			Category:     "Fashion",
			Founded:      1910,
			Headquarters: "Paris, France",
		},
		{
			ID:           "rolex",
			Name:         "Rolex",
			Description:  "Swiss watchmaker",
			Category:     "Watches",
			Founded:      1905,
			Headquarters: "Geneva, Switzerland",
			Location:     &entity.Location{Lat: 46.2044, Lng: 6.1432, Address: "Rue François-Dussaud 3"},
			Image:        "https://example.com/rolex.jpg",
		},
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 120))
	assert.Equal(t, strings.Repeat("é", 120), truncate(strings.Repeat("é", 120), 120))
	assert.Equal(t, strings.Repeat("é", 120)+"...", truncate(strings.Repeat("é", 121), 120))
	assert.Equal(t, "", truncate("", 120))
}

func TestIndexPage(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{brands: sampleBrands()})

	rec := get(e, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/brands/chanel"`)
	assert.Contains(t, body, strings.Repeat("a", 120)+"...")
	assert.NotContains(t, body, strings.Repeat("a", 121))
	assert.Contains(t, body, "Founded in 1905")
	assert.Contains(t, body, "Geneva, Switzerland")
	assert.Contains(t, body, `<span class="pill">Watches</span>`)
}

func TestIndexPage_ProviderFailure(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{err: errors.New("connection refused")})

	rec := get(e, "/")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load brands. Please try again later.")
}

func TestBrandPage_WithMap(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{brands: sampleBrands()})

	rec := get(e, "/brands/rolex")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Rolex</h1>")
	assert.Contains(t, body, `data-lat="46.2044"`)
	assert.Contains(t, body, `data-lng="6.1432"`)
	assert.Contains(t, body, `data-zoom="13"`)
	assert.Contains(t, body, "leaflet@1.9.4")
	assert.Contains(t, body, "Visit Rolex at their headquarters in Geneva, Switzerland.")
	assert.NotContains(t, body, "No map available")
}

func TestBrandPage_WithoutLocation(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{brands: sampleBrands()})

	rec := get(e, "/brands/chanel")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No map available")
	assert.NotContains(t, rec.Body.String(), `id="map"`)
}

func TestBrandPage_NotFound(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{brands: sampleBrands()})

	rec := get(e, "/brands/doesnotexist")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Brand not found")
	assert.Contains(t, rec.Body.String(), "Back to Home")
}

func TestBrandPage_ProviderFailure(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{err: errors.New("timeout")})

	rec := get(e, "/brands/rolex")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load brand details. Please try again later.")
}

func TestBrandPage_EscapesContent(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{brands: []*entity.Brand{{
		ID:       "x",
		Name:     "<script>alert(1)</script>",
		Location: &entity.Location{Lat: 1, Lng: 2, Address: `"><img onerror=alert(1)>`},
	}}})

	rec := get(e, "/brands/x")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.NotContains(t, rec.Body.String(), "<img onerror")
}

func TestAgentsPage(t *testing.T) {
	phone := "+1-555-0101"
	e := newTestEcho(t, &fakeProvider{agents: []*entity.Agent{
		{
			ID:     "a1",
			Name:   "Sarah Johnson",
			Email:  "sarah.johnson@luxury.com",
			Phone:  &phone,
			Active: true,
			Brands: []entity.BrandSummary{{ID: "chanel", Name: "Chanel", Category: "Fashion"}},
		},
		{ID: "a2", Name: "Emma Wilson", Email: "emma.wilson@luxury.com", Brands: []entity.BrandSummary{}},
	}})

	rec := get(e, "/agents")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Sarah Johnson")
	// html/template escapes '+' in text nodes as &#43;
	assert.Contains(t, html.UnescapeString(body), phone)
	assert.Contains(t, body, `href="/brands/chanel"`)
	assert.Contains(t, body, "No brands assigned")
	assert.Contains(t, body, "Currently unavailable")
}

func TestUnknownPage(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{})

	rec := get(e, "/does/not/exist")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Back to Home")
}

func TestHealth(t *testing.T) {
	e := newTestEcho(t, &fakeProvider{})

	rec := get(e, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
