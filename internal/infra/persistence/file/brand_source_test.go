package file

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"brandhub/internal/domain/entity"
	"brandhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const flatBrands = `[
  {"id":"rolex","name":"Rolex","description":"Swiss watches","category":"Watches & Jewelry","founded":1905,
   "headquarters":"Geneva, Switzerland","lat":47.37,"lng":8.54,"address":"Geneva","image":"/img/rolex.jpg"},
  {"id":"chanel","name":"Chanel","description":"Haute couture","category":"Fashion & Beauty","founded":1910,
   "headquarters":"Paris, France","lat":48.86,"lng":2.33,"address":"31 Rue Cambon, Paris","image":"/img/chanel.jpg"},
  {"id":"hermes","name":"Hermès","description":"Leather goods","category":"Fashion & Leather Goods","founded":1837,
   "headquarters":"Paris, France","image":"/img/hermes.jpg"}
]`

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBucket(t *testing.T, docs map[string]string) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	for key, doc := range docs {
		require.NoError(t, bucket.WriteAll(context.Background(), key, []byte(doc), nil))
	}

	return bucket
}

func TestBrandSource_ListBrands_SortedAndNested(t *testing.T) {
	bucket := newBucket(t, map[string]string{"brands.json": flatBrands})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())

	brands, err := source.ListBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 3)

	assert.Equal(t, "Chanel", brands[0].Name)
	assert.Equal(t, "Hermès", brands[1].Name)
	assert.Equal(t, "Rolex", brands[2].Name)
	for i := 1; i < len(brands); i++ {
		assert.LessOrEqual(t, brands[i-1].Name, brands[i].Name)
	}

	assert.Equal(t, &entity.Location{Lat: 47.37, Lng: 8.54, Address: "Geneva"}, brands[2].Location)
	assert.Nil(t, brands[1].Location, "brand without coordinates has no map")
}

func TestBrandSource_RoundTripCount(t *testing.T) {
	const n = 25

	records := make([]string, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, fmt.Sprintf(
			`{"id":"b%02d","name":"Brand %02d","lat":%d.5,"lng":%d.25,"address":"Street %d"}`, i, i, i, i, i))
	}
	bucket := newBucket(t, map[string]string{"brands.json": "[" + strings.Join(records, ",") + "]"})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())

	brands, err := source.ListBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, n)

	for i, brand := range brands {
		require.NotNil(t, brand.Location)
		assert.Equal(t, float64(i)+0.5, brand.Location.Lat)
		assert.Equal(t, float64(i)+0.25, brand.Location.Lng)
		assert.Equal(t, fmt.Sprintf("Street %d", i), brand.Location.Address)
	}
}

func TestBrandSource_AcceptsNestedLocation(t *testing.T) {
	doc := `[{"id":"rolex","name":"Rolex","founded":1905,"location":{"lat":47.37,"lng":8.54,"address":"Geneva"}}]`
	bucket := newBucket(t, map[string]string{"brands.json": doc})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())

	brand, err := source.FindBrandByID(context.Background(), "rolex")
	require.NoError(t, err)
	assert.Equal(t, &entity.Location{Lat: 47.37, Lng: 8.54, Address: "Geneva"}, brand.Location)
}

func TestBrandSource_FindBrandByID(t *testing.T) {
	bucket := newBucket(t, map[string]string{"brands.json": flatBrands})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())
	ctx := context.Background()

	brand, err := source.FindBrandByID(ctx, "rolex")
	require.NoError(t, err)
	assert.Equal(t, "Rolex", brand.Name)
	assert.Equal(t, 1905, brand.Founded)

	for _, id := range []string{"doesnotexist", "", "ROLEX", "../etc/passwd"} {
		brand, err := source.FindBrandByID(ctx, id)
		assert.ErrorIs(t, err, repository.ErrBrandNotFound, id)
		assert.Nil(t, brand)
	}
}

func TestBrandSource_MissingDocumentBehavesEmpty(t *testing.T) {
	bucket := newBucket(t, nil)
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())
	ctx := context.Background()

	brands, err := source.ListBrands(ctx)
	require.NoError(t, err)
	assert.Empty(t, brands)
	assert.NotNil(t, brands)

	_, err = source.FindBrandByID(ctx, "rolex")
	assert.ErrorIs(t, err, repository.ErrBrandNotFound)

	agents, err := source.ListAgents(ctx)
	require.NoError(t, err)
	assert.Empty(t, agents)
}

func TestBrandSource_UnparsableDocumentBehavesEmpty(t *testing.T) {
	bucket := newBucket(t, map[string]string{"brands.json": `{"not": "an array"`})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())

	brands, err := source.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Empty(t, brands)
}

func TestBrandSource_SkipsRecordsWithoutIdentity(t *testing.T) {
	doc := `[{"id":"","name":"Nameless id"},{"id":"x","name":"  "},{"id":"ok","name":"Ok"}]`
	bucket := newBucket(t, map[string]string{"brands.json": doc})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())

	brands, err := source.ListBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "ok", brands[0].ID)
}

func TestBrandSource_LoadsOnceWithoutRefresh(t *testing.T) {
	bucket := newBucket(t, map[string]string{"brands.json": flatBrands})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())
	ctx := context.Background()

	first, err := source.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	require.NoError(t, bucket.WriteAll(ctx, "brands.json", []byte(`[]`), nil))

	second, err := source.ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 3)
}

func TestBrandSource_ConcurrentFirstAccess(t *testing.T) {
	bucket := newBucket(t, map[string]string{"brands.json": flatBrands})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			brands, err := source.ListBrands(context.Background())
			assert.NoError(t, err)
			assert.Len(t, brands, 3)
		}()
	}
	wg.Wait()
}

func TestBrandSource_CancelledFirstRequestStillLoads(t *testing.T) {
	bucket := newBucket(t, map[string]string{"brands.json": flatBrands})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json"}, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	brands, err := source.ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 3)
}

func TestBrandSource_ListAgents(t *testing.T) {
	agents := `[
	  {"id":"a2","name":"Sarah Johnson","email":"sarah.johnson@luxury.com","phone":"+1-555-0101",
	   "expertise":"Fashion & Leather Goods","active":true,"brandIds":["hermes","chanel","hermes","unknown"]},
	  {"id":"a1","name":"Michael Chen","email":"michael.chen@luxury.com","phone":null,
	   "expertise":"Watches & Jewelry","active":false,"brandIds":["rolex"]}
	]`
	bucket := newBucket(t, map[string]string{"brands.json": flatBrands, "agents.json": agents})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json", AgentsKey: "agents.json"}, newTestLogger())

	result, err := source.ListAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Michael Chen", result[0].Name)
	assert.Nil(t, result[0].Phone)
	assert.False(t, result[0].Active)
	assert.Equal(t, []entity.BrandSummary{{ID: "rolex", Name: "Rolex", Category: "Watches & Jewelry"}}, result[0].Brands)

	assert.Equal(t, "Sarah Johnson", result[1].Name)
	assert.Equal(t, []entity.BrandSummary{
		{ID: "chanel", Name: "Chanel", Category: "Fashion & Beauty"},
		{ID: "hermes", Name: "Hermès", Category: "Fashion & Leather Goods"},
	}, result[1].Brands)
}

func TestBrandSource_BrokenAgentsDocumentKeepsBrands(t *testing.T) {
	bucket := newBucket(t, map[string]string{"brands.json": flatBrands, "agents.json": `nope`})
	source := NewBrandSource(bucket, Options{BrandsKey: "brands.json", AgentsKey: "agents.json"}, newTestLogger())
	ctx := context.Background()

	agents, err := source.ListAgents(ctx)
	require.NoError(t, err)
	assert.Empty(t, agents)

	brands, err := source.ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 3)
}

func TestLoadBrands_SurfacesErrors(t *testing.T) {
	ctx := context.Background()

	_, err := LoadBrands(ctx, newBucket(t, nil), "brands.json")
	assert.Error(t, err)

	_, err = LoadBrands(ctx, newBucket(t, map[string]string{"brands.json": "{"}), "brands.json")
	assert.Error(t, err)

	brands, err := LoadBrands(ctx, newBucket(t, map[string]string{"brands.json": flatBrands}), "brands.json")
	require.NoError(t, err)
	assert.Len(t, brands, 3)
}
