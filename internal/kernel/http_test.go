package kernel_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/warehouse/config"
	"github.com/shashiranjanraj/warehouse/internal/kernel"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"github.com/shashiranjanraj/warehouse/pkg/reqid"
	"github.com/shashiranjanraj/warehouse/pkg/testkit"
)

var httpConfig = config.HTTPConfig{
	MaxBodyBytes:    1 << 20,
	AllowedOrigins:  []string{"*"},
	ShutdownTimeout: time.Second,
}

func TestInventoryFlow(t *testing.T) {
	handler := kernel.NewHTTPKernel(testkit.NewDB(t), httpConfig).Handler()
	testkit.RunSequence(t, handler, "testdata/inventory_flow.json")
}

func TestHealth(t *testing.T) {
	db := testkit.NewDB(t)
	handler := kernel.NewHTTPKernel(db, httpConfig).Handler()

	rec := testkit.Do(handler, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"data":{"database":"ok"}}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(reqid.Header))

	require.NoError(t, database.Close(db))
	rec = testkit.Do(handler, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFallbacks(t *testing.T) {
	handler := kernel.NewHTTPKernel(testkit.NewDB(t), httpConfig).Handler()

	rec := testkit.Do(handler, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"Route not found"}`, rec.Body.String())

	rec = testkit.Do(handler, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = testkit.Do(handler, http.MethodPatch, "/product", []byte(`{}`), nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"status":405,"message":"Method not allowed"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	handler := kernel.NewHTTPKernel(testkit.NewDB(t), httpConfig).Handler()

	testkit.Do(handler, http.MethodGet, "/product", nil, nil)
	rec := testkit.Do(handler, http.MethodGet, "/metrics", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `warehouse_http_requests_total{method="GET",path="/product",status="200"}`)
}

func TestRoutesAreNamed(t *testing.T) {
	r := kernel.NewHTTPKernel(nil, httpConfig).Router()

	for _, route := range r.Routes() {
		assert.NotEmpty(t, route.Name, "%s %s", route.Method, route.Path)
	}
	path, ok := r.Path("storage.leftovers")
	require.True(t, ok)
	assert.Equal(t, "/storage/leftovers", path)
}

func TestRateLimit(t *testing.T) {
	cfg := httpConfig
	cfg.RateLimit = 1
	cfg.RateLimitWindow = time.Minute
	handler := kernel.NewHTTPKernel(testkit.NewDB(t), cfg).Handler()

	assert.Equal(t, http.StatusOK, testkit.Do(handler, http.MethodGet, "/product", nil, nil).Code)

	rec := testkit.Do(handler, http.MethodGet, "/product", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"status":429,"message":"Too Many Requests"}`, rec.Body.String())
}
