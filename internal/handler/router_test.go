//go:build unit

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reservation-service/internal/handler"
	"reservation-service/internal/handler/graph"
	"reservation-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	schema, err := graph.NewSchema(graph.NewResolver(nil, nil))
	require.NoError(t, err)
	handler.NewRouter(engine, config.NewTestConfig(), graph.NewHandler(schema))
	return engine
}

func TestHealthCheck(t *testing.T) {
	engine := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"reservation_service"}`, w.Body.String())
}

func TestGraphQLEndpointMounted(t *testing.T) {
	engine := newTestRouter(t)

	// GET serves GraphiQL for interactive exploration.
	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
