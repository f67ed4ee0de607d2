//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// GraphQLResponse is the generic shape of a GraphQL HTTP response body.
type GraphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// executes a GraphQL query against the router and decodes the response
func PerformGraphQL(t *testing.T, router *gin.Engine, query string, variables map[string]any) (*httptest.ResponseRecorder, *GraphQLResponse) {
	t.Helper()

	payload := map[string]any{"query": query}
	if variables != nil {
		payload["variables"] = variables
	}
	jsonBody, err := json.Marshal(payload)
	require.NoError(t, err, "Failed to encode GraphQL request body")

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp GraphQLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp),
		"Failed to decode GraphQL response: %s", w.Body.String())
	return w, &resp
}
