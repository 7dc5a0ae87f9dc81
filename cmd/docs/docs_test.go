package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocListsRoutes(t *testing.T) {
	var doc struct {
		BasePath    string                                `json:"basePath"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)
	for path, methods := range map[string][]string{
		"/auth/login":                         {"post"},
		"/planning-lists":                     {"get", "post"},
		"/planning-lists/{list_id}":           {"get", "put", "delete"},
		"/shopping-lists/{list_id}/duplicate": {"post"},
		"/products/{product_id}":              {"get", "put", "delete"},
		"/dashboard":                          {"get"},
		"/users/me":                           {"get", "patch"},
	} {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}
	assert.Contains(t, doc.Definitions, "dto.ShoppingListDetailResponse")
	assert.Contains(t, doc.Definitions, "handlers.ErrorResponse")
}
