package docs

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refPattern = regexp.MustCompile(`"\$ref":\s*"#/definitions/([^"]+)"`)

func TestSwaggerDoc(t *testing.T) {
	doc := SwaggerInfo.ReadDoc()

	var parsed struct {
		BasePath    string                                `json:"basePath"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "/api", parsed.BasePath)

	routes := map[string][]string{
		"/auth/login":                {"post"},
		"/auth/me":                   {"get"},
		"/accounts":                  {"get", "post"},
		"/games":                     {"get", "post", "delete"},
		"/games/{id}":                {"get", "put", "delete"},
		"/games/{id}/names":          {"post"},
		"/games/{id}/names/{nameId}": {"put", "delete"},
		"/categories":                {"get", "post"},
		"/categories/{code}":         {"put", "delete"},
		"/languages":                 {"get"},
	}
	for path, methods := range routes {
		ops, ok := parsed.Paths[path]
		if !assert.True(t, ok, "missing path %s", path) {
			continue
		}
		for _, m := range methods {
			assert.Contains(t, ops, m, "missing %s %s", m, path)
		}
	}

	for _, m := range refPattern.FindAllStringSubmatch(doc, -1) {
		assert.Contains(t, parsed.Definitions, m[1], "dangling $ref")
	}
}
