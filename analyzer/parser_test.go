package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/analyzer/model"
)

func parseItem(t *testing.T, itemJSON string) (*Endpoint, error) {
	t.Helper()
	var item model.Item
	require.NoError(t, json.Unmarshal([]byte(itemJSON), &item))
	a := New(nil)
	return a.parseRequest(&item, "", "Test Collection", nil, nil)
}

func mustParseItem(t *testing.T, itemJSON string) *Endpoint {
	t.Helper()
	ep, err := parseItem(t, itemJSON)
	require.NoError(t, err)
	require.NotNil(t, ep)
	return ep
}

func TestParseRequest_MissingRequest(t *testing.T) {
	ep, err := parseItem(t, `{"name": "no request here"}`)
	require.NoError(t, err)
	assert.Nil(t, ep)
}

func TestParseRequest_MalformedRequest(t *testing.T) {
	ep, err := parseItem(t, `{"name": "bad", "request": 42}`)
	require.Error(t, err)
	assert.Nil(t, ep)
}

func TestParseRequest_Defaults(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"url": "https://api.example.com"}}`)

	assert.Equal(t, DefaultRequestName, ep.Name)
	assert.Equal(t, "GET", ep.Method)
	assert.Equal(t, "Test Collection", ep.CollectionName)
	assert.Empty(t, ep.RequestBodyType)
	assert.Empty(t, ep.TestScript)
}

func TestParseRequest_MethodUppercased(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"method": "post", "url": "https://x.io"}}`)
	assert.Equal(t, "POST", ep.Method)
}

func TestParseRequest_PlainStringURL(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"url": "https://api.example.com/users?x=1"}}`)

	assert.Equal(t, "https://api.example.com/users?x=1", ep.URL)
	assert.Empty(t, ep.Host)
	assert.Empty(t, ep.Path)
}

func TestParseRequest_StructuredURL(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"method": "GET", "url": {
		"raw": "https://api.example.com/users/42?active=true",
		"protocol": "https",
		"host": ["api", "example", "com"],
		"path": ["users", "42"],
		"query": [
			{"key": "active", "value": "true"},
			{"key": "debug", "value": "1", "disabled": true}
		]
	}}}`)

	assert.Equal(t, "https://api.example.com/users/42", ep.URL)
	assert.Equal(t, "https://api.example.com", ep.Host)
	assert.Equal(t, "/users/42", ep.Path)
	assert.Equal(t, map[string]string{"active": "true"}, ep.QueryParams)
}

func TestParseRequest_StructuredURLWithoutPathFallsBack(t *testing.T) {
	// host alone is not enough for reconstruction; the raw string is kept
	ep := mustParseItem(t, `{"request": {"url": {
		"raw": "https://api.example.com",
		"protocol": "https",
		"host": ["api", "example", "com"]
	}}}`)

	assert.Equal(t, "https://api.example.com", ep.URL)
	assert.Equal(t, "https://api.example.com", ep.Host)
	assert.Empty(t, ep.Path)
}

func TestParseRequest_StructuredURLWithoutProtocol(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"url": {
		"raw": "api.example.com/health",
		"host": ["api", "example", "com"],
		"path": ["health"]
	}}}`)

	assert.Equal(t, "api.example.com/health", ep.URL)
}

func TestParseRequest_URLVariablesResolved(t *testing.T) {
	var item model.Item
	require.NoError(t, json.Unmarshal([]byte(
		`{"request": {"url": "{{baseUrl}}/users"}}`), &item))

	a := New(nil)
	ep, err := a.parseRequest(&item, "", "c",
		map[string]string{"baseUrl": "https://api.example.com"}, nil)
	require.NoError(t, err)
	require.NotNil(t, ep)

	assert.Equal(t, "https://api.example.com/users", ep.URL)
}

func TestParseRequest_Headers(t *testing.T) {
	var item model.Item
	require.NoError(t, json.Unmarshal([]byte(`{"request": {
		"url": "https://x.io",
		"header": [
			{"key": "Authorization", "value": "Bearer {{token}}"},
			{"key": "X-Debug", "value": "1", "disabled": true},
			{"key": "Accept", "value": "application/json"}
		]
	}}`), &item))

	a := New(nil)
	ep, err := a.parseRequest(&item, "", "c", map[string]string{"token": "abc123"}, nil)
	require.NoError(t, err)
	require.NotNil(t, ep)

	assert.Equal(t, map[string]string{
		"Authorization": "Bearer abc123",
		"Accept":        "application/json",
	}, ep.Headers)
}

func TestParseRequest_RawBodyClassification(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantType string
	}{
		{
			name:     "json sniffed from object",
			body:     `{"mode": "raw", "raw": "{\"a\":1}"}`,
			wantType: BodyTypeJSON,
		},
		{
			name:     "json sniffed from array",
			body:     `{"mode": "raw", "raw": "  [1,2]"}`,
			wantType: BodyTypeJSON,
		},
		{
			name:     "plain text stays raw",
			body:     `{"mode": "raw", "raw": "plain text"}`,
			wantType: BodyTypeRaw,
		},
		{
			name:     "language hint wins over sniffing",
			body:     `{"mode": "raw", "raw": "{\"a\":1}", "options": {"raw": {"language": "xml"}}}`,
			wantType: "xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := mustParseItem(t, `{"request": {"method": "POST", "url": "https://x.io", "body": `+tt.body+`}}`)
			assert.Equal(t, tt.wantType, ep.RequestBodyType)
		})
	}
}

func TestParseRequest_RawBodyResolved(t *testing.T) {
	var item model.Item
	require.NoError(t, json.Unmarshal([]byte(`{"request": {
		"method": "POST",
		"url": "https://x.io",
		"body": {"mode": "raw", "raw": "{\"user\": \"{{name}}\"}"}
	}}`), &item))

	a := New(nil)
	ep, err := a.parseRequest(&item, "", "c", map[string]string{"name": "ada"}, nil)
	require.NoError(t, err)
	require.NotNil(t, ep)

	assert.Equal(t, `{"user": "ada"}`, ep.RequestBody)
	assert.Equal(t, BodyTypeJSON, ep.RequestBodyType)
}

func TestParseRequest_URLEncodedBody(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"method": "POST", "url": "https://x.io", "body": {
		"mode": "urlencoded",
		"urlencoded": [
			{"key": "user", "value": "ada"},
			{"key": "secret", "value": "hidden", "disabled": true}
		]
	}}}`)

	assert.Equal(t, BodyTypeURLEncoded, ep.RequestBodyType)
	assert.Equal(t, map[string]string{"user": "ada"}, ep.FormData)
	assert.Empty(t, ep.RequestBody)
}

func TestParseRequest_FormDataBody(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"method": "POST", "url": "https://x.io", "body": {
		"mode": "formdata",
		"formdata": [{"key": "file", "value": "avatar.png"}]
	}}}`)

	assert.Equal(t, BodyTypeFormData, ep.RequestBodyType)
	assert.Equal(t, map[string]string{"file": "avatar.png"}, ep.FormData)
}

func TestParseRequest_UnknownBodyMode(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"method": "POST", "url": "https://x.io", "body": {
		"mode": "graphql", "raw": "query {}"
	}}}`)

	assert.Empty(t, ep.RequestBody)
	assert.Empty(t, ep.RequestBodyType)
	assert.Empty(t, ep.FormData)
}

func TestParseRequest_ExampleResponses(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"url": "https://x.io"}, "response": [
		{"name": "ok", "code": 200, "body": "{\"id\": 1}",
			"header": [{"key": "Content-Type", "value": "application/json"}]},
		{"body": "<html></html>"},
		{"name": "broken json", "code": 500, "body": "{not json"}
	]}`)

	require.Len(t, ep.ExampleResponses, 3)

	first := ep.ExampleResponses[0]
	assert.Equal(t, "ok", first.Name)
	assert.Equal(t, 200, first.Code)
	require.NotNil(t, first.JSONBody)
	parsed, ok := first.JSONBody.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), parsed["id"])
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, first.Headers)

	second := ep.ExampleResponses[1]
	assert.Equal(t, DefaultExampleName, second.Name)
	assert.Equal(t, DefaultStatusCode, second.Code)
	assert.Nil(t, second.JSONBody)

	// a body that only looks like JSON yields no parsed form, silently
	third := ep.ExampleResponses[2]
	assert.Equal(t, 500, third.Code)
	assert.Nil(t, third.JSONBody)
}

func TestParseRequest_TestScriptFromLines(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"url": "https://x.io"}, "event": [
		{"listen": "prerequest", "script": {"exec": ["ignored()"]}},
		{"listen": "test", "script": {"exec": ["pm.test(\"ok\", function () {", "});"]}}
	]}`)

	assert.Equal(t, "pm.test(\"ok\", function () {\n});", ep.TestScript)
}

func TestParseRequest_TestScriptFromString(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"url": "https://x.io"}, "event": [
		{"listen": "test", "script": {"exec": "single line"}}
	]}`)

	assert.Equal(t, "single line", ep.TestScript)
}

func TestParseRequest_LastTestEventWins(t *testing.T) {
	ep := mustParseItem(t, `{"request": {"url": "https://x.io"}, "event": [
		{"listen": "test", "script": {"exec": "first"}},
		{"listen": "test", "script": {"exec": "second"}}
	]}`)

	assert.Equal(t, "second", ep.TestScript)
}

func TestParseRequest_DescriptionForms(t *testing.T) {
	plain := mustParseItem(t, `{"request": {"url": "https://x.io", "description": "plain text"}}`)
	assert.Equal(t, "plain text", plain.Description)

	structured := mustParseItem(t, `{"request": {"url": "https://x.io", "description": {"content": "nested text"}}}`)
	assert.Equal(t, "nested text", structured.Description)
}

func TestParseRequest_QueryParamsNotResolved(t *testing.T) {
	// query-param values intentionally skip variable substitution
	var item model.Item
	require.NoError(t, json.Unmarshal([]byte(`{"request": {"url": {
		"raw": "https://x.io/a?v={{version}}",
		"host": ["x", "io"],
		"path": ["a"],
		"query": [{"key": "v", "value": "{{version}}"}]
	}}}`), &item))

	a := New(nil)
	ep, err := a.parseRequest(&item, "", "c", map[string]string{"version": "v9"}, nil)
	require.NoError(t, err)
	require.NotNil(t, ep)

	assert.Equal(t, map[string]string{"v": "{{version}}"}, ep.QueryParams)
}
