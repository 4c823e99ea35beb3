package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_UnmarshalPlainString(t *testing.T) {
	var u URL
	require.NoError(t, json.Unmarshal([]byte(`"https://x.io/users"`), &u))

	assert.Equal(t, "https://x.io/users", u.Raw)
	assert.True(t, u.IsPlain())
}

func TestURL_UnmarshalStructured(t *testing.T) {
	var u URL
	require.NoError(t, json.Unmarshal([]byte(`{
		"raw": "https://x.io/users?a=1",
		"protocol": "https",
		"host": ["x", "io"],
		"path": ["users"],
		"query": [{"key": "a", "value": "1"}]
	}`), &u))

	assert.Equal(t, []string{"x", "io"}, u.Host)
	assert.Equal(t, []string{"users"}, u.Path)
	require.Len(t, u.Query, 1)
	assert.False(t, u.IsPlain())
}

func TestDescription_UnmarshalBothForms(t *testing.T) {
	var plain Description
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &plain))
	assert.Equal(t, "hello", plain.String())

	var structured Description
	require.NoError(t, json.Unmarshal([]byte(`{"content": "nested"}`), &structured))
	assert.Equal(t, "nested", structured.String())
}

func TestScriptLines_UnmarshalBothForms(t *testing.T) {
	var fromString ScriptLines
	require.NoError(t, json.Unmarshal([]byte(`"one line"`), &fromString))
	assert.Equal(t, ScriptLines{"one line"}, fromString)

	var fromArray ScriptLines
	require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &fromArray))
	assert.Equal(t, ScriptLines{"a", "b"}, fromArray)
}

func TestItem_IsFolder(t *testing.T) {
	var folder Item
	require.NoError(t, json.Unmarshal([]byte(`{"name": "F", "item": []}`), &folder))
	assert.True(t, folder.IsFolder())

	var leaf Item
	require.NoError(t, json.Unmarshal([]byte(`{"name": "R", "request": {"url": "https://x.io"}}`), &leaf))
	assert.False(t, leaf.IsFolder())
}
