package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Login</title></head>
<body>
	<form id="login-form" action="/session" method="post">
		<label for="username">Username</label>
		<input id="username" name="username" type="text">
		<label for="password">Password</label>
		<input id="password" name="password" type="password">
		<input name="remember" type="checkbox">
		<button type="submit">Sign in</button>
	</form>
	<a href="/forgot">Forgot password?</a>
	<textarea></textarea>
</body>
</html>`

func TestScanHTML_Title(t *testing.T) {
	result, err := ScanHTML(loginPage)
	require.NoError(t, err)

	assert.Equal(t, "Login", result.Title)
}

func TestScanHTML_Counts(t *testing.T) {
	result, err := ScanHTML(loginPage)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Counts[KindInput])
	assert.Equal(t, 1, result.Counts[KindButton])
	assert.Equal(t, 1, result.Counts[KindLink])
	assert.Equal(t, 1, result.Counts[KindTextarea])
}

func TestScanHTML_Selectors(t *testing.T) {
	result, err := ScanHTML(loginPage)
	require.NoError(t, err)

	selectors := make(map[string]bool)
	for _, el := range result.Elements {
		selectors[el.Selector] = true
	}

	// id wins, then name, then position
	assert.True(t, selectors["#username"])
	assert.True(t, selectors[`input[name="remember"]`])
	assert.True(t, selectors["textarea:nth-of-type(1)"])
}

func TestScanHTML_Labels(t *testing.T) {
	result, err := ScanHTML(loginPage)
	require.NoError(t, err)

	var username, link Element
	for _, el := range result.Elements {
		switch {
		case el.ID == "username":
			username = el
		case el.Kind == KindLink:
			link = el
		}
	}

	assert.Equal(t, "Username", username.Label)
	assert.Equal(t, "Forgot password?", link.Label)
}

func TestScanHTML_Forms(t *testing.T) {
	result, err := ScanHTML(loginPage)
	require.NoError(t, err)

	require.Len(t, result.Forms, 1)
	form := result.Forms[0]

	assert.Equal(t, "#login-form", form.Selector)
	assert.Equal(t, "/session", form.Action)
	assert.Equal(t, "POST", form.Method)
	require.Len(t, form.Fields, 4)
	assert.Equal(t, KindButton, form.Fields[3].Kind)
}

func TestScanHTML_EmptyDocument(t *testing.T) {
	result, err := ScanHTML("<html><body></body></html>")
	require.NoError(t, err)

	assert.Empty(t, result.Elements)
	assert.Empty(t, result.Forms)
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(loginPage), 0644))

	result, err := ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Login", result.Title)
}

func TestScanFile_Missing(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "nope.html"))
	require.Error(t, err)
}
