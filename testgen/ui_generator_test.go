package testgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/scanner"
)

func TestGenerateUISuite(t *testing.T) {
	scan, err := scanner.ScanHTML(`<!DOCTYPE html>
<html>
<head><title>Signup</title></head>
<body>
	<form id="signup" action="/users" method="post">
		<label for="email">Email</label>
		<input id="email" name="email" type="email">
		<input name="newsletter" type="checkbox">
		<select name="country"></select>
		<button type="submit">Create account</button>
	</form>
	<a href="/login">Log in instead</a>
</body>
</html>`)
	require.NoError(t, err)

	suite := GenerateUISuite(scan, Options{})

	assert.Contains(t, suite, "UI Test Skeleton: Signup")
	assert.Contains(t, suite, "Scenario: submit form #signup")
	assert.Contains(t, suite, "# submits POST /users")
	assert.Contains(t, suite, "fill                    #email")
	assert.Contains(t, suite, "# Email")
	assert.Contains(t, suite, `check                   input[name="newsletter"]`)
	assert.Contains(t, suite, `select first option in  select[name="country"]`)
	assert.Contains(t, suite, "click                   ")
	assert.Contains(t, suite, "Scenario: visit links")
	assert.Contains(t, suite, "# Log in instead")
}

func TestGenerateUISuite_EmptyPage(t *testing.T) {
	scan, err := scanner.ScanHTML("<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)

	suite := GenerateUISuite(scan, Options{})
	assert.Contains(t, suite, "No testable elements found")
	assert.Contains(t, suite, "Untitled Page")
}
