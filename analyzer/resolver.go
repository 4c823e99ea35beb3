package analyzer

import "strings"

// Resolve substitutes {{name}} placeholders in text using two variable
// scopes. Folder variables take precedence over collection variables for the
// same key. Substitution is a single pass over the input: a substituted
// value that itself contains {{...}} is inserted verbatim and never
// re-scanned. Unknown placeholders are kept as-is.
func Resolve(text string, collectionVars, folderVars map[string]string) string {
	if text == "" || !strings.Contains(text, "{{") {
		return text
	}

	var b strings.Builder
	rest := text
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			b.WriteString(rest)
			break
		}

		name := rest[start+2 : start+2+end]
		b.WriteString(rest[:start])

		if value, ok := folderVars[name]; ok {
			b.WriteString(value)
		} else if value, ok := collectionVars[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(rest[start : start+2+end+2])
		}

		rest = rest[start+2+end+2:]
	}
	return b.String()
}
