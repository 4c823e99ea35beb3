package testgen

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/testforge/testforge/analyzer"
)

// apiSuiteTemplate renders one Go test file asserting every endpoint of a
// collection. The generated file is self-contained: stdlib imports only.
const apiSuiteTemplate = `// Code generated by testforge for collection "{{.CollectionName}}". DO NOT EDIT.
package {{.Package}}

import (
{{if .NeedsJSON}}	"encoding/json"
	"io"
{{end}}	"net/http"
{{if .NeedsBody}}	"strings"
{{end}}	"testing"
)

{{range .Tests}}{{if .Comment}}// {{.Comment}}
{{end}}func Test{{.FuncName}}(t *testing.T) {
{{if .Body}}	req, err := http.NewRequest({{printf "%q" .Method}}, {{printf "%q" .URL}}, strings.NewReader({{printf "%q" .Body}}))
{{else}}	req, err := http.NewRequest({{printf "%q" .Method}}, {{printf "%q" .URL}}, nil)
{{end}}	if err != nil {
		t.Fatalf("building request: %v", err)
	}
{{range .Headers}}	req.Header.Set({{printf "%q" .Key}}, {{printf "%q" .Value}})
{{end}}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("executing request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != {{.ExpectedStatus}} {
		t.Fatalf("expected status {{.ExpectedStatus}}, got %d", resp.StatusCode)
	}
{{if .JSONFields}}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
{{range .JSONFields}}	if _, ok := body[{{printf "%q" .}}]; !ok {
		t.Errorf("response missing field %q", {{printf "%q" .}})
	}
{{end}}{{end}}}

{{end}}`

type apiSuiteData struct {
	Package        string
	CollectionName string
	NeedsJSON      bool
	NeedsBody      bool
	Tests          []apiTestData
}

type apiTestData struct {
	FuncName       string
	Comment        string
	Method         string
	URL            string
	Body           string
	Headers        []headerData
	ExpectedStatus int
	JSONFields     []string
}

type headerData struct {
	Key   string
	Value string
}

// GenerateAPISuite renders the HTTP assertion suite for one analysis.
func GenerateAPISuite(analysis *analyzer.Analysis, opts Options) (string, error) {
	applyDefaults(&opts)

	data := apiSuiteData{
		Package:        opts.PackageName,
		CollectionName: analysis.CollectionName,
	}

	used := make(map[string]int)
	for _, ep := range analysis.Endpoints {
		data.Tests = append(data.Tests, buildAPITest(ep, "", uniqueName(used, identifier(ep.ShortName()))))

		if !opts.Enhance {
			continue
		}
		for _, enh := range EnhancementsFor(ep) {
			name := uniqueName(used, identifier(ep.ShortName())+enh.Name)
			data.Tests = append(data.Tests, buildEnhancedAPITest(ep, enh, name))
		}
	}

	for _, test := range data.Tests {
		if test.Body != "" {
			data.NeedsBody = true
		}
		if len(test.JSONFields) > 0 {
			data.NeedsJSON = true
		}
	}

	tmpl, err := template.New("api-suite").Parse(apiSuiteTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing api suite template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering api suite: %w", err)
	}
	return b.String(), nil
}

func buildAPITest(ep *analyzer.Endpoint, comment, funcName string) apiTestData {
	test := apiTestData{
		FuncName:       funcName,
		Comment:        comment,
		Method:         ep.Method,
		URL:            ep.URL,
		Body:           ep.RequestBody,
		Headers:        sortedHeaders(ep.Headers),
		ExpectedStatus: ep.ExpectedStatus(),
		JSONFields:     jsonFields(ep),
	}
	return test
}

func buildEnhancedAPITest(ep *analyzer.Endpoint, enh EnhancementCase, funcName string) apiTestData {
	test := apiTestData{
		FuncName:       funcName,
		Comment:        enh.Description,
		Method:         ep.Method,
		URL:            ep.URL,
		Body:           ep.RequestBody,
		Headers:        sortedHeaders(ep.Headers),
		ExpectedStatus: enh.ExpectedStatus,
	}

	switch enh.Kind {
	case EnhanceMissingAuth:
		var kept []headerData
		for _, h := range test.Headers {
			if h.Key != "Authorization" {
				kept = append(kept, h)
			}
		}
		test.Headers = kept
	case EnhanceUnknownID:
		test.URL = replaceIDSegment(test.URL)
	case EnhanceMalformedBody:
		test.Body = "{"
	case EnhanceEmptyQueryValues:
		test.URL = emptyQueryURL(ep)
	}
	return test
}

// emptyQueryURL rebuilds the endpoint URL with every known query parameter
// present but empty.
func emptyQueryURL(ep *analyzer.Endpoint) string {
	keys := make([]string, 0, len(ep.QueryParams))
	for k := range ep.QueryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	base := ep.URL
	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}
	for i, k := range keys {
		sep := "&"
		if i == 0 {
			sep = "?"
		}
		base += sep + k + "="
	}
	return base
}

// jsonFields lists the top-level keys of the first example's parsed JSON
// body, the fields the generated test asserts on.
func jsonFields(ep *analyzer.Endpoint) []string {
	if len(ep.ExampleResponses) == 0 {
		return nil
	}
	obj, ok := ep.ExampleResponses[0].JSONBody.(map[string]any)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(obj))
	for k := range obj {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

func sortedHeaders(headers map[string]string) []headerData {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]headerData, 0, len(keys))
	for _, k := range keys {
		out = append(out, headerData{Key: k, Value: headers[k]})
	}
	return out
}

func uniqueName(used map[string]int, name string) string {
	used[name]++
	if used[name] == 1 {
		return name
	}
	return fmt.Sprintf("%s%d", name, used[name])
}
