package testgen

import (
	"strings"

	"github.com/testforge/testforge/analyzer"
)

// EnhancementKind identifies one entry of the fixed extra-case catalog.
type EnhancementKind int

const (
	EnhanceMissingAuth EnhancementKind = iota
	EnhanceUnknownID
	EnhanceMalformedBody
	EnhanceEmptyQueryValues
)

// EnhancementCase is one rule-selected extra test case for an endpoint.
// The catalog is fixed; selection looks only at the endpoint's shape.
type EnhancementCase struct {
	// Kind of the catalog entry.
	Kind EnhancementKind

	// Name suffix for the generated test.
	Name string

	// Description of the scenario, used in test-case documents.
	Description string

	// ExpectedStatus the scenario should produce.
	ExpectedStatus int
}

// EnhancementsFor selects the catalog entries applicable to one endpoint.
func EnhancementsFor(ep *analyzer.Endpoint) []EnhancementCase {
	var cases []EnhancementCase

	if _, ok := ep.Headers["Authorization"]; ok {
		cases = append(cases, EnhancementCase{
			Kind:           EnhanceMissingAuth,
			Name:           "MissingAuth",
			Description:    "send the request without the Authorization header",
			ExpectedStatus: 401,
		})
	}

	if hasNumericIDSegment(ep) && methodTargetsResource(ep.Method) {
		cases = append(cases, EnhancementCase{
			Kind:           EnhanceUnknownID,
			Name:           "UnknownID",
			Description:    "replace the resource id with one that does not exist",
			ExpectedStatus: 404,
		})
	}

	if methodCarriesBody(ep.Method) && ep.RequestBodyType == analyzer.BodyTypeJSON {
		cases = append(cases, EnhancementCase{
			Kind:           EnhanceMalformedBody,
			Name:           "MalformedBody",
			Description:    "send a syntactically invalid JSON body",
			ExpectedStatus: 400,
		})
	}

	if len(ep.QueryParams) > 0 {
		cases = append(cases, EnhancementCase{
			Kind:           EnhanceEmptyQueryValues,
			Name:           "EmptyQueryValues",
			Description:    "send every query parameter with an empty value",
			ExpectedStatus: 400,
		})
	}

	return cases
}

func methodCarriesBody(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

func methodTargetsResource(method string) bool {
	switch method {
	case "GET", "PUT", "PATCH", "DELETE":
		return true
	}
	return false
}

// hasNumericIDSegment reports whether the endpoint path ends in an
// all-digit segment, the usual shape of a by-id resource URL.
func hasNumericIDSegment(ep *analyzer.Endpoint) bool {
	source := ep.Path
	if source == "" {
		source = ep.URL
	}
	segments := strings.Split(strings.TrimSuffix(source, "/"), "/")
	if len(segments) == 0 {
		return false
	}
	last := segments[len(segments)-1]
	if last == "" {
		return false
	}
	for _, r := range last {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// replaceIDSegment swaps the trailing numeric segment of a URL for an id
// that should not exist.
func replaceIDSegment(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return url
	}
	return url[:idx] + "/999999999"
}
